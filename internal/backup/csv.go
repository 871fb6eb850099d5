package backup

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/acarvalho/pausas/internal/domain"
)

// csvHeader is the fixed pt-BR column set of the records export.
var csvHeader = []string{
	"Funcionario", "Tipo", "Data Saida", "Hora Saida",
	"Data Retorno", "Hora Retorno", "Duracao Min", "Atrasado", "Fora Horario",
}

const (
	csvDateLayout = "02/01/2006"
	csvTimeLayout = "15:04"
)

// WriteCSV writes every record (active included) as a semicolon-delimited
// CSV with a UTF-8 byte-order mark, one row per record in the given
// order. Records referencing a deleted employee are labelled Removido.
func WriteCSV(w io.Writer, records []*domain.BreakRecord, employees []*domain.Employee, settings *domain.Settings) error {
	if _, err := io.WriteString(w, "\uFEFF"); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	names := make(map[string]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.Name
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range records {
		name, ok := names[r.EmployeeID]
		if !ok {
			name = "Removido"
		}

		var endDate, endTime, duration string
		if r.EndTime != nil {
			endDate = r.EndTime.Format(csvDateLayout)
			endTime = r.EndTime.Format(csvTimeLayout)
			dur, _ := r.Duration()
			duration = strconv.Itoa(dur)
		}

		row := []string{
			name,
			typeLabel(r.Type),
			r.StartTime.Format(csvDateLayout),
			r.StartTime.Format(csvTimeLayout),
			endDate,
			endTime,
			duration,
			simNao(r.IsLate(settings)),
			simNao(r.IsOutsideCoffeeWindow(settings)),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}

// CSVFileName returns the export filename for the named workspace,
// for example registros_Acme_Ltda_2025-06-02.csv.
func CSVFileName(workspace string, now time.Time) string {
	return fmt.Sprintf("registros_%s_%s.csv", domain.FileSafeName(workspace), now.Format("2006-01-02"))
}

func typeLabel(t domain.BreakType) string {
	if t == domain.BreakCoffee {
		return "Café"
	}
	return "Banheiro"
}

func simNao(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}
