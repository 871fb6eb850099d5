// Package backup implements the portable workspace snapshot formats:
// a versioned JSON backup for export/import and a semicolon-delimited
// CSV listing of break records. Field names and labels match the files
// the tool has always produced, including the pt-BR CSV headers.
package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/acarvalho/pausas/internal/domain"
)

// Version identifies the backup file format.
const Version = "2.0"

// Backup is the top-level JSON structure for a workspace snapshot.
type Backup struct {
	Version   string     `json:"version"`
	Workspace string     `json:"workspace"`
	Exported  time.Time  `json:"exported"`
	Data      BackupData `json:"data"`
}

// BackupData holds the workspace payload. Employees and Records are
// required on import; Settings may be partial and is defaults-merged.
type BackupData struct {
	Employees []EmployeeBackup `json:"employees"`
	Records   []RecordBackup   `json:"records"`
	Settings  *SettingsBackup  `json:"settings,omitempty"`
}

type EmployeeBackup struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RecordBackup struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employeeId"`
	Type       string  `json:"type"`
	StartTime  string  `json:"startTime"`
	EndTime    *string `json:"endTime"`
}

// SettingsBackup mirrors the stored settings shape. All fields are
// optional; schedule keys are weekday digits "0"-"6".
type SettingsBackup struct {
	CoffeeStart   *string                      `json:"coffeeStart,omitempty"`
	CoffeeEnd     *string                      `json:"coffeeEnd,omitempty"`
	BathroomLimit *int                         `json:"bathroomLimit,omitempty"`
	CoffeeLimit   *int                         `json:"coffeeLimit,omitempty"`
	Schedule      map[string]DayScheduleBackup `json:"schedule,omitempty"`
}

type DayScheduleBackup struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// Load parses a backup from r.
func Load(r io.Reader) (*Backup, error) {
	var b Backup
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, fmt.Errorf("parsing backup file: %w", err)
	}
	return &b, nil
}

// New assembles a backup snapshot from workspace state.
func New(workspace string, employees []*domain.Employee, records []*domain.BreakRecord, settings *domain.Settings, now time.Time) *Backup {
	b := &Backup{
		Version:   Version,
		Workspace: workspace,
		Exported:  now,
		Data: BackupData{
			Employees: make([]EmployeeBackup, 0, len(employees)),
			Records:   make([]RecordBackup, 0, len(records)),
			Settings:  settingsBackup(settings),
		},
	}
	for _, e := range employees {
		b.Data.Employees = append(b.Data.Employees, EmployeeBackup{ID: e.ID, Name: e.Name})
	}
	for _, r := range records {
		rb := RecordBackup{
			ID:         r.ID,
			EmployeeID: r.EmployeeID,
			Type:       string(r.Type),
			StartTime:  r.StartTime.Format(time.RFC3339),
		}
		if r.EndTime != nil {
			s := r.EndTime.Format(time.RFC3339)
			rb.EndTime = &s
		}
		b.Data.Records = append(b.Data.Records, rb)
	}
	return b
}

// Save writes the backup as indented JSON.
func (b *Backup) Save(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("writing backup: %w", err)
	}
	return nil
}

func settingsBackup(s *domain.Settings) *SettingsBackup {
	coffeeStart := s.CoffeeStart.String()
	coffeeEnd := s.CoffeeEnd.String()
	bathroomLimit := s.BathroomLimitMin
	coffeeLimit := s.CoffeeLimitMin

	sb := &SettingsBackup{
		CoffeeStart:   &coffeeStart,
		CoffeeEnd:     &coffeeEnd,
		BathroomLimit: &bathroomLimit,
		CoffeeLimit:   &coffeeLimit,
		Schedule:      make(map[string]DayScheduleBackup, 7),
	}
	for d, day := range s.Schedule {
		sb.Schedule[strconv.Itoa(d)] = DayScheduleBackup{
			Enabled: day.Enabled,
			Start:   day.Start.String(),
			End:     day.End.String(),
		}
	}
	return sb
}

// FileName returns the export filename for a backup of the named
// workspace, for example backup_Acme_Ltda_2025-06-02.json.
func FileName(workspace string, now time.Time) string {
	return fmt.Sprintf("backup_%s_%s.json", domain.FileSafeName(workspace), now.Format("2006-01-02"))
}
