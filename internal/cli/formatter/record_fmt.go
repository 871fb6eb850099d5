package formatter

import (
	"github.com/acarvalho/pausas/internal/domain"
)

// RemovedLabel is shown for records whose employee left the roster.
const RemovedLabel = "Removed"

// EmployeeName resolves a record's employee name against the roster,
// falling back to RemovedLabel for dangling references.
func EmployeeName(employeeID string, roster []*domain.Employee) string {
	for _, e := range roster {
		if e.ID == employeeID {
			return e.Name
		}
	}
	return StyleDim.Render(RemovedLabel)
}

// FormatRecordList renders break records as a table, most recent first.
func FormatRecordList(records []*domain.BreakRecord, roster []*domain.Employee, settings *domain.Settings) string {
	if len(records) == 0 {
		return Dim("No records.")
	}

	headers := []string{"ID", "Employee", "Type", "Out", "Back", "Duration", "Late", "Outside"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		back := StyleGreen.Render("on break")
		duration := Dim("--")
		if dur, ok := r.Duration(); ok {
			back = DayDate(*r.EndTime) + " " + ClockStamp(*r.EndTime)
			duration = FormatDuration(dur)
			if r.IsLate(settings) {
				duration = StyleRed.Render(duration)
			}
		}
		rows = append(rows, []string{
			TruncID(r.ID),
			EmployeeName(r.EmployeeID, roster),
			BreakTypeLabel(r.Type),
			DayDate(r.StartTime) + " " + ClockStamp(r.StartTime),
			back,
			duration,
			YesNo(r.IsLate(settings)),
			YesNo(r.IsOutsideCoffeeWindow(settings)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatSettings renders the workspace settings and weekly schedule.
func FormatSettings(s *domain.Settings) string {
	general := RenderTable(
		[]string{"Setting", "Value"},
		[][]string{
			{"Coffee window", s.CoffeeStart.String() + " - " + s.CoffeeEnd.String()},
			{"Bathroom limit", FormatDuration(s.BathroomLimitMin)},
			{"Coffee limit", FormatDuration(s.CoffeeLimitMin)},
		},
	)

	rows := make([][]string, 0, 7)
	for d, day := range s.Schedule {
		state := StyleGreen.Render("enabled")
		hours := day.Start.String() + " - " + day.End.String()
		if !day.Enabled {
			state = StyleDim.Render("disabled")
			hours = StyleDim.Render(hours)
		}
		rows = append(rows, []string{weekdayShort[d], state, hours})
	}
	schedule := RenderTable([]string{"Day", "State", "Hours"}, rows)

	return general + "\n" + schedule
}
