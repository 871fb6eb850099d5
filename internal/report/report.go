// Package report is the read-only aggregation engine. It turns the flat
// break record log into schedule-aware statistics: totals, weekday and
// hour histograms, a day-by-hour heatmap and a per-employee ranking.
// Nothing here mutates state.
package report

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/acarvalho/pausas/internal/domain"
)

// Status filters records by lifecycle state.
type Status string

const (
	StatusAny       Status = ""
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusLate      Status = "late"
)

// ParseStatus validates a status filter string. Empty means any.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusAny, StatusPending, StatusCompleted, StatusLate:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status filter %q", s)
}

// Filter narrows the record log. Zero values match everything.
// From and To are inclusive date bounds on the start time; To extends to
// the end of its day (23:59:59 local).
type Filter struct {
	EmployeeID string
	Type       *domain.BreakType
	From       *time.Time
	To         *time.Time
	Status     Status
}

// Matches reports whether a record passes the filter. Late only matches
// completed records, so pending records are excluded by construction.
func (f Filter) Matches(r *domain.BreakRecord, s *domain.Settings) bool {
	if f.EmployeeID != "" && r.EmployeeID != f.EmployeeID {
		return false
	}
	if f.Type != nil && r.Type != *f.Type {
		return false
	}
	if f.From != nil && r.StartTime.Before(*f.From) {
		return false
	}
	if f.To != nil {
		end := time.Date(f.To.Year(), f.To.Month(), f.To.Day(), 23, 59, 59, 0, f.To.Location())
		if r.StartTime.After(end) {
			return false
		}
	}
	switch f.Status {
	case StatusPending:
		return r.Active()
	case StatusCompleted:
		return !r.Active()
	case StatusLate:
		return r.IsLate(s)
	}
	return true
}

// FilterRecords returns the records passing the filter, preserving order.
func FilterRecords(records []*domain.BreakRecord, settings *domain.Settings, f Filter) []*domain.BreakRecord {
	var out []*domain.BreakRecord
	for _, r := range records {
		if f.Matches(r, settings) {
			out = append(out, r)
		}
	}
	return out
}

// HeatmapCell is one (weekday, hour) bucket. Level is a 0-5 saturation
// scale: 0 for empty cells, otherwise scaled against the busiest cell.
type HeatmapCell struct {
	Count int
	Level int
}

// Standing is one row of the per-employee ranking.
type Standing struct {
	Employee  domain.Employee
	Count     int
	TotalMin  int
	AvgMin    int
	LateCount int
}

// Report is the full aggregation result. Histograms cover only completed
// records; Hours is the ascending union of hours covered by enabled
// schedule days, and Heatmap is indexed [hour][day] parallel to Hours
// and EnabledDays.
type Report struct {
	Total              int
	BathroomCount      int
	CoffeeCount        int
	TotalMin           int
	AvgMin             int
	LateCount          int
	OutsideWindowCount int

	Weekday [7]int

	Hours      []int
	HourCounts []int

	EnabledDays []int
	Heatmap     [][]HeatmapCell

	Ranking []Standing
}

// Build computes a report over the completed subset of the filtered
// records. Open breaks have no duration and are excluded from all
// statistics. The ranking covers every roster employee, including those
// with no matching records, sorted by count descending with ties keeping
// roster order.
func Build(records []*domain.BreakRecord, employees []*domain.Employee, settings *domain.Settings, f Filter) *Report {
	var completed []*domain.BreakRecord
	for _, r := range FilterRecords(records, settings, f) {
		if !r.Active() {
			completed = append(completed, r)
		}
	}

	rep := &Report{
		Hours:       settings.ScheduleHours(),
		EnabledDays: settings.EnabledDays(),
	}

	for _, r := range completed {
		rep.Total++
		if r.Type == domain.BreakCoffee {
			rep.CoffeeCount++
		} else {
			rep.BathroomCount++
		}
		dur, _ := r.Duration()
		rep.TotalMin += dur
		if r.IsLate(settings) {
			rep.LateCount++
		}
		if r.IsOutsideCoffeeWindow(settings) {
			rep.OutsideWindowCount++
		}
		rep.Weekday[int(r.StartTime.Weekday())]++
	}
	rep.AvgMin = roundedAvg(rep.TotalMin, rep.Total)

	rep.HourCounts = hourCounts(completed, rep.Hours)
	rep.Heatmap = heatmap(completed, rep.Hours, rep.EnabledDays)
	rep.Ranking = ranking(completed, employees, settings)

	return rep
}

// roundedAvg is round(sum/count), 0 for an empty set.
func roundedAvg(sum, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(count)))
}

// BarScale returns the 0..1 bar height for a bucket count. The divisor
// is floored to 1 so an all-empty chart renders flat instead of
// dividing by zero.
func BarScale(count, maxCount int) float64 {
	if maxCount < 1 {
		maxCount = 1
	}
	return float64(count) / float64(maxCount)
}

// MaxCount returns the largest value in counts, or 0 when empty.
func MaxCount(counts []int) int {
	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	return max
}

func hourCounts(records []*domain.BreakRecord, hours []int) []int {
	index := make(map[int]int, len(hours))
	for i, h := range hours {
		index[h] = i
	}
	counts := make([]int, len(hours))
	for _, r := range records {
		// Records outside operationally relevant hours are dropped
		// from the chart.
		if i, ok := index[r.StartTime.Hour()]; ok {
			counts[i]++
		}
	}
	return counts
}

func heatmap(records []*domain.BreakRecord, hours, days []int) [][]HeatmapCell {
	hourIdx := make(map[int]int, len(hours))
	for i, h := range hours {
		hourIdx[h] = i
	}
	dayIdx := make(map[int]int, len(days))
	for i, d := range days {
		dayIdx[d] = i
	}

	cells := make([][]HeatmapCell, len(hours))
	for i := range cells {
		cells[i] = make([]HeatmapCell, len(days))
	}

	maxCell := 0
	for _, r := range records {
		hi, okH := hourIdx[r.StartTime.Hour()]
		di, okD := dayIdx[int(r.StartTime.Weekday())]
		if !okH || !okD {
			continue
		}
		cells[hi][di].Count++
		if cells[hi][di].Count > maxCell {
			maxCell = cells[hi][di].Count
		}
	}
	if maxCell < 1 {
		maxCell = 1
	}

	for hi := range cells {
		for di := range cells[hi] {
			count := cells[hi][di].Count
			if count == 0 {
				continue
			}
			level := int(math.Ceil(float64(count) / float64(maxCell) * 5))
			if level < 1 {
				level = 1
			}
			if level > 5 {
				level = 5
			}
			cells[hi][di].Level = level
		}
	}
	return cells
}

func ranking(records []*domain.BreakRecord, employees []*domain.Employee, settings *domain.Settings) []Standing {
	standings := make([]Standing, 0, len(employees))
	for _, e := range employees {
		s := Standing{Employee: *e}
		for _, r := range records {
			if r.EmployeeID != e.ID {
				continue
			}
			s.Count++
			dur, _ := r.Duration()
			s.TotalMin += dur
			if r.IsLate(settings) {
				s.LateCount++
			}
		}
		s.AvgMin = roundedAvg(s.TotalMin, s.Count)
		standings = append(standings, s)
	}
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Count > standings[j].Count
	})
	return standings
}
