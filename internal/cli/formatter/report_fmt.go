package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/acarvalho/pausas/internal/report"
	"github.com/charmbracelet/lipgloss"
)

var weekdayShort = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// FormatReport renders the full report: stat cards, the weekday and hour
// bar charts, the day-by-hour heatmap and the per-employee ranking.
func FormatReport(rep *report.Report) string {
	sections := []string{
		formatStatCards(rep),
		Header("Breaks by weekday") + "\n" + renderBarChart(weekdayLabels(), rep.Weekday[:]),
		Header("Breaks by hour") + "\n" + renderBarChart(hourLabels(rep.Hours), rep.HourCounts),
		Header("Heatmap") + "\n" + renderHeatmap(rep),
		Header("Ranking") + "\n" + FormatRanking(rep.Ranking),
	}
	return strings.Join(sections, "\n\n")
}

func formatStatCards(rep *report.Report) string {
	card := func(label, value string, style lipgloss.Style) string {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDim).
			Padding(0, 2).
			Render(style.Render(value) + "\n" + StyleDim.Render(label))
	}

	cards := []string{
		card("Total breaks", strconv.Itoa(rep.Total), StyleBold),
		card("Bathroom", strconv.Itoa(rep.BathroomCount), StyleBlue),
		card("Coffee", strconv.Itoa(rep.CoffeeCount), StyleYellow),
		card("Avg duration", FormatDuration(rep.AvgMin), StyleGreen),
		card("Over limit", strconv.Itoa(rep.LateCount), StyleRed),
		card("Outside window", strconv.Itoa(rep.OutsideWindowCount), StylePurple),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func weekdayLabels() []string {
	labels := make([]string, 7)
	copy(labels, weekdayShort[:])
	return labels
}

func hourLabels(hours []int) []string {
	labels := make([]string, len(hours))
	for i, h := range hours {
		labels[i] = fmt.Sprintf("%02dh", h)
	}
	return labels
}

// renderBarChart draws one horizontal bar per bucket, scaled against the
// busiest bucket.
func renderBarChart(labels []string, counts []int) string {
	const barWidth = 30
	max := report.MaxCount(counts)

	labelWidth := 0
	for _, l := range labels {
		if len(l) > labelWidth {
			labelWidth = len(l)
		}
	}

	var b strings.Builder
	for i, label := range labels {
		count := 0
		if i < len(counts) {
			count = counts[i]
		}
		filled := int(report.BarScale(count, max) * barWidth)
		bar := StyleGreen.Render(strings.Repeat("█", filled)) +
			StyleDim.Render(strings.Repeat("░", barWidth-filled))
		fmt.Fprintf(&b, "%-*s %s %d\n", labelWidth, label, bar, count)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Heat levels 0-5 as background saturation steps.
var heatStyles = [6]lipgloss.Style{
	lipgloss.NewStyle().Foreground(ColorDim),
	lipgloss.NewStyle().Background(lipgloss.Color("#3a3a2a")).Foreground(ColorFg),
	lipgloss.NewStyle().Background(lipgloss.Color("#585427")).Foreground(ColorFg),
	lipgloss.NewStyle().Background(lipgloss.Color("#8a7a1f")).Foreground(ColorFg),
	lipgloss.NewStyle().Background(lipgloss.Color("#c59a17")).Foreground(lipgloss.Color("#1d2021")),
	lipgloss.NewStyle().Background(ColorHeader).Foreground(lipgloss.Color("#1d2021")),
}

// renderHeatmap draws schedule hours as rows and enabled weekdays as
// columns. Cell saturation follows the 0-5 level scale.
func renderHeatmap(rep *report.Report) string {
	if len(rep.Hours) == 0 || len(rep.EnabledDays) == 0 {
		return Dim("No schedule hours enabled.")
	}

	var b strings.Builder

	b.WriteString("     ")
	for _, d := range rep.EnabledDays {
		fmt.Fprintf(&b, " %s ", StyleHeader.Render(weekdayShort[d]))
	}
	b.WriteString("\n")

	for hi, hour := range rep.Hours {
		fmt.Fprintf(&b, "%02dh  ", hour)
		for di := range rep.EnabledDays {
			cell := rep.Heatmap[hi][di]
			label := " · "
			if cell.Count > 0 {
				label = fmt.Sprintf("%2d ", cell.Count)
			}
			b.WriteString(" " + heatStyles[cell.Level].Render(label))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatRanking renders the per-employee standing table, busiest first.
func FormatRanking(standings []report.Standing) string {
	if len(standings) == 0 {
		return Dim("No employees.")
	}

	headers := []string{"#", "Employee", "Breaks", "Total", "Avg", "Over limit"}
	rows := make([][]string, 0, len(standings))
	for i, s := range standings {
		late := StyleDim.Render("0")
		if s.LateCount > 0 {
			late = StyleRed.Render(strconv.Itoa(s.LateCount))
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			s.Employee.Name,
			strconv.Itoa(s.Count),
			FormatDuration(s.TotalMin),
			FormatDuration(s.AvgMin),
			late,
		})
	}
	return RenderTable(headers, rows)
}
