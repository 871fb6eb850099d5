package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// FormatDuration converts whole minutes into a label like "12min" or
// "1h 5min". Negative values keep their sign so edited records with an
// end before the start stay visible as anomalies.
func FormatDuration(min int) string {
	sign := ""
	if min < 0 {
		sign = "-"
		min = -min
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%s%dh %dmin", sign, h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%s%dh", sign, h)
	}
	return fmt.Sprintf("%s%dmin", sign, m)
}

// Elapsed renders the time since start as a ticking MM:SS counter.
func Elapsed(start, now time.Time) string {
	secs := int(now.Sub(start).Seconds())
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// DayDate renders the day and month, e.g. 02/06.
func DayDate(t time.Time) string {
	return t.Format("02/01")
}

// ClockStamp renders the wall-clock time of a timestamp, e.g. 09:41.
func ClockStamp(t time.Time) string {
	return t.Format("15:04")
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// YesNo renders a colored boolean flag; yes is the alarming case here.
func YesNo(v bool) string {
	if v {
		return StyleRed.Render("Yes")
	}
	return StyleDim.Render("No")
}
