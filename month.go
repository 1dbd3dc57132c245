package mdcal

import (
	"strconv"
	"strings"
	"time"
)

// MonthSpec selects a month and the text appended verbatim after each day number.
type MonthSpec struct {
	Year        int
	Month       time.Month
	Placeholder string
}

// FormatMonth renders spec with the English names.
func FormatMonth(spec MonthSpec) string {
	return English.FormatMonth(spec)
}

// MonthTable parses a "yyyy-mm" token and renders that month with the English names.
func MonthTable(token, placeholder string) (string, error) {
	return English.MonthTable(token, placeholder)
}

// MonthTable parses a "yyyy-mm" token and renders that month.
func (n Names) MonthTable(token, placeholder string) (string, error) {
	d, err := ParseMonthToken(token)
	if err != nil {
		return "", err
	}
	return n.FormatMonth(MonthSpec{Year: d.Y, Month: d.M, Placeholder: placeholder}), nil
}

// FormatMonth renders a Sunday-first month grid.
// The last row is not newline-terminated.
func (n Names) FormatMonth(spec MonthSpec) string {
	var (
		first       = Date{Y: spec.Year, M: spec.Month, D: 1}
		firstDay    = int(first.Weekday())
		daysInMonth = DaysInMonth(spec.Year, spec.Month)
		b           strings.Builder
	)

	b.WriteString("## ")
	b.WriteString(n.month(spec.Month))
	b.WriteString(" ")
	b.WriteString(itoa(spec.Year))
	b.WriteString("\n\n")

	b.WriteString("|")
	for _, name := range n.Weekdays {
		b.WriteString(" " + name + " |")
	}
	b.WriteString("\n|")
	for _, name := range n.Weekdays {
		b.WriteString(strings.Repeat("-", len(name)+2) + "|")
	}
	b.WriteString("\n")

	b.WriteString("|")
	for i := 0; i < firstDay; i++ {
		b.WriteString(" |")
	}

	wd := firstDay
	for day := 1; day <= daysInMonth; day++ {
		if wd == 0 && day != 1 {
			b.WriteString("\n|")
		}
		b.WriteString(" " + itoa(day) + spec.Placeholder + " |")
		wd = (wd + 1) % 7
	}
	if wd != 0 {
		for ; wd < 7; wd++ {
			b.WriteString(" |")
		}
	}

	return b.String()
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
