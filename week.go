package mdcal

import "strings"

// FormatWeek renders the week containing anchor with the English names.
func FormatWeek(anchor Date) string {
	return English.FormatWeek(anchor)
}

// WeekTable parses a "yyyy-mm-dd" token and renders its week with the English names.
func WeekTable(token string) (string, error) {
	return English.WeekTable(token)
}

// WeekTable parses a "yyyy-mm-dd" token and renders its week.
func (n Names) WeekTable(token string) (string, error) {
	d, err := ParseDayToken(token)
	if err != nil {
		return "", err
	}
	return n.FormatWeek(d), nil
}

// WeekStart is the Sunday on or before d.
func WeekStart(d Date) Date {
	return d.AddDays(-int(d.Weekday()))
}

// FormatWeek renders the Sunday-to-Saturday week containing anchor as a 7-row table.
// Unlike FormatMonth, every row ends in a newline.
func (n Names) FormatWeek(anchor Date) string {
	var (
		start = WeekStart(anchor)
		end   = start.AddDays(6)
		b     strings.Builder
	)

	b.WriteString("## Week of " + n.shortDay(start) + " - " + n.shortDay(end) + ", " + itoa(end.Y) + "\n\n")
	b.WriteString("| Day | Date | Notes |\n")
	b.WriteString("|-----|------|-------|\n")

	for i, d := 0, start; i < 7; i, d = i+1, d.Next() {
		b.WriteString("| " + n.Weekdays[d.Weekday()] + " | " + n.shortDay(d) + " | |\n")
	}

	return b.String()
}
