package mdcal

import (
	"strings"

	"github.com/pkg/errors"
)

// View selects which table the current-date rendering produces.
type View string

const (
	ViewMonth View = "month"
	ViewWeek  View = "week"
)

var ErrUnknownView = errors.New("unknown view, please use month or week")

func ParseView(s string) (View, error) {
	switch View(strings.ToLower(strings.TrimSpace(s))) {
	case ViewMonth:
		return ViewMonth, nil
	case ViewWeek:
		return ViewWeek, nil
	}
	return "", errors.Wrapf(ErrUnknownView, "parsing %q", s)
}

// CurrentTable renders the month (with no placeholder) or week containing today.
// Callers supply today, normally DateOf(time.Now()).
func (n Names) CurrentTable(v View, today Date) (string, error) {
	switch v {
	case ViewMonth:
		return n.FormatMonth(MonthSpec{Year: today.Y, Month: today.M}), nil
	case ViewWeek:
		return n.FormatWeek(today), nil
	}
	return "", errors.Wrapf(ErrUnknownView, "rendering %q", v)
}

// CurrentTable is Names.CurrentTable with the English names.
func CurrentTable(v View, today Date) (string, error) {
	return English.CurrentTable(v, today)
}

// DefaultMonthToken is the prefilled "yyyy-mm" input for today.
func DefaultMonthToken(today Date) string {
	return today.MonthToken()
}

// DefaultDayToken is the prefilled "yyyy-mm-dd" input for today.
func DefaultDayToken(today Date) string {
	return today.String()
}
