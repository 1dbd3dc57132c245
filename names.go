package mdcal

import (
	"time"

	"github.com/goodsign/monday"
)

// Names holds the name lookups the formatters need.
// Weekdays start with Sunday.
type Names struct {
	Months      [12]string
	ShortMonths [12]string
	Weekdays    [7]string
}

// English is the table used by the package-level formatting functions.
var English = Names{
	Months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	ShortMonths: [12]string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
	Weekdays: [7]string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	},
}

// DefaultLocale is the locale whose names match English.
const DefaultLocale = string(monday.LocaleEnUS)

// 2023-01-01 was a Sunday.
const namesRefYear = 2023

// NamesFor builds a table from monday's data for the given locale, e.g. "fr_FR".
// The empty string and DefaultLocale give English.
func NamesFor(locale string) Names {
	if locale == "" || locale == DefaultLocale {
		return English
	}

	var (
		n   Names
		loc = monday.Locale(locale)
	)
	for i := 0; i < 12; i++ {
		t := time.Date(namesRefYear, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC)
		n.Months[i] = monday.Format(t, "January", loc)
		n.ShortMonths[i] = monday.Format(t, "Jan", loc)
	}
	for i := 0; i < 7; i++ {
		t := time.Date(namesRefYear, time.January, 1+i, 0, 0, 0, 0, time.UTC)
		n.Weekdays[i] = monday.Format(t, "Monday", loc)
	}
	return n
}

func (n Names) month(m time.Month) string {
	return n.Months[m-1]
}

// shortDay renders e.g. "Nov 2".
func (n Names) shortDay(d Date) string {
	return n.ShortMonths[d.M-1] + " " + itoa(d.D)
}
