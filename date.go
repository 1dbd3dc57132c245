package mdcal

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Date is a naive calendar day: no time of day, no zone.
type Date struct {
	Y int
	M time.Month
	D int
}

var (
	monthTokenRegex = regexp.MustCompile(`^(\d{4})-(\d{2})$`)
	dayTokenRegex   = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
)

// ErrInvalidFormat is the only error the parsers produce.
var ErrInvalidFormat = errors.New("invalid date format, please use YYYY-MM or YYYY-MM-DD")

// ParseDate parses dates of the form "yyyy-mm" (resolving to the first of the month)
// or "yyyy-mm-dd."
func ParseDate(s string) (Date, error) {
	if d, err := ParseMonthToken(s); err == nil {
		return d, nil
	}
	return ParseDayToken(s)
}

// ParseMonthToken parses only "yyyy-mm," returning the first day of that month.
func ParseMonthToken(s string) (Date, error) {
	m := monthTokenRegex.FindStringSubmatch(s)
	if len(m) != 3 {
		return Date{}, ErrInvalidFormat
	}
	return makeDate(m[1], m[2], "01")
}

// ParseDayToken parses only "yyyy-mm-dd."
func ParseDayToken(s string) (Date, error) {
	m := dayTokenRegex.FindStringSubmatch(s)
	if len(m) != 4 {
		return Date{}, ErrInvalidFormat
	}
	return makeDate(m[1], m[2], m[3])
}

func makeDate(ys, ms, ds string) (Date, error) {
	y, err := strconv.Atoi(ys)
	if err != nil {
		return Date{}, ErrInvalidFormat
	}
	mon, err := strconv.Atoi(ms)
	if err != nil {
		return Date{}, ErrInvalidFormat
	}
	d, err := strconv.Atoi(ds)
	if err != nil {
		return Date{}, ErrInvalidFormat
	}
	if y <= 0 {
		return Date{}, ErrInvalidFormat
	}
	if mon < 1 || mon > 12 {
		return Date{}, ErrInvalidFormat
	}
	if d < 1 || d > DaysInMonth(y, time.Month(mon)) {
		return Date{}, ErrInvalidFormat
	}
	return Date{Y: y, M: time.Month(mon), D: d}, nil
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Y: y, M: m, D: d}
}

// String renders d as "yyyy-mm-dd."
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Y, int(d.M), d.D)
}

// MonthToken renders d as "yyyy-mm."
func (d Date) MonthToken() string {
	return fmt.Sprintf("%04d-%02d", d.Y, int(d.M))
}

// Weekday is computed on a UTC midnight, which has no DST gaps.
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Y, d.M, d.D, 0, 0, 0, 0, time.UTC).Weekday()
}

// DaysInMonth gives the last day number of month m in year y.
func DaysInMonth(y int, m time.Month) int {
	switch m {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	}
	if isLeapYear(y) {
		return 29
	}
	return 28
}

func isLeapYear(y int) bool {
	if y%400 == 0 {
		return true
	}
	if y%100 == 0 {
		return false
	}
	return y%4 == 0
}

// Next is the following calendar day.
func (d Date) Next() Date {
	if d.D == DaysInMonth(d.Y, d.M) {
		d.D = 1
		if d.M == 12 {
			d.M = 1
			d.Y++
		} else {
			d.M++
		}
	} else {
		d.D++
	}
	return d
}

// Prev is the preceding calendar day.
func (d Date) Prev() Date {
	if d.D == 1 {
		if d.M == 1 {
			d.M = 12
			d.Y--
		} else {
			d.M--
		}
		d.D = DaysInMonth(d.Y, d.M)
	} else {
		d.D--
	}
	return d
}

// AddDays steps n days forward, or backward when n is negative.
func (d Date) AddDays(n int) Date {
	for ; n > 0; n-- {
		d = d.Next()
	}
	for ; n < 0; n++ {
		d = d.Prev()
	}
	return d
}
