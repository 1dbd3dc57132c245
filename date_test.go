package mdcal

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		inp     string
		want    Date
		wantErr bool
	}{
		{inp: "2025-11", want: Date{Y: 2025, M: time.November, D: 1}},
		{inp: "2025-11-03", want: Date{Y: 2025, M: time.November, D: 3}},
		{inp: "2024-02-29", want: Date{Y: 2024, M: time.February, D: 29}},
		{inp: "2000-02-29", want: Date{Y: 2000, M: time.February, D: 29}},
		{inp: "0001-01-01", want: Date{Y: 1, M: time.January, D: 1}},
		{inp: "2025-13", wantErr: true},
		{inp: "25-11-03", wantErr: true},
		{inp: "2025-00", wantErr: true},
		{inp: "2025-11-00", wantErr: true},
		{inp: "2025-11-31", wantErr: true},
		{inp: "2025-02-29", wantErr: true},
		{inp: "1900-02-29", wantErr: true},
		{inp: "0000-01", wantErr: true},
		{inp: "2025-1", wantErr: true},
		{inp: "2025-11-3", wantErr: true},
		{inp: "2025/11", wantErr: true},
		{inp: "2025-11/03", wantErr: true},
		{inp: " 2025-11", wantErr: true},
		{inp: "2025-11\n", wantErr: true},
		{inp: "2025-11-03T00:00", wantErr: true},
		{inp: "abcd-ef", wantErr: true},
		{inp: "", wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.inp, func(t *testing.T) {
			got, err := ParseDate(c.inp)
			if c.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("got %v, %v; want ErrInvalidFormat", got, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != c.want {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestParseTokenShapes(t *testing.T) {
	if _, err := ParseMonthToken("2025-11-03"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("ParseMonthToken accepted a day token (err %v)", err)
	}
	if _, err := ParseDayToken("2025-11"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("ParseDayToken accepted a month token (err %v)", err)
	}
}

func TestErrInvalidFormatMessage(t *testing.T) {
	msg := ErrInvalidFormat.Error()
	for _, want := range []string{"YYYY-MM", "YYYY-MM-DD"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q does not mention %s", msg, want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		y    int
		m    time.Month
		want int
	}{
		{2025, time.January, 31},
		{2025, time.February, 28},
		{2024, time.February, 29},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2025, time.April, 30},
		{2025, time.November, 30},
		{2025, time.December, 31},
	}
	for _, c := range cases {
		if got := DaysInMonth(c.y, c.m); got != c.want {
			t.Errorf("DaysInMonth(%d, %s) = %d, want %d", c.y, c.m, got, c.want)
		}
	}

	// Agrees with time's own normalization.
	for y := 1899; y <= 2101; y++ {
		for m := time.January; m <= time.December; m++ {
			want := time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
			if got := DaysInMonth(y, m); got != want {
				t.Fatalf("DaysInMonth(%d, %s) = %d, want %d", y, m, got, want)
			}
		}
	}
}

func TestAddDays(t *testing.T) {
	start := time.Date(2023, time.December, 15, 0, 0, 0, 0, time.UTC)
	d := DateOf(start)
	for i := -800; i <= 800; i += 7 {
		want := DateOf(start.AddDate(0, 0, i))
		got := d.AddDays(i)
		if got != want {
			t.Fatalf("AddDays(%d) = %v, want %v", i, got, want)
		}
		if got.Weekday() != start.AddDate(0, 0, i).Weekday() {
			t.Fatalf("weekday of %v = %s", got, got.Weekday())
		}
	}
}

func TestDateTokens(t *testing.T) {
	d := Date{Y: 2025, M: time.March, D: 7}
	if got := d.String(); got != "2025-03-07" {
		t.Errorf("String() = %s", got)
	}
	if got := d.MonthToken(); got != "2025-03" {
		t.Errorf("MonthToken() = %s", got)
	}
	if got := DateOf(time.Date(2025, time.March, 7, 23, 59, 0, 0, time.Local)); got != d {
		t.Errorf("DateOf = %v", got)
	}
}
