package mdcal

import (
	"strings"
	"testing"
	"time"
)

func TestNamesForDefault(t *testing.T) {
	for _, locale := range []string{"", DefaultLocale} {
		if got := NamesFor(locale); got != English {
			t.Errorf("NamesFor(%q) = %+v, want English", locale, got)
		}
	}
}

func TestNamesForLocale(t *testing.T) {
	n := NamesFor("fr_FR")
	for i, name := range n.Months {
		if name == "" || n.ShortMonths[i] == "" {
			t.Errorf("empty name for month %d", i+1)
		}
	}
	for i, name := range n.Weekdays {
		if name == "" {
			t.Errorf("empty name for weekday %d", i)
		}
	}
	if n.Months[10] == English.Months[10] {
		t.Errorf("fr_FR November is %q", n.Months[10])
	}
}

func TestLocalizedMonth(t *testing.T) {
	n := Names{
		Months:      [12]string{"M1", "M2", "M3", "M4", "M5", "M6", "M7", "M8", "M9", "M10", "M11", "M12"},
		ShortMonths: [12]string{"m1", "m2", "m3", "m4", "m5", "m6", "m7", "m8", "m9", "m10", "m11", "m12"},
		Weekdays:    [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
	}

	month := n.FormatMonth(MonthSpec{Year: 2025, Month: time.November})
	wantHead := "## M11 2025\n\n| Su | Mo | Tu | We | Th | Fr | Sa |\n|----|----|----|----|----|----|----|\n"
	if !strings.HasPrefix(month, wantHead) {
		t.Errorf("month table starts:\n%s\nwant:\n%s", month, wantHead)
	}

	week := n.FormatWeek(Date{Y: 2025, M: time.November, D: 3})
	if !strings.HasPrefix(week, "## Week of m11 2 - m11 8, 2025\n") {
		t.Errorf("week header: %q", strings.SplitN(week, "\n", 2)[0])
	}
	if !strings.Contains(week, "| Mo | m11 3 | |\n") {
		t.Errorf("week table missing Monday row:\n%s", week)
	}
}
