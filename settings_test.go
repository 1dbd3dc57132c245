package mdcal

import (
	"errors"
	"testing"
)

func TestSettingsApply(t *testing.T) {
	s := DefaultSettings()
	if err := s.Validate(); err != nil {
		t.Fatal(err)
	}

	s2, err := s.Apply(SettingDefaultView, "week")
	if err != nil {
		t.Fatal(err)
	}
	if s2.DefaultView != ViewWeek {
		t.Errorf("default view %q, want week", s2.DefaultView)
	}
	if s.DefaultView != ViewMonth {
		t.Error("Apply modified its receiver")
	}

	s3, err := s2.Apply(SettingLocale, "de_DE")
	if err != nil {
		t.Fatal(err)
	}
	if s3.Locale != "de_DE" || s3.DefaultView != ViewWeek {
		t.Errorf("got %+v", s3)
	}

	if _, err := s.Apply(SettingDefaultView, "fortnight"); !errors.Is(err, ErrUnknownView) {
		t.Errorf("got %v, want ErrUnknownView", err)
	}
	if _, err := s.Apply("date-format", "YYYY-MM-DD"); !errors.Is(err, errUnknownSetting) {
		t.Errorf("got %v, want errUnknownSetting", err)
	}
}

func TestSettingsValidate(t *testing.T) {
	s := Settings{DefaultView: "agenda"}
	if err := s.Validate(); !errors.Is(err, ErrUnknownView) {
		t.Errorf("got %v, want ErrUnknownView", err)
	}
}
