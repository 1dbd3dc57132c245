package mdcal

import (
	"context"
	stderrs "errors"

	"cloud.google.com/go/datastore"
	"github.com/bobg/aesite"
	"github.com/pkg/errors"
)

// Setting names as stored with aesite.SetSetting.
const (
	SettingDefaultView = "default-view"
	SettingLocale      = "locale"
)

// Settings control the current-date table and the names used in rendering.
type Settings struct {
	DefaultView View
	Locale      string
}

func DefaultSettings() Settings {
	return Settings{
		DefaultView: ViewMonth,
		Locale:      DefaultLocale,
	}
}

func (s Settings) Validate() error {
	if _, err := ParseView(string(s.DefaultView)); err != nil {
		return err
	}
	return nil
}

func (s Settings) Names() Names {
	return NamesFor(s.Locale)
}

var errUnknownSetting = errors.New("unknown setting")

// Apply returns a copy of s with the named setting changed.
func (s Settings) Apply(name, value string) (Settings, error) {
	switch name {
	case SettingDefaultView:
		v, err := ParseView(value)
		if err != nil {
			return s, err
		}
		s.DefaultView = v
	case SettingLocale:
		s.Locale = value
	default:
		return s, errors.Wrap(errUnknownSetting, name)
	}
	return s, nil
}

// LoadSettings reads settings from datastore.
// A setting that has never been stored keeps its default.
func LoadSettings(ctx context.Context, dsClient *datastore.Client) (Settings, error) {
	s := DefaultSettings()
	for _, name := range []string{SettingDefaultView, SettingLocale} {
		val, err := aesite.GetSetting(ctx, dsClient, name)
		if stderrs.Is(err, datastore.ErrNoSuchEntity) {
			continue
		}
		if err != nil {
			return Settings{}, errors.Wrapf(err, "getting setting %s", name)
		}
		s, err = s.Apply(name, string(val))
		if err != nil {
			return Settings{}, errors.Wrapf(err, "stored setting %s", name)
		}
	}
	return s, nil
}

// SaveSetting validates and stores a single setting.
func SaveSetting(ctx context.Context, dsClient *datastore.Client, name, value string) error {
	if _, err := DefaultSettings().Apply(name, value); err != nil {
		return err
	}
	err := aesite.SetSetting(ctx, dsClient, name, []byte(value))
	return errors.Wrapf(err, "storing setting %s", name)
}
