package mdcal

import (
	"context"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/bobg/mid"
	"github.com/pkg/errors"
)

// Caches the settings and returns them.
func (s *Server) getSettings(ctx context.Context) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.settings == nil {
		settings := DefaultSettings()
		if s.dsClient != nil {
			var err error
			settings, err = LoadSettings(ctx, s.dsClient)
			if err != nil {
				return Settings{}, errors.Wrap(err, "loading settings")
			}
		}
		s.settings = &settings
	}
	return *s.settings, nil
}

func (s *Server) setSettings(settings Settings) {
	s.mu.Lock()
	s.settings = &settings
	s.mu.Unlock()
}

// GET /month?date=yyyy-mm&placeholder=...
func (s *Server) handleMonth(w http.ResponseWriter, req *http.Request) error {
	settings, err := s.getSettings(req.Context())
	if err != nil {
		return err
	}

	token := req.FormValue("date")
	if token == "" {
		token = DefaultMonthToken(s.today())
	}

	table, err := settings.Names().MonthTable(token, req.FormValue("placeholder"))
	if err != nil {
		return badRequest(err)
	}
	return writeMarkdown(w, table)
}

// GET /week?date=yyyy-mm-dd
func (s *Server) handleWeek(w http.ResponseWriter, req *http.Request) error {
	settings, err := s.getSettings(req.Context())
	if err != nil {
		return err
	}

	token := req.FormValue("date")
	if token == "" {
		token = DefaultDayToken(s.today())
	}

	table, err := settings.Names().WeekTable(token)
	if err != nil {
		return badRequest(err)
	}
	return writeMarkdown(w, table)
}

// GET /today?view=month|week
func (s *Server) handleToday(w http.ResponseWriter, req *http.Request) error {
	settings, err := s.getSettings(req.Context())
	if err != nil {
		return err
	}

	view := settings.DefaultView
	if v := req.FormValue("view"); v != "" {
		view, err = ParseView(v)
		if err != nil {
			return badRequest(err)
		}
	}

	table, err := settings.Names().CurrentTable(view, s.today())
	if err != nil {
		return badRequest(err)
	}
	return writeMarkdown(w, table)
}

// POST /t/setting
func (s *Server) handleSetting(w http.ResponseWriter, req *http.Request) error {
	if !strings.EqualFold(req.Method, "POST") {
		return mid.CodeErr{C: http.StatusMethodNotAllowed}
	}
	if err := s.checkAdmin(req); err != nil {
		return err
	}

	var (
		ctx   = req.Context()
		name  = req.FormValue("name")
		value = req.FormValue("value")
	)

	settings, err := s.getSettings(ctx)
	if err != nil {
		return err
	}
	settings, err = settings.Apply(name, value)
	if err != nil {
		return badRequest(err)
	}

	if s.dsClient != nil {
		err = SaveSetting(ctx, s.dsClient, name, value)
		if err != nil {
			return err
		}
	}
	s.setSettings(settings)

	log.Printf("setting %s changed to %q", name, value)

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func badRequest(err error) error {
	if errors.Is(err, ErrInvalidFormat) || errors.Is(err, ErrUnknownView) || errors.Is(err, errUnknownSetting) {
		return mid.CodeErr{C: http.StatusBadRequest, Err: err}
	}
	return err
}

func writeMarkdown(w http.ResponseWriter, table string) error {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, err := io.WriteString(w, table)
	return errors.Wrap(err, "writing table")
}
