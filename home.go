package mdcal

import (
	"html/template"
	"net/http"

	"github.com/bobg/mid"
	"github.com/pkg/errors"
)

type homedata struct {
	Month       string
	Day         string
	Placeholder string
	Table       string
	Err         string
}

// GET /
// With view=month or view=week the page also shows the requested table, or the parse error.
func (s *Server) handleHome(w http.ResponseWriter, req *http.Request) error {
	if req.URL.Path != "/" {
		return mid.CodeErr{C: http.StatusNotFound}
	}

	settings, err := s.getSettings(req.Context())
	if err != nil {
		return err
	}

	today := s.today()
	data := homedata{
		Month:       DefaultMonthToken(today),
		Day:         DefaultDayToken(today),
		Placeholder: req.FormValue("placeholder"),
	}

	var (
		names = settings.Names()
		table string
	)
	switch req.FormValue("view") {
	case "":
		// just the forms
	case string(ViewMonth):
		if m := req.FormValue("date"); m != "" {
			data.Month = m
		}
		table, err = names.MonthTable(data.Month, data.Placeholder)
	case string(ViewWeek):
		if d := req.FormValue("date"); d != "" {
			data.Day = d
		}
		table, err = names.WeekTable(data.Day)
	default:
		err = ErrUnknownView
	}
	if err != nil {
		data.Err = err.Error()
	}
	data.Table = table

	tmpl, err := template.New("").Parse(home)
	if err != nil {
		return errors.Wrap(err, "parsing template")
	}

	err = tmpl.Execute(w, data)
	return errors.Wrap(err, "rendering template")
}

const home = `
<html>
  <head>
    <title>Mdcal</title>
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
  </head>
  <body>
    <h1>Mdcal - markdown calendar tables</h1>
    <form method="GET" action="/">
      <h2>Insert Month Calendar</h2>
      <input type="hidden" name="view" value="month">
      <p>
        Month (YYYY-MM):
        <input type="text" name="date" value="{{ .Month }}" placeholder="YYYY-MM (e.g., 2025-11)">
      </p>
      <p>
        Day placeholder:
        <input type="text" name="placeholder" value="{{ .Placeholder }}" placeholder="e.g., &quot; 📝&quot; or &quot; []&quot;">
      </p>
      <button type="submit">Insert Month Calendar</button>
    </form>
    <form method="GET" action="/">
      <h2>Insert Week Calendar</h2>
      <input type="hidden" name="view" value="week">
      <p>
        Date (YYYY-MM-DD):
        <input type="text" name="date" value="{{ .Day }}" placeholder="YYYY-MM-DD (e.g., 2025-11-03)">
      </p>
      <button type="submit">Insert Week Calendar</button>
    </form>
    {{ if .Err }}
      <p>Error: {{ .Err }}</p>
    {{ end }}
    {{ if .Table }}
      <pre>{{ .Table }}</pre>
    {{ end }}
  </body>
</html>
`
