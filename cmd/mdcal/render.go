package main

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/bobg/mdcal"
)

var stdout io.Writer = os.Stdout

// Overridden in tests.
var now = time.Now

func cliMonth(_ context.Context, placeholder, locale string, args []string) error {
	token, err := optionalToken(args, mdcal.DefaultMonthToken)
	if err != nil {
		return err
	}
	table, err := mdcal.NamesFor(locale).MonthTable(token, placeholder)
	if err != nil {
		return err
	}
	return emit(table)
}

func cliWeek(_ context.Context, locale string, args []string) error {
	token, err := optionalToken(args, mdcal.DefaultDayToken)
	if err != nil {
		return err
	}
	table, err := mdcal.NamesFor(locale).WeekTable(token)
	if err != nil {
		return err
	}
	return emit(table)
}

func cliToday(_ context.Context, view, locale string, _ []string) error {
	v, err := mdcal.ParseView(view)
	if err != nil {
		return err
	}
	table, err := mdcal.NamesFor(locale).CurrentTable(v, mdcal.DateOf(now()))
	if err != nil {
		return err
	}
	return emit(table)
}

// Month tables carry no final newline; the terminal gets one anyway.
func emit(table string) error {
	if !strings.HasSuffix(table, "\n") {
		table += "\n"
	}
	_, err := io.WriteString(stdout, table)
	return err
}

func optionalToken(args []string, dflt func(mdcal.Date) string) (string, error) {
	switch len(args) {
	case 0:
		return dflt(mdcal.DateOf(now())), nil
	case 1:
		return args[0], nil
	}
	return "", errors.New("too many arguments")
}
