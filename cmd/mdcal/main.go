package main

import (
	"context"
	"log"
	"os"

	"github.com/bobg/subcmd/v2"
)

func main() {
	err := subcmd.Run(context.Background(), maincmd{}, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

type maincmd struct{}

func (maincmd) Subcmds() subcmd.Map {
	return subcmd.Commands(
		"month", cliMonth, "print a month table", subcmd.Params(
			"-placeholder", subcmd.String, "", "text appended to each day number",
			"-locale", subcmd.String, "", "locale for month and weekday names, e.g. fr_FR",
		),
		"week", cliWeek, "print a week table", subcmd.Params(
			"-locale", subcmd.String, "", "locale for month and weekday names, e.g. fr_FR",
		),
		"today", cliToday, "print the table for the current date", subcmd.Params(
			"-view", subcmd.String, "month", "month or week",
			"-locale", subcmd.String, "", "locale for month and weekday names, e.g. fr_FR",
		),
		"admin", cliAdmin, "perform admin tasks", nil,
		"serve", cliServe, "run a server", subcmd.Params(
			"-creds", subcmd.String, "", "credentials file",
			"-project", subcmd.String, "", "project ID (empty for no stored settings)",
			"-test", subcmd.Bool, false, "run in test mode",
		),
	)
}
