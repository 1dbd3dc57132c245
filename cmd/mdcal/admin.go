package main

import (
	"context"
	"flag"
	"fmt"

	"cloud.google.com/go/datastore"
	"github.com/bobg/aesite"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"github.com/bobg/mdcal"
)

var adminCommands = map[string]func(context.Context, *flag.FlagSet, []string) error{
	"get":  cliAdminGet,
	"set":  cliAdminSet,
	"show": cliAdminShow,
}

func cliAdmin(ctx context.Context, flagset *flag.FlagSet, args []string) error {
	err := flagset.Parse(args)
	if err != nil {
		return err
	}

	if flagset.NArg() == 0 {
		return errors.New("usage: mdcal admin <subcommand> [args]")
	}

	cmd := flagset.Arg(0)
	fn, ok := adminCommands[cmd]
	if !ok {
		return fmt.Errorf("unknown admin subcommand %s", cmd)
	}

	args = flagset.Args()
	return fn(ctx, flag.NewFlagSet("", flag.ContinueOnError), args[1:])
}

type adminFlags struct {
	creds, projectID *string
	test             *bool
}

func newAdminFlags(flagset *flag.FlagSet) adminFlags {
	return adminFlags{
		creds:     flagset.String("creds", "", "credentials file"),
		projectID: flagset.String("project", "mdcal", "project ID"),
		test:      flagset.Bool("test", false, "run in test mode"),
	}
}

func (f adminFlags) client(ctx context.Context) (*datastore.Client, error) {
	if *f.test {
		if *f.creds != "" {
			return nil, fmt.Errorf("cannot supply both -test and -creds")
		}

		err := aesite.DSTest(ctx, *f.projectID)
		if err != nil {
			return nil, err
		}
	}

	var options []option.ClientOption
	if *f.creds != "" {
		options = append(options, option.WithCredentialsFile(*f.creds))
	}
	dsClient, err := datastore.NewClient(ctx, *f.projectID, options...)
	return dsClient, errors.Wrap(err, "creating datastore client")
}

func cliAdminGet(ctx context.Context, flagset *flag.FlagSet, args []string) error {
	f := newAdminFlags(flagset)

	err := flagset.Parse(args)
	if err != nil {
		return err
	}

	if flagset.NArg() != 1 {
		return errors.New("usage: mdcal admin get VAR")
	}

	dsClient, err := f.client(ctx)
	if err != nil {
		return err
	}

	val, err := aesite.GetSetting(ctx, dsClient, flagset.Arg(0))
	if err != nil {
		return err
	}

	fmt.Println(string(val))
	return nil
}

func cliAdminSet(ctx context.Context, flagset *flag.FlagSet, args []string) error {
	f := newAdminFlags(flagset)

	err := flagset.Parse(args)
	if err != nil {
		return err
	}

	if flagset.NArg() != 2 {
		return errors.New("usage: mdcal admin set VAR VALUE")
	}

	dsClient, err := f.client(ctx)
	if err != nil {
		return err
	}

	// The master key is not a calendar setting and skips validation.
	if flagset.Arg(0) == "master-key" {
		return aesite.SetSetting(ctx, dsClient, "master-key", []byte(flagset.Arg(1)))
	}
	return mdcal.SaveSetting(ctx, dsClient, flagset.Arg(0), flagset.Arg(1))
}

func cliAdminShow(ctx context.Context, flagset *flag.FlagSet, args []string) error {
	f := newAdminFlags(flagset)

	err := flagset.Parse(args)
	if err != nil {
		return err
	}

	dsClient, err := f.client(ctx)
	if err != nil {
		return err
	}

	settings, err := mdcal.LoadSettings(ctx, dsClient)
	if err != nil {
		return err
	}

	fmt.Printf("%s\t%s\n", mdcal.SettingDefaultView, settings.DefaultView)
	fmt.Printf("%s\t%s\n", mdcal.SettingLocale, settings.Locale)
	return nil
}
