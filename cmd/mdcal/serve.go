package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"cloud.google.com/go/datastore"
	"github.com/bobg/aesite"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"github.com/bobg/mdcal"
)

func cliServe(ctx context.Context, creds, projectID string, test bool, _ []string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		sig := <-sigCh
		log.Printf("got signal %s", sig)
		cancel()
	}()

	var dsClient *datastore.Client
	if projectID != "" {
		if test {
			if creds != "" {
				return fmt.Errorf("cannot supply both -test and -creds")
			}

			err := aesite.DSTest(ctx, projectID)
			if err != nil {
				return errors.Wrap(err, "starting test datastore service")
			}
		}

		var options []option.ClientOption
		if creds != "" {
			options = append(options, option.WithCredentialsFile(creds))
		}
		var err error
		dsClient, err = datastore.NewClient(ctx, projectID, options...)
		if err != nil {
			return errors.Wrap(err, "creating datastore client")
		}
	} else {
		log.Print("no -project given, using default settings")
	}

	s := mdcal.NewServer(dsClient)
	err := s.Serve(ctx)

	return errors.Wrap(err, "running server")
}
