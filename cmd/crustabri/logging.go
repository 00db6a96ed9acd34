package main

import (
	stdio "io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// applyLoggingLevel maps the --logging-level flag onto logrus, adding
// the "off" level the CLI exposes but logrus itself doesn't have.
func applyLoggingLevel(level string) error {
	if level == "off" {
		log.SetOutput(stdio.Discard)
		return nil
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "parsing --logging-level %q", level)
	}
	log.SetLevel(lvl)
	return nil
}
