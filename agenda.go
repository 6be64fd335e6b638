// Package agenda provides a high-level entry point for constructing a
// contact and event directory wired with the ambient stack (structured
// logging, validation switches) from configuration. Most applications:
//  1. Build a directory via NewFromEnv() or New(cfg)
//  2. Register contacts and create events through the returned Directory
//  3. Match failures with errors.Is against the directory sentinel errors
//
// The directory itself lives in the directory package; entities live in core.
package agenda

import (
	"github.com/hupe1980/agenda/config"
	"github.com/hupe1980/agenda/directory"
	"github.com/hupe1980/agenda/logging"
)

// New creates a Directory configured by cfg. A nil cfg yields a directory
// with a NoOp logger and lenient validation.
func New(cfg *config.Config) *directory.Directory {
	if cfg == nil {
		return directory.New()
	}

	logger := logging.NewLogger(cfg.LoggerConfig())

	return directory.New(func(o *directory.Options) {
		o.Logger = logger
		o.StrictValidation = cfg.StrictValidation
	})
}

// NewFromEnv loads the configuration from AGENDA_* environment variables and
// creates a Directory from it.
func NewFromEnv() (*directory.Directory, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return New(cfg), nil
}
