package config

import (
	"errors"
	"time"
)

const (
	DEBUG_LEVEL = iota - 1
	INFO_LEVEL
	WARN_LEVEL
	ERROR_LEVEL
)

// Configuration for the application logger. Level uses zap's numbering
// (debug=-1, info=0, warn=1, error=2).
type Configuration struct {
	Level      int
	TimeFormat string
}

func (cfg Configuration) Validate() error {
	if cfg.Level < DEBUG_LEVEL || cfg.Level > ERROR_LEVEL {
		return errors.New("log level must be between -1 (debug) and 2 (error)")
	}
	if cfg.TimeFormat == "" {
		return errors.New("log time format must not be empty")
	}
	if _, err := time.Parse(cfg.TimeFormat, time.Now().Format(cfg.TimeFormat)); err != nil {
		return errors.New("log time format is not a valid time layout")
	}
	return nil
}
