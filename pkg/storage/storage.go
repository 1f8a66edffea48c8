package storage

import (
	"time"
)

// Options represents storage configuration options
type Options struct {
	Path        string
	MaxGameAge  time.Duration
	AutoCleanup bool
}

// NewOptions creates a new Options with default values
func NewOptions() *Options {
	return &Options{
		Path:        "data/games.json",
		MaxGameAge:  24 * time.Hour,
		AutoCleanup: true,
	}
}
