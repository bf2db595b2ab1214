package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

func newLogger(g *Globals) *log.Logger {
	level := log.InfoLevel
	if g.Verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
}

// resolveSeed returns seed, or a time-based seed when it is zero
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}
