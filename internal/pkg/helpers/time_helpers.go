package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// PositiveDuration parses value as a duration and returns fallback when value is
// empty, malformed or not positive. Config values reach it before the application
// logger is configured, hence the global logger.
func PositiveDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err == nil && d > 0 {
		return d
	}
	log.Warn().Err(err).Str("value", value).Dur("fallback", fallback).Msg("Invalid duration, using fallback")
	return fallback
}
