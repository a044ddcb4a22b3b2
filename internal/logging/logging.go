package logging

import (
	"strings"

	"github.com/gofiber/fiber/v2/log"
)

// Setup sets the level of the application logger.
// The level parameter accepts: "debug", "info", "warn", "error" (case-insensitive).
// Defaults to info if the level string is unrecognized.
func Setup(level string) log.Level {
	lvl := ParseLevel(level)
	log.SetLevel(lvl)
	return lvl
}

func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}
