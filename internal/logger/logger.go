package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	gormlogger "gorm.io/gorm/logger"
)

// Init configures the global zerolog logger. LOG_LEVEL selects the level
// (default info) and LOG_FORMAT=json switches off the console writer.
func Init() {
	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

// GormLogger routes GORM's own messages through the global zerolog logger.
func GormLogger() gormlogger.Interface {
	l := log.Logger.With().Str("component", "gorm").Logger()
	return gormlogger.New(&l, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
