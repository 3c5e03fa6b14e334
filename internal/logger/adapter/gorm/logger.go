// Package gorm routes the gorm query log through zerolog.
package gorm

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DefaultSlowQuery is used when no slow query threshold is configured.
const DefaultSlowQuery = 200 * time.Millisecond

// Logger implements gorm's logger.Interface on top of a zerolog.Logger.
// Record-not-found errors are never logged.
type Logger struct {
	log       zerolog.Logger
	level     gormlogger.LogLevel
	slowQuery time.Duration
}

var _ gormlogger.Interface = (*Logger)(nil)

// New returns a Logger writing to l. The gorm log level follows the level of l:
// every statement is logged on debug and trace, otherwise only failed and slow
// queries are.
func New(l zerolog.Logger, slowQuery time.Duration) *Logger {
	if slowQuery <= 0 {
		slowQuery = DefaultSlowQuery
	}

	return &Logger{
		log:       l.With().Str("component", "gorm").Logger(),
		level:     Level(effectiveLevel(l)),
		slowQuery: slowQuery,
	}
}

// Level maps a zerolog level to the gorm log level.
func Level(level zerolog.Level) gormlogger.LogLevel {
	switch {
	case level == zerolog.Disabled:
		return gormlogger.Silent
	case level <= zerolog.DebugLevel:
		return gormlogger.Info
	case level == zerolog.ErrorLevel, level == zerolog.FatalLevel, level == zerolog.PanicLevel:
		return gormlogger.Error
	default:
		return gormlogger.Warn
	}
}

func effectiveLevel(l zerolog.Logger) zerolog.Level {
	if g := zerolog.GlobalLevel(); g > l.GetLevel() {
		return g
	}

	return l.GetLevel()
}

// LogMode returns a copy of the logger using level.
func (l *Logger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	n := *l
	n.level = level

	return &n
}

// Info logs a gorm info message.
func (l *Logger) Info(_ context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Info {
		l.log.Info().Msgf(msg, data...)
	}
}

// Warn logs a gorm warning.
func (l *Logger) Warn(_ context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Warn {
		l.log.Warn().Msgf(msg, data...)
	}
}

// Error logs a gorm error message.
func (l *Logger) Error(_ context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Error {
		l.log.Error().Msgf(msg, data...)
	}
}

// Trace logs one executed statement.
func (l *Logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		sql, rows := fc()
		l.log.Error().Err(err).Str("sql", sql).Int64("rows", rows).Dur("elapsed", elapsed).Msg("query failed")
	case elapsed > l.slowQuery && l.level >= gormlogger.Warn:
		sql, rows := fc()
		l.log.Warn().Str("sql", sql).Int64("rows", rows).Dur("elapsed", elapsed).
			Dur("threshold", l.slowQuery).Msg("slow query")
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		l.log.Debug().Str("sql", sql).Int64("rows", rows).Dur("elapsed", elapsed).Msg("query")
	}
}
