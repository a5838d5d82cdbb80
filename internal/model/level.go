package model

import (
	"strings"

	"github.com/rs/zerolog"
)

// Level names used by message producers.
const (
	LevelTrace = "TRACE"
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
	LevelFatal = "FATAL"
	LevelPanic = "PANIC"
)

var levelToZerolog = map[string]zerolog.Level{
	LevelTrace: zerolog.TraceLevel,
	LevelDebug: zerolog.DebugLevel,
	LevelInfo:  zerolog.InfoLevel,
	LevelWarn:  zerolog.WarnLevel,
	LevelError: zerolog.ErrorLevel,
	LevelFatal: zerolog.FatalLevel,
	LevelPanic: zerolog.PanicLevel,
}

// NormalizeLevel upper-cases a level and folds common aliases.
func NormalizeLevel(level string) string {
	l := strings.ToUpper(strings.TrimSpace(level))
	switch l {
	case "WARNING":
		return LevelWarn
	case "ERR":
		return LevelError
	case "CRITICAL", "CRIT":
		return LevelFatal
	}
	return l
}

// ZerologLevel maps a message level to the zerolog level of the same name.
// ok is false for levels outside the TRACE..PANIC vocabulary.
func ZerologLevel(level string) (lvl zerolog.Level, ok bool) {
	lvl, ok = levelToZerolog[NormalizeLevel(level)]
	if !ok {
		return zerolog.NoLevel, false
	}
	return lvl, true
}
