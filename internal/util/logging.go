// Package util provides common utilities including logging helpers,
// file system paths, and small numeric helpers.
package util

import (
	"log"
	"strings"
	"sync/atomic"
)

// LogLevel gates optional log output.
type LogLevel int32

const (
	LevelOff LogLevel = iota
	LevelInfo
	LevelDebug
)

var level atomic.Int32

func init() {
	level.Store(int32(LevelInfo))
}

// ParseLogLevel maps a config string onto a level, defaulting to info.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off":
		return LevelOff
	case "debug":
		return LevelDebug
	default:
		return LevelInfo
	}
}

// SetLogLevel changes the level at runtime.
func SetLogLevel(l LogLevel) {
	level.Store(int32(l))
}

// Logf logs at info level.
func Logf(format string, args ...any) {
	if LogLevel(level.Load()) >= LevelInfo {
		log.Printf(format, args...)
	}
}

// Debugf logs only at debug level.
func Debugf(format string, args ...any) {
	if LogLevel(level.Load()) >= LevelDebug {
		log.Printf("debug: "+format, args...)
	}
}

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil && LogLevel(level.Load()) > LevelOff {
		log.Printf("%s: %v", context, err)
	}
}
