/*
Copyright © 2025 Benny Powers <web@bennypowers.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

// Package logging provides pterm-based structured logging for the CLI
// and for the static visitor's tolerant walk (unresolved names, skipped
// constructs, and similar non-fatal conditions are logged and the walk
// continues rather than aborting).
package logging

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/pterm/pterm"
)

func init() {
	pterm.Info = *pterm.Info.WithPrefix(pterm.Prefix{
		Text:  "INFO",
		Style: pterm.NewStyle(pterm.FgBlue),
	}).WithMessageStyle(&pterm.ThemeDefault.DefaultText)

	pterm.Success = *pterm.Success.WithPrefix(pterm.Prefix{
		Text:  "SUCCESS",
		Style: pterm.NewStyle(pterm.FgGreen),
	}).WithMessageStyle(&pterm.ThemeDefault.DefaultText)

	pterm.Warning = *pterm.Warning.WithPrefix(pterm.Prefix{
		Text:  "WARNING",
		Style: pterm.NewStyle(pterm.FgYellow),
	}).WithMessageStyle(&pterm.ThemeDefault.DefaultText)

	pterm.Error = *pterm.Error.WithPrefix(pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.FgRed),
	}).WithMessageStyle(&pterm.ThemeDefault.DefaultText)

	pterm.Debug = *pterm.Debug.WithPrefix(pterm.Prefix{
		Text:  "DEBUG",
		Style: pterm.NewStyle(pterm.FgCyan),
	}).WithMessageStyle(&pterm.ThemeDefault.DefaultText)
}

// Level is the logger's severity scale, read from APITREE_LOG_LEVEL or
// the --verbose flag count.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
)

// ParseLevel maps a level name (case-insensitive) to a Level, defaulting
// to LevelInfo for an unrecognized or empty name.
func ParseLevel(name string) Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TRACE":
		return LevelTrace
	case "DEBUG":
		return LevelDebug
	case "WARNING", "WARN":
		return LevelWarning
	case "ERROR":
		return LevelError
	case "CRITICAL", "FATAL":
		return LevelCritical
	default:
		return LevelInfo
	}
}

func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return "INFO"
	}
}

// Logger is a leveled, pterm-backed logger. The zero value is not usable;
// construct with New or use the package-level convenience functions
// against the global instance.
type Logger struct {
	mu    sync.RWMutex
	level Level
}

var global = &Logger{level: LevelInfo}

// New builds a Logger at the given level.
func New(level Level) *Logger { return &Logger{level: level} }

// Global returns the shared package-level logger instance.
func Global() *Logger { return global }

// SetLevel changes the minimum level this logger emits.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) enabled(level Level) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return level >= l.level
}

func (l *Logger) Trace(format string, args ...any) {
	if !l.enabled(LevelTrace) {
		return
	}
	pterm.Debug.Println("[trace] " + fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(format string, args ...any) {
	if !l.enabled(LevelDebug) {
		return
	}
	pterm.Debug.Println(fmt.Sprintf(format, args...))
}

func (l *Logger) Info(format string, args ...any) {
	if !l.enabled(LevelInfo) {
		return
	}
	pterm.Info.Println(fmt.Sprintf(format, args...))
}

func (l *Logger) Success(format string, args ...any) {
	if !l.enabled(LevelInfo) {
		return
	}
	pterm.Success.Println(fmt.Sprintf(format, args...))
}

func (l *Logger) Warning(format string, args ...any) {
	if !l.enabled(LevelWarning) {
		return
	}
	pterm.Warning.Println(fmt.Sprintf(format, args...))
}

func (l *Logger) Error(format string, args ...any) {
	if !l.enabled(LevelError) {
		return
	}
	pterm.Error.Println(fmt.Sprintf(format, args...))
}

// Critical always logs, even below the configured level, and writes to
// stderr directly rather than through pterm so it survives a
// misconfigured or redirected log level.
func (l *Logger) Critical(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[CRITICAL] %s\n", fmt.Sprintf(format, args...))
}

func Trace(format string, args ...any)    { global.Trace(format, args...) }
func Debug(format string, args ...any)    { global.Debug(format, args...) }
func Info(format string, args ...any)     { global.Info(format, args...) }
func Success(format string, args ...any)  { global.Success(format, args...) }
func Warning(format string, args ...any)  { global.Warning(format, args...) }
func Error(format string, args ...any)    { global.Error(format, args...) }
func Critical(format string, args ...any) { global.Critical(format, args...) }
func SetLevel(level Level)                { global.SetLevel(level) }
