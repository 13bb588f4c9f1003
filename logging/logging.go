// Package logging configures the shared stockutil logger: output level,
// optional logfile tee, and per-module prefixed loggers.
package logging

import (
	"fmt"
	"os"
	"time"

	"github.com/ghetzel/go-stockutil/log"
	oplogging "github.com/op/go-logging"
)

var DefaultFormat = `%{time:15:04:05.000} %{level:.4s} %{message}`
var DefaultFileFormat = `%{time:2006-01-02T15:04:05.000Z07:00} %{level:.4s} %{message}`

// Setup sets the global log level by name: "debug", "info", "notice",
// "warning", "error", or "critical".
func Setup(level string) {
	log.SetLevelString(level)
}

// SetupWithFile configures logging to write to standard error and append to
// the named logfile (created if missing), then sets the global level.
func SetupWithFile(level string, path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)

	if err != nil {
		return err
	}

	// stockutil installs its own backend on first use; trigger that now so
	// it cannot replace the backends installed below
	log.SetLevelString(level)

	stderrBackend := oplogging.NewBackendFormatter(
		oplogging.NewLogBackend(os.Stderr, ``, 0),
		oplogging.MustStringFormatter(DefaultFormat),
	)

	fileBackend := oplogging.NewBackendFormatter(
		oplogging.NewLogBackend(file, ``, 0),
		oplogging.MustStringFormatter(DefaultFileFormat),
	)

	oplogging.SetBackend(oplogging.MultiLogger(stderrBackend, fileBackend))
	log.SetLevelString(level)

	return nil
}

// Logger emits log messages with a fixed module prefix.
type Logger struct {
	Prefix string
}

// New returns a Logger whose messages are prefixed with the given module
// name.
func New(prefix string) *Logger {
	return &Logger{
		Prefix: prefix,
	}
}

func (self *Logger) message(format string, args ...interface{}) string {
	if self.Prefix == `` {
		return fmt.Sprintf(format, args...)
	}

	return self.Prefix + `: ` + fmt.Sprintf(format, args...)
}

func (self *Logger) Debugf(format string, args ...interface{}) {
	log.Debug(self.message(format, args...))
}

func (self *Logger) Infof(format string, args ...interface{}) {
	log.Info(self.message(format, args...))
}

func (self *Logger) Noticef(format string, args ...interface{}) {
	log.Notice(self.message(format, args...))
}

func (self *Logger) Warningf(format string, args ...interface{}) {
	log.Warning(self.message(format, args...))
}

func (self *Logger) Errorf(format string, args ...interface{}) {
	log.Error(self.message(format, args...))
}

// Timed runs fn, logs the elapsed wall time at debug level under the given
// label, and returns the duration.
func Timed(label string, fn func()) time.Duration {
	start := time.Now()
	fn()
	elapsed := time.Since(start)

	log.Debugf("%s took %v", label, elapsed)

	return elapsed
}

// Stopwatch measures elapsed time between Start and Lap/Stop calls, logging
// each lap.
type Stopwatch struct {
	Label   string
	started time.Time
}

// StartTimer returns a running Stopwatch with the given label.
func StartTimer(label string) *Stopwatch {
	return &Stopwatch{
		Label:   label,
		started: time.Now(),
	}
}

// Elapsed returns the time since the stopwatch started.
func (self *Stopwatch) Elapsed() time.Duration {
	return time.Since(self.started)
}

// Stop logs and returns the elapsed time.
func (self *Stopwatch) Stop() time.Duration {
	elapsed := self.Elapsed()
	log.Debugf("%s took %v", self.Label, elapsed)
	return elapsed
}
