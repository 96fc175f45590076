// Package gridlog provides the structured logging surface shared by the
// encoder, solve driver and CLI. It wraps a single
// logrus.Logger behind package-level helpers plus a handful of
// domain-specific convenience calls instead of scattering Fields maps
// through callers.
package gridlog

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu  sync.Mutex
	std = newDefault()
)

func newDefault() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// SetLevel adjusts the global verbosity. Accepts logrus level names
// ("debug", "info", "warn", "error").
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	std.SetLevel(lvl)
	return nil
}

// SetOutput redirects where log lines are written; primarily used by tests
// that want to assert on captured output.
func SetOutput(w logrusOutputWriter) {
	mu.Lock()
	defer mu.Unlock()
	std.SetOutput(w)
}

// logrusOutputWriter exists only to avoid importing io in the public
// surface of this tiny package; any io.Writer satisfies it.
type logrusOutputWriter interface {
	Write(p []byte) (n int, err error)
}

func Debugf(format string, args ...interface{}) { std.Debugf(format, args...) }
func Infof(format string, args ...interface{})  { std.Infof(format, args...) }
func Warnf(format string, args ...interface{})  { std.Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { std.Errorf(format, args...) }

// EncodeStep logs a high-level encoder milestone (variable allocation,
// clause family emitted for a constraint, ...).
func EncodeStep(stage string, format string, args ...interface{}) {
	std.WithField("stage", stage).Infof(format, args...)
}

// SolveStep logs a solve-driver milestone (validate, encode, invoke engine,
// decode, uniqueness check).
func SolveStep(phase string, format string, args ...interface{}) {
	std.WithField("phase", phase).Infof(format, args...)
}

// ClauseCount logs the number of clauses emitted for a constraint at debug
// level, narrating per-constraint activity.
func ClauseCount(constraint string, n int) {
	std.WithField("constraint", constraint).Debugf("emitted %d clause(s)", n)
}
