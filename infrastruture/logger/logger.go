// Package logger builds named component loggers on top of logrus.
package logger

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a logger that tags every entry with the component name, rendered
// in the given terminal color.
func New(name, color string, w io.Writer) (*logrus.Entry, error) {
	if name == "" {
		return nil, errors.New("logger name is required")
	}
	if w == nil {
		return nil, errors.New("logger writer is required")
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		ForceColors:     color != "",
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	component := name
	if color != "" {
		component = color + name + colorReset
	}
	return l.WithField("component", component), nil
}

const colorReset = "\033[0m"

var level = logrus.InfoLevel

// SetLevel parses and sets the level of loggers created afterwards.
func SetLevel(lvl string) error {
	parsed, err := logrus.ParseLevel(lvl)
	if err != nil {
		return err
	}
	level = parsed
	return nil
}
