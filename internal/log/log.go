// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log provides the leveled logger shared by the statlab
// commands and server.
package log

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// ParseLevel maps a LOG_LEVEL value (ERROR, WARN, INFO, DEBUG or
// TRACE, in any case) to a logrus level. Unknown or empty values
// select INFO.
func ParseLevel(s string) logrus.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return logrus.ErrorLevel
	case "WARN", "WARNING":
		return logrus.WarnLevel
	case "DEBUG":
		return logrus.DebugLevel
	case "TRACE":
		return logrus.TraceLevel
	}
	return logrus.InfoLevel
}

// New returns a logger writing text records to w at the given level.
func New(w io.Writer, level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(ParseLevel(level))
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	return l
}

// NewDefault returns a logger on stderr whose level is taken from the
// LOG_LEVEL environment variable.
func NewDefault() *logrus.Logger {
	return New(os.Stderr, os.Getenv("LOG_LEVEL"))
}

// Discard returns a logger that drops every record. Tests use it to
// satisfy components that require a logger.
func Discard() *logrus.Logger {
	return New(io.Discard, "ERROR")
}
