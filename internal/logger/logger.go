// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger configures the process-wide logrus instance used for
// stage-level pipeline progress.
package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New builds a logger writing to out at the given level. An unparseable
// level falls back to info.
func New(out io.Writer, levelStr string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
