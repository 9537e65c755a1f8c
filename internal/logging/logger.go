// Package logging builds the logrus logger shared by the Lambda functions,
// the dev server and the command line tools.
package logging

import (
	"os"

	"serverless-todos-api/internal/config"

	"github.com/sirupsen/logrus"
)

// New returns a logger configured from cfg. JSON output is used when the
// format is "json", text output otherwise.
func New(cfg config.LogConfig) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger
}
