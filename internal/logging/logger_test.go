package logging

import (
	"testing"

	"serverless-todos-api/internal/config"

	"github.com/sirupsen/logrus"
)

func TestNew(t *testing.T) {
	logger := New(config.LogConfig{Level: "debug", Format: "json"})
	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("Expected debug level, got %s", logger.GetLevel())
	}
	if _, ok := logger.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("Expected JSON formatter, got %T", logger.Formatter)
	}
}

func TestNewFallsBackToInfo(t *testing.T) {
	logger := New(config.LogConfig{Level: "chatty"})
	if logger.GetLevel() != logrus.InfoLevel {
		t.Errorf("Expected info level for unknown input, got %s", logger.GetLevel())
	}
	if _, ok := logger.Formatter.(*logrus.TextFormatter); !ok {
		t.Errorf("Expected text formatter, got %T", logger.Formatter)
	}
}
