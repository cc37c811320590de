package core

import (
	"os"
	"testing"
)

func TestGetLogLevelDefaultsToInfo(t *testing.T) {
	os.Unsetenv(envSirSilent)
	os.Unsetenv(envSirLogLevel)
	if got := getLogLevel(); got != LogLevelInfo {
		t.Errorf("expected default log level %q, got %q", LogLevelInfo, got)
	}
}

func TestGetLogLevelSilentEnv(t *testing.T) {
	os.Setenv(envSirSilent, "1")
	defer os.Unsetenv(envSirSilent)
	if got := getLogLevel(); got != LogLevelSilent {
		t.Errorf("expected silent level, got %q", got)
	}
	if !IsSilent() {
		t.Error("IsSilent() should report true")
	}
}

func TestGetLogLevelExplicit(t *testing.T) {
	os.Unsetenv(envSirSilent)
	os.Setenv(envSirLogLevel, "debug")
	defer os.Unsetenv(envSirLogLevel)
	if got := getLogLevel(); got != LogLevelDebug {
		t.Errorf("expected debug level, got %q", got)
	}
}

func TestNewLoggerDoesNotPanic(t *testing.T) {
	os.Unsetenv(envSirSilent)
	os.Unsetenv(envSirLogLevel)
	logger := NewDefaultLogger()
	logger.Info("hello %s", "world")
	logger.Debug("suppressed at info level")
	logger.Warn("warning")
	logger.Error("error")
}
