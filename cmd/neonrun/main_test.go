package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// withPlayFlags sets the play flags for one test and restores them afterwards.
func withPlayFlags(t *testing.T, difficulty, configPath string) string {
	t.Helper()
	logPath := filepath.Join(t.TempDir(), "neonrun.log")

	oldDifficulty, oldConfig, oldLog, oldLevel := flagDifficulty, flagConfig, flagLogFile, flagLogLevel
	flagDifficulty, flagConfig, flagLogFile, flagLogLevel = difficulty, configPath, logPath, "info"
	t.Cleanup(func() {
		flagDifficulty, flagConfig, flagLogFile, flagLogLevel = oldDifficulty, oldConfig, oldLog, oldLevel
	})
	return logPath
}

func TestPlayReturnsConfigErrors(t *testing.T) {
	badConfig := filepath.Join(t.TempDir(), "neon.yaml")
	if err := os.WriteFile(badConfig, []byte("size:\n  max_stage: 0\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	tests := []struct {
		name       string
		difficulty string
		config     string
		want       string
	}{
		{"unknown difficulty", "brutal", "", "unknown difficulty"},
		{"invalid config file", "", badConfig, "size.max_stage"},
		{"missing config file", "", filepath.Join(t.TempDir(), "missing.yaml"), "failed to read config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logPath := withPlayFlags(t, tt.difficulty, tt.config)

			err := play()
			if err == nil {
				t.Fatal("expected an error before the game starts")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
			if _, statErr := os.Stat(logPath); statErr != nil {
				t.Errorf("log file should have been opened: %v", statErr)
			}
		})
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	old := flagLogLevel
	flagLogLevel = "loud"
	t.Cleanup(func() { flagLogLevel = old })

	if _, _, err := newLogger(os.Stderr); err == nil {
		t.Error("unknown log level should be an error")
	}
}
