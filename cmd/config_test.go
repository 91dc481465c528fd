package cmd

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "orfix", configBaseName)
	assert.Equal(t, "orfix.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "exclude", excludeFlagName)
	assert.Equal(t, "rename", renameFlagName)
	assert.Equal(t, "recursive", recursiveFlagName)
	assert.Equal(t, "parallel", fixParallelFlagName)
	assert.Equal(t, "fix.parallel", fixParallelConfigKey)
	assert.Equal(t, "fix.rename", renameConfigKey)
	assert.Equal(t, "sections.exclude", excludeConfigKey)
	assert.Equal(t, ".orfix-reports", defaultReportsDir)
	assert.Equal(t, 1, defaultFixParallel)
	assert.Equal(t, "ORFIX", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"empty falls back", "", slog.LevelWarn},
		{"debug", "debug", slog.LevelDebug},
		{"info", "info", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"warning", "warning", slog.LevelWarn},
		{"error", "ERROR", slog.LevelError},
		{"numeric", "-4", slog.LevelDebug},
		{"garbage falls back", "loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}
