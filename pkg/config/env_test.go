package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("GAPSIGHT_TEST_STR", "value")
	assert.Equal(t, "value", GetEnv("GAPSIGHT_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", GetEnv("GAPSIGHT_TEST_MISSING", "fallback"))

	t.Setenv("GAPSIGHT_TEST_EMPTY", "")
	assert.Equal(t, "fallback", GetEnv("GAPSIGHT_TEST_EMPTY", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("GAPSIGHT_TEST_INT", "42")
	assert.Equal(t, 42, GetEnvInt("GAPSIGHT_TEST_INT", 7))
	assert.Equal(t, 7, GetEnvInt("GAPSIGHT_TEST_MISSING", 7))

	t.Setenv("GAPSIGHT_TEST_INT", "not-a-number")
	assert.Equal(t, 7, GetEnvInt("GAPSIGHT_TEST_INT", 7))
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("GAPSIGHT_TEST_FLOAT", "2.5")
	assert.Equal(t, 2.5, GetEnvFloat("GAPSIGHT_TEST_FLOAT", 1.0))
	assert.Equal(t, 1.0, GetEnvFloat("GAPSIGHT_TEST_MISSING", 1.0))
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("GAPSIGHT_TEST_BOOL", "true")
	assert.True(t, GetEnvBool("GAPSIGHT_TEST_BOOL", false))

	t.Setenv("GAPSIGHT_TEST_BOOL", "nope")
	assert.True(t, GetEnvBool("GAPSIGHT_TEST_BOOL", true))
}

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"warn", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"", logrus.InfoLevel},
		{"bogus", logrus.InfoLevel},
	}
	for _, tt := range tests {
		t.Setenv("LOG_LEVEL", tt.value)
		assert.Equal(t, tt.want, GetLogLevel(), "LOG_LEVEL=%q", tt.value)
	}
}
