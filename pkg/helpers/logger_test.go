package helpers

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestLogError(t *testing.T) {
	logger, hook := test.NewNullLogger()

	LogError(logger, "insert failed", errors.New("boom"), logrus.Fields{"user_id": "u-1"})

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, logrus.ErrorLevel, entry.Level)
	require.Equal(t, "insert failed", entry.Message)
	require.Equal(t, "boom", entry.Data["error"])
	require.Equal(t, "u-1", entry.Data["user_id"])
}

func TestLogHelpersAcceptNilLogger(t *testing.T) {
	require.NotPanics(t, func() {
		LogError(nil, "ignored", errors.New("x"), nil)
		LogInfo(nil, "ignored", nil)
	})
}

func TestNewLoggerLevels(t *testing.T) {
	require.Equal(t, logrus.DebugLevel, NewLogger("svc", "development").GetLevel())

	prod := NewLogger("svc", "production")
	require.Equal(t, logrus.InfoLevel, prod.GetLevel())
	require.IsType(t, &logrus.JSONFormatter{}, prod.Formatter)
}
