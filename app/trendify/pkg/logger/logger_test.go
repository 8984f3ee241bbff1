package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomFormatter_Format(t *testing.T) {
	entry := &logrus.Entry{
		Time:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "trend unavailable",
		Data:    logrus.Fields{"keyword": "skincare", "attempt": 1},
	}

	out, err := (&CustomFormatter{}).Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "[2026-01-02 03:04:05] [WARN] [] trend unavailable attempt=1 keyword=skincare\n", string(out))
}

func TestInitLogger_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "trendify.log")
	require.NoError(t, InitLogger("debug", path))
	t.Cleanup(func() { Log = logrus.New() })

	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())
	Log.Debug("hello file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "hello file"))
	assert.True(t, strings.Contains(string(data), "logger_test.go"))
}

func TestInitLogger_BadLevelDefaultsToInfo(t *testing.T) {
	require.NoError(t, InitLogger("loud", ""))
	t.Cleanup(func() { Log = logrus.New() })
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
}
