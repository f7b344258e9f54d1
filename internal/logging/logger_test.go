package logging_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/aretw0/fsmd/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestNew_RewritesErrorKeyAndTagsSession(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(slog.LevelInfo, logging.WithWriter(&buf), logging.WithSessionID("abc"))

	logger.Info("Compile failed", "error", errors.New("disk full"))

	out := buf.String()
	assert.Contains(t, out, `err="disk full"`)
	assert.Contains(t, out, "session_id=abc")
	assert.NotContains(t, out, "error=")
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(slog.LevelWarn, logging.WithWriter(&buf))

	logger.Debug("Command processed")
	logger.Info("Command processed")
	assert.Empty(t, buf.String())

	logger.Warn("Load failed")
	assert.Contains(t, buf.String(), "Load failed")
}
