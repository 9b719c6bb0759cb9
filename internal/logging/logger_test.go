package logging_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/aretw0/turing/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter_RenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, slog.LevelInfo)

	logger.Info("parse failed", "error", errors.New("boom"))
	assert.Contains(t, buf.String(), "err=boom")
	assert.NotContains(t, buf.String(), "error=")
}

func TestLevelFor(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, logging.LevelFor(false))
	logger.Debug("hidden")
	logger.Info("hidden too")
	assert.Empty(t, buf.String())

	logger = logging.NewWithWriter(&buf, logging.LevelFor(true))
	logger.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}
