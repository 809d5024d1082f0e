package logging

import (
	"bytes"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "debug", log.Fields{"component": "test"})
	require.NoError(t, err)

	logger.WithField("tool", "colorhash_render_svg").Debug("rendering")

	out := buf.String()
	assert.Contains(t, out, "level=debug")
	assert.Contains(t, out, "component=test")
	assert.Contains(t, out, "tool=colorhash_render_svg")
	assert.Contains(t, out, `msg=rendering`)
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn", nil)
	require.NoError(t, err)

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_DefaultLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "", nil)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", nil)
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().WithField("k", "v").Error("dropped")
	})
}
