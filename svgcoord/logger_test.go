package svgcoord

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerDefaultSilent(t *testing.T) {
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	ResolveViewport("0 0 100", "", Bounds{W: 1, H: 1})
	assert.Contains(t, buf.String(), "invalid viewBox")

	buf.Reset()
	ResolveElementViewport("image", "0 0 1 1", "defer xMinYMin", Bounds{W: 1, H: 1})
	assert.Contains(t, buf.String(), "defer")

	SetLogger(nil)
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}
