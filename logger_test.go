package vecgen

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecgen/internal/fs"
)

func TestLogger_Generate(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	gen, _ := newTestGenerator(t, WithLogger(logger), WithManifest(true))

	_, err := gen.Generate(context.Background(), Config{Output: "logged", Dimension: 2, Records: 3})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"generating dataset"`)
	assert.Contains(t, out, `"msg":"manifest written"`)
	assert.Contains(t, out, `"msg":"dataset written"`)
	assert.Contains(t, out, `"dimension":2`)
	assert.Contains(t, out, `"records":3`)
	assert.Contains(t, out, `"seed":4711`)
}

func TestLogger_GenerateFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ffs := fs.NewFaultyFS(nil)
	ffs.AddRule("broken", fs.Fault{FailAfterBytes: -1, FailOnOpen: true})
	gen, _ := newTestGenerator(t, WithLogger(logger), WithFileSystem(ffs))

	_, err := gen.Generate(context.Background(), Config{Output: "broken", Dimension: 2, Records: 3})
	require.Error(t, err)
	assert.Contains(t, buf.String(), "generate failed")
	assert.NotContains(t, buf.String(), "generating dataset")
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))

	// nil restores the noop logger
	gen, err := New(WithLogger(nil))
	require.NoError(t, err)
	assert.NotNil(t, gen.opts.logger)
}

func TestLogger_NilResults(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	assert.NotPanics(t, func() {
		logger.LogGenerate(context.Background(), nil, nil)
		logger.LogInspect(context.Background(), nil, nil)
	})
	assert.Empty(t, buf.String())
}

func TestLoggerLevels(t *testing.T) {
	ctx := context.Background()

	jl := NewJSONLogger(slog.LevelWarn)
	assert.True(t, jl.Enabled(ctx, slog.LevelWarn))
	assert.False(t, jl.Enabled(ctx, slog.LevelInfo))
	_, ok := jl.Handler().(*slog.JSONHandler)
	assert.True(t, ok)

	gen, err := New(WithLogLevel(slog.LevelDebug))
	require.NoError(t, err)
	assert.True(t, gen.opts.logger.Enabled(ctx, slog.LevelDebug))
	_, ok = gen.opts.logger.Handler().(*slog.TextHandler)
	assert.True(t, ok)

	gen, err = New(WithLogLevel(slog.LevelError))
	require.NoError(t, err)
	assert.False(t, gen.opts.logger.Enabled(ctx, slog.LevelWarn))
}
