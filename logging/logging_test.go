package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		expect Level
		ok     bool
	}{
		{"debug", DebugLevel, true},
		{"INFO", InfoLevel, true},
		{"", InfoLevel, true},
		{" warn ", WarnLevel, true},
		{"warning", WarnLevel, true},
		{"error", ErrorLevel, true},
		{"fatal", FatalLevel, true},
		{"loud", InfoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLevel(tt.in)
			assert.Equal(t, tt.expect, got)
			assert.Equal(t, tt.ok, err == nil)
		})
	}
}

func TestDefaultLoggerRouting(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	logger := NewLogger(&stdout, &stderr, DebugLevel, false)

	logger.Debug("plan built", Fields{"order": 4})
	logger.Info("hello")
	logger.Warn("careful")
	logger.Error(errors.New("boom"), "failed", Fields{"size": 15})

	out := stdout.String()
	assert.Contains(t, out, "[DEBUG] plan built order=4")
	assert.Contains(t, out, "[INFO] hello")
	assert.NotContains(t, out, "careful")

	errOut := stderr.String()
	assert.Contains(t, errOut, "[WARN] careful")
	assert.Contains(t, errOut, "[ERROR] failed: boom size=15")
}

func TestDefaultLoggerLevelFilter(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	logger := NewLogger(&stdout, &stderr, WarnLevel, false)

	logger.Debug("hidden")
	logger.Info("hidden")
	assert.Empty(t, stdout.String())

	logger.SetLevel(DebugLevel)
	logger.Debug("shown")
	assert.Contains(t, stdout.String(), "shown")
}

func TestDefaultLoggerFieldsAreSortedAndInherited(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	logger := NewLogger(&stdout, &stdout, InfoLevel, false).
		WithFields(Fields{"component": "fft_plan", "b": 2})

	logger.Info("msg", Fields{"a": 1})
	assert.True(t, strings.HasSuffix(strings.TrimSpace(stdout.String()), "[INFO] msg a=1 b=2 component=fft_plan"),
		"got %q", stdout.String())
}

func TestDefaultLoggerColors(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	logger := NewLogger(&stdout, &stderr, InfoLevel, true)

	logger.Info("plain")
	logger.Warn("yellow")

	assert.NotContains(t, stdout.String(), ColorReset)
	assert.Contains(t, stderr.String(), ColorYellow+"[WARN] yellow"+ColorReset)

	logger.SetColors(false)
	logger.Warn("again")
	assert.Contains(t, stderr.String(), "[WARN] again\n")
}

func TestDefaultLoggerFatalExits(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	logger := NewLogger(&stdout, &stderr, InfoLevel, false)

	code := -1
	logger.exit = func(c int) { code = c }

	logger.Fatal(errors.New("bad"), "giving up")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "[FATAL] giving up: bad")
}

func TestWithContext(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	logger := NewLogger(&stdout, &stdout, InfoLevel, false)

	ctx := ContextWithFields(context.Background(), Fields{"request": "r1"})
	logger.WithContext(ctx).Info("scoped")
	logger.WithContext(context.Background()).Info("bare")

	out := stdout.String()
	assert.Contains(t, out, "[INFO] scoped request=r1")
	assert.Contains(t, out, "[INFO] bare\n")
}

func TestNoOpLogger(t *testing.T) {
	t.Parallel()

	var n NoOpLogger
	require.NotPanics(t, func() {
		n.Info("x")
		n.Fatal(errors.New("x"), "x")
		n.WithFields(Fields{"a": 1}).Debug("x")
	})
}

// The package-level functions share global state, so these tests do not run
// in parallel.

func useGlobal(t *testing.T, logger Logger) {
	t.Helper()

	previous := GetGlobalLogger()
	SetGlobalLogger(logger)
	t.Cleanup(func() { SetGlobalLogger(previous) })
}

func TestGlobalFunctions(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger := NewLogger(&stdout, &stderr, InfoLevel, false)
	code := -1
	logger.exit = func(c int) { code = c }
	useGlobal(t, logger)

	require.Same(t, logger, GetGlobalLogger())

	Debug("hidden at info")
	Info("info line", Fields{"size": 16})
	Warn("warn line")
	Error(errors.New("boom"), "error line")
	Fatal(errors.New("bad"), "fatal line")

	SetLevel(DebugLevel)
	Debug("debug line")
	WithFields(Fields{"component": "test"}).Info("scoped line")
	WithContext(ContextWithFields(context.Background(), Fields{"request": "r2"})).Info("context line")

	out := stdout.String()
	assert.NotContains(t, out, "hidden at info")
	assert.Contains(t, out, "[INFO] info line size=16")
	assert.Contains(t, out, "[DEBUG] debug line")
	assert.Contains(t, out, "[INFO] scoped line component=test")
	assert.Contains(t, out, "[INFO] context line request=r2")

	errOut := stderr.String()
	assert.Contains(t, errOut, "[WARN] warn line")
	assert.Contains(t, errOut, "[ERROR] error line: boom")
	assert.Contains(t, errOut, "[FATAL] fatal line: bad")
	assert.Equal(t, 1, code)
}

func TestSetGlobalLoggerNil(t *testing.T) {
	useGlobal(t, nil)

	assert.IsType(t, &NoOpLogger{}, GetGlobalLogger())
	require.NotPanics(t, func() {
		Info("discarded")
		SetLevel(DebugLevel)
	})
}
