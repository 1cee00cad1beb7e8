package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("DEBUG"))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Info, ParseLevel("verbose"))
	assert.Equal(t, "error", Error.String())
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "shelter-records", Output: &buf})

	l.With(map[string]any{"request_id": "abc"}).Error("request failed", map[string]any{
		"error":  errors.New("boom"),
		"status": 500,
	})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "error", line["level"])
	assert.Equal(t, "request failed", line["message"])
	assert.Equal(t, "shelter-records", line["app"])
	assert.Equal(t, "abc", line["request_id"])
	assert.Equal(t, "boom", line["error"])
	assert.Equal(t, float64(500), line["status"])
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Format: FormatJSON, Output: &buf})

	l.Info("dropped", nil)
	assert.Zero(t, buf.Len())

	l.Warn("kept", nil)
	assert.Contains(t, buf.String(), "kept")
}

func TestContext(t *testing.T) {
	fallback := Nop()
	assert.Equal(t, fallback, FromContext(context.Background(), fallback))
	assert.NotNil(t, FromContext(context.Background(), nil))

	var buf bytes.Buffer
	l := New(Options{Format: FormatJSON, Output: &buf})
	ctx := WithContext(context.Background(), l)
	FromContext(ctx, fallback).Info("from ctx", nil)
	assert.Contains(t, buf.String(), "from ctx")
}
