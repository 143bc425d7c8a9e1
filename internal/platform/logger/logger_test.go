package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":        Info,
		"debug":   Debug,
		" WARN ":  Warn,
		"warning": Warn,
		"error":   Error,
		"verbose": Info,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
	assert.Equal(t, "warn", Warn.String())
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat("logfmt"))
	assert.Equal(t, FormatText, ParseFormat(""))
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Info, Format: FormatJSON, App: "flock", Output: &buf})

	log.With(map[string]any{"component": "test"}).Warn("backend call failed", map[string]any{
		"status": 502,
		"error":  errors.New("boom"),
		" ":      "ignored",
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "backend call failed", entry["msg"])
	assert.Equal(t, "flock", entry["app"])
	assert.Equal(t, "test", entry["component"])
	assert.Equal(t, float64(502), entry["status"])
	assert.Equal(t, "boom", entry["error"])
	assert.NotContains(t, entry, " ")
	assert.Contains(t, entry, "ts")
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Warn, Format: FormatJSON, Output: &buf})

	log.Debug("hidden", nil)
	log.Info("hidden", nil)
	log.Error("shown", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"msg":"shown"`)
}

func TestNop(t *testing.T) {
	log := Nop()
	assert.Same(t, log, log.With(nil))
	log.Error("nothing", map[string]any{"k": "v"})
}
