package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test", "info", false)
	require.NotNil(t, l)
}

// TestNew_RoleField verifies that every JSON entry contains the "role" field.
func TestNew_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "test-role", "debug", true)

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNew_CallerFieldName verifies that the caller field is named "func".
func TestNew_CallerFieldName(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "caller-role", "info", true)

	l.Info().Msg("caller")

	assert.Equal(t, "func", zerolog.CallerFieldName)
	entry := decodeEntry(t, &buf)
	assert.Contains(t, entry["func"], "TestNew_CallerFieldName")
}

// TestNew_Level verifies level parsing and its fallback.
func TestNew_Level(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{level: "debug", want: zerolog.DebugLevel},
		{level: "warn", want: zerolog.WarnLevel},
		{level: "", want: zerolog.InfoLevel},
		{level: "loud", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		l := New(&bytes.Buffer{}, "level-role", tt.level, true)
		assert.Equal(t, tt.want, l.GetLevel(), "level %q", tt.level)
	}
}

// TestNew_LevelFiltersEntries verifies that entries below the level are dropped.
func TestNew_LevelFiltersEntries(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "filter", "warn", true)

	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

// TestNew_ConsoleOutput verifies the human readable writer is used by default.
func TestNew_ConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "console", "info", false)

	l.Warn().Msg("check the results")

	out := buf.String()
	assert.Contains(t, out, "check the results")
	assert.NotContains(t, out, `"message"`)
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestGetChildLogger_InheritsFields verifies that the child logger inherits
// context fields (e.g. "role") from the parent and adds its component.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := New(&buf, "inherited-role", "info", true)

	child := parent.GetChildLogger("store")
	assert.NotSame(t, parent, child)

	child.Info().Msg("child message")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "inherited-role", entry["role"])
	assert.Equal(t, "store", entry[ComponentFieldName])

	buf.Reset()
	parent.Info().Msg("parent message")
	entry = decodeEntry(t, &buf)
	assert.NotContains(t, entry, ComponentFieldName)
}

// TestWithUnit_AttachesToContext verifies that the unit logger is tagged and
// can be recovered from the returned context.
func TestWithUnit_AttachesToContext(t *testing.T) {
	var buf bytes.Buffer
	parent := New(&buf, "unit-role", "info", true)

	ctx, unitLog := parent.WithUnit(context.Background(), "bastion.ini")
	require.NotNil(t, unitLog)

	FromContext(ctx).Info().Msg("from context")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "bastion.ini", entry[UnitFieldName])
	assert.Equal(t, "unit-role", entry["role"])
}

// TestFromContext_NotNil verifies that FromContext never returns nil, even
// when no logger has been explicitly attached to the context.
func TestFromContext_NotNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}
