package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriterFiltersLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("warn", &buf)

	l.Infof("hidden %d", 1)
	l.Warnf("shown %d", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown 2")
}

func TestErrorWithFieldsWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("debug", &buf)

	ErrorWithFields(l, "get post failed", Fields{"slug": "hello"})

	line := strings.TrimSpace(buf.String())
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "get post failed", entry["msg"])
	assert.Equal(t, "ERROR", strings.ToUpper(entry["level"].(string)))
	assert.Contains(t, line, `"slug":"hello"`)
}

type lines struct{ got []string }

func (l *lines) Debugf(f string, a ...any) { l.got = append(l.got, "debug") }
func (l *lines) Infof(f string, a ...any)  { l.got = append(l.got, "info") }
func (l *lines) Warnf(f string, a ...any)  { l.got = append(l.got, "warn") }
func (l *lines) Errorf(f string, a ...any) { l.got = append(l.got, "error") }

func TestWithFieldsFallsBackForOtherLoggers(t *testing.T) {
	l := &lines{}
	InfoWithFields(l, "a", Fields{"k": 1})
	WarnWithFields(l, "b", nil)
	ErrorWithFields(l, "c", nil)
	assert.Equal(t, []string{"info", "warn", "error"}, l.got)
}

func TestDiscard(t *testing.T) {
	Discard().Errorf("nothing to see")
}
