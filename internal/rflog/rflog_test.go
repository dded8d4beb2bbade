package rflog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, Error, "")
	require.NoError(t, err)

	l.Debug("dropped %d", 1)
	l.Info("dropped %d", 2)
	l.Error("kept %d", 3)
	l.Fatal("kept %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "ERROR: kept 3")
	assert.Contains(t, out, "FATAL: kept 4")
}

func TestLogger_TimestampPrefix(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, Debug, "%Y")
	require.NoError(t, err)

	l.Info("hello")
	assert.Regexp(t, `^\d{4} INFO: hello\n$`, buf.String())
}

func TestLogger_BadTimestampFormat(t *testing.T) {
	_, err := New(nil, Debug, "%Q")
	assert.Error(t, err)
}

func TestDiscard_DropsEverything(t *testing.T) {
	l := Discard()
	l.Fatal("nobody hears this")
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", Debug.String())
	assert.Equal(t, "INFO", Info.String())
	assert.Equal(t, "ERROR", Error.String())
	assert.Equal(t, "FATAL", Fatal.String())
}
