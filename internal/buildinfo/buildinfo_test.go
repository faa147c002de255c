package buildinfo

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentDefaults(t *testing.T) {
	info := Current()

	assert.Equal(t, "N/A", info.Version)
	assert.Equal(t, "N/A", info.Date)
	assert.Equal(t, "N/A", info.Commit)
}

func TestNewInfoReplacesEmptyValues(t *testing.T) {
	info := NewInfo("v1.0.0", "", "abc123")

	assert.Equal(t, "v1.0.0", info.Version)
	assert.Equal(t, "N/A", info.Date)
	assert.Equal(t, "abc123", info.Commit)
}

func TestString(t *testing.T) {
	info := NewInfo("v1.0.0", "2024-01-01", "abc123")

	assert.Equal(t, "Version: v1.0.0, Date: 2024-01-01, Commit: abc123", info.String())
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	info := NewInfo("v1.0.0", "2024-01-01", "abc123")

	require.NoError(t, info.Fprint(&buf))
	assert.Equal(t, "Build version: v1.0.0\nBuild date: 2024-01-01\nBuild commit: abc123\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestFprintWriterError(t *testing.T) {
	assert.Error(t, Current().Fprint(failingWriter{}))
}
