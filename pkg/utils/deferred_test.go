package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeferredWriter(t *testing.T) {
	var d DeferredWriter

	_, err := d.Write([]byte("first\n"))
	require.NoError(t, err)
	_, err = d.Write([]byte("second\n"))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, d.Flush(&out))
	assert.Equal(t, "first\nsecond\n", out.String())

	out.Reset()
	require.NoError(t, d.Flush(&out))
	assert.Empty(t, out.String(), "flush drains the buffer")
}

type callRecorder struct{ calls []string }

func (c *callRecorder) Write(p []byte) (int, error) {
	c.calls = append(c.calls, string(p))
	return len(p), nil
}

func TestDeferredWriter_FlushPerLine(t *testing.T) {
	var d DeferredWriter
	_, _ = d.Write([]byte(`{"level":"info"}` + "\n" + `{"level":"warn"}` + "\n"))

	var rec callRecorder
	require.NoError(t, d.Flush(&rec))
	assert.Equal(t, []string{`{"level":"info"}` + "\n", `{"level":"warn"}` + "\n"}, rec.calls)
}
