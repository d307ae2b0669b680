package iojson

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWith_Indented(t *testing.T) {
	var out, errOut bytes.Buffer

	err := WriteWith(&out, &errOut, map[string]int{"regions": 3})
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"regions\": 3\n}\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestWriteWith_MarshalFailure(t *testing.T) {
	var out, errOut bytes.Buffer

	err := WriteWith(&out, &errOut, map[string]any{"bad": make(chan int)})
	require.NoError(t, err)

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "json_error")
}

func TestWriteLine(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, WriteLine(&out, map[string]string{"slug": "paris"}))
	require.NoError(t, WriteLine(&out, map[string]string{"slug": "kyoto"}))

	assert.Equal(t, "{\"slug\":\"paris\"}\n{\"slug\":\"kyoto\"}\n", out.String())
}

func TestMarshalError(t *testing.T) {
	var got Error
	require.NoError(t, json.Unmarshal([]byte(MarshalError("invalid guide", map[string]any{"file": "a.yaml"})), &got))

	assert.Equal(t, "invalid guide", got.Message)
	assert.Equal(t, "a.yaml", got.Data["file"])
}

func TestWriteError(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, WriteError(&out, "load guide", map[string]any{"file": "guide.yaml"}))

	var doc Error
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "load guide", doc.Message)
	assert.Equal(t, "guide.yaml", doc.Data["file"])
}
