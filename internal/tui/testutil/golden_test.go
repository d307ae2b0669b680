package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireGolden_RecordsMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	RequireGolden(t, "page one\n")

	got, err := os.ReadFile(filepath.Join("testdata", t.Name()+".golden"))
	require.NoError(t, err)
	assert.Equal(t, "page one\n", string(got))

	// A second call compares against the recorded frame.
	RequireGolden(t, "page one\n")
}

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "Paris", StripANSI("\x1b[1mParis\x1b[0m   \n"))
}
