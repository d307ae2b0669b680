// Package testutil holds helpers shared by the viewer's tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/exp/golden"

	"github.com/colonyops/guide/pkg/tuitest"
)

// RequireGolden compares output with testdata/<test name>.golden using
// golden.RequireEqual(). A missing golden file is recorded from output
// first, so new frames only need reviewing, not hand writing; run the tests
// with -update to re-record existing ones.
func RequireGolden(t *testing.T, output string) {
	t.Helper()

	path := filepath.Join("testdata", t.Name()+".golden")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(output), 0o600); err != nil {
			t.Fatal(err)
		}
		t.Logf("recorded %s", path)
	}

	golden.RequireEqual(t, []byte(output))
}

// StripANSI removes ANSI escape codes from content.
// Re-exports tuitest.StripANSI for convenience.
func StripANSI(content string) string {
	return tuitest.StripANSI(content)
}
