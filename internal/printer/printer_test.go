package printer

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinter_Markers(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Successf("config %s", "ok")
	p.Warnf("image %d", 2)
	p.Errorf("broken")
	p.Infof("note")
	p.Printf("  detail")

	assert.Equal(t, "✔ config ok\n! image 2\n✘ broken\n• note\n  detail\n", ansi.Strip(buf.String()))
}

func TestCtx_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	ctx := NewContext(context.Background(), p)
	require.Same(t, p, Ctx(ctx))

	assert.NotNil(t, Ctx(context.Background()))
}
