package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/guide/internal/core/guide"
	"github.com/colonyops/guide/pkg/tuitest"
)

func TestSnapshot_SubEntry(t *testing.T) {
	out, err := Snapshot(Options{Guide: guide.Default(), Start: 0}, 1, 100, 32)
	require.NoError(t, err)

	out = tuitest.StripANSI(out)
	assert.Contains(t, out, "1. Paris")
	assert.Contains(t, out, "overview map highlighting")
}

func TestSnapshot_InvalidSub(t *testing.T) {
	tests := []struct {
		name  string
		start int
		sub   int
		want  string
	}{
		{name: "simple region", start: 1, sub: 4, want: `region "Kyoto" has no sub-entries`},
		{name: "out of range", start: 0, sub: 2, want: `region "Paris" has 2 (0-1)`},
		{name: "negative", start: 0, sub: -1, want: "out of range"},
		{name: "introduction", start: guide.IntroIndex, sub: 1, want: "introduction has no sub-entries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Snapshot(Options{Guide: guide.Default(), Start: tt.start}, tt.sub, 100, 32)
			require.ErrorContains(t, err, tt.want)
			assert.Empty(t, out)
		})
	}
}

func TestSnapshot_SimpleRegionSubZero(t *testing.T) {
	out, err := Snapshot(Options{Guide: guide.Default(), Start: 1}, 0, 100, 32)
	require.NoError(t, err)

	out = tuitest.StripANSI(out)
	assert.Contains(t, out, "2. Kyoto")
	assert.Contains(t, out, "classical Buddhist temples")
}

func TestSnapshot_Introduction(t *testing.T) {
	out, err := Snapshot(Options{Guide: guide.Default(), Start: guide.IntroIndex}, 0, 100, 32)
	require.NoError(t, err)

	assert.Contains(t, tuitest.StripANSI(out), "Explore the world's most amazing destinations!")
}
