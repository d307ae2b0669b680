package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
)

// Snapshot renders a single frame of the viewer at width x height without
// a terminal: opts.Start selects the region and sub the sub-entry.
// Transitions are skipped. A sub other than 0 must name a sub-entry of the
// selected region.
func Snapshot(opts Options, sub, width, height int) (string, error) {
	m := New(opts)
	m.anim = transition{}

	if sub != 0 && !m.nav.SelectSubEntry(sub) {
		r, ok := m.nav.Current()
		switch {
		case !ok:
			return "", fmt.Errorf("sub-entry %d: the introduction has no sub-entries", sub)
		case !r.HasSubEntries():
			return "", fmt.Errorf("sub-entry %d: region %q has no sub-entries", sub, r.Title)
		default:
			return "", fmt.Errorf("sub-entry %d out of range: region %q has %d (0-%d)",
				sub, r.Title, len(r.SubEntries()), len(r.SubEntries())-1)
		}
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return next.(Model).render(), nil
}
