// Package guide defines the static content table of a travel guide: the
// regions shown as pages, their optional sub-entries, and the introduction.
package guide

import (
	"strings"
)

// IntroIndex is the region index of the introduction page.
const IntroIndex = -1

// SubEntry is a page nested under a region, e.g. "1.1 About".
type SubEntry struct {
	Number  string
	Title   string
	Content string
	Image   string
}

// Label returns the sub-entry tab label ("1.1 About").
func (s SubEntry) Label() string {
	if s.Number == "" {
		return s.Title
	}
	return s.Number + " " + s.Title
}

// Body is the content of a region. It is either a SimpleBody or a
// SubEntriesBody; the choice is made once when the guide is loaded.
type Body interface {
	isBody()
}

// SimpleBody is a region page with its own text and image.
type SimpleBody struct {
	Content string
	Image   string
}

// SubEntriesBody is a region page made of one or more sub-entries.
type SubEntriesBody struct {
	Entries []SubEntry
}

func (SimpleBody) isBody()     {}
func (SubEntriesBody) isBody() {}

// Region is a top-level page of the guide (e.g. a city).
type Region struct {
	Number string
	Title  string
	Slug   string
	Body   Body
}

// Label returns the label used by the side rail and the table of contents.
func (r Region) Label() string {
	if r.Number == "" {
		return r.Title
	}
	return r.Number + ". " + r.Title
}

// SubEntries returns the region's sub-entries, or nil for a simple region.
func (r Region) SubEntries() []SubEntry {
	if b, ok := r.Body.(SubEntriesBody); ok {
		return b.Entries
	}
	return nil
}

// HasSubEntries reports whether the region is made of sub-entries.
func (r Region) HasSubEntries() bool {
	return len(r.SubEntries()) > 0
}

// Guide is the immutable content table.
type Guide struct {
	Title   string
	Banner  string
	Tagline string
	Regions []Region

	// AssetsDir is the base directory image paths are resolved against.
	AssetsDir string
}

// Len returns the number of regions, not counting the introduction.
func (g *Guide) Len() int {
	return len(g.Regions)
}

// Region returns the region at index i.
func (g *Guide) Region(i int) (Region, bool) {
	if i < 0 || i >= len(g.Regions) {
		return Region{}, false
	}
	return g.Regions[i], true
}

// Find resolves a user supplied reference to a region index. The reference
// may be a slug ("new-york"), a display number ("3"), a title, or
// "intro"/"introduction" for the introduction page. Numbers are matched
// against the display numbers only, so "0" does not resolve.
func (g *Guide) Find(ref string) (int, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return 0, false
	}

	switch strings.ToLower(ref) {
	case "intro", "introduction":
		return IntroIndex, true
	}

	for i, r := range g.Regions {
		if r.Slug == ref || r.Number == ref || strings.EqualFold(r.Title, ref) {
			return i, true
		}
	}

	return 0, false
}
