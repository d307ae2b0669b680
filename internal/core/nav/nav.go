// Package nav holds the navigation state of the guide viewer and the rules
// for moving between pages.
package nav

import "github.com/colonyops/guide/internal/core/guide"

// ViewState is the mutable navigation and search state of the viewer.
type ViewState struct {
	Region int // guide.IntroIndex for the introduction
	Sub    int
	Search string
}

// Initial returns the state shown when the viewer starts.
func Initial() ViewState {
	return ViewState{Region: guide.IntroIndex}
}

// IsIntroduction reports whether the introduction page is selected.
func (s ViewState) IsIntroduction() bool {
	return s.Region == guide.IntroIndex
}

// Controller applies navigation actions to a ViewState. Every mutating method
// reports whether the state changed so callers can decide to animate.
type Controller struct {
	guide *guide.Guide
	state ViewState
}

// New creates a controller in the initial state.
func New(g *guide.Guide) *Controller {
	return &Controller{guide: g, state: Initial()}
}

// State returns a copy of the current state.
func (c *Controller) State() ViewState {
	return c.state
}

// Guide returns the content table the controller navigates.
func (c *Controller) Guide() *guide.Guide {
	return c.guide
}

// Current returns the selected region, or false on the introduction.
func (c *Controller) Current() (guide.Region, bool) {
	return c.guide.Region(c.state.Region)
}

// CurrentSubEntry returns the selected sub-entry when the current region has
// sub-entries.
func (c *Controller) CurrentSubEntry() (guide.SubEntry, bool) {
	r, ok := c.Current()
	if !ok {
		return guide.SubEntry{}, false
	}
	entries := r.SubEntries()
	if c.state.Sub < 0 || c.state.Sub >= len(entries) {
		return guide.SubEntry{}, false
	}
	return entries[c.state.Sub], true
}

// CanNext reports whether GoNext would move.
func (c *Controller) CanNext() bool {
	return c.state.Region < c.guide.Len()-1
}

// CanPrevious reports whether GoPrevious would move.
func (c *Controller) CanPrevious() bool {
	return c.state.Region > guide.IntroIndex
}

// GoNext moves to the following region. It is a no-op on the last region.
func (c *Controller) GoNext() bool {
	if !c.CanNext() {
		return false
	}
	c.state.Region++
	c.state.Sub = 0
	return true
}

// GoPrevious moves to the preceding region, or the introduction. It is a
// no-op on the introduction.
func (c *Controller) GoPrevious() bool {
	if !c.CanPrevious() {
		return false
	}
	c.state.Region--
	c.state.Sub = 0
	return true
}

// SelectRegion jumps to region i (guide.IntroIndex for the introduction) and
// resets the sub-entry selection. Indexes outside the guide are ignored.
// Selecting the current region still resets the sub-entry.
func (c *Controller) SelectRegion(i int) bool {
	if i < guide.IntroIndex || i >= c.guide.Len() {
		return false
	}
	changed := c.state.Region != i || c.state.Sub != 0
	c.state.Region = i
	c.state.Sub = 0
	return changed
}

// SelectSubEntry selects sub-entry k of the current region. It is a no-op
// unless the region has sub-entries and k is in range.
func (c *Controller) SelectSubEntry(k int) bool {
	r, ok := c.Current()
	if !ok {
		return false
	}
	n := len(r.SubEntries())
	if k < 0 || k >= n || k == c.state.Sub {
		return false
	}
	c.state.Sub = k
	return true
}

// CycleSubEntry moves the sub-entry selection by delta, wrapping around.
func (c *Controller) CycleSubEntry(delta int) bool {
	r, ok := c.Current()
	if !ok {
		return false
	}
	n := len(r.SubEntries())
	if n < 2 {
		return false
	}
	return c.SelectSubEntry(((c.state.Sub+delta)%n + n) % n)
}

// SetSearch stores the search box text. Nothing reads it for filtering.
func (c *Controller) SetSearch(s string) {
	c.state.Search = s
}
