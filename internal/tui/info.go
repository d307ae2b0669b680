package tui

import (
	"errors"
	"io/fs"
	"strconv"

	"github.com/colonyops/guide/internal/core/imgpreview"
	"github.com/colonyops/guide/internal/tui/components"
)

// openInfo shows a summary of the loaded guide and whether each of its
// images can be previewed.
func (m *Model) openInfo() {
	source := m.guideFile
	if source == "" {
		source = "built-in"
	}

	subEntries := 0
	for _, r := range m.guide.Regions {
		subEntries += len(r.SubEntries())
	}

	sections := []components.InfoSection{
		{
			Title: "Guide",
			Items: []components.InfoItem{
				{Label: "Title", Value: m.guide.Title},
				{Label: "Source", Value: source},
				{Label: "Assets", Value: m.images.BaseDir()},
				{Label: "Regions", Value: strconv.Itoa(m.guide.Len())},
				{Label: "Sub-entries", Value: strconv.Itoa(subEntries)},
				{Label: "Theme", Value: m.cfg.TUI.Theme},
			},
		},
		{
			Title: "Images",
			Items: m.imageItems(),
		},
	}

	m.state = stateShowingInfo
	m.infoDialog = components.NewInfoDialog("Guide Info", sections, "j/k scroll  esc close", m.width, m.height)
}

func (m Model) imageItems() []components.InfoItem {
	images := m.guide.Images()
	items := make([]components.InfoItem, 0, len(images))
	for _, p := range images {
		item := components.InfoItem{Label: p, Value: "ok", Status: components.InfoStatusPass}
		err := m.images.Check(p)
		switch {
		case err == nil:
		case errors.Is(err, imgpreview.ErrRemote):
			item.Value, item.Status = "remote, not fetched", components.InfoStatusWarn
		case errors.Is(err, fs.ErrNotExist):
			item.Value, item.Status = "missing", components.InfoStatusFail
		case errors.Is(err, imgpreview.ErrNotImage):
			item.Value, item.Status = "not an image", components.InfoStatusFail
		default:
			item.Value, item.Status = err.Error(), components.InfoStatusFail
		}
		items = append(items, item)
	}
	return items
}
