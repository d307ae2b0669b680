package components

import (
	"fmt"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestInfoDialog_RendersSectionsAndStatus(t *testing.T) {
	d := NewInfoDialog(
		"Guide",
		[]InfoSection{
			{
				Title: "Content",
				Items: []InfoItem{
					{Label: "Title", Value: "Machtls Skispaß"},
					{Label: "Regions", Value: "3"},
				},
			},
			{
				Title: "Images",
				Items: []InfoItem{
					{Label: "/skier.jpg", Value: "ok", Status: InfoStatusPass},
					{Label: "https://x/y.png", Value: "remote", Status: InfoStatusWarn},
					{Label: "/map.jpg", Value: "missing", Status: InfoStatusFail},
				},
			},
		},
		"esc close",
		120,
		40,
	)

	out := ansi.Strip(d.Overlay("background", 120, 40))
	assert.Contains(t, out, "Guide")
	assert.Contains(t, out, "Machtls Skispaß")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "●")
	assert.Contains(t, out, "✘")
	assert.Contains(t, out, "esc close")
}

func TestInfoDialog_Scrolls(t *testing.T) {
	items := make([]InfoItem, 0, 40)
	for i := range 40 {
		items = append(items, InfoItem{Label: fmt.Sprintf("/img%02d.jpg", i), Value: "ok"})
	}

	d := NewInfoDialog("Images", []InfoSection{{Title: "All", Items: items}}, "", 70, 20)

	before := d.View()
	d.ScrollDown()
	after := d.View()

	assert.NotEqual(t, before, after)
	assert.Contains(t, ansi.Strip(after), "%")
}
