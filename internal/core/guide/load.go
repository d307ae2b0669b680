package guide

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultGuideYAML []byte

// File is the on-disk YAML shape of a guide. Regions either carry their own
// content or a list of sub-entries; Validate enforces that exactly one of the
// two is used.
type File struct {
	Title   string       `yaml:"title"`
	Banner  string       `yaml:"banner"`
	Tagline string       `yaml:"tagline"`
	Regions []FileRegion `yaml:"regions"`
}

// FileRegion is a region as written in a guide file.
type FileRegion struct {
	Number     string         `yaml:"number"`
	Title      string         `yaml:"title"`
	Slug       string         `yaml:"slug"`
	Content    string         `yaml:"content"`
	Image      string         `yaml:"image"`
	SubEntries []FileSubEntry `yaml:"sub_entries"`
}

// FileSubEntry is a sub-entry as written in a guide file.
type FileSubEntry struct {
	Number  string `yaml:"number"`
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
	Image   string `yaml:"image"`
}

// Default returns the built-in guide. It panics if the embedded file is
// invalid, which is a build defect.
func Default() *Guide {
	g, err := Parse(defaultGuideYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded guide is invalid: %v", err))
	}
	return g
}

// Load reads and validates a guide file. Image paths in the guide are
// resolved relative to the file's directory.
func Load(path string) (*Guide, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read guide file: %w", err)
	}

	g, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	g.AssetsDir = filepath.Dir(abs)

	return g, nil
}

// Parse decodes and validates guide YAML.
func Parse(data []byte) (*Guide, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse guide: %w", err)
	}

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid guide: %w", err)
	}

	return f.build(), nil
}

// build converts the validated file form into the immutable Guide, choosing
// each region's body variant once.
func (f File) build() *Guide {
	g := &Guide{
		Title:   f.Title,
		Banner:  f.Banner,
		Tagline: f.Tagline,
		Regions: make([]Region, 0, len(f.Regions)),
	}

	for _, fr := range f.Regions {
		r := Region{
			Number: fr.Number,
			Title:  fr.Title,
			Slug:   fr.Slug,
		}
		if r.Slug == "" {
			r.Slug = slug.Make(fr.Title)
		}

		if len(fr.SubEntries) > 0 {
			entries := make([]SubEntry, len(fr.SubEntries))
			for i, fs := range fr.SubEntries {
				entries[i] = SubEntry(fs)
			}
			r.Body = SubEntriesBody{Entries: entries}
		} else {
			r.Body = SimpleBody{Content: fr.Content, Image: fr.Image}
		}

		g.Regions = append(g.Regions, r)
	}

	return g
}
