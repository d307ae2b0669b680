package guide

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"github.com/hay-kot/criterio"
)

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("is required")
	}
	return nil
}

// Validate checks the structure of a guide file.
func (f File) Validate() error {
	if len(f.Regions) == 0 {
		return criterio.NewFieldErrors("regions", fmt.Errorf("at least one region is required"))
	}

	var errs criterio.FieldErrorsBuilder
	if err := required(f.Title); err != nil {
		errs = errs.Append("title", err)
	}

	seenSlugs := make(map[string]int, len(f.Regions))
	for i, r := range f.Regions {
		field := fmt.Sprintf("regions[%d]", i)

		if err := required(r.Title); err != nil {
			errs = errs.Append(field+".title", err)
		}

		s := r.Slug
		if s == "" {
			s = slug.Make(r.Title)
		}
		if s != "" {
			if prev, ok := seenSlugs[s]; ok {
				errs = errs.Append(field+".slug", fmt.Errorf("duplicate slug %q (also used by regions[%d])", s, prev))
			}
			seenSlugs[s] = i
		}

		if len(r.SubEntries) == 0 {
			if required(r.Content) != nil {
				errs = errs.Append(field+".content", fmt.Errorf("is required when sub_entries is empty"))
			}
			continue
		}

		if r.Content != "" {
			errs = errs.Append(field+".content", fmt.Errorf("cannot be combined with sub_entries"))
		}
		if r.Image != "" {
			errs = errs.Append(field+".image", fmt.Errorf("cannot be combined with sub_entries"))
		}

		for j, sub := range r.SubEntries {
			subField := fmt.Sprintf("%s.sub_entries[%d]", field, j)
			if err := required(sub.Title); err != nil {
				errs = errs.Append(subField+".title", err)
			}
			if err := required(sub.Content); err != nil {
				errs = errs.Append(subField+".content", err)
			}
		}
	}

	return errs.ToError()
}

// Images returns every image path referenced by the guide, in page order,
// starting with the introduction banner.
func (g *Guide) Images() []string {
	var out []string
	if g.Banner != "" {
		out = append(out, g.Banner)
	}
	for _, r := range g.Regions {
		switch b := r.Body.(type) {
		case SimpleBody:
			if b.Image != "" {
				out = append(out, b.Image)
			}
		case SubEntriesBody:
			for _, s := range b.Entries {
				if s.Image != "" {
					out = append(out, s.Image)
				}
			}
		}
	}
	return out
}
