package content

import "strings"

// NormalizeCategory reduces a raw category string to lowercase
// alphanumerics. Raw values vary in case and punctuation across data
// sources ("Motion Graphics", "motion-graphics", "MOTION_GRAPHICS"),
// so every category comparison goes through this form.
func NormalizeCategory(raw string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return b.String()
}

// Section is one category's worth of projects, in original relative
// order. Name keeps the first raw spelling seen for display.
type Section struct {
	Key      string // normalized category
	Name     string // first raw spelling
	Projects []Project
}

// Sections groups projects by normalized category, ordered by first
// appearance. Categories with no projects cannot occur by construction,
// so an empty carousel shell is never rendered.
func Sections(items []Project) []Section {
	var out []Section
	index := make(map[string]int)
	for _, p := range items {
		key := NormalizeCategory(p.Category)
		if key == "" {
			key = "uncategorized"
		}
		i, ok := index[key]
		if !ok {
			index[key] = len(out)
			out = append(out, Section{Key: key, Name: strings.TrimSpace(p.Category)})
			i = len(out) - 1
		}
		out[i].Projects = append(out[i].Projects, p)
	}
	return out
}
