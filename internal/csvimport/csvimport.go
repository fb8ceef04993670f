// Package csvimport parses the legacy spreadsheet export format: one
// header row, then (section, key, value) rows. It predates the tabular
// remote source and is kept as an alternative import path for the
// local content database.
package csvimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tahajib/reelsite/internal/content"
)

// Row is one parsed (section, key, value) triple.
type Row struct {
	Section string
	Key     string
	Value   string
}

// ReadRows parses the CSV stream, skipping the header row and any row
// without both a section and a key.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // legacy sheets sometimes carry ragged rows
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	var rows []Row
	for i, rec := range records {
		if i == 0 {
			continue // header
		}
		if len(rec) < 3 {
			continue
		}
		section := strings.TrimSpace(rec[0])
		key := strings.TrimSpace(rec[1])
		if section == "" || key == "" {
			continue
		}
		rows = append(rows, Row{Section: section, Key: key, Value: rec[2]})
	}
	return rows, nil
}

// ParseDocument reads the CSV stream and overlays its rows onto a copy
// of the default document, so every field is defined even for a
// partial sheet.
func ParseDocument(r io.Reader) (*content.Document, error) {
	rows, err := ReadRows(r)
	if err != nil {
		return nil, err
	}
	doc := content.Default()
	for _, row := range rows {
		Apply(doc, row)
	}
	return doc, nil
}

// Apply writes a single row into the document. Unknown sections and
// keys are ignored.
func Apply(doc *content.Document, row Row) {
	switch row.Section {
	case "hero":
		applyHero(&doc.Hero, row.Key, row.Value)
	case "navbar":
		applyNavbar(&doc.Navbar, row.Key, row.Value)
	case "projects":
		applyProjectsHeading(&doc.Projects, row.Key, row.Value)
	case "about":
		applyAbout(&doc.About, row.Key, row.Value)
	case "contact":
		applyContact(&doc.Contact, row.Key, row.Value)
	case "socials":
		applySocials(&doc.Socials, row.Key, row.Value)
	case "services":
		applyIndexed(row.Key, row.Value, func(idx int, field, value string) {
			for len(doc.Services) <= idx {
				doc.Services = append(doc.Services, content.Service{ID: len(doc.Services) + 1})
			}
			switch field {
			case "title":
				doc.Services[idx].Title = value
			case "description":
				doc.Services[idx].Description = value
			}
		})
	case "faq":
		applyIndexed(row.Key, row.Value, func(idx int, field, value string) {
			for len(doc.FAQ) <= idx {
				doc.FAQ = append(doc.FAQ, content.FAQItem{})
			}
			switch field {
			case "question":
				doc.FAQ[idx].Question = value
			case "answer":
				doc.FAQ[idx].Answer = value
			}
		})
	}
}

func applyHero(h *content.Hero, key, value string) {
	switch key {
	case "subtitle":
		h.Subtitle = value
	case "titleLine1":
		h.TitleLine1 = value
	case "titleLine2":
		h.TitleLine2 = value
	case "description":
		h.Description = value
	case "ctaText":
		h.CTAText = value
	}
}

func applyNavbar(n *content.Navbar, key, value string) {
	switch key {
	case "ctaText":
		n.CTAText = value
	case "ctaLink":
		n.CTALink = value
	}
}

func applyProjectsHeading(p *content.Projects, key, value string) {
	switch key {
	case "heading":
		p.Heading = value
	case "subheading":
		p.Subheading = value
	}
}

func applyAbout(a *content.About, key, value string) {
	switch key {
	case "heading":
		a.Heading = value
	case "bio1":
		a.Bio1 = value
	case "bio2":
		a.Bio2 = value
	case "satisfiedClients", "yearsExp":
		a.SatisfiedClients = atoiOrZero(value)
	case "projectsCompleted":
		a.ProjectsCompleted = atoiOrZero(value)
	case "ctaText":
		a.CTAText = value
	case "ctaLink":
		a.CTALink = value
	case "image":
		a.Image = value
	}
}

func applyContact(c *content.Contact, key, value string) {
	switch key {
	case "heading":
		c.Heading = value
	case "subheading":
		c.Subheading = value
	case "email":
		c.Email = value
	}
}

func applySocials(s *content.Socials, key, value string) {
	switch key {
	case "instagram":
		s.Instagram = value
	case "facebook":
		s.Facebook = value
	case "twitter":
		s.Twitter = value
	case "linkedin":
		s.LinkedIn = value
	}
}

// applyIndexed handles "<index>_<field>" keys for array sections.
func applyIndexed(key, value string, set func(idx int, field, value string)) {
	idxStr, field, ok := strings.Cut(key, "_")
	if !ok {
		return
	}
	idx, err := strconv.Atoi(idxStr)
	if err != nil || idx < 0 {
		return
	}
	set(idx, field, value)
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
