package csvimport

import (
	"strings"
	"testing"

	"github.com/tahajib/reelsite/internal/content"
)

const sampleCSV = `section,key,value
hero,titleLine1,NEW TITLE
hero,ctaText,See Work
navbar,ctaLink,https://cal.example/book
projects,heading,Recent Work
about,yearsExp,6
about,projectsCompleted,150
about,bio1,"Hello, I edit video."
contact,email,hi@example.com
socials,instagram,https://instagram.example
services,0_title,Editing
services,0_description,Cuts and grades
services,4_title,Consulting
faq,0_question,How long?
faq,0_answer,"About a week, usually."
mystery,key,ignored
hero,unknownKey,ignored
`

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}

	if doc.Hero.TitleLine1 != "NEW TITLE" || doc.Hero.CTAText != "See Work" {
		t.Errorf("hero not applied: %+v", doc.Hero)
	}
	if doc.Navbar.CTALink != "https://cal.example/book" {
		t.Errorf("navbar link not applied: %q", doc.Navbar.CTALink)
	}
	if doc.Projects.Heading != "Recent Work" {
		t.Errorf("projects heading not applied: %q", doc.Projects.Heading)
	}
	if doc.About.SatisfiedClients != 6 || doc.About.ProjectsCompleted != 150 {
		t.Errorf("about numbers not coerced: %+v", doc.About)
	}
	if doc.About.Bio1 != "Hello, I edit video." {
		t.Errorf("quoted value mangled: %q", doc.About.Bio1)
	}
	if doc.Contact.Email != "hi@example.com" {
		t.Errorf("contact email not applied: %q", doc.Contact.Email)
	}
	if doc.Socials.Instagram != "https://instagram.example" {
		t.Errorf("social link not applied: %q", doc.Socials.Instagram)
	}

	// Indexed overwrite of an existing service, and growth past the
	// default four for a new index.
	if doc.Services[0].Title != "Editing" || doc.Services[0].Description != "Cuts and grades" {
		t.Errorf("service 0 not applied: %+v", doc.Services[0])
	}
	if len(doc.Services) != 5 || doc.Services[4].Title != "Consulting" {
		t.Errorf("service list should grow to index 4: %+v", doc.Services)
	}
	if doc.FAQ[0].Question != "How long?" || doc.FAQ[0].Answer != "About a week, usually." {
		t.Errorf("faq 0 not applied: %+v", doc.FAQ[0])
	}

	// Untouched fields keep defaults.
	def := content.Default()
	if doc.Hero.Subtitle != def.Hero.Subtitle {
		t.Error("untouched hero subtitle should keep its default")
	}
	if len(doc.Projects.Items) != len(def.Projects.Items) {
		t.Error("project items are not part of the csv format and must keep defaults")
	}
	if doc.Services[1].Title != def.Services[1].Title {
		t.Error("untouched services should keep defaults")
	}
}

func TestParseDocumentEmptySheet(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader("section,key,value\n"))
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	def := content.Default()
	if doc.Hero != def.Hero || doc.Contact != def.Contact {
		t.Error("empty sheet should yield the default document")
	}
}

func TestReadRowsSkipsMalformed(t *testing.T) {
	csv := "section,key,value\nhero,titleLine1,OK\n,missing,section\nabout,,missing key\nshort,row\n"
	rows, err := ReadRows(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}
	if len(rows) != 1 || rows[0].Value != "OK" {
		t.Errorf("expected 1 valid row, got %+v", rows)
	}
}

func TestApplyBadNumbers(t *testing.T) {
	doc := content.Default()
	Apply(doc, Row{Section: "about", Key: "yearsExp", Value: "many"})
	if doc.About.SatisfiedClients != 0 {
		t.Errorf("unparseable number should coerce to zero, got %d", doc.About.SatisfiedClients)
	}
}

func TestApplyIndexedBadKeys(t *testing.T) {
	doc := content.Default()
	before := len(doc.Services)
	Apply(doc, Row{Section: "services", Key: "notanumber_title", Value: "x"})
	Apply(doc, Row{Section: "services", Key: "-1_title", Value: "x"})
	Apply(doc, Row{Section: "services", Key: "nounderscore", Value: "x"})
	if len(doc.Services) != before {
		t.Errorf("bad indexed keys must be ignored, services grew to %d", len(doc.Services))
	}
}
