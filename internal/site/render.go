// Package site renders the single-page site from a content snapshot.
package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"

	"github.com/tahajib/reelsite/internal/content"
	"github.com/tahajib/reelsite/internal/store"
	"github.com/tahajib/reelsite/internal/video"
)

// Renderer turns a store snapshot into the page HTML.
type Renderer struct {
	tmpl *template.Template
	md   goldmark.Markdown
}

// NewRenderer parses the page template.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return &Renderer{tmpl: tmpl, md: goldmark.New()}, nil
}

// pageData is the template's view model.
type pageData struct {
	Doc       *content.Document
	IsLoading bool
	IsError   bool
	Bio1      template.HTML
	Bio2      template.HTML
	Sections  []sectionView
	FAQ       []faqView
}

type sectionView struct {
	Key   string
	Name  string
	Cards []cardView
}

type cardView struct {
	Project   content.Project
	EmbedURL  string
	Breakdown content.Breakdown
}

type faqView struct {
	Question string
	Answer   template.HTML
}

// Render writes the page for the given snapshot. While loading, the
// projects area renders a skeleton placeholder instead of carousels;
// on error, a banner with a retry action appears above the last-good
// content (the page is never blanked).
func (r *Renderer) Render(w io.Writer, snap store.Snapshot) error {
	doc := snap.Content
	data := pageData{
		Doc:       doc,
		IsLoading: snap.IsLoading,
		IsError:   snap.IsError,
		Bio1:      r.markdown(doc.About.Bio1),
		Bio2:      r.markdown(doc.About.Bio2),
	}

	for _, sec := range content.Sections(doc.Projects.Items) {
		view := sectionView{Key: sec.Key, Name: sec.Name}
		for _, p := range sec.Projects {
			card := cardView{Project: p, Breakdown: content.ResolveBreakdown(p)}
			if p.VideoURL != "" {
				card.EmbedURL = video.EmbedURL(p.VideoURL)
			}
			view.Cards = append(view.Cards, card)
		}
		data.Sections = append(data.Sections, view)
	}

	for _, item := range doc.FAQ {
		data.FAQ = append(data.FAQ, faqView{Question: item.Question, Answer: r.markdown(item.Answer)})
	}

	return r.tmpl.Execute(w, data)
}

// markdown renders untrusted-ish CMS text. The content comes from the
// site owner's own data source, so goldmark's default escaping policy
// is enough.
func (r *Renderer) markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}
