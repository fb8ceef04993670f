package site

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tahajib/reelsite/internal/content"
	"github.com/tahajib/reelsite/internal/store"
)

func render(t *testing.T, snap store.Snapshot) string {
	t.Helper()
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, snap); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return buf.String()
}

func TestRenderDefaultDocument(t *testing.T) {
	html := render(t, store.Snapshot{Content: content.Default()})

	for _, want := range []string{
		"TAHAJIB", "Selected Works", "Video Editing", "FAQ",
		"mailto:contact.tahajib@gmail.com",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(html, "carousel-skeleton") {
		t.Error("settled page should not render the skeleton")
	}
	if strings.Contains(html, "error-banner") {
		t.Error("healthy page should not render the error banner")
	}
}

func TestRenderGroupsCarouselsByCategory(t *testing.T) {
	doc := content.Default()
	doc.Projects.Items = []content.Project{
		{ID: 1, Title: "A", Category: "Motion Graphics"},
		{ID: 2, Title: "B", Category: "motion-graphics"},
		{ID: 3, Title: "C", Category: "Video Editing"},
	}
	html := render(t, store.Snapshot{Content: doc})

	if got := strings.Count(html, `data-category="motiongraphics"`); got != 1 {
		t.Errorf("expected exactly one motiongraphics carousel, got %d", got)
	}
	if got := strings.Count(html, `data-category="videoediting"`); got != 1 {
		t.Errorf("expected exactly one videoediting carousel, got %d", got)
	}
	// A category with no projects gets no shell at all.
	if strings.Contains(html, `data-category="socialmedia"`) {
		t.Error("empty category must not render a carousel shell")
	}
}

func TestRenderLoadingSkeleton(t *testing.T) {
	html := render(t, store.Snapshot{Content: content.Default(), IsLoading: true})

	if !strings.Contains(html, "carousel-skeleton") {
		t.Error("loading page should reserve a skeleton placeholder")
	}
	if strings.Contains(html, `class="carousel"`) {
		t.Error("loading page should not render carousels yet")
	}
}

func TestRenderErrorBannerKeepsContent(t *testing.T) {
	doc := content.Default()
	doc.Hero.TitleLine1 = "LASTGOOD"
	html := render(t, store.Snapshot{Content: doc, IsError: true})

	if !strings.Contains(html, "error-banner") {
		t.Error("error state should render the banner")
	}
	if !strings.Contains(html, "/api/content/retry") {
		t.Error("error banner should offer a retry action")
	}
	if !strings.Contains(html, "LASTGOOD") {
		t.Error("error state must keep the last-good content visible")
	}
}

func TestRenderEmbedsNormalizedVideoURLs(t *testing.T) {
	doc := content.Default()
	doc.Projects.Items = []content.Project{
		{ID: 1, Title: "A", Category: "Work", VideoURL: "https://youtu.be/ScMzIvxBSi4"},
	}
	html := render(t, store.Snapshot{Content: doc})

	if !strings.Contains(html, "https://www.youtube.com/embed/ScMzIvxBSi4?autoplay=1") {
		t.Error("raw video URL should be rewritten to the embed form")
	}
}

func TestRenderFallbackBreakdown(t *testing.T) {
	doc := content.Default()
	doc.Projects.Items = []content.Project{{ID: 1, Title: "A", Category: "Work"}}
	html := render(t, store.Snapshot{Content: doc})

	if !strings.Contains(html, "Deliver a polished, on-brand final cut") {
		t.Error("project without breakdown should render the generic triple")
	}
}

func TestRenderMarkdownInFAQ(t *testing.T) {
	doc := content.Default()
	doc.FAQ = []content.FAQItem{{Question: "Q?", Answer: "Up to **3 revisions** included."}}
	html := render(t, store.Snapshot{Content: doc})

	if !strings.Contains(html, "<strong>3 revisions</strong>") {
		t.Error("faq answers should render markdown")
	}
}
