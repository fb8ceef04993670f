package fetch

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/tahajib/reelsite/internal/content"
)

// Fetch builds a complete content document from the source. The three
// collections are read concurrently; any single failure fails the
// whole operation and no partial document is returned. A nil source
// (remote not configured) yields the default document with no error,
// so the site runs with zero external configuration.
func Fetch(ctx context.Context, src Source) (*content.Document, error) {
	doc := content.Default()
	if src == nil {
		return doc, nil
	}

	var (
		links []LinkRow
		stats []StatRow
		rows  []ProjectRow
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		links, err = src.Links(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = src.Stats(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = src.Projects(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetching content: %w", err)
	}

	applyLinks(doc, links)
	applyStats(doc, stats)
	// Zero project rows keeps the default sample projects, so a freshly
	// provisioned data source never produces an empty site.
	if len(rows) > 0 {
		doc.Projects.Items = mapProjects(rows)
	}
	return doc, nil
}

func applyLinks(doc *content.Document, links []LinkRow) {
	for _, row := range links {
		switch row.Key {
		case "booking":
			doc.Navbar.CTALink = row.URL
			doc.About.CTALink = row.URL
		case "about_image":
			doc.About.Image = row.URL
		case "favicon":
			doc.Favicon = row.URL
		case "instagram":
			doc.Socials.Instagram = row.URL
		case "facebook":
			doc.Socials.Facebook = row.URL
		case "twitter":
			doc.Socials.Twitter = row.URL
		case "linkedin":
			doc.Socials.LinkedIn = row.URL
		}
	}
}

func applyStats(doc *content.Document, stats []StatRow) {
	for _, row := range stats {
		switch row.Key {
		case "years_experience", "satisfied_clients":
			doc.About.SatisfiedClients = int(row.Value)
		case "projects_completed":
			doc.About.ProjectsCompleted = int(row.Value)
		}
	}
}

func mapProjects(rows []ProjectRow) []content.Project {
	sorted := make([]ProjectRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DisplayOrder < sorted[j].DisplayOrder
	})

	items := make([]content.Project, len(sorted))
	for i, r := range sorted {
		tools := make([]string, len(r.Tools))
		copy(tools, r.Tools)
		items[i] = content.Project{
			ID:          r.ID,
			Title:       r.Title,
			Category:    r.Category,
			Thumbnail:   r.Thumbnail,
			VideoURL:    r.VideoURL,
			Description: r.Description,
			Tools:       tools,
		}
	}
	return items
}
