package admin

import (
	"context"

	"github.com/tahajib/reelsite/internal/content"
	"github.com/tahajib/reelsite/internal/csvimport"
	"github.com/tahajib/reelsite/internal/fetch"
)

// Loader builds a content document from the local database: the three
// collections run through the shared fetch/merge pipeline, then the
// flat text rows (imported from legacy sheets or edited directly) are
// overlaid on top.
type Loader struct {
	store *Store
}

// NewLoader creates a Loader over the given store.
func NewLoader(store *Store) *Loader {
	return &Loader{store: store}
}

// Fetch implements store.Loader.
func (l *Loader) Fetch(ctx context.Context) (*content.Document, error) {
	doc, err := fetch.Fetch(ctx, l.store)
	if err != nil {
		return nil, err
	}
	rows, err := l.store.TextRows(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		csvimport.Apply(doc, row)
	}
	return doc, nil
}
