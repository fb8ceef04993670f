// Package store owns the current content document and its loading and
// error flags. It is the only writer of the document; every rendering
// surface reads through Snapshot.
package store

import (
	"context"
	"sync"

	"github.com/tahajib/reelsite/internal/content"
)

// Loader produces a complete content document or fails.
type Loader interface {
	Fetch(ctx context.Context) (*content.Document, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context) (*content.Document, error)

func (f LoaderFunc) Fetch(ctx context.Context) (*content.Document, error) { return f(ctx) }

// Snapshot is the read surface every section consumes. IsLoading and
// IsError are informative but not exclusive: a prior successful load's
// content stays visible under a later error instead of blanking the UI.
type Snapshot struct {
	Content   *content.Document `json:"content"`
	IsLoading bool              `json:"isLoading"`
	IsError   bool              `json:"isError"`
}

// Store holds the document and flags. Overlapping loads are raced
// safely: each load takes a generation number and only the most
// recently started one may commit its result, so a slow stale response
// never overwrites a newer one.
type Store struct {
	mu      sync.Mutex
	loader  Loader
	content *content.Document
	loading bool
	errored bool
	gen     uint64

	onChange []func(Snapshot)
}

// New creates a store. The content is set to the complete default
// document immediately so the first paint never blocks on the network;
// the loading flag starts true until the first Load settles.
func New(loader Loader) *Store {
	return &Store{
		loader:  loader,
		content: content.Default(),
		loading: true,
	}
}

// Snapshot returns the current read state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{Content: s.content, IsLoading: s.loading, IsError: s.errored}
}

// OnChange registers a callback invoked (without the lock held) after
// every state transition. Used by the websocket change feed.
func (s *Store) OnChange(fn func(Snapshot)) {
	s.mu.Lock()
	s.onChange = append(s.onChange, fn)
	s.mu.Unlock()
}

// Load runs the loader once and commits the result. On success the
// document is replaced wholesale; on failure the last good document
// (default or previous) is kept and the error flag is raised. Either
// way the loading flag drops, so sections never spinner-lock.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.loading = true
	s.errored = false
	s.mu.Unlock()
	s.notify()

	doc, err := s.loader.Fetch(ctx)

	s.mu.Lock()
	if gen != s.gen {
		// A newer load started while this one was in flight; its
		// outcome wins and this one is discarded.
		s.mu.Unlock()
		return
	}
	s.loading = false
	if err != nil {
		s.errored = true
	} else {
		s.content = doc
	}
	s.mu.Unlock()
	s.notify()
}

// Retry re-runs the load with the same success/failure contract. It is
// safe to call while a load is already in flight.
func (s *Store) Retry(ctx context.Context) {
	s.Load(ctx)
}

func (s *Store) notify() {
	snap := s.Snapshot()
	s.mu.Lock()
	subs := make([]func(Snapshot), len(s.onChange))
	copy(subs, s.onChange)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(snap)
	}
}
