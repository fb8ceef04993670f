// Package admin is the CMS-lite editor: a local SQLite content store
// plus the trivially-gated HTTP API that edits it. The store implements
// fetch.Source, so an admin-edited database feeds the exact same
// fetch/merge pipeline as the remote source.
package admin

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/tahajib/reelsite/internal/csvimport"
	"github.com/tahajib/reelsite/internal/db"
	"github.com/tahajib/reelsite/internal/fetch"
)

// Store provides CRUD operations over the local content tables.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Links implements fetch.Source.
func (s *Store) Links(ctx context.Context) ([]fetch.LinkRow, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, url FROM site_links ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("querying links: %w", err)
	}
	defer rows.Close()

	var out []fetch.LinkRow
	for rows.Next() {
		var r fetch.LinkRow
		if err := rows.Scan(&r.Key, &r.URL); err != nil {
			return nil, fmt.Errorf("scanning link row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Stats implements fetch.Source.
func (s *Store) Stats(ctx context.Context) ([]fetch.StatRow, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM site_stats ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("querying stats: %w", err)
	}
	defer rows.Close()

	var out []fetch.StatRow
	for rows.Next() {
		var key string
		var value int
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scanning stat row: %w", err)
		}
		out = append(out, fetch.StatRow{Key: key, Value: fetch.FlexInt(value)})
	}
	return out, rows.Err()
}

// Projects implements fetch.Source. Tools are stored as a JSON array.
func (s *Store) Projects(ctx context.Context) ([]fetch.ProjectRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, category, thumbnail, video_url, description, tools, display_order
		FROM site_projects ORDER BY display_order ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer rows.Close()

	var out []fetch.ProjectRow
	for rows.Next() {
		var r fetch.ProjectRow
		var tools string
		if err := rows.Scan(&r.ID, &r.Title, &r.Category, &r.Thumbnail, &r.VideoURL, &r.Description, &tools, &r.DisplayOrder); err != nil {
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		if err := json.Unmarshal([]byte(tools), &r.Tools); err != nil {
			return nil, fmt.Errorf("decoding tools for project %d: %w", r.ID, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// UpsertLink writes one key/URL pair.
func (s *Store) UpsertLink(ctx context.Context, key, url string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO site_links (key, url) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET url = excluded.url`, key, url)
	if err != nil {
		return fmt.Errorf("upserting link %q: %w", key, err)
	}
	return nil
}

// UpsertStat writes one key/number pair.
func (s *Store) UpsertStat(ctx context.Context, key string, value int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO site_stats (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("upserting stat %q: %w", key, err)
	}
	return nil
}

// UpsertProject writes one project row.
func (s *Store) UpsertProject(ctx context.Context, row fetch.ProjectRow) error {
	tools, err := json.Marshal(row.Tools)
	if err != nil {
		return fmt.Errorf("encoding tools: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO site_projects (id, title, category, thumbnail, video_url, description, tools, display_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			category = excluded.category,
			thumbnail = excluded.thumbnail,
			video_url = excluded.video_url,
			description = excluded.description,
			tools = excluded.tools,
			display_order = excluded.display_order`,
		row.ID, row.Title, row.Category, row.Thumbnail, row.VideoURL, row.Description, string(tools), row.DisplayOrder)
	if err != nil {
		return fmt.Errorf("upserting project %d: %w", row.ID, err)
	}
	return nil
}

// DeleteProject removes one project row.
func (s *Store) DeleteProject(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM site_projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SetText writes one legacy (section, key, value) text row.
func (s *Store) SetText(ctx context.Context, section, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO site_text (section, key, value) VALUES (?, ?, ?)
		ON CONFLICT(section, key) DO UPDATE SET value = excluded.value`, section, key, value)
	if err != nil {
		return fmt.Errorf("upserting text %s/%s: %w", section, key, err)
	}
	return nil
}

// TextRows returns all stored text rows for overlaying onto defaults.
func (s *Store) TextRows(ctx context.Context) ([]csvimport.Row, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT section, key, value FROM site_text ORDER BY section, key`)
	if err != nil {
		return nil, fmt.Errorf("querying text rows: %w", err)
	}
	defer rows.Close()

	var out []csvimport.Row
	for rows.Next() {
		var r csvimport.Row
		if err := rows.Scan(&r.Section, &r.Key, &r.Value); err != nil {
			return nil, fmt.Errorf("scanning text row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
