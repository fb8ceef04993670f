// Package fetch produces a complete content document from a remote
// tabular data source, merging partial data over the defaults.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Source is a remote tabular data source exposing the three content
// collections. A nil Source means "not configured" and is handled by
// Fetch, not by implementations.
type Source interface {
	// Links returns the key/URL pairs (booking, about_image, favicon,
	// social platforms).
	Links(ctx context.Context) ([]LinkRow, error)
	// Stats returns the key/number pairs (satisfied clients, projects
	// completed).
	Stats(ctx context.Context) ([]StatRow, error)
	// Projects returns the portfolio rows ordered by display_order
	// ascending.
	Projects(ctx context.Context) ([]ProjectRow, error)
}

// LinkRow is one key/URL pair from the links collection.
type LinkRow struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// StatRow is one key/number pair from the stats collection.
type StatRow struct {
	Key   string  `json:"key"`
	Value FlexInt `json:"value"`
}

// ProjectRow is one wire-format portfolio row. Field mapping to the
// semantic model is a snake-to-camel rename plus the stat coercion,
// nothing more.
type ProjectRow struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Category     string   `json:"category"`
	Thumbnail    string   `json:"thumbnail"`
	VideoURL     string   `json:"video_url"`
	Description  string   `json:"description"`
	Tools        []string `json:"tools"`
	DisplayOrder int      `json:"display_order"`
}

// FlexInt decodes a JSON number or a numeric string. Key/value stat
// tables frequently store values as text, while real numeric columns
// arrive as numbers.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parsing stat value %q: %w", s, err)
	}
	*f = FlexInt(int(n))
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(f))
}
