package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// SupabaseSource reads the three content tables through the Supabase
// PostgREST API using the anon key.
type SupabaseSource struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewSupabaseSource creates a source for the given project URL and anon
// key. Callers should only construct one when both values are set; an
// unconfigured deployment passes a nil Source to Fetch instead.
func NewSupabaseSource(baseURL, apiKey string) *SupabaseSource {
	return &SupabaseSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{},
	}
}

func (s *SupabaseSource) Links(ctx context.Context) ([]LinkRow, error) {
	var rows []LinkRow
	if err := s.get(ctx, "links", "select=key,url", &rows); err != nil {
		return nil, fmt.Errorf("reading links: %w", err)
	}
	return rows, nil
}

func (s *SupabaseSource) Stats(ctx context.Context) ([]StatRow, error) {
	var rows []StatRow
	if err := s.get(ctx, "stats", "select=key,value", &rows); err != nil {
		return nil, fmt.Errorf("reading stats: %w", err)
	}
	return rows, nil
}

func (s *SupabaseSource) Projects(ctx context.Context) ([]ProjectRow, error) {
	var rows []ProjectRow
	if err := s.get(ctx, "projects", "select=*&order=display_order.asc", &rows); err != nil {
		return nil, fmt.Errorf("reading projects: %w", err)
	}
	return rows, nil
}

func (s *SupabaseSource) get(ctx context.Context, table, query string, out any) error {
	url := fmt.Sprintf("%s/rest/v1/%s?%s", s.baseURL, table, query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("querying %s: %w", table, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s response: %w", table, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d: %s", table, resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unmarshalling %s rows: %w", table, err)
	}
	return nil
}
