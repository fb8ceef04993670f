package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/tahajib/reelsite/internal/content"
	"github.com/tahajib/reelsite/internal/db"
	"github.com/tahajib/reelsite/internal/fetch"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("opening in-memory db: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestStoreRoundTripThroughFetch(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)

	if err := store.UpsertLink(ctx, "booking", "https://cal.example/book"); err != nil {
		t.Fatal(err)
	}
	if err := store.UpsertStat(ctx, "projects_completed", 321); err != nil {
		t.Fatal(err)
	}
	if err := store.UpsertProject(ctx, fetch.ProjectRow{
		ID: 2, Title: "Second", Category: "Video Editing", DisplayOrder: 2,
		Tools: []string{"Premiere Pro"},
	}); err != nil {
		t.Fatal(err)
	}
	if err := store.UpsertProject(ctx, fetch.ProjectRow{
		ID: 1, Title: "First", Category: "Motion Graphics", DisplayOrder: 1,
	}); err != nil {
		t.Fatal(err)
	}

	// The local store feeds the same pipeline as the remote source.
	doc, err := fetch.Fetch(ctx, store)
	if err != nil {
		t.Fatalf("Fetch over local store failed: %v", err)
	}
	if doc.Navbar.CTALink != "https://cal.example/book" {
		t.Errorf("booking link not merged: %q", doc.Navbar.CTALink)
	}
	if doc.About.ProjectsCompleted != 321 {
		t.Errorf("stat not merged: %d", doc.About.ProjectsCompleted)
	}
	if len(doc.Projects.Items) != 2 || doc.Projects.Items[0].ID != 1 {
		t.Errorf("projects not replaced in display order: %+v", doc.Projects.Items)
	}
	if doc.Projects.Items[1].Tools[0] != "Premiere Pro" {
		t.Error("tools did not survive the round trip")
	}
}

func TestEmptyStoreKeepsDefaults(t *testing.T) {
	doc, err := fetch.Fetch(context.Background(), testStore(t))
	if err != nil {
		t.Fatalf("Fetch over empty store failed: %v", err)
	}
	def := content.Default()
	if len(doc.Projects.Items) != len(def.Projects.Items) {
		t.Error("empty local store should keep the default sample projects")
	}
}

func TestUpsertOverwrites(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)

	store.UpsertLink(ctx, "favicon", "https://a.example/fav.ico")
	store.UpsertLink(ctx, "favicon", "https://b.example/fav.ico")

	links, err := store.Links(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(links) != 1 || links[0].URL != "https://b.example/fav.ico" {
		t.Errorf("upsert should overwrite: %+v", links)
	}
}

func TestDeleteProject(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)

	store.UpsertProject(ctx, fetch.ProjectRow{ID: 5, Title: "X"})
	if err := store.DeleteProject(ctx, 5); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := store.DeleteProject(ctx, 5); err == nil {
		t.Error("deleting a missing project should fail")
	}
}

func TestLoaderOverlaysTextRows(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)

	store.SetText(ctx, "hero", "titleLine1", "LOCAL TITLE")
	store.SetText(ctx, "about", "yearsExp", "9")
	store.UpsertLink(ctx, "favicon", "https://local.example/fav.ico")

	doc, err := NewLoader(store).Fetch(ctx)
	if err != nil {
		t.Fatalf("loader failed: %v", err)
	}
	if doc.Hero.TitleLine1 != "LOCAL TITLE" {
		t.Errorf("text row not overlaid: %q", doc.Hero.TitleLine1)
	}
	if doc.About.SatisfiedClients != 9 {
		t.Errorf("numeric text row not coerced: %d", doc.About.SatisfiedClients)
	}
	if doc.Favicon != "https://local.example/fav.ico" {
		t.Errorf("link not merged alongside text rows: %q", doc.Favicon)
	}
}

func newTestServer(t *testing.T, store *Store, onMutate func()) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	RegisterRoutes(r, store, "hunter2", onMutate)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func login(t *testing.T, srv *httptest.Server, password string) (string, int) {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"password": password})
	resp, err := http.Post(srv.URL+"/api/admin/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", resp.StatusCode
	}
	var out map[string]string
	json.NewDecoder(resp.Body).Decode(&out)
	return out["token"], resp.StatusCode
}

func TestLoginGate(t *testing.T) {
	srv := newTestServer(t, testStore(t), nil)

	if _, code := login(t, srv, "wrong"); code != http.StatusUnauthorized {
		t.Errorf("wrong password: expected 401, got %d", code)
	}
	token, code := login(t, srv, "hunter2")
	if code != http.StatusOK || token == "" {
		t.Fatalf("login failed: code=%d token=%q", code, token)
	}
}

func TestMutationsRequireAuth(t *testing.T) {
	srv := newTestServer(t, testStore(t), nil)

	req, _ := http.NewRequest(http.MethodPut, srv.URL+"/api/admin/links/booking",
		bytes.NewReader([]byte(`{"url":"https://x.example"}`)))
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("unauthenticated write: expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthorizedMutationTriggersReload(t *testing.T) {
	store := testStore(t)
	mutations := 0
	srv := newTestServer(t, store, func() { mutations++ })

	token, _ := login(t, srv, "hunter2")

	req, _ := http.NewRequest(http.MethodPut, srv.URL+"/api/admin/links/booking",
		bytes.NewReader([]byte(`{"url":"https://x.example"}`)))
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}
	if mutations != 1 {
		t.Errorf("expected one mutation callback, got %d", mutations)
	}

	links, _ := store.Links(context.Background())
	if len(links) != 1 || links[0].URL != "https://x.example" {
		t.Errorf("link not written: %+v", links)
	}
}

func TestProjectEndpointValidation(t *testing.T) {
	srv := newTestServer(t, testStore(t), nil)
	token, _ := login(t, srv, "hunter2")

	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/admin/projects",
		bytes.NewReader([]byte(`{"id":0,"title":"bad"}`)))
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("non-positive id: expected 400, got %d", resp.StatusCode)
	}
}
