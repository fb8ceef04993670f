package admin

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tahajib/reelsite/internal/fetch"
)

// RegisterRoutes mounts the editor API. onMutate runs after every
// successful write so the server can reload the content store and push
// the change to connected pages.
func RegisterRoutes(r chi.Router, store *Store, password string, onMutate func()) {
	s := newSessions(password)
	if onMutate == nil {
		onMutate = func() {}
	}

	r.Route("/api/admin", func(r chi.Router) {
		r.Post("/login", handleLogin(s))

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Put("/links/{key}", handleUpsertLink(store, onMutate))
			r.Put("/stats/{key}", handleUpsertStat(store, onMutate))
			r.Put("/text/{section}/{key}", handleSetText(store, onMutate))
			r.Post("/projects", handleUpsertProject(store, onMutate))
			r.Delete("/projects/{id}", handleDeleteProject(store, onMutate))
		})
	})
}

type loginRequest struct {
	Password string `json:"password"`
}

func handleLogin(s *sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		token, ok := s.login(req.Password)
		if !ok {
			http.Error(w, `{"error":"wrong password"}`, http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"token": token})
	}
}

type urlRequest struct {
	URL string `json:"url"`
}

func handleUpsertLink(store *Store, onMutate func()) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req urlRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
			http.Error(w, `{"error":"url is required"}`, http.StatusBadRequest)
			return
		}
		if err := store.UpsertLink(r.Context(), chi.URLParam(r, "key"), req.URL); err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}
		onMutate()
		w.WriteHeader(http.StatusNoContent)
	}
}

type valueRequest struct {
	Value int `json:"value"`
}

func handleUpsertStat(store *Store, onMutate func()) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req valueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.Value < 0 {
			http.Error(w, `{"error":"value must be non-negative"}`, http.StatusBadRequest)
			return
		}
		if err := store.UpsertStat(r.Context(), chi.URLParam(r, "key"), req.Value); err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}
		onMutate()
		w.WriteHeader(http.StatusNoContent)
	}
}

type textRequest struct {
	Value string `json:"value"`
}

func handleSetText(store *Store, onMutate func()) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req textRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if err := store.SetText(r.Context(), chi.URLParam(r, "section"), chi.URLParam(r, "key"), req.Value); err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}
		onMutate()
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleUpsertProject(store *Store, onMutate func()) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var row fetch.ProjectRow
		if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if row.ID <= 0 {
			http.Error(w, `{"error":"id must be positive"}`, http.StatusBadRequest)
			return
		}
		if err := store.UpsertProject(r.Context(), row); err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}
		onMutate()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(row)
	}
}

func handleDeleteProject(store *Store, onMutate func()) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, `{"error":"invalid id"}`, http.StatusBadRequest)
			return
		}
		if err := store.DeleteProject(r.Context(), id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
				return
			}
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}
		onMutate()
		w.WriteHeader(http.StatusNoContent)
	}
}
