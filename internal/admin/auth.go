package admin

import (
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// sessions is the in-memory token set behind the editor's password
// gate. The gate is intentionally trivial (single shared password,
// tokens live until restart); hardening it is out of scope.
type sessions struct {
	mu       sync.Mutex
	password string
	tokens   map[string]bool
}

func newSessions(password string) *sessions {
	return &sessions{password: password, tokens: make(map[string]bool)}
}

// login exchanges the correct password for a bearer token.
func (s *sessions) login(password string) (string, bool) {
	if password != s.password {
		return "", false
	}
	token := uuid.New().String()
	s.mu.Lock()
	s.tokens[token] = true
	s.mu.Unlock()
	return token, true
}

func (s *sessions) valid(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens[token]
}

// requireAuth rejects requests without a valid bearer token.
func (s *sessions) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" || !s.valid(token) {
			http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
