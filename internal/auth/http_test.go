// ABOUTME: Tests for HTTP JWT authentication middleware
// ABOUTME: Covers missing/invalid headers, bad tokens, and deleted users

package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Ayoubater23/taskmanager-backend/internal/store"
)

type stubUserLookup struct {
	users map[string]*store.User
}

func (s *stubUserLookup) GetUser(_ context.Context, id string) (*store.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return u, nil
}

func TestHTTPAuthMiddleware(t *testing.T) {
	verifier := newTestVerifier(t, testSecret)
	users := &stubUserLookup{users: map[string]*store.User{
		"user-1": {ID: "user-1", Email: "a@x.com"},
	}}

	var gotAuth *AuthContext
	handler := HTTPAuthMiddleware(users, verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	validToken, err := verifier.Generate("user-1", time.Hour)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	deletedUserToken, err := verifier.Generate("user-gone", time.Hour)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid token", "Bearer " + validToken, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc123", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"deleted user", "Bearer " + deletedUserToken, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotAuth = nil
			req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				if gotAuth == nil || gotAuth.UserID != "user-1" {
					t.Errorf("AuthContext = %+v, want user-1", gotAuth)
				}
			}
		})
	}
}
