// ABOUTME: Shared test helpers for service package tests
// ABOUTME: Provides a real SQLite store and wired-up services per test

package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Ayoubater23/taskmanager-backend/internal/auth"
	"github.com/Ayoubater23/taskmanager-backend/internal/store"
)

// testSecret is a 32-byte secret that meets auth.MinSecretLength.
var testSecret = []byte("service-layer-test-secret-32byte")

func createTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("failed to create SQLite store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func createAuthService(t *testing.T, s *store.SQLiteStore) *AuthService {
	t.Helper()
	verifier, err := auth.NewJWTVerifier(testSecret)
	require.NoError(t, err)
	return NewAuthService(s, verifier, time.Hour)
}

// registerTestUser registers a user through the real workflow and returns
// the new user's id.
func registerTestUser(t *testing.T, s *store.SQLiteStore, email string) string {
	t.Helper()
	authSvc := createAuthService(t, s)
	result, err := authSvc.Register(context.Background(), email, "correct-horse-battery")
	require.NoError(t, err)
	return result.UserID
}
