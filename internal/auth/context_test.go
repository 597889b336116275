// ABOUTME: Unit tests for AuthContext propagation through context.Context
// ABOUTME: Tests WithAuth, FromContext, and MustFromContext behavior

package auth

import (
	"context"
	"testing"
)

func TestWithAuthAndFromContext(t *testing.T) {
	authCtx := &AuthContext{UserID: "user-1", Email: "a@x.com"}
	ctx := WithAuth(context.Background(), authCtx)

	got := FromContext(ctx)
	if got == nil {
		t.Fatal("FromContext() = nil, want AuthContext")
	}
	if got.UserID != "user-1" {
		t.Errorf("UserID = %q, want %q", got.UserID, "user-1")
	}
}

func TestFromContextMissing(t *testing.T) {
	if got := FromContext(context.Background()); got != nil {
		t.Errorf("FromContext() = %v, want nil", got)
	}
}

func TestMustFromContextPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustFromContext() expected panic on missing AuthContext")
		}
	}()
	MustFromContext(context.Background())
}
