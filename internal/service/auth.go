// ABOUTME: Authentication workflow: user registration and login
// ABOUTME: Issues JWT session tokens bound to the user's identity

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Ayoubater23/taskmanager-backend/internal/auth"
	"github.com/Ayoubater23/taskmanager-backend/internal/store"
)

// AuthUserStore defines the store operations the authentication workflow needs.
type AuthUserStore interface {
	CreateUser(ctx context.Context, user *store.User) error
	GetUserByEmail(ctx context.Context, email string) (*store.User, error)
}

// AuthResult carries the session credential issued on register or login.
type AuthResult struct {
	Token  string
	UserID string
}

// AuthService registers new users and logs in existing ones.
type AuthService struct {
	users    AuthUserStore
	tokens   auth.TokenIssuer
	tokenTTL time.Duration
	logger   *slog.Logger
}

// NewAuthService creates an AuthService. tokenTTL bounds the lifetime of
// issued session tokens.
func NewAuthService(users AuthUserStore, tokens auth.TokenIssuer, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		tokens:   tokens,
		tokenTTL: tokenTTL,
		logger:   slog.Default().With("component", "auth-service"),
	}
}

// Register creates a new user with a hashed password and issues a session
// token. Returns ErrEmailTaken if the email is already registered; in that
// case no user is persisted.
func (s *AuthService) Register(ctx context.Context, email, password string) (*AuthResult, error) {
	_, err := s.users.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("checking email: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &store.User{
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		// A concurrent registration can win the race between the lookup
		// above and this insert
		if errors.Is(err, store.ErrEmailExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	token, err := s.tokens.Generate(user.ID, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	s.logger.Info("registered user", "user_id", user.ID)
	return &AuthResult{Token: token, UserID: user.ID}, nil
}

// Login verifies the email/password pair and issues a session token.
// Returns ErrInvalidCredentials on unknown email or password mismatch;
// the two cases are indistinguishable to the caller, including by timing.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		auth.DummyCompare(password)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return &AuthResult{Token: token, UserID: user.ID}, nil
}
