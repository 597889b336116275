// ABOUTME: Failure taxonomy for the workflow layer
// ABOUTME: Distinguishes not-found, access-denied, duplicate, and bad-credential failures

package service

import "errors"

// ErrNotFound is returned when a referenced user, project, or task does not exist.
var ErrNotFound = errors.New("resource not found")

// ErrAccessDenied is returned when a resource exists but the requesting user
// is not its owner, directly or through the task -> project -> user chain.
// It is deliberately distinct from ErrNotFound; the API layer decides whether
// to mask the difference from callers.
var ErrAccessDenied = errors.New("access denied")

// ErrEmailTaken is returned on registration when the email is already in use.
var ErrEmailTaken = errors.New("email already in use")

// ErrInvalidCredentials is returned on login when the email is unknown or the
// password doesn't match.
var ErrInvalidCredentials = errors.New("invalid email or password")
