// Package service implements the task manager's workflows: authentication,
// project management, and task management.
//
// Every project and task operation verifies the requesting user owns the
// addressed resource before acting. Projects are owned directly; tasks are
// owned through their project. The shared predicates live in ownership.go
// so the check is written once.
//
// Failures are typed sentinels (ErrNotFound, ErrAccessDenied, ErrEmailTaken,
// ErrInvalidCredentials) and are never swallowed or retried; callers map
// them to transport-level responses.
//
// Services declare the narrow store interface they consume and are handed
// the SQLite store (or any other implementation) at construction.
package service
