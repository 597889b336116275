// Package api exposes the task manager's workflows over HTTP.
//
// Routes are registered on a standard ServeMux with Go 1.22 method
// patterns. Registration and login are public; everything else requires a
// bearer token validated by the auth middleware, and handlers read the
// acting user from the request context.
//
// Responses are JSON. Failures use the {"error": "..."} envelope with the
// workflow sentinels mapped to 404 (not found), 403 (access denied),
// 409 (duplicate email), and 401 (bad credentials).
package api
