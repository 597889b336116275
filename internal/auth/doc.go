// Package auth provides authentication for the task manager.
//
// # Authentication Method
//
// Users authenticate with email and password. Passwords are hashed with
// bcrypt; sessions are stateless JWT tokens signed with HS256 using the
// configured jwt_secret.
//
// # Token Management
//
// Tokens carry the user ID in the "sub" claim plus iat/exp:
//
//	verifier, err := NewJWTVerifier(secret)
//	token, err := verifier.Generate(userID, ttl)
//	userID, err := verifier.Verify(token)
//
// # HTTP Middleware
//
// HTTPAuthMiddleware validates the bearer token, resolves the user against
// the store, and attaches an AuthContext to the request context. Handlers
// retrieve it with FromContext or MustFromContext.
package auth
