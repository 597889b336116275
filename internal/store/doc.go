// Package store provides persistent storage for the task manager using SQLite.
//
// # Architecture
//
// The store package uses an interface-driven architecture with specialized
// interfaces:
//
//   - UserStore: Account creation and lookup by id or email
//   - ProjectStore: Project CRUD plus per-project task counts
//   - TaskStore: Task CRUD plus filtered search within a project
//
// SQLiteStore implements all interfaces in a single struct, allowing easy
// composition while maintaining clear interface boundaries. Services declare
// the narrow interface they consume.
//
// # Ownership
//
// Projects reference their owning user and tasks reference their project via
// foreign keys. Deleting a project cascade-deletes its tasks. The store does
// not enforce request-level authorization; that is the service layer's job.
//
// # SQLite Configuration
//
// The store uses SQLite with WAL mode for concurrent reads:
//
//	PRAGMA journal_mode=WAL;
//	PRAGMA foreign_keys=ON;
//
// # Error Handling
//
// Common errors:
//
//   - ErrNotFound: Requested entity does not exist
//   - ErrEmailExists: Email already registered
//
// All methods accept context.Context for cancellation support.
//
// # Testing
//
// Use NewSQLiteStore(":memory:") for tests with a real in-memory database.
package store
