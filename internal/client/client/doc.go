// Package client contains client-side building blocks for HomeFinder.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract for the remote account service (see the
//     Backend interface): Login, Register, RequestPasswordReset and session
//     token handling.
//  2. LocalBackend, an in-process implementation that stands in for the remote
//     service. It simulates network latency and, in strict mode, checks
//     credentials against a local account registry.
//  3. Local persistence bootstrap utilities (InitDatabase, OpenDatabase,
//     RunMigrations) wiring an SQLite database and applying embedded goose
//     migrations.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnauthorized, ErrAccountExists, ErrInvalidUserType,
// ErrTokenMismatch.
//
// # Concurrency & Contexts
//
// LocalBackend is safe for concurrent use. All blocking operations accept
// context.Context and return ctx.Err() once it is cancelled.
package client
