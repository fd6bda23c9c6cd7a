// Package client contains client-side building blocks for VidMarkt.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) for the
//     marketplace backend: Login/CreateUser/Register, catalog lookups
//     (SearchEvents, GetEvent, GetSeason, GetMedia), PlaceOrder and Ping.
//  2. A JSON-over-HTTP implementation (see HTTPClient) that stamps every
//     request with an X-Request-ID, sends the access token as a bearer
//     header, validates decoded bodies against the model schemas, and maps
//     HTTP statuses to sentinel errors.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations) for
//     the CLI, wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound, ErrConflict,
// ErrInvalidResponse and ErrUnexpectedStatus.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation; a cancelled context is returned
// as is rather than reported as ErrUnavailable.
package client
