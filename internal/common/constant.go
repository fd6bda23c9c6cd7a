// Package common contains shared constants and sentinel errors used across
// VidMarkt components.
package common

const (
	// RequestIDHeaderName carries a per-request correlation id on outbound calls.
	RequestIDHeaderName = "X-Request-ID"

	// AuthorizationHeaderName carries the bearer access token.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix precedes the access token in AuthorizationHeaderName.
	BearerPrefix = "Bearer "
)
