// Package common defines shared constants and sentinel errors used across
// the client and the mock backend. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Lookup errors.
	ErrorNotFound = errors.New("not found")

	// Account errors.
	ErrorAlreadyExists      = errors.New("already exists")
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Token errors (invalid, malformed or expired).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
