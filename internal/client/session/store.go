// Package session keeps the logged-in user's record between runs.
//
// The record is written after a successful login, read back on start-up to
// decide whether the user is authenticated, and removed on logout. Its
// presence is the only proof of login: there is no expiry and no server-side
// revalidation. Writes are last-writer-wins.
package session

import (
	"context"
	"errors"
	"slices"

	"github.com/dmitrijs2005/vidmarkt/internal/client/models"
)

// Keys under which the record is persisted.
const (
	UserKey  = "user"
	TokenKey = "token"
)

var (
	ErrNilSession = errors.New("session is nil")
	ErrCorrupted  = errors.New("session record is corrupted")
)

// Store is the injectable session context. Get returns (nil, nil) when no
// one is logged in.
type Store interface {
	Get(ctx context.Context) (*models.Session, error)
	Set(ctx context.Context, s *models.Session) error
	Clear(ctx context.Context) error
}

func clone(s *models.Session) *models.Session {
	c := *s
	c.User.Roles = slices.Clone(s.User.Roles)
	return &c
}
