package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/vidmarkt/internal/client/models"
	"github.com/dmitrijs2005/vidmarkt/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/vidmarkt/internal/dbx"
)

// SQLiteStore persists the record in the local metadata table: the user
// object as JSON under UserKey and the access token under TokenKey.
type SQLiteStore struct {
	db   *sql.DB
	repo func(db dbx.DBTX) metadata.Repository
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{
		db: db,
		repo: func(db dbx.DBTX) metadata.Repository {
			return metadata.NewSQLiteRepository(db)
		},
	}
}

// Get reads the user and the token in one statement so a concurrent Set
// from another process cannot produce a mixed record.
func (s *SQLiteStore) Get(ctx context.Context) (*models.Session, error) {
	var values map[string][]byte
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		values, err = s.repo(tx).GetMany(ctx, UserKey, TokenKey)
		return err
	})
	if err != nil {
		return nil, err
	}

	raw, ok := values[UserKey]
	if !ok || raw == nil {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}

	return &models.Session{User: user, Token: string(values[TokenKey])}, nil
}

func (s *SQLiteStore) Set(ctx context.Context, sess *models.Session) error {
	if sess == nil {
		return ErrNilSession
	}

	raw, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, UserKey, raw); err != nil {
			return err
		}
		if sess.Token == "" {
			return repo.Delete(ctx, TokenKey)
		}
		return repo.Set(ctx, TokenKey, []byte(sess.Token))
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return s.repo(s.db).Delete(ctx, UserKey, TokenKey)
}
