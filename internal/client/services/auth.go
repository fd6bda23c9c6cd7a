// Package services contains application services for the VidMarkt client.
// This file defines the authentication service: login and logout against
// the session store, the two registration flows, and the liveness probe.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/vidmarkt/internal/client/client"
	"github.com/dmitrijs2005/vidmarkt/internal/client/forms"
	"github.com/dmitrijs2005/vidmarkt/internal/client/models"
	"github.com/dmitrijs2005/vidmarkt/internal/client/session"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate against the server and persist the session record.
//   - Logout: remove the session record and forget the access token.
//   - CurrentSession: read the session record; nil means logged out.
//   - Resume: like CurrentSession, and re-arm the client with the stored token.
//   - SignUp / Register: create an account (POST /user, POST /api/register).
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) (*models.Session, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (*models.Session, error)
	Resume(ctx context.Context) (*models.Session, error)
	SignUp(ctx context.Context, form forms.SignUpForm) error
	Register(ctx context.Context, form forms.RegisterForm) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	store  session.Store
}

func NewAuthService(client client.Client, store session.Store) AuthService {
	return &authService{client: client, store: store}
}

// Login validates the credentials, authenticates and stores the session
// built from the server's user object. Nothing is stored on failure.
func (a *authService) Login(ctx context.Context, username string, password []byte) (*models.Session, error) {
	form := forms.LoginForm{Username: username, Password: string(password)}
	if err := form.Validate(); err != nil {
		return nil, err
	}

	resp, err := a.client.Login(ctx, form.Username, form.Password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	s := &models.Session{User: *resp.User, Token: resp.AccessToken}
	if err := a.store.Set(ctx, s); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return s, nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.client.SetAccessToken("")
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("session clearing error: %w", err)
	}
	return nil
}

func (a *authService) CurrentSession(ctx context.Context) (*models.Session, error) {
	return a.store.Get(ctx)
}

func (a *authService) Resume(ctx context.Context) (*models.Session, error) {
	s, err := a.store.Get(ctx)
	if err != nil || s == nil {
		return nil, err
	}
	a.client.SetAccessToken(s.Token)
	return s, nil
}

func (a *authService) SignUp(ctx context.Context, form forms.SignUpForm) error {
	if err := form.Validate(); err != nil {
		return err
	}
	if err := a.client.CreateUser(ctx, form.Request()); err != nil {
		return fmt.Errorf("sign up error: %w", err)
	}
	return nil
}

func (a *authService) Register(ctx context.Context, form forms.RegisterForm) error {
	if err := form.Validate(); err != nil {
		return err
	}
	if err := a.client.Register(ctx, form.Request()); err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	return nil
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
