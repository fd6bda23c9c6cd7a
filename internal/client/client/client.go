package client

import (
	"context"

	"github.com/dmitrijs2005/vidmarkt/internal/client/models"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Login(ctx context.Context, username, password string) (*models.LoginResponse, error)
	CreateUser(ctx context.Context, req models.SignUpRequest) error
	Register(ctx context.Context, req models.RegisterRequest) error
	SetAccessToken(token string)

	SearchEvents(ctx context.Context, query string) ([]models.Suggestion, error)
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	GetSeason(ctx context.Context, id string) (*models.Season, error)
	GetMedia(ctx context.Context, id string) (*models.Media, error)

	PlaceOrder(ctx context.Context, req models.OrderRequest) (*models.OrderResponse, error)
}
