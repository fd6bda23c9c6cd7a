package services

import (
	"context"

	"github.com/dmitrijs2005/vidmarkt/internal/client/client"
	"github.com/dmitrijs2005/vidmarkt/internal/client/models"
)

// CatalogService reads events, seasons and media. Every call is one
// request; nothing is cached.
type CatalogService interface {
	Event(ctx context.Context, id string) (*models.Event, error)
	Season(ctx context.Context, id string) (*models.Season, error)
	Media(ctx context.Context, id string) (*models.Media, error)
	// Search returns suggestions for query. An empty query returns no
	// suggestions without contacting the server.
	Search(ctx context.Context, query string) ([]models.Suggestion, error)
}

type catalogService struct {
	client client.Client
}

func NewCatalogService(client client.Client) CatalogService {
	return &catalogService{client: client}
}

func (c *catalogService) Event(ctx context.Context, id string) (*models.Event, error) {
	return c.client.GetEvent(ctx, id)
}

func (c *catalogService) Season(ctx context.Context, id string) (*models.Season, error) {
	return c.client.GetSeason(ctx, id)
}

func (c *catalogService) Media(ctx context.Context, id string) (*models.Media, error) {
	return c.client.GetMedia(ctx, id)
}

func (c *catalogService) Search(ctx context.Context, query string) ([]models.Suggestion, error) {
	if query == "" {
		return nil, nil
	}
	return c.client.SearchEvents(ctx, query)
}
