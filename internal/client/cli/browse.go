package cli

import (
	"context"

	"github.com/dmitrijs2005/vidmarkt/internal/client/pages"
)

// Event opens the event view for args[0], or for an id read from input.
func (a *App) Event(ctx context.Context, args []string) error {
	id, err := a.resourceID(args, "Enter event id")
	if err != nil {
		return err
	}
	return pages.New("event", a.catalogService.Event, pages.RenderEvent, a.out, a.log).Open(ctx, id)
}

func (a *App) Season(ctx context.Context, args []string) error {
	id, err := a.resourceID(args, "Enter season id")
	if err != nil {
		return err
	}
	return pages.New("season", a.catalogService.Season, pages.RenderSeason, a.out, a.log).Open(ctx, id)
}

func (a *App) Media(ctx context.Context, args []string) error {
	id, err := a.resourceID(args, "Enter media id")
	if err != nil {
		return err
	}
	return pages.New("media", a.catalogService.Media, pages.RenderMedia, a.out, a.log).Open(ctx, id)
}
