package store

import (
	"context"

	"github.com/dmitrijs2005/vidmarkt/internal/client/models"
)

// Demo account created by Seed.
const (
	DemoEmail    = "ada@example.org"
	DemoPassword = "secret1"
)

// Seed fills s with a small catalog and the demo account, which is also
// the author of every seeded event.
func Seed(ctx context.Context, s *Store) error {
	author, err := s.CreateUser(ctx, "Ada", "Lovelace", DemoEmail, DemoPassword)
	if err != nil {
		return err
	}

	seasons := []models.Season{
		{ID: "1", Name: "Spring Cup 2024", Place: "Riga", Description: "Regional spring tournament.", Price: 25, CreatedAt: "2024-03-01T09:00:00Z"},
		{ID: "2", Name: "Autumn League 2024", Place: "Tallinn", Description: "Weekly league matches.", Price: 40, CreatedAt: "2024-09-02T09:00:00Z"},
	}
	events := []eventRecord{
		{event: models.Event{ID: "42", Name: "Spring Cup Final", Place: "Riga Arena", Description: "The deciding match.", Price: 12.5, CreatedAt: "2024-04-20T18:30:00Z"}, seasonID: "1"},
		{event: models.Event{ID: "43", Name: "Spring Cup Semi-final", Place: "Riga Arena", Price: 8, CreatedAt: "2024-04-13T18:30:00Z"}, seasonID: "1"},
		{event: models.Event{ID: "44", Name: "Opening Night", Place: "Tallinn Hall", Price: 5, CreatedAt: "2024-09-07T19:00:00+03:00"}, seasonID: "2"},
		{event: models.Event{ID: "45", Name: "Charity Exhibition", Place: "Vilnius", Price: 0, CreatedAt: "2024-06-01T12:00:00Z"}},
	}
	medias := []mediaRecord{
		{media: models.Media{ID: "3", Title: "Final highlights", Resolution: "1080p", Length: "12:40", FileSize: "850 MB", Price: 4, IsNew: true}, eventID: "42"},
		{media: models.Media{ID: "4", Title: "Final full match", Resolution: "4K", Length: "1:52:10", FileSize: "9.6 GB", Price: 9.99}, eventID: "42"},
		{media: models.Media{ID: "5", Title: "Semi-final highlights", Resolution: "1080p", Length: "9:05", FileSize: "610 MB", Price: 3}, eventID: "43"},
		{media: models.Media{ID: "6", Title: "Opening ceremony", Resolution: "720p", Length: "25:00", FileSize: "1.1 GB", Price: 2.5}, eventID: "44"},
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, season := range seasons {
		s.seasons[season.ID] = season
	}
	for _, r := range events {
		r.authorID = author.ID
		s.events[r.event.ID] = r
	}
	for _, r := range medias {
		s.medias[r.media.ID] = r
	}
	return nil
}
