package store

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrijs2005/vidmarkt/internal/client/models"
	"github.com/dmitrijs2005/vidmarkt/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newSeeded(t *testing.T) *Store {
	t.Helper()
	s := New()
	s.cost = bcrypt.MinCost
	require.NoError(t, Seed(context.Background(), s))
	return s
}

func TestCreateUserAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.cost = bcrypt.MinCost

	u, err := s.CreateUser(ctx, " Grace ", "Hopper", "Grace@Example.org ", "cobol60")
	require.NoError(t, err)
	assert.Equal(t, models.ID("1"), u.ID)
	assert.Equal(t, "Grace", u.FirstName)
	assert.Equal(t, "grace@example.org", u.Email)
	assert.Equal(t, []string{"user"}, u.Roles)

	got, err := s.Authenticate(ctx, "grace@example.org", "cobol60")
	require.NoError(t, err)
	assert.Equal(t, u, got)

	_, err = s.Authenticate(ctx, "grace@example.org", "wrong")
	assert.ErrorIs(t, err, common.ErrorInvalidCredentials)

	_, err = s.Authenticate(ctx, "nobody@example.org", "cobol60")
	assert.ErrorIs(t, err, common.ErrorInvalidCredentials)

	_, err = s.CreateUser(ctx, "G", "H", "GRACE@example.org", "another")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestUser_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := newSeeded(t)

	u, err := s.User(ctx, "1")
	require.NoError(t, err)
	u.Roles[0] = "admin"

	again, err := s.User(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"user"}, again.Roles)

	_, err = s.User(ctx, "99")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSearchEvents(t *testing.T) {
	s := newSeeded(t)
	ctx := context.Background()

	names := func(items []models.Suggestion) []string {
		var out []string
		for _, it := range items {
			out = append(out, it.Name)
		}
		return out
	}

	assert.Equal(t, []string{"Spring Cup Final", "Spring Cup Semi-final"}, names(s.SearchEvents(ctx, "SPRING")))
	assert.Equal(t, []string{"Opening Night"}, names(s.SearchEvents(ctx, "tallinn")))
	assert.Empty(t, s.SearchEvents(ctx, "nothing like this"))
	assert.NotNil(t, s.SearchEvents(ctx, "nothing like this"))
	assert.Len(t, s.SearchEvents(ctx, ""), 4)
}

func TestEvent(t *testing.T) {
	s := newSeeded(t)

	e, err := s.Event(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "Spring Cup Final", e.Name)
	require.NotNil(t, e.Season)
	assert.Equal(t, "Spring Cup 2024", e.Season.Name)
	require.Len(t, e.Medias, 2)
	assert.Equal(t, models.ID("3"), e.Medias[0].ID)

	standalone, err := s.Event(context.Background(), "45")
	require.NoError(t, err)
	assert.Nil(t, standalone.Season)
	assert.Empty(t, standalone.Medias)

	_, err = s.Event(context.Background(), "404")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSeason(t *testing.T) {
	s := newSeeded(t)

	season, err := s.Season(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, season.Events, 2)
	assert.Equal(t, models.ID("42"), season.Events[0].ID)
	assert.Len(t, season.Events[0].Medias, 2)
	assert.Len(t, season.Events[1].Medias, 1)

	_, err = s.Season(context.Background(), "9")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMedia(t *testing.T) {
	s := newSeeded(t)

	m, err := s.Media(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Final highlights", m.Title)
	require.NotNil(t, m.Event)
	assert.Equal(t, "Spring Cup Final", m.Event.Name)
	require.NotNil(t, m.Event.User)
	assert.Equal(t, "Ada", m.Event.User.FirstName)

	_, err = s.Media(context.Background(), "77")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()
	s := newSeeded(t)

	order := func(amount float64, card string, ids ...models.ID) models.OrderRequest {
		req := models.OrderRequest{Amount: amount, CardHolderName: "Ada", CardNumber: card, Expiration: "09/27", CVC: "123"}
		for _, id := range ids {
			req.Medias = append(req.Medias, models.OrderMedia{ID: id})
		}
		return req
	}

	ok, err := s.PlaceOrder(ctx, "1", order(4, "4111111111111111", "3"))
	require.NoError(t, err)
	assert.True(t, ok.IsSuccess)
	assert.NotEmpty(t, ok.ID)

	declined, err := s.PlaceOrder(ctx, "1", order(13.99, DeclinedCardNumber, "3", "4"))
	require.NoError(t, err)
	assert.False(t, declined.IsSuccess)

	_, err = s.PlaceOrder(ctx, "1", order(1, "4111111111111111", "3"))
	assert.ErrorIs(t, err, ErrAmountMismatch)

	_, err = s.PlaceOrder(ctx, "1", order(4, "4111111111111111", "999"))
	assert.ErrorIs(t, err, ErrUnknownMedia)

	_, err = s.PlaceOrder(ctx, "1", order(0, "4111111111111111"))
	assert.ErrorIs(t, err, ErrEmptyOrder)

	_, err = s.PlaceOrder(ctx, "99", order(4, "4111111111111111", "3"))
	assert.ErrorIs(t, err, common.ErrorNotFound)

	orders := s.Orders(ctx, "1")
	require.Len(t, orders, 2)
	assert.Equal(t, ok.ID, orders[0].ID)
	assert.Equal(t, []models.ID{"3", "4"}, orders[1].MediaIDs)
}

func TestConcurrentSignUps(t *testing.T) {
	s := New()
	s.cost = bcrypt.MinCost

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.CreateUser(context.Background(), "A", "B", "same@example.org", "secret1")
		}(i)
	}
	wg.Wait()

	var created int
	for _, err := range errs {
		if err == nil {
			created++
		} else {
			assert.ErrorIs(t, err, common.ErrorAlreadyExists)
		}
	}
	assert.Equal(t, 1, created)
}

func TestSortedIDs(t *testing.T) {
	m := map[models.ID]int{"10": 0, "2": 0, "b": 0, "a": 0, "1": 0}
	assert.Equal(t, []models.ID{"1", "2", "10", "a", "b"}, sortedIDs(m))
}
