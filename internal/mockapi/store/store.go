// Package store keeps the mock backend's accounts, catalog and orders in
// memory. It is safe for concurrent use.
package store

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrijs2005/vidmarkt/internal/client/models"
	"github.com/dmitrijs2005/vidmarkt/internal/common"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DeclinedCardNumber is always refused by PlaceOrder.
const DeclinedCardNumber = "4000000000000002"

var (
	ErrUnknownMedia   = errors.New("unknown media")
	ErrAmountMismatch = errors.New("amount does not match media price")
	ErrEmptyOrder     = errors.New("order has no media")
)

type account struct {
	user models.User
	hash []byte
}

type eventRecord struct {
	event    models.Event
	seasonID models.ID
	authorID models.ID
}

type mediaRecord struct {
	media   models.Media
	eventID models.ID
}

// Order is an accepted or declined purchase.
type Order struct {
	ID        models.ID
	UserID    models.ID
	MediaIDs  []models.ID
	Amount    float64
	IsSuccess bool
}

type Store struct {
	cost int

	mu         sync.RWMutex
	accounts   map[string]*account
	byID       map[models.ID]*account
	nextUserID int
	seasons    map[models.ID]models.Season
	events     map[models.ID]eventRecord
	medias     map[models.ID]mediaRecord
	orders     []Order
}

func New() *Store {
	return &Store{
		cost:     bcrypt.DefaultCost,
		accounts: make(map[string]*account),
		byID:     make(map[models.ID]*account),
		seasons:  make(map[models.ID]models.Season),
		events:   make(map[models.ID]eventRecord),
		medias:   make(map[models.ID]mediaRecord),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser adds an account. Emails are unique, case-insensitively.
func (s *Store) CreateUser(_ context.Context, firstName, lastName, email, password string) (models.User, error) {
	key := normalizeEmail(email)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[key]; ok {
		return models.User{}, common.ErrorAlreadyExists
	}

	s.nextUserID++
	u := models.User{
		ID:        models.ID(strconv.Itoa(s.nextUserID)),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Email:     key,
		Roles:     []string{"user"},
	}
	a := &account{user: u, hash: hash}
	s.accounts[key] = a
	s.byID[u.ID] = a
	return cloneUser(u), nil
}

// Authenticate checks the password for email. Unknown emails and wrong
// passwords both give common.ErrorInvalidCredentials.
func (s *Store) Authenticate(_ context.Context, email, password string) (models.User, error) {
	s.mu.RLock()
	a, ok := s.accounts[normalizeEmail(email)]
	s.mu.RUnlock()

	if !ok {
		return models.User{}, common.ErrorInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(a.hash, []byte(password)) != nil {
		return models.User{}, common.ErrorInvalidCredentials
	}
	return cloneUser(a.user), nil
}

func (s *Store) User(_ context.Context, id models.ID) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.byID[id]
	if !ok {
		return models.User{}, common.ErrorNotFound
	}
	return cloneUser(a.user), nil
}

func cloneUser(u models.User) models.User {
	u.Roles = append([]string(nil), u.Roles...)
	return u
}

// SearchEvents matches query against event names and places, ignoring case.
// Results are ordered by id.
func (s *Store) SearchEvents(_ context.Context, query string) []models.Suggestion {
	q := strings.ToLower(strings.TrimSpace(query))

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Suggestion{}
	for _, id := range sortedIDs(s.events) {
		e := s.events[id].event
		if q != "" && !strings.Contains(strings.ToLower(e.Name), q) && !strings.Contains(strings.ToLower(e.Place), q) {
			continue
		}
		out = append(out, models.Suggestion{ID: e.ID, Name: e.Name, Place: e.Place, Thumbnail: e.Thumbnail})
	}
	return out
}

// Event returns the event with its season reference and media list.
func (s *Store) Event(_ context.Context, id models.ID) (models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.events[id]
	if !ok {
		return models.Event{}, common.ErrorNotFound
	}
	return s.assembleEvent(r), nil
}

func (s *Store) assembleEvent(r eventRecord) models.Event {
	e := r.event
	if season, ok := s.seasons[r.seasonID]; ok {
		e.Season = &models.SeasonRef{ID: season.ID, Name: season.Name}
	}
	e.Medias = []models.Media{}
	for _, id := range sortedIDs(s.medias) {
		if m := s.medias[id]; m.eventID == e.ID {
			e.Medias = append(e.Medias, m.media)
		}
	}
	return e
}

// Season returns the season with its events, each carrying its media list.
func (s *Store) Season(_ context.Context, id models.ID) (models.Season, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	season, ok := s.seasons[id]
	if !ok {
		return models.Season{}, common.ErrorNotFound
	}
	season.Events = []models.Event{}
	for _, eid := range sortedIDs(s.events) {
		if r := s.events[eid]; r.seasonID == id {
			season.Events = append(season.Events, s.assembleEvent(r))
		}
	}
	return season, nil
}

// Media returns the media with its event and the event author's first name.
func (s *Store) Media(_ context.Context, id models.ID) (models.Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.medias[id]
	if !ok {
		return models.Media{}, common.ErrorNotFound
	}
	m := r.media
	if er, ok := s.events[r.eventID]; ok {
		ref := &models.EventRef{ID: er.event.ID, Name: er.event.Name}
		if a, ok := s.byID[er.authorID]; ok {
			ref.User = &models.Author{FirstName: a.user.FirstName}
		}
		m.Event = ref
	}
	return m, nil
}

// PlaceOrder records a purchase of req.Medias by userID. The amount must
// equal the sum of the media prices. Orders paid with DeclinedCardNumber
// are recorded as failed.
func (s *Store) PlaceOrder(_ context.Context, userID models.ID, req models.OrderRequest) (Order, error) {
	if len(req.Medias) == 0 {
		return Order{}, ErrEmptyOrder
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[userID]; !ok {
		return Order{}, common.ErrorNotFound
	}

	var total float64
	ids := make([]models.ID, 0, len(req.Medias))
	for _, m := range req.Medias {
		r, ok := s.medias[m.ID]
		if !ok {
			return Order{}, ErrUnknownMedia
		}
		total += r.media.Price.Float64()
		ids = append(ids, m.ID)
	}
	if !sameAmount(total, req.Amount) {
		return Order{}, ErrAmountMismatch
	}

	o := Order{
		ID:        models.ID(uuid.NewString()),
		UserID:    userID,
		MediaIDs:  ids,
		Amount:    req.Amount,
		IsSuccess: req.CardNumber != DeclinedCardNumber,
	}
	s.orders = append(s.orders, o)
	return o, nil
}

// Orders returns the orders placed by userID, oldest first.
func (s *Store) Orders(_ context.Context, userID models.ID) []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

func sameAmount(a, b float64) bool {
	d := a - b
	return d < 0.005 && d > -0.005
}

// sortedIDs orders numeric ids numerically and the rest lexically after them.
func sortedIDs[V any](m map[models.ID]V) []models.ID {
	ids := make([]models.ID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, errA := strconv.Atoi(string(ids[i]))
		b, errB := strconv.Atoi(string(ids[j]))
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		}
		return ids[i] < ids[j]
	})
	return ids
}
