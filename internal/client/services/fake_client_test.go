package services

import (
	"context"

	"github.com/dmitrijs2005/vidmarkt/internal/client/models"
)

// fakeClient implements client.Client for service unit tests.
type fakeClient struct {
	CloseErr error
	PingErr  error

	LoginRet *models.LoginResponse
	LoginErr error

	CreateUserErr error
	RegisterErr   error

	SearchRet []models.Suggestion
	SearchErr error

	EventRet  *models.Event
	SeasonRet *models.Season
	MediaRet  *models.Media
	GetErr    error

	OrderRet *models.OrderResponse
	OrderErr error

	// recorded arguments
	Calls          []string
	LastUsername   string
	LastPassword   string
	LastSignUp     models.SignUpRequest
	LastRegister   models.RegisterRequest
	LastQuery      string
	LastID         string
	LastOrder      models.OrderRequest
	AccessToken    string
	TokenSetCalled int
}

func (f *fakeClient) record(name string) { f.Calls = append(f.Calls, name) }

func (f *fakeClient) Close() error { f.record("Close"); return f.CloseErr }

func (f *fakeClient) Ping(ctx context.Context) error { f.record("Ping"); return f.PingErr }

func (f *fakeClient) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	f.record("Login")
	f.LastUsername, f.LastPassword = username, password
	if f.LoginErr != nil {
		return nil, f.LoginErr
	}
	return f.LoginRet, nil
}

func (f *fakeClient) CreateUser(ctx context.Context, req models.SignUpRequest) error {
	f.record("CreateUser")
	f.LastSignUp = req
	return f.CreateUserErr
}

func (f *fakeClient) Register(ctx context.Context, req models.RegisterRequest) error {
	f.record("Register")
	f.LastRegister = req
	return f.RegisterErr
}

func (f *fakeClient) SetAccessToken(token string) {
	f.TokenSetCalled++
	f.AccessToken = token
}

func (f *fakeClient) SearchEvents(ctx context.Context, query string) ([]models.Suggestion, error) {
	f.record("SearchEvents")
	f.LastQuery = query
	return f.SearchRet, f.SearchErr
}

func (f *fakeClient) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	f.record("GetEvent")
	f.LastID = id
	return f.EventRet, f.GetErr
}

func (f *fakeClient) GetSeason(ctx context.Context, id string) (*models.Season, error) {
	f.record("GetSeason")
	f.LastID = id
	return f.SeasonRet, f.GetErr
}

func (f *fakeClient) GetMedia(ctx context.Context, id string) (*models.Media, error) {
	f.record("GetMedia")
	f.LastID = id
	return f.MediaRet, f.GetErr
}

func (f *fakeClient) PlaceOrder(ctx context.Context, req models.OrderRequest) (*models.OrderResponse, error) {
	f.record("PlaceOrder")
	f.LastOrder = req
	if f.OrderErr != nil {
		return nil, f.OrderErr
	}
	return f.OrderRet, nil
}
