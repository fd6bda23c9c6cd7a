package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/vidmarkt/internal/client/forms"
	"github.com/dmitrijs2005/vidmarkt/internal/client/models"
	"github.com/dmitrijs2005/vidmarkt/internal/common"
	"github.com/dmitrijs2005/vidmarkt/internal/logging"
	"github.com/dmitrijs2005/vidmarkt/internal/mockapi/auth"
	"github.com/dmitrijs2005/vidmarkt/internal/mockapi/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := store.New()
	require.NoError(t, store.Seed(context.Background(), s))

	srv := httptest.NewServer(NewRouter(NewHandler(s, testSecret, time.Hour, logging.Discard())))
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path string, body any, header map[string]string) (*http.Response, []byte) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, srv.URL+path, r)
	require.NoError(t, err)
	for k, v := range header {
		req.Header.Set(k, v)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func bearer(t *testing.T, userID string) map[string]string {
	t.Helper()
	tok, err := auth.GenerateToken(userID, []byte(testSecret), time.Hour)
	require.NoError(t, err)
	return map[string]string{common.AuthorizationHeaderName: common.BearerPrefix + tok}
}

func TestHealth_EchoesRequestID(t *testing.T) {
	srv := newTestServer(t)

	resp, body := call(t, srv, http.MethodGet, "/health", nil, map[string]string{common.RequestIDHeaderName: "req-1"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
	assert.Equal(t, "req-1", resp.Header.Get(common.RequestIDHeaderName))

	resp, _ = call(t, srv, http.MethodGet, "/health", nil, nil)
	assert.NotEmpty(t, resp.Header.Get(common.RequestIDHeaderName))
}

func TestCatalogEndpoints(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name   string
		path   string
		status int
		check  func(t *testing.T, body []byte)
	}{
		{"search", "/event?search=final", http.StatusOK, func(t *testing.T, body []byte) {
			var items []models.Suggestion
			require.NoError(t, json.Unmarshal(body, &items))
			require.Len(t, items, 2)
			assert.Equal(t, models.ID("42"), items[0].ID)
		}},
		{"search empty result is an array", "/event?search=zzz", http.StatusOK, func(t *testing.T, body []byte) {
			assert.JSONEq(t, `[]`, string(body))
		}},
		{"event", "/event/42", http.StatusOK, func(t *testing.T, body []byte) {
			var e models.Event
			require.NoError(t, json.Unmarshal(body, &e))
			assert.Equal(t, "Spring Cup Final", e.Name)
			assert.Len(t, e.Medias, 2)
		}},
		{"season", "/season/2", http.StatusOK, func(t *testing.T, body []byte) {
			var s models.Season
			require.NoError(t, json.Unmarshal(body, &s))
			assert.Len(t, s.Events, 1)
		}},
		{"media", "/media/4", http.StatusOK, func(t *testing.T, body []byte) {
			var m models.Media
			require.NoError(t, json.Unmarshal(body, &m))
			assert.Equal(t, models.Price(9.99), m.Price)
			assert.Equal(t, models.Text("4K"), m.Resolution)
		}},
		{"unknown event", "/event/404", http.StatusNotFound, func(t *testing.T, body []byte) {
			assert.JSONEq(t, `{"error":"not found"}`, string(body))
		}},
		{"unknown route", "/nope", http.StatusNotFound, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := call(t, srv, http.MethodGet, tt.path, nil, nil)
			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.check != nil {
				tt.check(t, body)
			}
		})
	}
}

func TestCreateUser(t *testing.T) {
	srv := newTestServer(t)

	body := models.SignUpRequest{
		FirstName: "Grace", LastName: "Hopper", Email: "grace@example.org",
		Password: "cobol60", ConfirmPassword: "cobol60", Terms: true,
	}
	resp, data := call(t, srv, http.MethodPost, "/user", body, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))

	var u models.User
	require.NoError(t, json.Unmarshal(data, &u))
	assert.Equal(t, "Grace", u.FirstName)
	assert.NotEmpty(t, u.ID)

	resp, _ = call(t, srv, http.MethodPost, "/user", body, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	body.ConfirmPassword = "different"
	body.Email = "other@example.org"
	resp, data = call(t, srv, http.MethodPost, "/user", body, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(data), "ConfirmPassword")

	body.ConfirmPassword = body.Password
	body.Email = "grace@localhost"
	resp, data = call(t, srv, http.MethodPost, "/user", body, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode, string(data))
}

func TestRegister(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := call(t, srv, http.MethodPost, "/api/register", models.RegisterRequest{Email: "new@example.org", Password: "secret"}, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = call(t, srv, http.MethodPost, "/api/register", models.RegisterRequest{Email: "not-an-email", Password: "secret"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = call(t, srv, http.MethodPost, "/api/register", models.RegisterRequest{Email: "ann @example.org", Password: "secret"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = call(t, srv, http.MethodPost, "/api/register", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegister_AcceptsAddressesTheClientAccepts(t *testing.T) {
	srv := newTestServer(t)

	form := forms.RegisterForm{Email: "ann@localhost", Password: "secret", ConfirmPassword: "secret"}
	require.NoError(t, form.Validate())

	resp, data := call(t, srv, http.MethodPost, "/api/register", form.Request(), nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))

	resp, data = call(t, srv, http.MethodPost, "/auth/login", models.LoginRequest{Username: "ann@localhost", Password: "secret"}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode, string(data))
}

func TestLogin(t *testing.T) {
	srv := newTestServer(t)

	resp, data := call(t, srv, http.MethodPost, "/auth/login", models.LoginRequest{Username: store.DemoEmail, Password: store.DemoPassword}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out models.LoginResponse
	require.NoError(t, json.Unmarshal(data, &out))
	require.NotNil(t, out.User)
	assert.Equal(t, "Ada", out.User.FirstName)

	userID, err := auth.GetUserIDFromToken(out.AccessToken, []byte(testSecret))
	require.NoError(t, err)
	assert.Equal(t, out.User.ID.String(), userID)

	resp, data = call(t, srv, http.MethodPost, "/auth/login", models.LoginRequest{Username: store.DemoEmail, Password: "nope"}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"error":"invalid username or password"}`, string(data))

	resp, _ = call(t, srv, http.MethodPost, "/auth/login", models.LoginRequest{}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPlaceOrder(t *testing.T) {
	srv := newTestServer(t)

	order := models.OrderRequest{
		Amount: 4, CardHolderName: "Ada Lovelace", CardNumber: "4111111111111111",
		Expiration: "09/27", CVC: "123",
		User:   models.OrderUser{ID: "1"},
		Medias: []models.OrderMedia{{ID: "3"}},
	}

	t.Run("requires token", func(t *testing.T) {
		resp, _ := call(t, srv, http.MethodPost, "/order", order, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		resp, _ = call(t, srv, http.MethodPost, "/order", order, map[string]string{common.AuthorizationHeaderName: "Bearer junk"})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("accepted", func(t *testing.T) {
		resp, data := call(t, srv, http.MethodPost, "/order", order, bearer(t, "1"))
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))

		var out models.OrderResponse
		require.NoError(t, json.Unmarshal(data, &out))
		assert.True(t, out.IsSuccess)
		assert.NotEmpty(t, out.ID)
	})

	t.Run("declined card", func(t *testing.T) {
		declined := order
		declined.CardNumber = store.DeclinedCardNumber
		resp, data := call(t, srv, http.MethodPost, "/order", declined, bearer(t, "1"))
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Contains(t, string(data), `"isSuccess":false`)
	})

	t.Run("other user in body", func(t *testing.T) {
		resp, _ := call(t, srv, http.MethodPost, "/order", order, bearer(t, "2"))
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("wrong amount", func(t *testing.T) {
		bad := order
		bad.Amount = 1
		resp, _ := call(t, srv, http.MethodPost, "/order", bad, bearer(t, "1"))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown media", func(t *testing.T) {
		bad := order
		bad.Medias = []models.OrderMedia{{ID: "999"}}
		resp, _ := call(t, srv, http.MethodPost, "/order", bad, bearer(t, "1"))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("missing card details", func(t *testing.T) {
		bad := order
		bad.CVC = ""
		resp, _ := call(t, srv, http.MethodPost, "/order", bad, bearer(t, "1"))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
