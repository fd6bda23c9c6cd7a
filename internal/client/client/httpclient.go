package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/vidmarkt/internal/client/models"
	"github.com/dmitrijs2005/vidmarkt/internal/common"
	"github.com/dmitrijs2005/vidmarkt/internal/netx"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// maxErrorBody bounds how much of an error response is read for its message.
const maxErrorBody = 4 << 10

type HTTPClient struct {
	baseURL  string
	hc       *http.Client
	validate *validator.Validate

	mu          sync.RWMutex
	accessToken string
}

// NewHTTPClient returns a client for the backend rooted at baseURL. A zero
// timeout disables the per-request deadline; callers' contexts still apply.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid api url %q: scheme must be http or https", baseURL)
	}

	return &HTTPClient{
		baseURL:  strings.TrimRight(u.String(), "/"),
		hc:       &http.Client{Timeout: timeout},
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}, nil
}

func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) SetAccessToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = token
}

func (c *HTTPClient) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

// Ping succeeds when the backend answers HTTP on /health, whatever the status.
func (c *HTTPClient) Ping(ctx context.Context) error {
	if err := netx.Probe(ctx, c.hc, c.baseURL+"/health"); err != nil {
		return c.mapTransportError(ctx, err)
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	var raw json.RawMessage
	body := models.LoginRequest{Username: username, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &raw); err != nil {
		return nil, err
	}

	resp, err := c.decodeLogin(raw)
	if err != nil {
		return nil, err
	}

	if resp.AccessToken != "" {
		c.SetAccessToken(resp.AccessToken)
	}
	return resp, nil
}

// decodeLogin accepts both {"user": {...}, "accessToken": "..."} and a bare
// user object.
func (c *HTTPClient) decodeLogin(raw json.RawMessage) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	if resp.User == nil {
		var user models.User
		if err := json.Unmarshal(raw, &user); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		resp.User = &user
	}

	if err := c.check(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, req models.SignUpRequest) error {
	return c.do(ctx, http.MethodPost, "/user", req, nil)
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/api/register", req, nil)
}

func (c *HTTPClient) SearchEvents(ctx context.Context, query string) ([]models.Suggestion, error) {
	var out []models.Suggestion
	path := "/event?" + url.Values{"search": {query}}.Encode()
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	if err := c.validate.Var(out, "dive"); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return out, nil
}

func (c *HTTPClient) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	return getResource[models.Event](ctx, c, "/event/", id)
}

func (c *HTTPClient) GetSeason(ctx context.Context, id string) (*models.Season, error) {
	return getResource[models.Season](ctx, c, "/season/", id)
}

func (c *HTTPClient) GetMedia(ctx context.Context, id string) (*models.Media, error) {
	return getResource[models.Media](ctx, c, "/media/", id)
}

func getResource[T any](ctx context.Context, c *HTTPClient, prefix, id string) (*T, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", ErrNotFound)
	}

	var out T
	if err := c.do(ctx, http.MethodGet, prefix+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	if err := c.check(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) PlaceOrder(ctx context.Context, req models.OrderRequest) (*models.OrderResponse, error) {
	var out models.OrderResponse
	if err := c.do(ctx, http.MethodPost, "/order", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) check(v any) error {
	if err := c.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}

// do sends one request and decodes a 2xx body into out (when non-nil).
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return c.mapTransportError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapStatus(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}

func (c *HTTPClient) mapTransportError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return ctx.Err()
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func (c *HTTPClient) mapStatus(resp *http.Response) error {
	msg := errorMessage(resp.Body)
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	var base error
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		base = ErrUnauthorized
	case http.StatusNotFound:
		base = ErrNotFound
	case http.StatusConflict:
		base = ErrConflict
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		base = ErrUnavailable
	default:
		return fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, resp.StatusCode, msg)
	}
	return fmt.Errorf("%w: %s", base, msg)
}

// errorMessage pulls "error" or "message" out of a JSON error body.
func errorMessage(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(b) == 0 {
		return ""
	}

	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(b, &body) != nil {
		return ""
	}
	if body.Error != "" {
		return body.Error
	}
	return body.Message
}
