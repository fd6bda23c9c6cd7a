package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/vidmarkt/internal/client/config"
	"github.com/dmitrijs2005/vidmarkt/internal/client/forms"
	"github.com/dmitrijs2005/vidmarkt/internal/client/models"
	"github.com/dmitrijs2005/vidmarkt/internal/logging"
)

// ---- auth ----

type fakeAuth struct {
	mu sync.Mutex

	loginUser string
	loginPass string
	loginRet  *models.Session
	loginErr  error

	logoutCalled bool
	logoutErr    error

	resumeRet *models.Session
	resumeErr error

	signUp    forms.SignUpForm
	signUpErr error

	register    forms.RegisterForm
	registerErr error

	pingErr error
	pings   int
	closed  bool
}

func (f *fakeAuth) Login(_ context.Context, user string, pass []byte) (*models.Session, error) {
	f.loginUser, f.loginPass = user, string(pass)
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginRet, nil
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}

func (f *fakeAuth) CurrentSession(context.Context) (*models.Session, error) {
	return f.resumeRet, f.resumeErr
}

func (f *fakeAuth) Resume(context.Context) (*models.Session, error) {
	return f.resumeRet, f.resumeErr
}

func (f *fakeAuth) SignUp(_ context.Context, form forms.SignUpForm) error {
	f.signUp = form
	if f.signUpErr != nil {
		return f.signUpErr
	}
	return form.Validate()
}

func (f *fakeAuth) Register(_ context.Context, form forms.RegisterForm) error {
	f.register = form
	if f.registerErr != nil {
		return f.registerErr
	}
	return form.Validate()
}

func (f *fakeAuth) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pings++
	return f.pingErr
}

func (f *fakeAuth) setPingErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pingErr = err
}

func (f *fakeAuth) Close(context.Context) error {
	f.closed = true
	return nil
}

// ---- catalog ----

type fakeCatalog struct {
	mu sync.Mutex

	event  *models.Event
	season *models.Season
	media  *models.Media
	items  []models.Suggestion
	err    error

	calls   []string
	queries []string
}

func (f *fakeCatalog) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeCatalog) Event(_ context.Context, id string) (*models.Event, error) {
	f.record("event " + id)
	return f.event, f.err
}

func (f *fakeCatalog) Season(_ context.Context, id string) (*models.Season, error) {
	f.record("season " + id)
	return f.season, f.err
}

func (f *fakeCatalog) Media(_ context.Context, id string) (*models.Media, error) {
	f.record("media " + id)
	return f.media, f.err
}

func (f *fakeCatalog) Search(_ context.Context, query string) ([]models.Suggestion, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()
	if query == "" {
		return nil, nil
	}
	return f.items, f.err
}

func (f *fakeCatalog) searched() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queries...)
}

// ---- orders ----

type fakeOrders struct {
	media *models.Media
	form  forms.PaymentForm
	ret   *models.OrderResponse
	err   error
	calls int
}

func (f *fakeOrders) Checkout(_ context.Context, media *models.Media, form forms.PaymentForm) (*models.OrderResponse, error) {
	f.calls++
	f.media, f.form = media, form
	return f.ret, f.err
}

// ---- output & input ----

// syncBuffer is written by suggester goroutines while the test reads it.
type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func readerFromLines(lines ...string) *bufio.Reader {
	if len(lines) == 0 || lines[len(lines)-1] != "" {
		lines = append(lines, "")
	}
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

type testApp struct {
	*App
	auth    *fakeAuth
	catalog *fakeCatalog
	orders  *fakeOrders
	output  *syncBuffer
	logs    *syncBuffer
}

func newTestApp(t *testing.T, input ...string) *testApp {
	t.Helper()
	ta := &testApp{
		auth:    &fakeAuth{},
		catalog: &fakeCatalog{},
		orders:  &fakeOrders{},
		output:  &syncBuffer{},
		logs:    &syncBuffer{},
	}
	ta.App = &App{
		config:         &config.Config{SearchDebounce: 10 * time.Millisecond, OnlineCheckInterval: time.Hour},
		log:            logging.New(ta.logs, "debug", "text"),
		authService:    ta.auth,
		catalogService: ta.catalog,
		orderService:   ta.orders,
		reader:         readerFromLines(input...),
		out:            ta.output,
	}
	return ta
}

// stubInputs replaces the prompt helpers with canned answers, consumed in
// order by kind.
func stubInputs(t *testing.T, texts []string, secrets []string, confirms ...bool) {
	t.Helper()
	origST, origGP, origGC := getSimpleText, getPassword, getConfirmation
	t.Cleanup(func() {
		getSimpleText, getPassword, getConfirmation = origST, origGP, origGC
	})

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		v := texts[0]
		texts = texts[1:]
		return v, nil
	}
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		if len(secrets) == 0 {
			return nil, io.EOF
		}
		v := secrets[0]
		secrets = secrets[1:]
		return []byte(v), nil
	}
	getConfirmation = func(_ *bufio.Reader, _ string, _ io.Writer) (bool, error) {
		if len(confirms) == 0 {
			return false, io.EOF
		}
		v := confirms[0]
		confirms = confirms[1:]
		return v, nil
	}
}

func silencePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func adaSession() *models.Session {
	return &models.Session{
		User: models.User{
			ID:        "5",
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.org",
			Roles:     []string{"user"},
		},
		Token: "tok",
	}
}
