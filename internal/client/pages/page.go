// Package pages renders the event, season and media views.
//
// A Page fetches its resource once when opened. While the fetch is pending
// the page is Loading and "Loading..." has been written; afterwards it is
// either Loaded and rendered, or Failed with the error shown to the user
// and logged. There is no retry and no cache: opening again fetches again.
package pages

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/vidmarkt/internal/logging"
)

const LoadingText = "Loading..."

type State int

const (
	Idle State = iota
	Loading
	Loaded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type FetchFunc[T any] func(ctx context.Context, id string) (*T, error)

type RenderFunc[T any] func(w io.Writer, v *T)

type Page[T any] struct {
	name   string
	fetch  FetchFunc[T]
	render RenderFunc[T]
	out    io.Writer
	log    logging.Logger

	mu    sync.Mutex
	state State
	data  *T
	err   error
}

// New returns an Idle page. name is used in messages ("event", "media").
func New[T any](name string, fetch FetchFunc[T], render RenderFunc[T], out io.Writer, log logging.Logger) *Page[T] {
	return &Page[T]{name: name, fetch: fetch, render: render, out: out, log: log}
}

// Open loads id and renders it. The returned error is the fetch error, which
// has already been reported to the user.
func (p *Page[T]) Open(ctx context.Context, id string) error {
	p.set(Loading, nil, nil)
	fmt.Fprintln(p.out, LoadingText)

	v, err := p.fetch(ctx, id)
	if err == nil && v == nil {
		err = fmt.Errorf("%s %s: empty response", p.name, id)
	}
	if err != nil {
		p.set(Failed, nil, err)
		p.log.Error(ctx, "failed to load "+p.name, "id", id, "error", err)
		fmt.Fprintf(p.out, "Could not load %s %s: %v\n", p.name, id, err)
		return err
	}

	p.set(Loaded, v, nil)
	p.render(p.out, v)
	return nil
}

func (p *Page[T]) set(s State, v *T, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state, p.data, p.err = s, v, err
}

func (p *Page[T]) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Data is the loaded resource, nil unless State is Loaded.
func (p *Page[T]) Data() *T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data
}

func (p *Page[T]) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}
