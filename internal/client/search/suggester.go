// Package search turns a stream of query edits into suggestion lists.
//
// Every Update is a new query. Edits that arrive within the debounce window
// collapse into one fetch, and a fetch still running when a newer query
// arrives is cancelled. Only results for the latest query are delivered. An
// empty query clears the suggestions at once, without fetching.
package search

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/vidmarkt/internal/client/models"
	"github.com/dmitrijs2005/vidmarkt/internal/logging"
)

type FetchFunc func(ctx context.Context, query string) ([]models.Suggestion, error)

// DeliverFunc receives the suggestions for query. Calls never overlap.
// It must not call back into the Suggester.
type DeliverFunc func(query string, items []models.Suggestion)

type Suggester struct {
	fetch    FetchFunc
	deliver  DeliverFunc
	debounce time.Duration
	log      logging.Logger

	mu      sync.Mutex
	seq     uint64
	timer   *time.Timer
	cancel  context.CancelFunc
	pending *pendingFetch
	closed  bool
}

// pendingFetch is the scheduled fetch for one query. done is closed once
// the fetch has finished or will never run.
type pendingFetch struct {
	ctx   context.Context
	seq   uint64
	query string
	done  chan struct{}
}

func NewSuggester(fetch FetchFunc, deliver DeliverFunc, debounce time.Duration, log logging.Logger) *Suggester {
	return &Suggester{fetch: fetch, deliver: deliver, debounce: debounce, log: log}
}

// Update replaces the current query. The fetch runs under ctx once the
// debounce window passes without another Update.
func (s *Suggester) Update(ctx context.Context, query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.seq++
	s.stopLocked()

	if query == "" {
		s.deliver(query, nil)
		return
	}

	fctx, cancel := context.WithCancel(ctx)
	p := &pendingFetch{ctx: fctx, seq: s.seq, query: query, done: make(chan struct{})}
	s.cancel = cancel
	s.pending = p
	s.timer = time.AfterFunc(s.debounce, func() {
		s.run(p)
	})
}

// Flush skips the rest of the debounce window: the latest query is fetched
// now and Flush returns once its result has been handled or ctx is done.
func (s *Suggester) Flush(ctx context.Context) {
	s.mu.Lock()
	p := s.pending
	if s.closed || p == nil {
		s.mu.Unlock()
		return
	}
	runNow := s.timer != nil && s.timer.Stop()
	if runNow {
		s.timer = nil
	}
	s.mu.Unlock()

	if runNow {
		s.run(p)
		return
	}

	select {
	case <-p.done:
	case <-ctx.Done():
	}
}

func (s *Suggester) run(p *pendingFetch) {
	defer close(p.done)

	items, err := s.fetch(p.ctx, p.query)

	s.mu.Lock()
	defer s.mu.Unlock()

	if p.seq != s.seq || s.closed {
		return
	}
	if err != nil {
		if p.ctx.Err() == nil {
			s.log.Warn(p.ctx, "suggestion fetch failed", "query", p.query, "error", err)
		}
	} else {
		s.deliver(p.query, items)
	}

	s.timer = nil
	s.pending = nil
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Suggester) stopLocked() {
	if s.timer != nil {
		if s.timer.Stop() && s.pending != nil {
			close(s.pending.done)
		}
		s.timer = nil
	}
	s.pending = nil
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Close cancels any pending or running fetch. Later Updates are ignored.
func (s *Suggester) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.stopLocked()
}
