package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/dmitrijs2005/vidmarkt/internal/client/models"
	"github.com/dmitrijs2005/vidmarkt/internal/client/pages"
	"github.com/dmitrijs2005/vidmarkt/internal/client/search"
)

// liveSearchExit ends live search mode.
const liveSearchExit = "/q"

// Search with arguments runs one query and prints the suggestions. Without
// arguments it enters live mode: every line typed replaces the query, and
// suggestions for the latest one are printed once typing pauses or input
// ends.
func (a *App) Search(ctx context.Context, args []string) error {
	if len(args) > 0 {
		query := strings.Join(args, " ")
		items, err := a.catalogService.Search(ctx, query)
		if err != nil {
			a.report(ctx, "Search", err)
			return err
		}
		pages.RenderSuggestions(a.out, items)
		return nil
	}
	return a.liveSearch(ctx)
}

func (a *App) liveSearch(ctx context.Context) error {
	fmt.Fprintf(a.out, "Type to search events, an empty line clears, %s to finish\n", liveSearchExit)

	var outMu sync.Mutex
	deliver := func(query string, items []models.Suggestion) {
		outMu.Lock()
		defer outMu.Unlock()
		if query == "" {
			return
		}
		fmt.Fprintf(a.out, "Suggestions for %q:\n", query)
		pages.RenderSuggestions(a.out, items)
	}

	s := search.NewSuggester(a.catalogService.Search, deliver, a.config.SearchDebounce, a.log)
	defer s.Close()

	for {
		line, err := a.reader.ReadString('\n')
		query := strings.TrimRight(line, "\r\n")
		if query == liveSearchExit {
			return nil
		}
		if err != nil && query == "" {
			if errors.Is(err, io.EOF) {
				s.Flush(ctx)
				return nil
			}
			return err
		}

		s.Update(ctx, query)
		if err != nil {
			s.Flush(ctx)
			return nil
		}
	}
}
