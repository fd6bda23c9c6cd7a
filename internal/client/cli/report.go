package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vidmarkt/internal/client/client"
	"github.com/dmitrijs2005/vidmarkt/internal/client/forms"
)

// showValidation prints one line per failing field and reports whether err
// was a validation error.
func (a *App) showValidation(err error) bool {
	var verrs forms.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		fmt.Fprintln(a.out, "  - "+fe.Message)
	}
	return true
}

// report logs err and tells the user that action failed, in terms they can
// act on.
func (a *App) report(ctx context.Context, action string, err error) {
	if a.showValidation(err) {
		return
	}

	a.log.Error(ctx, action+" failed", "error", err)

	switch {
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(a.out, "%s cancelled\n", action)
	case errors.Is(err, client.ErrUnavailable):
		a.setMode(ModeOffline)
		fmt.Fprintf(a.out, "%s failed: server unavailable, try again later\n", action)
	default:
		fmt.Fprintf(a.out, "%s failed: %v\n", action, err)
	}
}

// resourceID takes the id from args or asks for it.
func (a *App) resourceID(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}
