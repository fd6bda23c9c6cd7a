package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	s := ""
	if a.session != nil {
		s = a.session.User.DisplayName() + " "
	}
	if m := a.mode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root restores a saved session, starts the connectivity watcher and runs
// the REPL until the user exits or input ends.
func (a *App) Root(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	printlnFn("Welcome to VidMarkt (type 'help' for commands)")

	s, err := a.authService.Resume(ctx)
	if err != nil {
		a.log.Warn(ctx, "could not restore session", "error", err)
	}
	a.session = s
	if s != nil {
		printlnFn("Logged in as " + s.User.DisplayName())
	}

	a.checkOnline(ctx)
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}
