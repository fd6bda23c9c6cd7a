// Package cli provides the interactive VidMarkt command-line client.
//
// It wires configuration, the local session store, API services and an
// interactive REPL. Typical flow: restore the saved session, start a
// background connectivity watcher, and execute user commands.
//
// Key features:
//   - Browse: event, season and media views, fetched when opened
//   - Search: one-shot, or live with debounced suggestions
//   - Login / Logout / Sign up / Register
//   - Buy: log in if needed, collect card details, place the order
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
