package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	SignUp(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Search(ctx context.Context, args []string) error
	Event(ctx context.Context, args []string) error
	Season(ctx context.Context, args []string) error
	Media(ctx context.Context, args []string) error
	Buy(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: search [query], event <id>, season <id>, media <id>, buy <media id>, login, signup, register, exit"
	helpLoggedIn  = "Available commands: search [query], event <id>, season <id>, media <id>, buy <media id>, whoami, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the VidMarkt CLI.
//
// It reads a line from reader, parses the first token as the command and
// passes the remaining tokens to it. Unknown commands are reported back to
// the user. The loop exits on EOF, when ctx is done, or when the user types
// "exit" or "quit".
//
// Commands read their own follow-up input from the same reader, so the
// prompt and the forms never compete for buffered stdin.
//
// Any errors returned by command handlers are ignored here; handlers
// report and log their own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("vidmarkt %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.SignUp(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "s", "search":
			_ = a.Search(ctx, args)

		case "event":
			_ = a.Event(ctx, args)

		case "season":
			_ = a.Season(ctx, args)

		case "media":
			_ = a.Media(ctx, args)

		case "buy":
			_ = a.Buy(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
