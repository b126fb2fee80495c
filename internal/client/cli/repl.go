package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	List(ctx context.Context) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Goto(ctx context.Context, page int) error
	Show(ctx context.Context, id int64) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// runREPL reads a line at a time, parses the first token as the command,
// and dispatches to methods on 'a'. The loop exits on EOF or when the user
// types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "patients> %s > ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) && strings.TrimSpace(line) == "" {
				return
			}
			if !errors.Is(err, io.EOF) {
				return
			}
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, "Available commands: (l)ist, (n)ext, (p)rev, goto <page>, show <id>, add, edit <id>, delete <id>, whoami, logout, exit")
			} else {
				fmt.Fprintln(out, "Available commands: login, whoami, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "n", "next":
			_ = a.Next(ctx)

		case "p", "prev":
			_ = a.Prev(ctx)

		case "goto":
			if page, ok := intArg(out, parts, "goto <page>"); ok {
				_ = a.Goto(ctx, page)
			}

		case "show":
			if id, ok := idArg(out, parts, "show <id>"); ok {
				_ = a.Show(ctx, id)
			}

		case "add":
			_ = a.Add(ctx)

		case "edit":
			if id, ok := idArg(out, parts, "edit <id>"); ok {
				_ = a.Edit(ctx, id)
			}

		case "delete":
			if id, ok := idArg(out, parts, "delete <id>"); ok {
				_ = a.Delete(ctx, id)
			}

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

func intArg(out io.Writer, parts []string, usage string) (int, bool) {
	if len(parts) < 2 {
		fmt.Fprintln(out, "Usage:", usage)
		return 0, false
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil {
		fmt.Fprintln(out, "Usage:", usage)
		return 0, false
	}
	return n, true
}

func idArg(out io.Writer, parts []string, usage string) (int64, bool) {
	if len(parts) < 2 {
		fmt.Fprintln(out, "Usage:", usage)
		return 0, false
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		fmt.Fprintln(out, "Usage:", usage)
		return 0, false
	}
	return id, true
}
