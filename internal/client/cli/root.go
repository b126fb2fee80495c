package cli

import (
	"context"
	"fmt"
)

// Root prints the welcome banner and starts the command loop.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to Patient Portal!")
	fmt.Fprintln(a.out, "Type 'help' to see available commands.")
	runREPL(ctx, a, a.status, a.reader, a.out)
}
