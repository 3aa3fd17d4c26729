package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	u := a.authService.CurrentUser()
	if u == nil {
		return ""
	}
	return fmt.Sprintf(" (%s)", u.Username)
}

// Root prints the banner and runs the REPL until exit or end of input.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to credkeeper CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}
