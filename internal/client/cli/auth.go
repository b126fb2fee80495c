package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/aahadaazar/patients-app/internal/client/models"
	"github.com/aahadaazar/patients-app/internal/client/validation"
	"github.com/aahadaazar/patients-app/internal/common"
)

// Login prompts for credentials, authenticates against the backend, and on
// success persists the session and lands on the patient list, mirroring the
// post-login navigation to the collection view.
func (a *App) Login(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter user id:", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := validation.Login(id, password); err != nil {
		var fields validation.FieldErrors
		if errors.As(err, &fields) {
			for _, msg := range fields.Messages() {
				fmt.Fprintln(a.out, msg)
			}
		}
		return err
	}

	res, err := a.gw.Login(ctx, id, password)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			fmt.Fprintln(a.out, "Invalid credentials. Please try again.")
		} else {
			fmt.Fprintln(a.out, "Login failed. Please try again.")
		}
		a.log.Error(ctx, "login failed", "error", err)
		return err
	}

	user := models.User{ID: res.ID, Role: res.Role}
	if err := a.sessions.Login(ctx, res.AccessToken, user); err != nil {
		fmt.Fprintln(a.out, "Login failed. Please try again.")
		a.log.Error(ctx, "failed to persist session", "error", err)
		return err
	}
	// Re-arm the gateway's one-shot invalidation latch for the new session.
	a.gw.ResetAuth()

	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", user.ID, user.Role)
	return a.List(ctx)
}

// Logout drops the persisted session. Safe to call when not logged in.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Logout failed:", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI prints the current session state.
func (a *App) WhoAmI(ctx context.Context) error {
	s := a.sessions.Current()
	switch {
	case s.Loading:
		fmt.Fprintln(a.out, "Loading authentication...")
	case !s.IsAuthenticated():
		fmt.Fprintln(a.out, "Not logged in.")
	default:
		fmt.Fprintf(a.out, "Logged in as %s (%s)\n", s.User.ID, s.User.Role)
	}
	return nil
}
