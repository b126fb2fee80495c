package cli

import (
	"context"
	"fmt"

	"github.com/aahadaazar/patients-app/internal/client/models"
	"github.com/aahadaazar/patients-app/internal/client/patients"
	"github.com/aahadaazar/patients-app/internal/client/session"
)

// requireView gates a command the way a protected route would: it either
// allows rendering or prints the state the user is actually in.
func (a *App) requireView(required ...models.Role) bool {
	switch session.Authorize(a.sessions.Current(), required...) {
	case session.Allow:
		return true
	case session.Pending:
		fmt.Fprintln(a.out, "Loading authentication...")
	case session.Redirect:
		fmt.Fprintln(a.out, "Please log in first. Use the 'login' command.")
	case session.Deny:
		fmt.Fprintln(a.out, "Access Denied")
		fmt.Fprintln(a.out, "You do not have the necessary permissions to view this page.")
	}
	return false
}

// List refetches and renders the current page of the patient list. Any
// authenticated user may read the collection.
func (a *App) List(ctx context.Context) error {
	if !a.requireView(models.RoleEmployee) {
		return nil
	}
	_ = a.patients.Refresh(ctx)
	a.renderPage()
	return nil
}

// Next advances to the following page.
func (a *App) Next(ctx context.Context) error {
	if !a.requireView(models.RoleEmployee) {
		return nil
	}
	_ = a.patients.NextPage(ctx)
	a.renderPage()
	return nil
}

// Prev moves back one page.
func (a *App) Prev(ctx context.Context) error {
	if !a.requireView(models.RoleEmployee) {
		return nil
	}
	_ = a.patients.PreviousPage(ctx)
	a.renderPage()
	return nil
}

// Goto jumps to an arbitrary page number.
func (a *App) Goto(ctx context.Context, page int) error {
	if !a.requireView(models.RoleEmployee) {
		return nil
	}
	_ = a.patients.LoadPage(ctx, page)
	a.renderPage()
	return nil
}

func (a *App) renderPage() {
	st := a.patients.State()

	if st.LastError != "" {
		fmt.Fprintln(a.out, st.LastError)
		if len(st.Items) == 0 {
			return
		}
	}

	if st.TotalItems == 0 {
		fmt.Fprintln(a.out, "No patients found. Get started by adding some!")
		return
	}

	fmt.Fprintf(a.out, "%-6s %-15s %-15s %-30s %-16s %-12s\n",
		"ID", "First Name", "Last Name", "Email", "Phone", "DOB")
	for _, p := range st.Items {
		fmt.Fprintf(a.out, "%-6d %-15s %-15s %-30s %-16s %-12s\n",
			p.ID, p.FirstName, p.LastName, p.Email, p.PhoneNumber, p.DOB)
	}

	first := (st.CurrentPage-1)*patients.DefaultPageSize + 1
	last := first + len(st.Items) - 1
	fmt.Fprintf(a.out, "Page %d of %d\n", st.CurrentPage, st.TotalPages)
	fmt.Fprintf(a.out, "Showing %d - %d of %d items\n", first, last, st.TotalItems)
}
