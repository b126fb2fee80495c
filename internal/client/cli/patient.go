package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/aahadaazar/patients-app/internal/client/models"
	"github.com/aahadaazar/patients-app/internal/client/validation"
	"github.com/aahadaazar/patients-app/internal/common"
)

// Show fetches and prints a single patient record.
func (a *App) Show(ctx context.Context, id int64) error {
	if !a.requireView(models.RoleEmployee) {
		return nil
	}

	p, err := a.patients.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintf(a.out, "Patient with ID %d not found.\n", id)
		} else {
			fmt.Fprintln(a.out, "Failed to load patient. Please try again.")
		}
		return err
	}

	fmt.Fprintf(a.out, "ID:          %d\n", p.ID)
	fmt.Fprintf(a.out, "First Name:  %s\n", p.FirstName)
	fmt.Fprintf(a.out, "Last Name:   %s\n", p.LastName)
	fmt.Fprintf(a.out, "Email:       %s\n", p.Email)
	fmt.Fprintf(a.out, "Phone:       %s\n", p.PhoneNumber)
	fmt.Fprintf(a.out, "DOB:         %s\n", p.DOB)
	return nil
}

// Add prompts for a new patient and submits it. Creation is reserved for
// administrators; the form re-prompts on validation failure, keeping the
// entered values.
func (a *App) Add(ctx context.Context) error {
	if !a.requireView(models.RoleAdmin) {
		return nil
	}

	fmt.Fprintln(a.out, "Add Patient")
	draft, ok, err := a.promptDraft(models.PatientDraft{})
	if err != nil || !ok {
		return err
	}

	if err := a.patients.Create(ctx, draft); err != nil {
		fmt.Fprintln(a.out, "Failed to create patient. Please try again.")
		return err
	}
	a.renderPage()
	return nil
}

// Edit prefills the form from the stored record and submits the changes.
func (a *App) Edit(ctx context.Context, id int64) error {
	if !a.requireView(models.RoleAdmin) {
		return nil
	}

	p, err := a.patients.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintf(a.out, "Patient with ID %d not found.\n", id)
		} else {
			fmt.Fprintln(a.out, "Failed to load patient. Please try again.")
		}
		return err
	}

	fmt.Fprintf(a.out, "Edit Patient %d (press Enter to keep the current value)\n", id)
	draft, ok, err := a.promptDraft(models.PatientDraft{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
		DOB:         p.DOB,
	})
	if err != nil || !ok {
		return err
	}

	if err := a.patients.Update(ctx, id, draft); err != nil {
		fmt.Fprintln(a.out, "Failed to update patient. Please try again.")
		return err
	}
	a.renderPage()
	return nil
}

// Delete asks for confirmation before removing a record.
func (a *App) Delete(ctx context.Context, id int64) error {
	if !a.requireView(models.RoleAdmin) {
		return nil
	}

	prompt := fmt.Sprintf("Are you sure you want to delete patient with ID: %d? This action cannot be undone.", id)
	if !AskYesNo(a.reader, a.out, prompt) {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.patients.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintf(a.out, "Patient with ID %d not found.\n", id)
		} else {
			fmt.Fprintln(a.out, "Failed to delete patient. Please try again.")
		}
		return err
	}
	a.renderPage()
	return nil
}

// promptDraft collects the five patient fields, starting from the given
// values. On validation failure the messages are shown and the form loops
// with the rejected input preserved, until it passes or input ends.
// ok is false when the user ran out of input before producing a valid draft.
func (a *App) promptDraft(draft models.PatientDraft) (models.PatientDraft, bool, error) {
	for {
		var err error
		if draft.FirstName, err = GetFieldWithDefault(a.reader, a.out, "First Name", draft.FirstName); err != nil {
			return draft, false, err
		}
		if draft.LastName, err = GetFieldWithDefault(a.reader, a.out, "Last Name", draft.LastName); err != nil {
			return draft, false, err
		}
		if draft.Email, err = GetFieldWithDefault(a.reader, a.out, "Email", draft.Email); err != nil {
			return draft, false, err
		}
		if draft.PhoneNumber, err = GetFieldWithDefault(a.reader, a.out, "Phone Number", draft.PhoneNumber); err != nil {
			return draft, false, err
		}
		if draft.DOB, err = GetFieldWithDefault(a.reader, a.out, "Date of Birth (YYYY-MM-DD)", draft.DOB); err != nil {
			return draft, false, err
		}

		verr := validation.Patient(draft)
		if verr == nil {
			return draft, true, nil
		}

		var fields validation.FieldErrors
		if errors.As(verr, &fields) {
			for _, msg := range fields.Messages() {
				fmt.Fprintln(a.out, msg)
			}
		}
		fmt.Fprintln(a.out, "Please correct the fields above.")
	}
}
