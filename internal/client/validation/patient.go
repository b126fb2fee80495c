package validation

import (
	"regexp"
	"time"

	"github.com/aahadaazar/patients-app/internal/client/models"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	dobPattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// nowFn is a test seam so "future date" checks are deterministic in tests.
var nowFn = time.Now

// Patient validates a patient draft against the form schema. It returns nil
// when the draft is valid, or FieldErrors describing every failing field.
func Patient(p models.PatientDraft) error {
	fe := FieldErrors{}

	if p.FirstName == "" {
		fe["firstName"] = "First name is required"
	}
	if p.LastName == "" {
		fe["lastName"] = "Last name is required"
	}

	switch {
	case p.Email == "":
		fe["email"] = "Email is required"
	case !emailPattern.MatchString(p.Email):
		fe["email"] = "Must be a valid email"
	}

	switch {
	case p.PhoneNumber == "":
		fe["phoneNumber"] = "phoneNumber is required"
	case !phonePattern.MatchString(p.PhoneNumber):
		fe["phoneNumber"] = "Phone Number must be a valid phone number"
	}

	if msg := validateDOB(p.DOB); msg != "" {
		fe["dob"] = msg
	}

	if len(fe) > 0 {
		return fe
	}
	return nil
}

func validateDOB(dob string) string {
	if dob == "" {
		return "Date of birth is required"
	}
	if !dobPattern.MatchString(dob) {
		return "DOB must be in YYYY-MM-DD format"
	}
	d, err := time.Parse("2006-01-02", dob)
	if err != nil || d.Format("2006-01-02") != dob {
		return "Invalid date format or value"
	}

	today := nowFn().UTC().Truncate(24 * time.Hour)
	if d.After(today) {
		return "DOB cannot be a future date"
	}
	return ""
}
