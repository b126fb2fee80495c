package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aahadaazar/patients-app/internal/client/models"
	"github.com/aahadaazar/patients-app/internal/common"
)

func validDraft() models.PatientDraft {
	return models.PatientDraft{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane.doe@example.com",
		PhoneNumber: "+12025550123",
		DOB:         "1985-06-15",
	}
}

func TestPatient_ValidDraftPasses(t *testing.T) {
	require.NoError(t, Patient(validDraft()))
}

func TestPatient_RequiredFields(t *testing.T) {
	err := Patient(models.PatientDraft{})
	require.Error(t, err)

	var fe FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "First name is required", fe["firstName"])
	assert.Equal(t, "Last name is required", fe["lastName"])
	assert.Equal(t, "Email is required", fe["email"])
	assert.Equal(t, "phoneNumber is required", fe["phoneNumber"])
	assert.Equal(t, "Date of birth is required", fe["dob"])
}

func TestPatient_MatchesValidationClass(t *testing.T) {
	err := Patient(models.PatientDraft{})
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestPatient_EmailFormat(t *testing.T) {
	d := validDraft()
	d.Email = "not-an-email"

	err := Patient(d)
	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "Must be a valid email", fe["email"])
}

func TestPatient_PhoneFormat(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"+12025550123", true},
		{"12025550123", true},
		{"+0123", false},      // leading zero after +
		{"12-34", false},      // non-digits
		{"+1", false},         // too short
		{"+123456789012345678", false}, // beyond 15 digits
	}

	for _, tc := range tests {
		d := validDraft()
		d.PhoneNumber = tc.phone
		err := Patient(d)
		if tc.valid {
			assert.NoError(t, err, "phone %q", tc.phone)
		} else {
			var fe FieldErrors
			require.ErrorAs(t, err, &fe, "phone %q", tc.phone)
			assert.Equal(t, "Phone Number must be a valid phone number", fe["phoneNumber"])
		}
	}
}

func TestPatient_DOBFormat(t *testing.T) {
	tests := []struct {
		dob  string
		want string
	}{
		{"15-06-1985", "DOB must be in YYYY-MM-DD format"},
		{"1985/06/15", "DOB must be in YYYY-MM-DD format"},
		{"1985-13-40", "Invalid date format or value"},
		{"2020-02-31", "Invalid date format or value"},
	}

	for _, tc := range tests {
		d := validDraft()
		d.DOB = tc.dob
		err := Patient(d)
		var fe FieldErrors
		require.ErrorAs(t, err, &fe, "dob %q", tc.dob)
		assert.Equal(t, tc.want, fe["dob"])
	}
}

func TestPatient_DOBInFuture(t *testing.T) {
	orig := nowFn
	nowFn = func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { nowFn = orig })

	d := validDraft()
	d.DOB = "2026-09-02"

	err := Patient(d)
	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "DOB cannot be a future date", fe["dob"])

	// Today itself is allowed.
	d.DOB = "2026-09-01"
	assert.NoError(t, Patient(d))
}

func TestFieldErrors_ErrorStringIsStable(t *testing.T) {
	fe := FieldErrors{"b": "second", "a": "first"}
	assert.Equal(t, "a: first; b: second", fe.Error())
}
