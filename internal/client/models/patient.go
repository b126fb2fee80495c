package models

// Patient is a patient record as served by the backend. ID is
// server-assigned and immutable.
type Patient struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	DOB         string `json:"dob"`
}

// PatientDraft carries the writable fields of a patient for create and
// update calls.
type PatientDraft struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	DOB         string `json:"dob"`
}

// PatientPage is one page of the patient collection together with the
// backend's pagination counters. The backend is authoritative for both.
type PatientPage struct {
	Data  []Patient `json:"data"`
	Total int       `json:"total"`
	Pages int       `json:"pages"`
}
