package stubserver

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/aahadaazar/patients-app/internal/client/models"
)

// Seed fills the collection with count fake patients: plausible names,
// emails, E.164 phone numbers, and past dates of birth.
func (s *Server) Seed(count int) {
	now := time.Now()
	for i := 0; i < count; i++ {
		p := gofakeit.Person()
		s.AddPatient(models.Patient{
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			Email:       gofakeit.Email(),
			PhoneNumber: fmt.Sprintf("+1%s", gofakeit.Numerify("##########")),
			DOB:         gofakeit.DateRange(now.AddDate(-90, 0, 0), now.AddDate(-18, 0, 0)).Format("2006-01-02"),
		})
	}
}
