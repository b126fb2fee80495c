// Package stubserver is a self-contained in-memory backend implementing the
// patients REST contract. It backs the test suites and `cmd/stubserver` for
// local development; the real backend is an external system.
package stubserver

import (
	"sync"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/aahadaazar/patients-app/internal/client/models"
)

type account struct {
	id           string
	role         models.Role
	passwordHash []byte
}

// Server holds the in-memory patient collection and the seeded accounts.
type Server struct {
	signingKey []byte

	mu       sync.Mutex
	accounts map[string]account
	patients []models.Patient
	nextID   int64
}

// New creates a stub backend with two accounts:
// admin/admin123 (ADMIN) and employee/employee123 (EMPLOYEE).
func New(signingKey []byte) *Server {
	s := &Server{
		signingKey: signingKey,
		accounts:   map[string]account{},
		nextID:     1,
	}
	s.addAccount("admin", "admin123", models.RoleAdmin)
	s.addAccount("employee", "employee123", models.RoleEmployee)
	return s
}

func (s *Server) addAccount(id, password string, role models.Role) {
	// MinCost: throwaway dev credentials, hashed on every start.
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	s.accounts[id] = account{id: id, role: role, passwordHash: hash}
}

// AddPatient inserts a record, assigning the next id. Returns the stored copy.
func (s *Server) AddPatient(p models.Patient) models.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextID
	s.nextID++
	s.patients = append(s.patients, p)
	return p
}

// PatientCount reports how many records are held.
func (s *Server) PatientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.patients)
}

// Router assembles the HTTP surface of the §6 contract.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Post("/auth/login", s.handleLogin)

	r.Route("/patients", func(r chi.Router) {
		r.Use(s.bearerAuth)
		r.Get("/", s.handleList)
		r.Get("/{id}", s.handleGet)

		r.Group(func(r chi.Router) {
			r.Use(s.requireRole(models.RoleAdmin))
			r.Post("/", s.handleCreate)
			r.Patch("/{id}", s.handleUpdate)
			r.Delete("/{id}", s.handleDelete)
		})
	})

	return r
}
