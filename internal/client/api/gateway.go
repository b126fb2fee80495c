// Package api implements the single outbound gateway through which every
// component talks to the patients backend. It owns bearer-token attachment,
// request correlation ids, error mapping, and forced session invalidation
// on unauthorized responses.
package api

import (
	"context"

	"github.com/aahadaazar/patients-app/internal/client/models"
	"github.com/aahadaazar/patients-app/internal/client/notify"
)

// LoginResult mirrors the backend's POST /auth/login response.
type LoginResult struct {
	AccessToken string      `json:"access_token"`
	ID          string      `json:"id"`
	Role        models.Role `json:"role"`
}

// Gateway is the outbound contract of the backend. The patients controller
// and the view layer depend on this interface, never on the HTTP client
// directly.
type Gateway interface {
	Login(ctx context.Context, id, password string) (LoginResult, error)
	ListPatients(ctx context.Context, page, limit int) (models.PatientPage, error)
	GetPatient(ctx context.Context, id int64) (models.Patient, error)
	CreatePatient(ctx context.Context, draft models.PatientDraft) (models.Patient, error)
	UpdatePatient(ctx context.Context, id int64, draft models.PatientDraft) (models.Patient, error)
	DeletePatient(ctx context.Context, id int64) error
}

// TokenSource supplies the current bearer token. An empty string means no
// session is held.
type TokenSource interface {
	Token() string
}

// Hooks are the gateway's callbacks into the rest of the application,
// supplied at construction. OnUnauthorized is invoked at most once per
// authenticated epoch when the backend rejects a request with 401;
// Notify surfaces transient user-facing messages.
type Hooks interface {
	OnUnauthorized()
	Notify(message string, kind notify.Kind)
}
