package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/aahadaazar/patients-app/internal/client/models"
	"github.com/aahadaazar/patients-app/internal/client/notify"
	"github.com/aahadaazar/patients-app/internal/common"
	"github.com/aahadaazar/patients-app/internal/logging"
)

// HTTPGateway talks to the backend over its REST/JSON contract.
type HTTPGateway struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	hooks   Hooks
	log     logging.Logger

	// invalidated latches after the first 401 so that concurrent failures
	// trigger OnUnauthorized exactly once. Reset by ResetAuth after a
	// fresh login.
	invalidated atomic.Bool
}

func NewHTTPGateway(baseURL string, timeout time.Duration, tokens TokenSource, hooks Hooks, log logging.Logger) *HTTPGateway {
	return &HTTPGateway{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		hooks:   hooks,
		log:     log.With("component", "gateway"),
	}
}

// ResetAuth re-arms unauthorized detection. The caller must invoke it after
// establishing a new session.
func (g *HTTPGateway) ResetAuth() {
	g.invalidated.Store(false)
}

type loginRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

// Login authenticates against the backend. It is the one public path: no
// Authorization header is attached.
func (g *HTTPGateway) Login(ctx context.Context, id, password string) (LoginResult, error) {
	var res LoginResult
	err := g.do(ctx, http.MethodPost, "/auth/login", nil, loginRequest{ID: id, Password: password}, &res, false)
	if err != nil {
		return LoginResult{}, err
	}
	return res, nil
}

func (g *HTTPGateway) ListPatients(ctx context.Context, page, limit int) (models.PatientPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	var res models.PatientPage
	if err := g.do(ctx, http.MethodGet, "/patients", q, nil, &res, true); err != nil {
		return models.PatientPage{}, err
	}
	return res, nil
}

func (g *HTTPGateway) GetPatient(ctx context.Context, id int64) (models.Patient, error) {
	var res models.Patient
	if err := g.do(ctx, http.MethodGet, fmt.Sprintf("/patients/%d", id), nil, nil, &res, true); err != nil {
		return models.Patient{}, err
	}
	return res, nil
}

func (g *HTTPGateway) CreatePatient(ctx context.Context, draft models.PatientDraft) (models.Patient, error) {
	var res models.Patient
	if err := g.do(ctx, http.MethodPost, "/patients", nil, draft, &res, true); err != nil {
		return models.Patient{}, err
	}
	g.hooks.Notify("Patient created successfully", notify.Success)
	return res, nil
}

func (g *HTTPGateway) UpdatePatient(ctx context.Context, id int64, draft models.PatientDraft) (models.Patient, error) {
	var res models.Patient
	if err := g.do(ctx, http.MethodPatch, fmt.Sprintf("/patients/%d", id), nil, draft, &res, true); err != nil {
		return models.Patient{}, err
	}
	g.hooks.Notify(fmt.Sprintf("Patient %s updated successfully", draft.FirstName), notify.Success)
	return res, nil
}

func (g *HTTPGateway) DeletePatient(ctx context.Context, id int64) error {
	if err := g.do(ctx, http.MethodDelete, fmt.Sprintf("/patients/%d", id), nil, nil, nil, true); err != nil {
		return err
	}
	g.hooks.Notify("Patient deleted successfully!", notify.Success)
	return nil
}

// do performs one JSON request/response round-trip. When authed is true the
// current bearer token is attached. A 401 response escalates through
// handleUnauthorized regardless of the path that produced it.
func (g *HTTPGateway) do(ctx context.Context, method, path string, query url.Values, body, out any, authed bool) error {
	u := g.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if authed {
		if token := g.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := g.http.Do(req)
	if err != nil {
		g.log.Error(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		g.handleUnauthorized(ctx, method, path)
		return common.ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return common.ErrNotFound
	case resp.StatusCode >= 400:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		g.log.Error(ctx, "backend error", "method", method, "path", path, "status", resp.StatusCode)
		return fmt.Errorf("backend returned %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// handleUnauthorized escalates a 401 to forced session invalidation. The
// latch guarantees a single OnUnauthorized call even when several in-flight
// requests fail with 401 at the same time.
func (g *HTTPGateway) handleUnauthorized(ctx context.Context, method, path string) {
	if g.invalidated.CompareAndSwap(false, true) {
		g.log.Warn(ctx, "unauthorized response, invalidating session", "method", method, "path", path)
		g.hooks.OnUnauthorized()
	}
}
