// Package patients drives the fetch/mutate/refetch cycle for the paginated
// patient list. The backend is authoritative for ordering, counts, and id
// assignment: every successful mutation triggers a full page refetch, never
// a local patch.
package patients

import (
	"context"
	"sync"

	"github.com/aahadaazar/patients-app/internal/client/models"
	"github.com/aahadaazar/patients-app/internal/client/validation"
	"github.com/aahadaazar/patients-app/internal/logging"
)

// DefaultPageSize is the fixed page size of the patient list.
const DefaultPageSize = 10

// fetchErrorMessage is the inline error shown when a page fetch fails.
const fetchErrorMessage = "Failed to load patients. Please try again."

// API is the subset of the outbound gateway the controller needs.
type API interface {
	ListPatients(ctx context.Context, page, limit int) (models.PatientPage, error)
	GetPatient(ctx context.Context, id int64) (models.Patient, error)
	CreatePatient(ctx context.Context, draft models.PatientDraft) (models.Patient, error)
	UpdatePatient(ctx context.Context, id int64, draft models.PatientDraft) (models.Patient, error)
	DeletePatient(ctx context.Context, id int64) error
}

// PageState is the transient view state of the patient list. It is rebuilt
// wholesale from every fetch response and never merged incrementally.
type PageState struct {
	CurrentPage int
	TotalPages  int
	TotalItems  int
	Items       []models.Patient
	Loading     bool
	LastError   string
}

// Controller owns the page cursor and synchronizes the displayed list with
// the backend.
type Controller struct {
	api      API
	log      logging.Logger
	pageSize int

	mu    sync.Mutex
	state PageState
	// epoch is a monotonic issue counter; only the response belonging to
	// the newest issued fetch may commit. This closes the stale-overwrite
	// race of rapid pagination.
	epoch uint64
}

func NewController(api API, log logging.Logger) *Controller {
	return &Controller{
		api:      api,
		log:      log.With("component", "patients"),
		pageSize: DefaultPageSize,
		state:    PageState{CurrentPage: 1, TotalPages: 1},
	}
}

// State returns a snapshot of the page view state.
func (c *Controller) State() PageState {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := c.state
	st.Items = append([]models.Patient(nil), c.state.Items...)
	return st
}

// LoadPage fetches page n and replaces the view state from the response.
// On failure the previous items are retained and LastError is set; no retry
// is attempted. A LoadPage issued while another is in flight supersedes it:
// the earlier response is discarded when it arrives.
func (c *Controller) LoadPage(ctx context.Context, n int) error {
	if n < 1 {
		n = 1
	}

	c.mu.Lock()
	c.epoch++
	issue := c.epoch
	c.state.Loading = true
	c.mu.Unlock()

	page, err := c.api.ListPatients(ctx, n, c.pageSize)

	c.mu.Lock()
	if issue != c.epoch {
		// A newer fetch was issued while this one was in flight; its
		// response is the only one allowed to commit.
		c.mu.Unlock()
		c.log.Debug(ctx, "discarding stale page response", "page", n)
		return nil
	}

	if err != nil {
		c.state.Loading = false
		c.state.LastError = fetchErrorMessage
		c.mu.Unlock()
		c.log.Error(ctx, "failed to fetch patients", "page", n, "error", err)
		return err
	}

	totalPages := page.Pages
	if totalPages < 1 {
		totalPages = 1
	}

	c.state = PageState{
		CurrentPage: n,
		TotalPages:  totalPages,
		TotalItems:  page.Total,
		Items:       page.Data,
	}

	// The response's pages field is the sole truth for whether page n still
	// exists (e.g. after deleting the last item of the last page). If it no
	// longer does, follow the backend to the last remaining page.
	refetch := 0
	if n > totalPages {
		c.state.CurrentPage = totalPages
		refetch = totalPages
	}
	c.mu.Unlock()

	c.log.Debug(ctx, "page loaded", "page", n, "items", len(page.Data), "total", page.Total, "pages", totalPages)

	if refetch > 0 {
		return c.LoadPage(ctx, refetch)
	}
	return nil
}

// Refresh refetches the current page.
func (c *Controller) Refresh(ctx context.Context) error {
	return c.LoadPage(ctx, c.currentPage())
}

// NextPage advances the cursor. It is a no-op at the last page or while a
// fetch is in flight.
func (c *Controller) NextPage(ctx context.Context) error {
	c.mu.Lock()
	if c.state.Loading || c.state.CurrentPage >= c.state.TotalPages {
		c.mu.Unlock()
		return nil
	}
	target := c.state.CurrentPage + 1
	c.mu.Unlock()

	return c.LoadPage(ctx, target)
}

// PreviousPage moves the cursor back. It is a no-op at page 1 or while a
// fetch is in flight.
func (c *Controller) PreviousPage(ctx context.Context) error {
	c.mu.Lock()
	if c.state.Loading || c.state.CurrentPage <= 1 {
		c.mu.Unlock()
		return nil
	}
	target := c.state.CurrentPage - 1
	c.mu.Unlock()

	return c.LoadPage(ctx, target)
}

// Get fetches a single patient, used to prefill the edit form.
func (c *Controller) Get(ctx context.Context, id int64) (models.Patient, error) {
	return c.api.GetPatient(ctx, id)
}

// Create validates and submits a new patient. On success the list returns
// to page 1 so the created record surfaces deterministically.
func (c *Controller) Create(ctx context.Context, draft models.PatientDraft) error {
	if err := validation.Patient(draft); err != nil {
		return err
	}
	if _, err := c.api.CreatePatient(ctx, draft); err != nil {
		return err
	}
	return c.LoadPage(ctx, 1)
}

// Update validates and submits changed patient fields. On success the
// current page is refetched.
func (c *Controller) Update(ctx context.Context, id int64, draft models.PatientDraft) error {
	if err := validation.Patient(draft); err != nil {
		return err
	}
	if _, err := c.api.UpdatePatient(ctx, id, draft); err != nil {
		return err
	}
	return c.LoadPage(ctx, c.currentPage())
}

// Delete removes a patient. On success the same page number is refetched;
// the backend's response decides whether that page still exists.
func (c *Controller) Delete(ctx context.Context, id int64) error {
	if err := c.api.DeletePatient(ctx, id); err != nil {
		return err
	}
	return c.LoadPage(ctx, c.currentPage())
}

func (c *Controller) currentPage() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.CurrentPage
}
