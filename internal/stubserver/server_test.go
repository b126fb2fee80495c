package stubserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aahadaazar/patients-app/internal/client/models"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	s := New([]byte("test-signing-key"))
	ts := httptest.NewServer(s.Router())
	t.Cleanup(ts.Close)
	return s, ts
}

func login(t *testing.T, baseURL, id, password string) loginResponse {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"id": id, "password": password})
	resp, err := http.Post(baseURL+"/auth/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out loginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func doAuthed(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func seedN(s *Server, n int) {
	for i := 0; i < n; i++ {
		s.AddPatient(models.Patient{
			FirstName:   fmt.Sprintf("First%d", i),
			LastName:    fmt.Sprintf("Last%d", i),
			Email:       fmt.Sprintf("p%d@example.com", i),
			PhoneNumber: "+12025550123",
			DOB:         "1980-01-01",
		})
	}
}

func TestLogin_ValidCredentials(t *testing.T) {
	_, ts := newTestServer(t)

	res := login(t, ts.URL, "admin", "admin123")
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, "admin", res.ID)
	assert.Equal(t, models.RoleAdmin, res.Role)

	emp := login(t, ts.URL, "employee", "employee123")
	assert.Equal(t, models.RoleEmployee, emp.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	_, ts := newTestServer(t)

	body, _ := json.Marshal(map[string]string{"id": "admin", "password": "nope"})
	resp, err := http.Post(ts.URL+"/auth/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPatients_RequireBearerToken(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/patients?page=1&limit=10")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp2 := doAuthed(t, http.MethodGet, ts.URL+"/patients", "not-a-jwt", nil)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode)
}

func TestList_PaginationMath(t *testing.T) {
	s, ts := newTestServer(t)
	seedN(s, 11)
	token := login(t, ts.URL, "employee", "employee123").AccessToken

	resp := doAuthed(t, http.MethodGet, ts.URL+"/patients?page=1&limit=10", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page models.PatientPage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Equal(t, 11, page.Total)
	assert.Equal(t, 2, page.Pages)
	assert.Len(t, page.Data, 10)

	resp2 := doAuthed(t, http.MethodGet, ts.URL+"/patients?page=2&limit=10", token, nil)
	defer resp2.Body.Close()
	var page2 models.PatientPage
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&page2))
	assert.Len(t, page2.Data, 1)
}

func TestList_EmptyCollection_StillOnePage(t *testing.T) {
	_, ts := newTestServer(t)
	token := login(t, ts.URL, "employee", "employee123").AccessToken

	resp := doAuthed(t, http.MethodGet, ts.URL+"/patients?page=1&limit=10", token, nil)
	defer resp.Body.Close()

	var page models.PatientPage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 1, page.Pages)
	assert.Empty(t, page.Data)
}

func TestList_OutOfRangePage_ReturnsEmptyData(t *testing.T) {
	s, ts := newTestServer(t)
	seedN(s, 10)
	token := login(t, ts.URL, "employee", "employee123").AccessToken

	resp := doAuthed(t, http.MethodGet, ts.URL+"/patients?page=5&limit=10", token, nil)
	defer resp.Body.Close()

	var page models.PatientPage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Empty(t, page.Data)
	assert.Equal(t, 1, page.Pages)
	assert.Equal(t, 10, page.Total)
}

func TestCRUD_Lifecycle(t *testing.T) {
	_, ts := newTestServer(t)
	token := login(t, ts.URL, "admin", "admin123").AccessToken

	draft := models.PatientDraft{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
		PhoneNumber: "+12025550123", DOB: "1985-06-15",
	}

	// create
	resp := doAuthed(t, http.MethodPost, ts.URL+"/patients", token, draft)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Patient
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	assert.Equal(t, int64(1), created.ID)

	// get
	resp = doAuthed(t, http.MethodGet, fmt.Sprintf("%s/patients/%d", ts.URL, created.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// update
	draft.FirstName = "Janet"
	resp = doAuthed(t, http.MethodPatch, fmt.Sprintf("%s/patients/%d", ts.URL, created.ID), token, draft)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.Patient
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	resp.Body.Close()
	assert.Equal(t, "Janet", updated.FirstName)
	assert.Equal(t, created.ID, updated.ID)

	// delete
	resp = doAuthed(t, http.MethodDelete, fmt.Sprintf("%s/patients/%d", ts.URL, created.ID), token, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	// gone
	resp = doAuthed(t, http.MethodGet, fmt.Sprintf("%s/patients/%d", ts.URL, created.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestMutations_ForbiddenForEmployee(t *testing.T) {
	s, ts := newTestServer(t)
	seedN(s, 1)
	token := login(t, ts.URL, "employee", "employee123").AccessToken

	draft := models.PatientDraft{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
		PhoneNumber: "+12025550123", DOB: "1985-06-15",
	}

	resp := doAuthed(t, http.MethodPost, ts.URL+"/patients", token, draft)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doAuthed(t, http.MethodDelete, ts.URL+"/patients/1", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Reads remain allowed.
	resp = doAuthed(t, http.MethodGet, ts.URL+"/patients/1", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestCreate_RejectsIncompleteDraft(t *testing.T) {
	_, ts := newTestServer(t)
	token := login(t, ts.URL, "admin", "admin123").AccessToken

	resp := doAuthed(t, http.MethodPost, ts.URL+"/patients", token, models.PatientDraft{FirstName: "OnlyName"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestSeed_ProducesValidRecords(t *testing.T) {
	s, _ := newTestServer(t)
	s.Seed(25)
	assert.Equal(t, 25, s.PatientCount())
}
