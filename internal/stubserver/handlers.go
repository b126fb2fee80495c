package stubserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/aahadaazar/patients-app/internal/client/models"
)

type loginRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string      `json:"access_token"`
	ID          string      `json:"id"`
	Role        models.Role `json:"role"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
		return
	}

	s.mu.Lock()
	acc, ok := s.accounts[req.ID]
	s.mu.Unlock()

	if !ok || bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "invalid_credentials", "unknown id or wrong password")
		return
	}

	token, err := s.issueToken(acc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{AccessToken: token, ID: acc.id, Role: acc.role})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	s.mu.Lock()
	total := len(s.patients)
	pages := (total + limit - 1) / limit
	if pages < 1 {
		pages = 1
	}

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	data := append([]models.Patient(nil), s.patients[start:end]...)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, models.PatientPage{Data: data, Total: total, Pages: pages})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.patients {
		if p.ID == id {
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	writeError(w, http.StatusNotFound, "patient_not_found", "no such patient")
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	draft, ok := decodeDraft(w, r)
	if !ok {
		return
	}

	created := s.AddPatient(models.Patient{
		FirstName:   draft.FirstName,
		LastName:    draft.LastName,
		Email:       draft.Email,
		PhoneNumber: draft.PhoneNumber,
		DOB:         draft.DOB,
	})
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	draft, ok := decodeDraft(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.patients {
		if p.ID == id {
			s.patients[i] = models.Patient{
				ID:          id,
				FirstName:   draft.FirstName,
				LastName:    draft.LastName,
				Email:       draft.Email,
				PhoneNumber: draft.PhoneNumber,
				DOB:         draft.DOB,
			}
			writeJSON(w, http.StatusOK, s.patients[i])
			return
		}
	}
	writeError(w, http.StatusNotFound, "patient_not_found", "no such patient")
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.patients {
		if p.ID == id {
			s.patients = append(s.patients[:i], s.patients[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "patient_not_found", "no such patient")
}

// ---- helpers ----

func decodeDraft(w http.ResponseWriter, r *http.Request) (models.PatientDraft, bool) {
	var draft models.PatientDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
		return draft, false
	}
	if draft.FirstName == "" || draft.LastName == "" || draft.Email == "" ||
		draft.PhoneNumber == "" || draft.DOB == "" {
		writeError(w, http.StatusBadRequest, "invalid_patient", "all fields are required")
		return draft, false
	}
	return draft, true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_patient_id", "id must be an integer")
		return 0, false
	}
	return id, true
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
