package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"estate-console/internal/domain"
	"estate-console/internal/service"
)

// AuthHandler serves login, logout and master-admin setup.
type AuthHandler struct {
	auth service.AuthService
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type masterAdminRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// HandleLogin authenticates against the backend and persists the session.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	admin, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, admin)
}

// HandleLogout clears the persisted session.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// HandleSession returns the logged-in admin's profile.
func (h *AuthHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	admin, err := h.auth.CurrentAdmin(r.Context())
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, admin)
}

// HandleMasterAdminStatus reports whether the master admin account exists.
func (h *AuthHandler) HandleMasterAdminStatus(w http.ResponseWriter, r *http.Request) {
	exists, err := h.auth.CheckMasterAdmin(r.Context())
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"exists": exists})
}

// HandleCreateMasterAdmin performs first-time master admin setup.
func (h *AuthHandler) HandleCreateMasterAdmin(w http.ResponseWriter, r *http.Request) {
	var req masterAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	admin := domain.Admin{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		IsActive: true,
	}
	if err := h.auth.CreateMasterAdmin(r.Context(), admin, req.Password); err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}

// RegisterAuthRoutes registers the session endpoints.
func RegisterAuthRoutes(router *mux.Router, h *AuthHandler) {
	router.HandleFunc("/api/login", h.HandleLogin).Methods("POST")
	router.HandleFunc("/api/logout", h.HandleLogout).Methods("POST")
	router.HandleFunc("/api/session", h.HandleSession).Methods("GET")
	router.HandleFunc("/api/master-admin/status", h.HandleMasterAdminStatus).Methods("GET")
	router.HandleFunc("/api/master-admin", h.HandleCreateMasterAdmin).Methods("POST")
}
