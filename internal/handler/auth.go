package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"aevonx/internal/adapters/backend"
	"aevonx/internal/domain"

	"github.com/sirupsen/logrus"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Code     int    `json:"code"`
}

type LoginResponse struct {
	User domain.User `json:"user"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1024)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req LoginRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.auth.Login(r.Context(), req.Email, req.Password, req.Code)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			writeError(w, apiErr.Status, apiErr.Message)
			return
		}
		msg := "ups, couldn't sign you in this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Login"}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{User: user})
}

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PartnerCode string `json:"partnerCode"`
}

type RegisterResponse struct {
	User domain.User `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 2048)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req RegisterRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}
	if len(req.Password) < 5 {
		writeError(w, http.StatusBadRequest, "password must be at least 5 characters")
		return
	}

	user, err := h.auth.Register(r.Context(), domain.RegisterRequest{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		PartnerCode: strings.TrimSpace(req.PartnerCode),
	})
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			writeError(w, apiErr.Status, apiErr.Message)
			return
		}
		msg := "ups, couldn't create your account this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Register"}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusCreated, RegisterResponse{User: user})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(); err != nil {
		msg := "ups, couldn't sign you out this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Logout"}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type SessionResponse struct {
	User domain.User `json:"user"`
}

func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.Session(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		msg := "ups, couldn't load your session this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Session"}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, SessionResponse{User: user})
}
