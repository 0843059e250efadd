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

type CreateTicketRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
	Email   string `json:"email"`
}

type CreateTicketResponse struct {
	TicketID string `json:"ticketId"`
}

func (h *SupportHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 8192)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req CreateTicketRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)
	req.Email = strings.TrimSpace(req.Email)
	if req.Subject == "" || req.Message == "" || req.Email == "" {
		writeError(w, http.StatusBadRequest, "subject, message and email are required")
		return
	}

	ticketID, err := h.support.CreateTicket(r.Context(), domain.TicketRequest{
		Subject: req.Subject,
		Message: req.Message,
		Email:   req.Email,
	})
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			writeError(w, apiErr.Status, apiErr.Message)
			return
		}
		msg := "ups, couldn't send your message this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "CreateTicket"}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusCreated, CreateTicketResponse{TicketID: ticketID})
}
