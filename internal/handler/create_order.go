package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"aevonx/internal/adapters/backend"
	"aevonx/internal/domain"
	"aevonx/internal/quote"

	"github.com/sirupsen/logrus"
)

type CreateOrderRequest struct {
	From         string `json:"from"`
	To           string `json:"to"`
	SourceAmount string `json:"sourceAmount"`
	Address      string `json:"address"`
	Email        string `json:"email"`
}

type CreateOrderResponse struct {
	UID       int64  `json:"uid"`
	Secret    string `json:"secret"`
	StatusURL string `json:"statusUrl"`
}

type createOrderRejection struct {
	Verdict domain.Verdict `json:"verdict"`
}

// CreateOrder re-validates the quote server-side before submitting; the
// client's own validation is only a convenience.
func (h *ExchangeHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 2048)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req CreateOrderRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	q, err := quote.Resolve(h.routes.Routes(), quote.Inputs{
		FromID:       req.From,
		ToID:         req.To,
		SourceAmount: req.SourceAmount,
	}, req.Address)
	if err != nil {
		msg := "ups, couldn't create the order this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "CreateOrder", "from": req.From, "to": req.To}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	if !q.Verdict.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, createOrderRejection{Verdict: q.Verdict})
		return
	}

	ref, err := h.orders.Submit(r.Context(), q.Route, req.SourceAmount, req.Address, req.Email)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			// Backend rejections are surfaced verbatim; the message is
			// what the user needs to see.
			writeError(w, apiErr.Status, apiErr.Message)
			return
		}
		msg := "ups, couldn't create the order this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "CreateOrder", "route": q.Route.ID}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusCreated, CreateOrderResponse{
		UID:       ref.UID,
		Secret:    ref.Secret,
		StatusURL: fmt.Sprintf("/order/%d?secret=%s", ref.UID, ref.Secret),
	})
}
