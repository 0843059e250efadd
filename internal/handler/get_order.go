package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"aevonx/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func (h *ExchangeHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	uid, err := strconv.ParseInt(chi.URLParam(r, "uid"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	secret := strings.TrimSpace(r.URL.Query().Get("secret"))
	if secret == "" {
		writeError(w, http.StatusBadRequest, "order secret is required")
		return
	}

	order, err := h.orders.Status(r.Context(), uid, secret)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			writeError(w, http.StatusNotFound, "order not found")
			return
		}
		msg := "ups, couldn't get the order this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetOrder", "uid": uid}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, order)
}
