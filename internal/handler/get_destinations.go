package handler

import (
	"net/http"
	"strings"

	"aevonx/internal/domain"
	"aevonx/internal/quote"

	"github.com/go-chi/chi/v5"
)

type GetDestinationsResponse struct {
	Destinations []domain.Currency `json:"destinations"`
}

func (h *ExchangeHandler) GetDestinations(w http.ResponseWriter, r *http.Request) {
	from := strings.TrimSpace(chi.URLParam(r, "from"))
	if from == "" {
		writeError(w, http.StatusBadRequest, "source currency is required")
		return
	}

	destinations := quote.AvailableDestinations(h.routes.Routes(), from)
	writeJSON(w, http.StatusOK, GetDestinationsResponse{
		Destinations: destinations,
	})
}
