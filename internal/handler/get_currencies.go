package handler

import (
	"net/http"

	"aevonx/internal/domain"
)

type GetCurrenciesResponse struct {
	Currencies []domain.Currency `json:"currencies"`
}

func (h *ExchangeHandler) GetCurrencies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, GetCurrenciesResponse{
		Currencies: h.routes.Currencies(),
	})
}
