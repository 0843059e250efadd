package handler

import (
	"net/http"

	"aevonx/internal/domain"
)

type GetRoutesResponse struct {
	Routes   []domain.ExchangeRoute `json:"routes"`
	Fallback bool                   `json:"fallback"`
}

func (h *ExchangeHandler) GetRoutes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, GetRoutesResponse{
		Routes:   h.routes.Routes(),
		Fallback: h.routes.UsingFallback(),
	})
}
