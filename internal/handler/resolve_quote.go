package handler

import (
	"encoding/json"
	"net/http"

	"aevonx/internal/domain"
	"aevonx/internal/quote"

	"github.com/sirupsen/logrus"
)

type ResolveQuoteRequest struct {
	From         string `json:"from"`
	To           string `json:"to"`
	SourceAmount string `json:"sourceAmount"`
	Address      string `json:"address"`
}

type ResolveQuoteResponse struct {
	Quote domain.Quote `json:"quote"`
}

func (h *ExchangeHandler) ResolveQuote(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1024)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req ResolveQuoteRequest
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
		msg := "ups, couldn't resolve the quote this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "ResolveQuote", "from": req.From, "to": req.To}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, ResolveQuoteResponse{Quote: q})
}
