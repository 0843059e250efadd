package handler

import (
	"encoding/json"
	"net/http"

	"aevonx/internal/domain"
	"aevonx/internal/quote"

	"github.com/sirupsen/logrus"
)

type SwapQuoteRequest struct {
	From              string `json:"from"`
	To                string `json:"to"`
	SourceAmount      string `json:"sourceAmount"`
	DestinationAmount string `json:"destinationAmount"`
	Address           string `json:"address"`
}

type SwapQuoteResponse struct {
	Inputs quote.Inputs `json:"inputs"`
	Quote  domain.Quote `json:"quote"`
}

// SwapQuote flips the currency roles and immediately re-resolves, so the
// client always receives a quote consistent with the swapped inputs.
func (h *ExchangeHandler) SwapQuote(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1024)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req SwapQuoteRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	swapped := quote.SwapInputs(quote.Inputs{
		FromID:            req.From,
		ToID:              req.To,
		SourceAmount:      req.SourceAmount,
		DestinationAmount: req.DestinationAmount,
	})

	q, err := quote.Resolve(h.routes.Routes(), swapped, req.Address)
	if err != nil {
		msg := "ups, couldn't swap the quote this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "SwapQuote", "from": req.From, "to": req.To}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, SwapQuoteResponse{Inputs: swapped, Quote: q})
}
