package domain

type InvalidReason string

const (
	ReasonPairUnavailable InvalidReason = "PAIR_UNAVAILABLE"
	ReasonAmountRequired  InvalidReason = "AMOUNT_REQUIRED"
	ReasonBelowMinimum    InvalidReason = "BELOW_MINIMUM"
	ReasonAboveMaximum    InvalidReason = "ABOVE_MAXIMUM"
	ReasonAddressRequired InvalidReason = "ADDRESS_REQUIRED"
)

// Verdict classifies a candidate order. Reason and Message are empty when
// the quote is valid.
type Verdict struct {
	Valid   bool          `json:"valid"`
	Reason  InvalidReason `json:"reason,omitempty"`
	Message string        `json:"message,omitempty"`
}

// Quote is ephemeral: recomputed from scratch on every input change and
// never persisted. Route is nil when the selected pair is unsupported.
type Quote struct {
	FromID            string         `json:"from"`
	ToID              string         `json:"to"`
	SourceAmount      string         `json:"sourceAmount"`
	DestinationAmount string         `json:"destinationAmount"`
	Route             *ExchangeRoute `json:"route,omitempty"`
	Verdict           Verdict        `json:"verdict"`
}
