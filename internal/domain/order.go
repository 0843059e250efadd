package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// KV is a backend key/value form field, e.g. {key: "address", value: "..."}.
type KV struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// OrderRequest is the order-creation contract towards the backend. Amount is
// positive and denominated in the source currency.
type OrderRequest struct {
	RouteID            string
	Amount             decimal.Decimal
	ToValues           []KV
	Agreement          bool
	DisableEmailNotify bool
}

// OrderRef identifies a created order; the status page is keyed by both.
type OrderRef struct {
	UID    int64  `json:"uid"`
	Secret string `json:"secret"`
}

type Order struct {
	UID       int64           `json:"uid"`
	RID       string          `json:"rid"`
	Status    string          `json:"status"`
	InAmount  decimal.Decimal `json:"inAmount"`
	OutAmount decimal.Decimal `json:"outAmount"`
	FromCode  string          `json:"fromCode"`
	ToCode    string          `json:"toCode"`
	Address   string          `json:"address,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	ExpiresAt time.Time       `json:"expiresAt,omitempty"`
}
