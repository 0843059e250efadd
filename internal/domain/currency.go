package domain

type CurrencyType string

const (
	CurrencyCrypto CurrencyType = "crypto"
	CurrencyFiat   CurrencyType = "fiat"
)

// Currency is immutable reference data sourced from the route catalogue.
type Currency struct {
	ID      string       `json:"id"`
	Code    string       `json:"code"`
	Name    string       `json:"name"`
	Type    CurrencyType `json:"type"`
	Network string       `json:"network,omitempty"`
}

func (c Currency) IsCrypto() bool {
	return c.Type == CurrencyCrypto
}
