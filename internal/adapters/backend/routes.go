package backend

import (
	"context"
	"net/http"
	"strings"

	"aevonx/internal/domain"

	"github.com/shopspring/decimal"
)

type apiCurrency struct {
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
	XML     string `json:"xml"`
	Decimal int    `json:"decimal"`
	Min     string `json:"min"`
	Max     string `json:"max"`
}

type apiRoute struct {
	From      apiCurrency `json:"from"`
	To        apiCurrency `json:"to"`
	In        float64     `json:"in"`
	Out       float64     `json:"out"`
	Amount    float64     `json:"amount"`
	MinAmount float64     `json:"minamount"`
	MaxAmount float64     `json:"maxamount"`
}

var fiatSymbols = map[string]struct{}{
	"USD": {}, "EUR": {}, "RUB": {}, "PLN": {}, "UAH": {},
}

// Currencies the product does not quote.
var excludedSymbols = map[string]struct{}{
	"UAH": {}, "KZT": {},
}

const defaultMaxAmount = "100000"

// FetchRoutes pulls the public route catalogue and maps it to domain routes.
// Routes with a non-positive quoted rate are dropped here so the resolver
// only ever sees a structurally valid catalogue.
func (c *Client) FetchRoutes(ctx context.Context) ([]domain.ExchangeRoute, error) {
	var raw []apiRoute
	if err := c.do(ctx, http.MethodGet, "/public/exchanger/route/get", nil, nil, &raw); err != nil {
		return nil, err
	}

	routes := make([]domain.ExchangeRoute, 0, len(raw))
	for _, ar := range raw {
		if _, skip := excludedSymbols[ar.From.Symbol]; skip {
			continue
		}
		if _, skip := excludedSymbols[ar.To.Symbol]; skip {
			continue
		}
		route, ok := mapRoute(ar)
		if !ok {
			continue
		}
		routes = append(routes, route)
	}
	return routes, nil
}

func mapRoute(ar apiRoute) (domain.ExchangeRoute, bool) {
	if ar.In <= 0 || ar.Out <= 0 {
		return domain.ExchangeRoute{}, false
	}
	rate := decimal.NewFromFloat(ar.Out).Div(decimal.NewFromFloat(ar.In))

	minAmount, err := decimal.NewFromString(ar.From.Min)
	if err != nil {
		minAmount = decimal.Zero
	}
	maxAmount, err := decimal.NewFromString(ar.From.Max)
	if err != nil || !maxAmount.IsPositive() {
		maxAmount = decimal.RequireFromString(defaultMaxAmount)
	}

	reserve := decimal.NewFromFloat(ar.Amount)
	if reserve.IsNegative() {
		return domain.ExchangeRoute{}, false
	}

	return domain.ExchangeRoute{
		ID:        ar.From.XML + "-" + ar.To.XML,
		From:      mapCurrency(ar.From),
		To:        mapCurrency(ar.To),
		Rate:      rate,
		MinAmount: minAmount,
		MaxAmount: maxAmount,
		Reserve:   reserve,
		IsActive:  true,
	}, true
}

func mapCurrency(ac apiCurrency) domain.Currency {
	currencyType := domain.CurrencyCrypto
	if _, fiat := fiatSymbols[ac.Symbol]; fiat {
		currencyType = domain.CurrencyFiat
	}
	return domain.Currency{
		ID:      ac.XML,
		Code:    ac.Symbol,
		Name:    ac.Name,
		Type:    currencyType,
		Network: networkTag(ac.XML),
	}
}

func networkTag(xml string) string {
	switch {
	case strings.Contains(xml, "TRC20"):
		return "TRC20"
	case strings.Contains(xml, "ERC20"):
		return "ERC20"
	case strings.Contains(xml, "BEP20"):
		return "BEP20"
	default:
		return ""
	}
}
