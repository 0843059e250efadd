package quote

import (
	"fmt"
	"strings"

	"aevonx/internal/domain"

	"github.com/shopspring/decimal"
)

// Inputs are the user-entered quote form fields. A fresh Quote is derived
// from them on every change; there is no partial-update state.
type Inputs struct {
	FromID            string `json:"from"`
	ToID              string `json:"to"`
	SourceAmount      string `json:"sourceAmount"`
	DestinationAmount string `json:"destinationAmount,omitempty"`
}

const (
	cryptoPlaces int32 = 8
	fiatPlaces   int32 = 2
)

// FindRoute returns the unique active route for the pair. Absence is a
// supported "pair unavailable" state, not an error.
func FindRoute(routes []domain.ExchangeRoute, fromID, toID string) (*domain.ExchangeRoute, bool) {
	for i := range routes {
		r := &routes[i]
		if r.IsActive && r.From.ID == fromID && r.To.ID == toID {
			return r, true
		}
	}
	return nil, false
}

// ComputeDestinationAmount multiplies the source amount by the route rate and
// formats the result per the destination currency class: 8 fractional digits
// for crypto, 2 for fiat. The formatting is a display contract; the
// multiplication itself is exact decimal arithmetic.
func ComputeDestinationAmount(route *domain.ExchangeRoute, sourceAmount string) (string, error) {
	if err := route.CheckStructure(); err != nil {
		return "", err
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(sourceAmount))
	if err != nil {
		return "", fmt.Errorf("source amount %q is not numeric: %w", sourceAmount, err)
	}
	places := fiatPlaces
	if route.To.IsCrypto() {
		places = cryptoPlaces
	}
	return amount.Mul(route.Rate).StringFixed(places), nil
}

// Validate classifies the candidate order. Checks run in a fixed order and
// the first failure wins, so the user-facing message is deterministic: an
// out-of-range amount is reported even when the address is also blank,
// because the amount is what the user corrects first.
func Validate(route *domain.ExchangeRoute, sourceAmount, destinationAddress string) domain.Verdict {
	if route == nil {
		return invalid(domain.ReasonPairUnavailable, "This exchange pair is not available")
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(sourceAmount))
	if err != nil || !amount.IsPositive() {
		return invalid(domain.ReasonAmountRequired, "Enter an amount")
	}
	if amount.LessThan(route.MinAmount) {
		return invalid(domain.ReasonBelowMinimum,
			fmt.Sprintf("Minimum amount is %s %s", route.MinAmount.String(), route.From.Code))
	}
	if amount.GreaterThan(route.MaxAmount) {
		return invalid(domain.ReasonAboveMaximum,
			fmt.Sprintf("Maximum amount is %s %s", route.MaxAmount.String(), route.From.Code))
	}
	if strings.TrimSpace(destinationAddress) == "" {
		return invalid(domain.ReasonAddressRequired, "Enter recipient address")
	}
	return domain.Verdict{Valid: true}
}

// SwapInputs exchanges the currency roles and moves the previous destination
// amount verbatim into the source slot. The result is provisional until the
// next recomputation; callers must resolve it again before trusting it.
func SwapInputs(in Inputs) Inputs {
	return Inputs{
		FromID:            in.ToID,
		ToID:              in.FromID,
		SourceAmount:      in.DestinationAmount,
		DestinationAmount: in.SourceAmount,
	}
}

// AvailableDestinations lists currencies reachable from the source via an
// active route, in the order the routes were supplied.
func AvailableDestinations(routes []domain.ExchangeRoute, fromID string) []domain.Currency {
	var out []domain.Currency
	for _, r := range routes {
		if r.IsActive && r.From.ID == fromID {
			out = append(out, r.To)
		}
	}
	return out
}

// Resolve builds a fresh Quote for the given inputs and address. It returns
// an error only for structurally malformed route data; every "normal"
// unsupported state is expressed through the verdict. The destination amount
// is computed whenever a route matches and the amount parses positive, even
// if the quote is out of range, mirroring what the form displays.
func Resolve(routes []domain.ExchangeRoute, in Inputs, destinationAddress string) (domain.Quote, error) {
	q := domain.Quote{
		FromID:       in.FromID,
		ToID:         in.ToID,
		SourceAmount: in.SourceAmount,
	}

	route, ok := FindRoute(routes, in.FromID, in.ToID)
	if ok {
		if err := route.CheckStructure(); err != nil {
			return domain.Quote{}, err
		}
		q.Route = route
		if amount, err := decimal.NewFromString(strings.TrimSpace(in.SourceAmount)); err == nil && amount.IsPositive() {
			dest, destErr := ComputeDestinationAmount(route, in.SourceAmount)
			if destErr != nil {
				return domain.Quote{}, destErr
			}
			q.DestinationAmount = dest
		}
	}

	q.Verdict = Validate(q.Route, in.SourceAmount, destinationAddress)
	return q, nil
}

func invalid(reason domain.InvalidReason, message string) domain.Verdict {
	return domain.Verdict{Reason: reason, Message: message}
}
