package order

import (
	"context"
	"fmt"
	"strings"

	"aevonx/internal/adapters"
	"aevonx/internal/domain"

	"github.com/shopspring/decimal"
)

// Service packages a validated quote into the backend order-creation request
// and reads order status back. No retry anywhere: the user re-triggers.
type Service struct {
	client adapters.OrderClient
	cache  adapters.OrderCache
}

func NewService(client adapters.OrderClient, cache adapters.OrderCache) *Service {
	return &Service{client: client, cache: cache}
}

// Submit creates an order for the route. The amount is the numeric source
// amount the user entered, never the computed destination amount.
func (s *Service) Submit(ctx context.Context, route *domain.ExchangeRoute, sourceAmount, address, email string) (domain.OrderRef, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(sourceAmount))
	if err != nil || !amount.IsPositive() {
		return domain.OrderRef{}, fmt.Errorf("source amount %q is not a positive number", sourceAmount)
	}

	toValues := []domain.KV{{Key: "address", Value: address}}
	if email != "" {
		toValues = append(toValues, domain.KV{Key: "email", Value: email})
	}

	return s.client.CreateOrder(ctx, domain.OrderRequest{
		RouteID:            route.ID,
		Amount:             amount,
		ToValues:           toValues,
		Agreement:          true,
		DisableEmailNotify: email == "",
	})
}

// Status returns the order keyed by (uid, secret), served from the short-TTL
// cache when the status page is polling.
func (s *Service) Status(ctx context.Context, uid int64, secret string) (domain.Order, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(uid, secret); ok {
			return cached, nil
		}
	}

	fetched, err := s.client.GetOrder(ctx, uid, secret)
	if err != nil {
		return domain.Order{}, err
	}
	if s.cache != nil {
		s.cache.Set(uid, secret, fetched)
	}
	return fetched, nil
}
