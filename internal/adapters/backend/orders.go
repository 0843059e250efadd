package backend

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"aevonx/internal/domain"

	"github.com/shopspring/decimal"
)

type createOrderPayload struct {
	RouteID            string      `json:"routeId"`
	Amount             float64     `json:"amount"`
	ToValues           []domain.KV `json:"toValues"`
	Agreement          bool        `json:"agreement"`
	DisableEmailNotify bool        `json:"disableEmailNotify"`
}

type apiOrder struct {
	UID       int64       `json:"uid"`
	RID       string      `json:"rid"`
	Status    string      `json:"status"`
	InAmount  float64     `json:"inAmount"`
	OutAmount float64     `json:"outAmount"`
	ToValues  []domain.KV `json:"toValues"`
	CreatedAt time.Time   `json:"createdAt"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// CreateOrder submits a validated quote. A positive amount is denominated in
// the source currency per the backend contract.
func (c *Client) CreateOrder(ctx context.Context, req domain.OrderRequest) (domain.OrderRef, error) {
	payload := createOrderPayload{
		RouteID:            req.RouteID,
		Amount:             req.Amount.InexactFloat64(),
		ToValues:           req.ToValues,
		Agreement:          req.Agreement,
		DisableEmailNotify: req.DisableEmailNotify,
	}

	var order apiOrder
	if err := c.do(ctx, http.MethodPost, "/public/exchanger/order/create", nil, payload, &order); err != nil {
		return domain.OrderRef{}, err
	}
	return domain.OrderRef{UID: order.UID, Secret: order.RID}, nil
}

// GetOrder looks up an order by its (uid, secret) pair.
func (c *Client) GetOrder(ctx context.Context, uid int64, secret string) (domain.Order, error) {
	query := url.Values{}
	query.Set("orderUID", strconv.FormatInt(uid, 10))
	query.Set("orderSecret", secret)

	var raw struct {
		apiOrder
		Route struct {
			From struct {
				Symbol string `json:"symbol"`
			} `json:"from"`
			To struct {
				Symbol string `json:"symbol"`
			} `json:"to"`
		} `json:"route"`
	}
	if err := c.do(ctx, http.MethodGet, "/public/exchanger/order/get", query, nil, &raw); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, err
	}

	order := domain.Order{
		UID:       raw.UID,
		RID:       raw.RID,
		Status:    raw.Status,
		InAmount:  decimal.NewFromFloat(raw.InAmount),
		OutAmount: decimal.NewFromFloat(raw.OutAmount),
		FromCode:  raw.Route.From.Symbol,
		ToCode:    raw.Route.To.Symbol,
		CreatedAt: raw.CreatedAt,
		ExpiresAt: raw.ExpiresAt,
	}
	for _, kv := range raw.ToValues {
		if kv.Key == "address" {
			order.Address = kv.Value
			break
		}
	}
	return order, nil
}
