package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"aevonx/internal/domain"
)

// RouteProvider is the route snapshot the quoting endpoints read from.
type RouteProvider interface {
	Routes() []domain.ExchangeRoute
	Currencies() []domain.Currency
	UsingFallback() bool
}

type OrderService interface {
	Submit(ctx context.Context, route *domain.ExchangeRoute, sourceAmount, address, email string) (domain.OrderRef, error)
	Status(ctx context.Context, uid int64, secret string) (domain.Order, error)
}

type ContentProvider interface {
	News() []domain.NewsArticle
	Reviews() []domain.Review
	FAQ() []domain.FAQItem
}

type AuthService interface {
	Login(ctx context.Context, email, password string, code int) (domain.User, error)
	Register(ctx context.Context, req domain.RegisterRequest) (domain.User, error)
	Logout() error
	Session(ctx context.Context) (domain.User, error)
}

type SupportService interface {
	CreateTicket(ctx context.Context, req domain.TicketRequest) (string, error)
}

type ExchangeHandler struct {
	routes RouteProvider
	orders OrderService
}

func NewExchangeHandler(routes RouteProvider, orders OrderService) *ExchangeHandler {
	return &ExchangeHandler{routes: routes, orders: orders}
}

type ContentHandler struct {
	content ContentProvider
}

func NewContentHandler(content ContentProvider) *ContentHandler {
	return &ContentHandler{content: content}
}

type AuthHandler struct {
	auth AuthService
}

func NewAuthHandler(auth AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type SupportHandler struct {
	support SupportService
}

func NewSupportHandler(support SupportService) *SupportHandler {
	return &SupportHandler{support: support}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}
