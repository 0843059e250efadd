package adapters

import (
	"context"

	"aevonx/internal/domain"
)

type RouteClient interface {
	FetchRoutes(ctx context.Context) ([]domain.ExchangeRoute, error)
}

type OrderClient interface {
	CreateOrder(ctx context.Context, req domain.OrderRequest) (domain.OrderRef, error)
	GetOrder(ctx context.Context, uid int64, secret string) (domain.Order, error)
}

type AuthClient interface {
	Login(ctx context.Context, email, password string, code int) (string, domain.User, error)
	Register(ctx context.Context, req domain.RegisterRequest) (domain.User, error)
	GetUser(ctx context.Context) (domain.User, error)
}

type SupportClient interface {
	CreateTicket(ctx context.Context, req domain.TicketRequest) (string, error)
}

type ContentClient interface {
	FetchReviews(ctx context.Context) ([]domain.Review, error)
	FetchFAQ(ctx context.Context) ([]domain.FAQItem, error)
}

type NewsClient interface {
	FetchNews(ctx context.Context) ([]domain.NewsArticle, error)
}

type OrderCache interface {
	Get(uid int64, secret string) (domain.Order, bool)
	Set(uid int64, secret string, order domain.Order)
	Invalidate(uid int64, secret string)
}
