package backend

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"aevonx/internal/domain"
)

type apiReview struct {
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type apiFAQItem struct {
	ID        string `json:"_id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	GroupName string `json:"groupName"`
}

func (c *Client) FetchReviews(ctx context.Context) ([]domain.Review, error) {
	var raw []apiReview
	if err := c.do(ctx, http.MethodGet, "/public/review/get", nil, nil, &raw); err != nil {
		return nil, err
	}

	reviews := make([]domain.Review, 0, len(raw))
	for i, r := range raw {
		reviews = append(reviews, domain.Review{
			ID:      fmt.Sprintf("review-%d", i),
			Author:  r.Name,
			Content: r.Message,
			// the backend carries no rating field
			Rating:     5,
			CreatedAt:  r.CreatedAt,
			IsVerified: true,
		})
	}
	return reviews, nil
}

func (c *Client) FetchFAQ(ctx context.Context) ([]domain.FAQItem, error) {
	var raw []apiFAQItem
	if err := c.do(ctx, http.MethodGet, "/public/faq/get", nil, nil, &raw); err != nil {
		return nil, err
	}

	items := make([]domain.FAQItem, 0, len(raw))
	for _, f := range raw {
		items = append(items, domain.FAQItem{
			ID:       f.ID,
			Group:    f.GroupName,
			Question: f.Question,
			Answer:   f.Answer,
		})
	}
	return items, nil
}
