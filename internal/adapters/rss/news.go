package rss

import (
	"context"
	"fmt"

	"aevonx/internal/domain"

	"github.com/mmcdole/gofeed"
)

// NewsClient reads the market-news RSS feed shown on the news page.
type NewsClient struct {
	parser  *gofeed.Parser
	feedURL string
	limit   int
}

func NewNewsClient(feedURL string, limit int) *NewsClient {
	if limit <= 0 {
		limit = 20
	}
	return &NewsClient{parser: gofeed.NewParser(), feedURL: feedURL, limit: limit}
}

func (c *NewsClient) FetchNews(ctx context.Context) ([]domain.NewsArticle, error) {
	feed, err := c.parser.ParseURLWithContext(c.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news feed: %w", err)
	}

	articles := make([]domain.NewsArticle, 0, len(feed.Items))
	for _, item := range feed.Items {
		if len(articles) == c.limit {
			break
		}
		article := domain.NewsArticle{
			ID:      item.GUID,
			Title:   item.Title,
			Excerpt: item.Description,
			Content: item.Content,
		}
		if article.ID == "" {
			article.ID = item.Link
		}
		if article.Content == "" {
			article.Content = item.Description
		}
		if item.PublishedParsed != nil {
			article.PublishedAt = *item.PublishedParsed
		}
		articles = append(articles, article)
	}
	return articles, nil
}
