package content

import (
	"context"
	"slices"
	"sync"

	"aevonx/internal/adapters"
	"aevonx/internal/domain"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Service serves the read-heavy static pages: news, reviews and FAQ. Each
// source independently falls back to its static catalogue until the first
// successful fetch, and keeps the last good data afterwards. A backend or
// feed outage never blanks a page.
type Service struct {
	news    adapters.NewsClient
	backend adapters.ContentClient

	mu          sync.RWMutex
	articles    []domain.NewsArticle
	newsLive    bool
	reviews     []domain.Review
	reviewsLive bool
	faq         []domain.FAQItem
	faqLive     bool
}

func NewService(news adapters.NewsClient, backend adapters.ContentClient) *Service {
	return &Service{news: news, backend: backend}
}

// Refresh fetches all three sources concurrently. The first error is
// returned for logging; sources that succeeded are stored regardless.
func (s *Service) Refresh(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		articles, err := s.news.FetchNews(gctx)
		if err != nil {
			logrus.WithError(err).Warn("News refresh failed, keeping previous articles")
			return err
		}
		s.mu.Lock()
		s.articles, s.newsLive = articles, true
		s.mu.Unlock()
		return nil
	})

	g.Go(func() error {
		reviews, err := s.backend.FetchReviews(gctx)
		if err != nil {
			logrus.WithError(err).Warn("Reviews refresh failed, keeping previous reviews")
			return err
		}
		s.mu.Lock()
		s.reviews, s.reviewsLive = reviews, true
		s.mu.Unlock()
		return nil
	})

	g.Go(func() error {
		faq, err := s.backend.FetchFAQ(gctx)
		if err != nil {
			logrus.WithError(err).Warn("FAQ refresh failed, keeping previous items")
			return err
		}
		s.mu.Lock()
		s.faq, s.faqLive = faq, true
		s.mu.Unlock()
		return nil
	})

	return g.Wait()
}

func (s *Service) News() []domain.NewsArticle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.newsLive {
		return FallbackNews()
	}
	return slices.Clone(s.articles)
}

func (s *Service) Reviews() []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.reviewsLive {
		return FallbackReviews()
	}
	return slices.Clone(s.reviews)
}

func (s *Service) FAQ() []domain.FAQItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.faqLive {
		return FallbackFAQ()
	}
	return slices.Clone(s.faq)
}
