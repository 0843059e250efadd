package content

import (
	"time"

	"aevonx/internal/domain"
)

// Static fallback content shown while the live sources are unreachable.

func FallbackNews() []domain.NewsArticle {
	return []domain.NewsArticle{
		{
			ID:          "welcome",
			Title:       "AevonX now supports SOL exchanges",
			Excerpt:     "Solana pairs are live with instant payouts.",
			Content:     "Solana pairs are live with instant payouts. Exchange SOL to USDT and back with no registration.",
			PublishedAt: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:          "trc20-fees",
			Title:       "Zero network fees on USDT TRC-20 payouts",
			Excerpt:     "We cover the network fee on all TRC-20 withdrawals.",
			Content:     "We cover the network fee on all TRC-20 withdrawals until further notice.",
			PublishedAt: time.Date(2025, 5, 12, 9, 0, 0, 0, time.UTC),
		},
	}
}

func FallbackReviews() []domain.Review {
	return []domain.Review{
		{ID: "review-0", Author: "Marta", Rating: 5, Content: "Fast exchange, coins arrived in minutes.", CreatedAt: time.Date(2025, 4, 20, 14, 30, 0, 0, time.UTC), IsVerified: true},
		{ID: "review-1", Author: "Denys", Rating: 5, Content: "Support answered within the hour, order went through.", CreatedAt: time.Date(2025, 4, 2, 11, 0, 0, 0, time.UTC), IsVerified: true},
		{ID: "review-2", Author: "Kai", Rating: 5, Content: "Rates match what the form showed. Will use again.", CreatedAt: time.Date(2025, 3, 18, 8, 45, 0, 0, time.UTC), IsVerified: true},
	}
}

func FallbackFAQ() []domain.FAQItem {
	return []domain.FAQItem{
		{ID: "faq-limits", Group: "Exchange", Question: "Why is there a minimum amount?", Answer: "Each route has minimum and maximum bounds set by available liquidity. The form shows both before you submit."},
		{ID: "faq-secret", Group: "Orders", Question: "How do I track my order?", Answer: "Every order gets an id and a secret. Keep both; the status page is only reachable with the pair."},
		{ID: "faq-account", Group: "Account", Question: "Do I need an account to exchange?", Answer: "No. An account only adds order history and affiliate payouts."},
	}
}
