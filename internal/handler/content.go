package handler

import (
	"net/http"

	"aevonx/internal/domain"
)

type GetNewsResponse struct {
	Articles []domain.NewsArticle `json:"articles"`
}

type GetReviewsResponse struct {
	Reviews []domain.Review `json:"reviews"`
}

type GetFAQResponse struct {
	Items []domain.FAQItem `json:"items"`
}

func (h *ContentHandler) GetNews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, GetNewsResponse{Articles: h.content.News()})
}

func (h *ContentHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, GetReviewsResponse{Reviews: h.content.Reviews()})
}

func (h *ContentHandler) GetFAQ(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, GetFAQResponse{Items: h.content.FAQ()})
}
