package domain

import "time"

type NewsArticle struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	PublishedAt time.Time `json:"publishedAt"`
}

type Review struct {
	ID         string    `json:"id"`
	Author     string    `json:"author"`
	Rating     int       `json:"rating"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
	IsVerified bool      `json:"isVerified"`
}

type FAQItem struct {
	ID       string `json:"id"`
	Group    string `json:"group,omitempty"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
