package domain

// TicketRequest is the support-form submission forwarded to the backend.
type TicketRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
	Email   string `json:"email"`
}
