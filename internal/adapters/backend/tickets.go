package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"aevonx/internal/domain"
)

// CreateTicket submits a support request and returns the backend ticket id.
func (c *Client) CreateTicket(ctx context.Context, req domain.TicketRequest) (string, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/public/ticket/create", nil, req, &raw); err != nil {
		return "", err
	}

	// data is {"ticketId": "..."}, so the single-key unwrap usually leaves
	// the bare id; older responses carry the wrapper object.
	var id string
	if err := json.Unmarshal(raw, &id); err == nil && id != "" {
		return id, nil
	}
	var obj struct {
		TicketID string `json:"ticketId"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", fmt.Errorf("failed to decode ticket response: %w", err)
	}
	if obj.TicketID == "" {
		return "", fmt.Errorf("ticket response is missing an id")
	}
	return obj.TicketID, nil
}
