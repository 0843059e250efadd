package backend

import (
	"context"
	"fmt"
	"net/http"

	"aevonx/internal/domain"
)

type loginPayload struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Code      int    `json:"code,omitempty"`
	TokenAuth bool   `json:"tokenAuth"`
}

type apiUser struct {
	ID          string `json:"_id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	AccountType string `json:"accountType"`
	Affiliate   struct {
		Link string `json:"link"`
	} `json:"affiliate"`
	Secure2FA struct {
		Active bool `json:"active"`
	} `json:"secure2fa"`
}

func (u apiUser) toDomain() domain.User {
	return domain.User{
		ID:            u.ID,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		AccountType:   u.AccountType,
		AffiliateLink: u.Affiliate.Link,
		TwoFactor:     u.Secure2FA.Active,
	}
}

// Login authenticates against the backend in token mode and returns the
// issued bearer token together with the account snapshot.
func (c *Client) Login(ctx context.Context, email, password string, code int) (string, domain.User, error) {
	var raw struct {
		apiUser
		Token string `json:"token"`
	}
	payload := loginPayload{Email: email, Password: password, Code: code, TokenAuth: true}
	if err := c.do(ctx, http.MethodPost, "/user/login", nil, payload, &raw); err != nil {
		return "", domain.User{}, err
	}
	if raw.Token == "" {
		return "", domain.User{}, fmt.Errorf("login response is missing a token")
	}
	return raw.Token, raw.apiUser.toDomain(), nil
}

type registerPayload struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	PartnerCode string `json:"partner_code,omitempty"`
}

// Register creates an account. The backend mails a confirmation link, so the
// returned snapshot is inactive and no token is issued yet.
func (c *Client) Register(ctx context.Context, req domain.RegisterRequest) (domain.User, error) {
	payload := registerPayload{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PartnerCode: req.PartnerCode,
	}
	var raw apiUser
	if err := c.do(ctx, http.MethodPost, "/user/auth/register", nil, payload, &raw); err != nil {
		return domain.User{}, err
	}
	return raw.toDomain(), nil
}

// GetUser fetches the current account using the stored bearer token.
func (c *Client) GetUser(ctx context.Context) (domain.User, error) {
	var raw apiUser
	if err := c.do(ctx, http.MethodGet, "/user/get", nil, nil, &raw); err != nil {
		return domain.User{}, err
	}
	return raw.toDomain(), nil
}
