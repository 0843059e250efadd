package domain

// RegisterRequest is the account sign-up form. The backend mails a
// confirmation link; the account stays inactive and no token is issued
// until it is confirmed.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	PartnerCode string `json:"partnerCode,omitempty"`
}

// User is the backend account snapshot rendered on profile pages. The
// backend owns the full record; only the fields the UI shows are kept.
type User struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	AccountType   string `json:"accountType,omitempty"`
	AffiliateLink string `json:"affiliateLink,omitempty"`
	TwoFactor     bool   `json:"twoFactor"`
}
