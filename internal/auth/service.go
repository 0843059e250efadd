package auth

import (
	"context"
	"errors"
	"net/http"

	"aevonx/internal/adapters"
	"aevonx/internal/adapters/backend"
	"aevonx/internal/domain"
	"aevonx/internal/session"
)

// Service bridges the backend auth endpoints and the local session store.
// The backend performs real authentication; this only keeps the issued token
// and the account snapshot.
type Service struct {
	client   adapters.AuthClient
	sessions *session.Store
}

func NewService(client adapters.AuthClient, sessions *session.Store) *Service {
	return &Service{client: client, sessions: sessions}
}

func (s *Service) Login(ctx context.Context, email, password string, code int) (domain.User, error) {
	token, user, err := s.client.Login(ctx, email, password, code)
	if err != nil {
		return domain.User{}, err
	}
	if err = s.sessions.SetToken(token); err != nil {
		return domain.User{}, err
	}
	s.sessions.SetUser(&user)
	return user, nil
}

// Register creates a new account. The account needs email confirmation
// before it can sign in, so the session is left untouched.
func (s *Service) Register(ctx context.Context, req domain.RegisterRequest) (domain.User, error) {
	return s.client.Register(ctx, req)
}

func (s *Service) Logout() error {
	return s.sessions.Clear()
}

// Session refreshes the current user with the stored token. A rejected token
// clears the session entirely, so the next call starts unauthenticated.
func (s *Service) Session(ctx context.Context) (domain.User, error) {
	if s.sessions.Token() == "" {
		return domain.User{}, domain.ErrUnauthorized
	}

	user, err := s.client.GetUser(ctx)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && (apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden) {
			if clearErr := s.sessions.Clear(); clearErr != nil {
				return domain.User{}, clearErr
			}
			return domain.User{}, domain.ErrUnauthorized
		}
		return domain.User{}, err
	}

	s.sessions.SetUser(&user)
	return user, nil
}
