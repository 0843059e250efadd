package auth

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"testing"

	"aevonx/internal/adapters/backend"
	"aevonx/internal/domain"
	"aevonx/internal/session"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAuthClient struct {
	mock.Mock
}

func (m *mockAuthClient) Login(ctx context.Context, email, password string, code int) (string, domain.User, error) {
	args := m.Called(ctx, email, password, code)
	return args.String(0), args.Get(1).(domain.User), args.Error(2)
}

func (m *mockAuthClient) Register(ctx context.Context, req domain.RegisterRequest) (domain.User, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockAuthClient) GetUser(ctx context.Context) (domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.User), args.Error(1)
}

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	store, err := session.NewStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)
	return store
}

func TestService_Login_StoresTokenAndUser(t *testing.T) {
	client := new(mockAuthClient)
	store := newTestStore(t)
	svc := NewService(client, store)

	user := domain.User{ID: "u1", Email: "user@example.com", FirstName: "Ada"}
	client.On("Login", mock.Anything, "user@example.com", "hunter2", 0).
		Return("tok-abc", user, nil).Once()

	got, err := svc.Login(context.Background(), "user@example.com", "hunter2", 0)

	require.NoError(t, err)
	require.Equal(t, user, got)
	require.Equal(t, "tok-abc", store.Token())
	require.Equal(t, &user, store.User())
	client.AssertExpectations(t)
}

func TestService_Login_BackendErrorLeavesSessionEmpty(t *testing.T) {
	client := new(mockAuthClient)
	store := newTestStore(t)
	svc := NewService(client, store)

	client.On("Login", mock.Anything, "user@example.com", "wrong", 0).
		Return("", domain.User{}, &backend.APIError{Status: http.StatusUnauthorized, Message: "Invalid credentials"}).Once()

	_, err := svc.Login(context.Background(), "user@example.com", "wrong", 0)

	require.EqualError(t, err, "Invalid credentials")
	require.Empty(t, store.Token())
	require.Nil(t, store.User())
}

func TestService_Register_DoesNotTouchSession(t *testing.T) {
	client := new(mockAuthClient)
	store := newTestStore(t)
	svc := NewService(client, store)

	req := domain.RegisterRequest{Email: "new@example.com", Password: "hunter2"}
	user := domain.User{ID: "u9", Email: "new@example.com"}
	client.On("Register", mock.Anything, req).Return(user, nil).Once()

	got, err := svc.Register(context.Background(), req)

	require.NoError(t, err)
	require.Equal(t, user, got)
	// The account awaits email confirmation; nothing is signed in yet.
	require.Empty(t, store.Token())
	require.Nil(t, store.User())
	client.AssertExpectations(t)
}

func TestService_Register_PropagatesBackendError(t *testing.T) {
	client := new(mockAuthClient)
	svc := NewService(client, newTestStore(t))

	client.On("Register", mock.Anything, mock.Anything).
		Return(domain.User{}, &backend.APIError{Status: http.StatusConflict, Message: "Email already registered"}).Once()

	_, err := svc.Register(context.Background(), domain.RegisterRequest{Email: "new@example.com", Password: "hunter2"})

	require.EqualError(t, err, "Email already registered")
}

func TestService_Logout_ClearsSession(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SetToken("tok-abc"))
	store.SetUser(&domain.User{ID: "u1"})
	svc := NewService(new(mockAuthClient), store)

	require.NoError(t, svc.Logout())
	require.Empty(t, store.Token())
	require.Nil(t, store.User())
}

func TestService_Session_NoToken(t *testing.T) {
	client := new(mockAuthClient)
	svc := NewService(client, newTestStore(t))

	_, err := svc.Session(context.Background())

	require.ErrorIs(t, err, domain.ErrUnauthorized)
	client.AssertNotCalled(t, "GetUser", mock.Anything)
}

func TestService_Session_RefreshesUser(t *testing.T) {
	client := new(mockAuthClient)
	store := newTestStore(t)
	require.NoError(t, store.SetToken("tok-abc"))
	svc := NewService(client, store)

	user := domain.User{ID: "u1", Email: "user@example.com"}
	client.On("GetUser", mock.Anything).Return(user, nil).Once()

	got, err := svc.Session(context.Background())

	require.NoError(t, err)
	require.Equal(t, user, got)
	require.Equal(t, &user, store.User())
}

func TestService_Session_RejectedTokenClearsSession(t *testing.T) {
	client := new(mockAuthClient)
	store := newTestStore(t)
	require.NoError(t, store.SetToken("tok-expired"))
	store.SetUser(&domain.User{ID: "u1"})
	svc := NewService(client, store)

	client.On("GetUser", mock.Anything).
		Return(domain.User{}, &backend.APIError{Status: http.StatusUnauthorized, Message: "Token expired"}).Once()

	_, err := svc.Session(context.Background())

	require.ErrorIs(t, err, domain.ErrUnauthorized)
	require.Empty(t, store.Token())
	require.Nil(t, store.User())
}

func TestService_Session_TransientErrorKeepsSession(t *testing.T) {
	client := new(mockAuthClient)
	store := newTestStore(t)
	require.NoError(t, store.SetToken("tok-abc"))
	svc := NewService(client, store)

	netErr := errors.New("dial tcp: connection refused")
	client.On("GetUser", mock.Anything).Return(domain.User{}, netErr).Once()

	_, err := svc.Session(context.Background())

	require.ErrorIs(t, err, netErr)
	require.Equal(t, "tok-abc", store.Token())
}
