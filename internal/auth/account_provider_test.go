package auth

import (
	"context"
	"testing"

	"busly/internal/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) CreateUser(ctx context.Context, user *users.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockRepository) GetUserByEmail(ctx context.Context, email string) (*users.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *mockRepository) GetUserByID(ctx context.Context, id string) (*users.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *mockRepository) UpdateUserPassword(ctx context.Context, userID string, hashedPassword string) error {
	args := m.Called(ctx, userID, hashedPassword)
	return args.Error(0)
}

func (m *mockRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func TestCreateAccount_Success(t *testing.T) {
	repo := new(mockRepository)
	provider := NewAccountProvider(repo)

	ctx := context.Background()

	repo.On("EmailExists", ctx, "15550001111@passenger.busly.local").Return(false, nil)
	repo.On("CreateUser", ctx, mock.MatchedBy(func(user *users.User) bool {
		hashOK := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret-pass")) == nil
		return user.Email == "15550001111@passenger.busly.local" &&
			user.FirstName == "Ana" &&
			user.LastName == "Gomez" &&
			user.Role == users.RolePassenger &&
			user.Phone == "+15550001111" &&
			hashOK
	})).Return(nil)

	_, err := provider.CreateAccount(ctx, "15550001111@passenger.busly.local",
		"secret-pass", "Ana", "Gomez", "passenger", "+15550001111")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateAccount_DuplicateEmail(t *testing.T) {
	repo := new(mockRepository)
	provider := NewAccountProvider(repo)

	ctx := context.Background()

	repo.On("EmailExists", ctx, "taken@passenger.busly.local").Return(true, nil)

	_, err := provider.CreateAccount(ctx, "taken@passenger.busly.local",
		"secret-pass", "Ana", "Gomez", "PASSENGER", "+15550001111")

	assert.ErrorIs(t, err, users.ErrAccountExists)
	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestCreateAccount_UnknownRoleFallsBackToPassenger(t *testing.T) {
	repo := new(mockRepository)
	provider := NewAccountProvider(repo)

	ctx := context.Background()

	repo.On("EmailExists", ctx, mock.Anything).Return(false, nil)
	repo.On("CreateUser", ctx, mock.MatchedBy(func(user *users.User) bool {
		return user.Role == users.RolePassenger
	})).Return(nil)

	_, err := provider.CreateAccount(ctx, "new@passenger.busly.local",
		"secret-pass", "Ana", "Gomez", "driver", "+15550001111")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
