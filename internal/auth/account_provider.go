package auth

import (
	"context"
	"fmt"
	"strings"

	"busly/internal/users"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AccountProvider implements the users.AccountProvider interface on top of
// the auth repository. The adapter keeps the dependency one-way: auth imports
// users, never the reverse.
type AccountProvider struct {
	repo Repository
}

// NewAccountProvider creates a new account provider adapter
func NewAccountProvider(repo Repository) *AccountProvider {
	return &AccountProvider{
		repo: repo,
	}
}

// CreateAccount registers an identity record for a passenger resolved at the
// counter. Returns users.ErrAccountExists when the email is already taken.
func (ap *AccountProvider) CreateAccount(ctx context.Context, email, password, firstName, lastName, role, phone string) (uuid.UUID, error) {
	exists, err := ap.repo.EmailExists(ctx, email)
	if err != nil {
		return uuid.Nil, fmt.Errorf("email lookup failed: %w", err)
	}
	if exists {
		return uuid.Nil, users.ErrAccountExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, err
	}

	upperRole := strings.ToUpper(role)
	if !users.IsValidRole(upperRole) {
		upperRole = string(users.RolePassenger)
	}

	user := &users.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  string(hashedPassword),
		Role:      users.Role(upperRole),
		Phone:     phone,
	}

	if err := ap.repo.CreateUser(ctx, user); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create account: %w", err)
	}

	return user.ID, nil
}
