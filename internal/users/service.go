package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"busly/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrValidation = errors.New("name and phone are required")
	ErrConflict   = errors.New("an account with this phone already exists")

	// ErrAccountExists is returned by AccountProvider implementations when the
	// synthesized email is already registered.
	ErrAccountExists = errors.New("account already exists")
)

// Walk-in passengers never log in themselves; accounts created here exist only
// to anchor tickets, so a fixed placeholder credential is used.
const placeholderPassword = "busly-counter-passenger"

// AccountProvider creates identity accounts. Implemented by the auth package;
// defined here to avoid an import cycle.
type AccountProvider interface {
	CreateAccount(ctx context.Context, email, password, firstName, lastName, role, phone string) (uuid.UUID, error)
}

type Service interface {
	GetOrCreate(ctx context.Context, req GetOrCreateRequest) (*GetOrCreateResponse, error)
}

type service struct {
	repo     Repository
	provider AccountProvider
	log      *logger.Logger
}

func NewService(repo Repository, provider AccountProvider, log *logger.Logger) Service {
	if log == nil {
		log = logger.GetDefault()
	}
	return &service{
		repo:     repo,
		provider: provider,
		log:      log,
	}
}

// GetOrCreate resolves a passenger by phone, creating an account when none
// exists. The phone lookup is the idempotent short-circuit: repeated calls
// with the same phone return the same identifier.
func (s *service) GetOrCreate(ctx context.Context, req GetOrCreateRequest) (*GetOrCreateResponse, error) {
	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)
	if name == "" || phone == "" {
		return nil, ErrValidation
	}

	existing, err := s.repo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("phone lookup failed: %w", err)
	}
	if existing != nil {
		return &GetOrCreateResponse{
			UserID:  existing.ID.String(),
			Created: false,
		}, nil
	}

	firstName, lastName := splitName(name)
	email := synthesizeEmail(phone)

	userID, err := s.provider.CreateAccount(ctx, email, placeholderPassword,
		firstName, lastName, string(RolePassenger), phone)
	if err != nil {
		if errors.Is(err, ErrAccountExists) {
			// A profile exists for this email but not this phone. Recovering
			// automatically would guess which record wins, so the caller
			// reconciles instead.
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("account creation failed: %w", err)
	}

	// Backfill the phone in case the provider dropped the metadata. Lookup by
	// phone depends on it, but the account itself is already usable.
	if err := s.repo.UpdatePhone(ctx, userID, phone); err != nil {
		s.log.Warn("phone backfill failed",
			"user_id", userID.String(),
			"error", err.Error())
	}

	return &GetOrCreateResponse{
		UserID:  userID.String(),
		Created: true,
	}, nil
}

// splitName takes the first whitespace-separated token as the first name and
// joins the remainder as the last name.
func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// synthesizeEmail derives a deterministic account email from the phone number
// so the same passenger always maps to the same identity record.
func synthesizeEmail(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return fmt.Sprintf("%s@passenger.busly.local", digits.String())
}

// ValidatePhone reports whether the value looks like a dialable phone number:
// an optional leading plus followed by 7 to 15 digits.
func ValidatePhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	phone = strings.TrimPrefix(phone, "+")
	if len(phone) < 7 || len(phone) > 15 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
