package service

import (
	"context"
	"errors"
	"fmt"

	"manuparts/internal/auth"
	"manuparts/internal/domain"
	"manuparts/internal/models"
	"manuparts/internal/store"

	"github.com/rs/zerolog"
)

// ErrNotAdmin is returned when the requester's user record does not carry the
// admin role.
var ErrNotAdmin = errors.New("requester is not an admin")

type UserService struct {
	repo   domain.UserRepository
	tokens *auth.TokenIssuer
	logger *zerolog.Logger
}

func NewUserService(repo domain.UserRepository, tokens *auth.TokenIssuer, logger *zerolog.Logger) *UserService {
	return &UserService{
		repo:   repo,
		tokens: tokens,
		logger: logger,
	}
}

// SignIn upserts the user document for the email and issues a fresh access
// token for it. There is no credential proof here; the route mirrors the
// login/register endpoint of the original site.
func (s *UserService) SignIn(ctx context.Context, email string, profile models.Profile) (*domain.UpsertResult, string, error) {
	result, err := s.repo.UpsertUser(ctx, email, profile)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(email)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return result, token, nil
}

// PromoteToAdmin sets the target's role to admin, provided the requester's
// own record carries the admin role. The role read and the target update are
// two separate single-document operations.
func (s *UserService) PromoteToAdmin(ctx context.Context, requesterEmail, targetEmail string) (*domain.UpsertResult, error) {
	requester, err := s.repo.GetUserByEmail(ctx, requesterEmail)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotAdmin
	}
	if err != nil {
		return nil, err
	}
	if !requester.IsAdmin() {
		return nil, ErrNotAdmin
	}

	result, err := s.repo.SetUserRole(ctx, targetEmail, models.RoleAdmin)
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info().Str("requester", requesterEmail).Str("target", targetEmail).Msg("admin role granted")
	}
	return result, nil
}

// IsAdmin reports whether the email maps to an admin user. Unknown emails are
// simply not admins.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

func (s *UserService) GetProfile(ctx context.Context, email string) (*models.User, error) {
	return s.repo.GetUserByEmail(ctx, email)
}

func (s *UserService) UpdateProfile(ctx context.Context, email string, profile models.Profile) (*domain.UpsertResult, error) {
	return s.repo.UpsertUser(ctx, email, profile)
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.ListUsers(ctx)
}
