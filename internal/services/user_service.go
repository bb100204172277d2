package services

import (
	"context"

	"sheetbase/internal/apperrors"
	"sheetbase/internal/models"
	"sheetbase/internal/repositories"
	"sheetbase/internal/utils"
)

type UserService struct {
	userRepo *repositories.UserRepository
	cache    *repositories.CacheRepository
}

func NewUserService(userRepo *repositories.UserRepository, cache *repositories.CacheRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		cache:    cache,
	}
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (s *UserService) Register(ctx context.Context, user *models.User) (*TokenPair, error) {
	user.Prepare()
	if user.Email == "" || user.Password == "" {
		return nil, apperrors.Validation("email and password are required")
	}

	existing, err := s.userRepo.FindUserByEmail(user.Email)
	if err != nil {
		return nil, apperrors.Persistence("failed to look up user", err)
	}
	if existing != nil {
		return nil, apperrors.Validation("user already exists")
	}

	hashed, err := utils.Hash(user.Password)
	if err != nil {
		return nil, apperrors.Persistence("failed to hash password", err)
	}
	user.PasswordHash = string(hashed)
	user.Password = ""

	// The first registered user becomes the administrator; everyone else
	// starts at the lowest tier.
	count, err := s.userRepo.CountUsers()
	if err != nil {
		return nil, apperrors.Persistence("failed to count users", err)
	}
	if count == 0 {
		user.Role = utils.RoleAdministrator
	} else if !utils.IsAssignableRole(user.Role) {
		user.Role = utils.RoleSubscriber
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, apperrors.Persistence("failed to create user", err)
	}

	return s.issueTokens(ctx, user)
}

func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, *TokenPair, error) {
	user, err := s.userRepo.FindUserByEmail(email)
	if err != nil {
		return nil, nil, apperrors.Persistence("failed to look up user", err)
	}
	if user == nil {
		return nil, nil, apperrors.Authorization("invalid credentials")
	}
	if err := utils.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, nil, apperrors.Authorization("invalid credentials")
	}

	if err := s.userRepo.TouchLastLogin(user.ID); err != nil {
		return nil, nil, apperrors.Persistence("failed to update login time", err)
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

func (s *UserService) Logout(ctx context.Context, jti string) error {
	if err := s.cache.Blacklist(ctx, jti); err != nil {
		return apperrors.Persistence("failed to revoke session", err)
	}
	if err := s.cache.DeleteSession(ctx, jti); err != nil {
		return apperrors.Persistence("failed to remove session", err)
	}
	return nil
}

func (s *UserService) issueTokens(ctx context.Context, user *models.User) (*TokenPair, error) {
	access, refresh, jti, err := utils.GenerateTokens(user.ID)
	if err != nil {
		return nil, apperrors.Persistence("failed to generate tokens", err)
	}
	if err := s.cache.StoreSession(ctx, jti, user.ID.String()); err != nil {
		return nil, apperrors.Persistence("failed to store session", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
