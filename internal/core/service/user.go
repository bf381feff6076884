package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/avekrasnov/checkout/internal/core/domain"
	"github.com/avekrasnov/checkout/internal/core/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *Service) RegisterUser(ctx context.Context, req *domain.RegisterUserRequest) (*domain.User, error) {
	if !utils.IsValidEmail(req.Email) {
		return nil, domain.ValidationError("invalid email format")
	}

	if err := utils.ValidatePassword(req.Password); err != nil {
		return nil, domain.ValidationError("%s", err)
	}

	if len(strings.TrimSpace(req.FirstName)) < 2 {
		return nil, domain.ValidationError("first name must be at least 2 characters")
	}
	if len(strings.TrimSpace(req.LastName)) < 2 {
		return nil, domain.ValidationError("last name must be at least 2 characters")
	}

	email := strings.ToLower(req.Email)

	exUser, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Get user", zap.Error(err))
		return nil, domain.ErrInternal
	}
	if exUser != nil {
		return nil, domain.ErrConflictingData
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("Hash password", zap.Error(err))
		return nil, domain.ErrInternal
	}

	now := time.Now()
	user := &domain.User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  hashed,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Phone:     req.Phone,
		Status:    domain.UserStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	newUser, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		s.logger.Error("Create user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return newUser, nil
}

func (s *Service) LoginUser(ctx context.Context, email string, password string) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", domain.ErrInternal
	}

	err = utils.ComparePassword(password, user.Password)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenService.CreateToken(user)
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return "", domain.ErrTokenCreation
	}

	return token, nil
}

// UpdateUser applies profile changes. Empty fields are left untouched.
func (s *Service) UpdateUser(ctx context.Context, userID, firstName, lastName, phone string) (*domain.User, error) {
	user, err := s.repo.ReadUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.NotFoundError(userID)
		}
		s.logger.Error("Read user", zap.Error(err))
		return nil, err
	}

	if trimmed := strings.TrimSpace(firstName); len(trimmed) >= 2 {
		user.FirstName = trimmed
	}
	if trimmed := strings.TrimSpace(lastName); len(trimmed) >= 2 {
		user.LastName = trimmed
	}
	if phone != "" {
		if !utils.IsValidPhone(phone) {
			return nil, domain.ValidationError("invalid phone number")
		}
		user.Phone = phone
	}
	user.UpdatedAt = time.Now()

	return s.repo.UpdateUser(ctx, user)
}
