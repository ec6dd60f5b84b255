package usecase

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/restaurant-directory/internal/domain"
	"github.com/restaurant-directory/internal/domain/repository"
	"github.com/restaurant-directory/internal/pkg/errors"
	"github.com/restaurant-directory/internal/pkg/token"
	"github.com/restaurant-directory/internal/pkg/validator"
	"github.com/restaurant-directory/internal/usecase/dto"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	msgAllFieldsRequired = "All fields are required: username, email, and password."
	msgUserRegistered    = "User registered successfully!"
)

// AuthUseCase - регистрация и вход
type AuthUseCase struct {
	userRepo   repository.UserRepository
	tokens     *token.Manager
	bcryptCost int
	logger     *zap.Logger
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	tokens *token.Manager,
	bcryptCost int,
	logger *zap.Logger,
) *AuthUseCase {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthUseCase{
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Signup регистрирует пользователя и возвращает текст подтверждения
func (uc *AuthUseCase) Signup(ctx context.Context, req dto.SignupRequest) (string, error) {
	req.Email = normalizeEmail(req.Email)
	req.Username = strings.TrimSpace(req.Username)

	if req.Username == "" || req.Email == "" || req.Password == "" {
		return "", errors.ErrValidation.WithMessage(msgAllFieldsRequired)
	}
	if err := validator.Validate(&req); err != nil {
		return "", errors.ErrValidation.WithErrors(validator.Messages(err))
	}

	existing, err := uc.userRepo.GetByEmail(ctx, req.Email)
	switch {
	case err == nil && existing != nil:
		return "", errors.ErrUserExists
	case err != nil && !stderrors.Is(err, errors.ErrUserNotFound):
		logStoreError(uc.logger, "Failed to look up user", err)
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), uc.bcryptCost)
	if err != nil {
		uc.logger.Error("Failed to hash password", zap.Error(err))
		return "", errors.ErrInternalServer.WithCause(err)
	}

	user := &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	// Уникальный индекс по email закрывает гонку между проверкой и вставкой
	if err := uc.userRepo.Create(ctx, user); err != nil {
		logStoreError(uc.logger, "Failed to create user", err)
		return "", err
	}

	uc.logger.Info("User registered", zap.String("user_id", user.ID))

	return msgUserRegistered, nil
}

// Login проверяет пароль и выпускает токен на один час.
// Неизвестный email и неверный пароль дают одну и ту же ошибку.
func (uc *AuthUseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, errors.ErrInvalidCredentials
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if stderrors.Is(err, errors.ErrUserNotFound) {
		return nil, errors.ErrInvalidCredentials
	}
	if err != nil {
		logStoreError(uc.logger, "Failed to look up user", err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	signed, err := uc.tokens.Generate(user.ID, user.Email)
	if err != nil {
		uc.logger.Error("Failed to sign token", zap.Error(err))
		return nil, errors.ErrInternalServer.WithCause(err)
	}

	return &dto.TokenResponse{Token: signed}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
