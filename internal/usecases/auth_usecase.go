package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"arena.backend/internal/domain/entities"
	domainerrors "arena.backend/internal/domain/errors"
	"arena.backend/internal/domain/repositories"
	"arena.backend/pkg/crypto"
	"arena.backend/pkg/jwt"
	"arena.backend/pkg/redis"
)

// SessionStore abstracts the redis session store for token storage.
type SessionStore interface {
	CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	uowFactory repositories.UnitOfWorkFactory
	jwtService *jwt.JWTService
	sessions   SessionStore
	sessionTTL time.Duration
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	uowFactory repositories.UnitOfWorkFactory,
	jwtService *jwt.JWTService,
	sessions SessionStore,
	sessionTTL time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		uowFactory: uowFactory,
		jwtService: jwtService,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// Register creates the account and its player profile in one transaction.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error) {
	uow := u.uowFactory.New()
	defer uow.Close()

	_, err := uow.Users().GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.NewError("email already registered", domainerrors.ErrAlreadyExists)
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	_, err = uow.Players().GetByNickname(ctx, input.Nickname)
	if err == nil {
		return nil, domainerrors.NewError("nickname already taken", domainerrors.ErrAlreadyExists)
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: passwordHash,
		Role:         entities.UserRoleUser,
	}

	err = uow.Execute(ctx, func(ctx context.Context) error {
		if err := uow.Users().Create(ctx, user); err != nil {
			return err
		}
		player := &entities.Player{
			UserID:   user.ID,
			Nickname: input.Nickname,
		}
		return uow.Players().Create(ctx, player)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and returns tokens, or a session id when the
// client asked for server-side token storage.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	uow := u.uowFactory.New()
	defer uow.Close()

	user, err := uow.Users().GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, err
	}

	if input.UseSession && u.sessions != nil {
		sessionID := uuid.New().String()
		data := &redis.SessionData{
			AccessToken:  tokenPair.AccessToken,
			RefreshToken: tokenPair.RefreshToken,
		}
		if err := u.sessions.CreateSession(ctx, sessionID, data, u.sessionTTL); err != nil {
			return nil, err
		}
		return &entities.AuthResponse{SessionID: sessionID, User: user}, nil
	}

	return &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}

// Logout drops the server-side session if one exists.
func (u *AuthUsecase) Logout(ctx context.Context, sessionID string) error {
	if u.sessions == nil || sessionID == "" {
		return nil
	}
	return u.sessions.DeleteSession(ctx, sessionID)
}

// RefreshToken generates new tokens from a refresh token
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, domainerrors.ErrTokenExpired
		}
		return nil, domainerrors.ErrUnauthorized
	}

	uow := u.uowFactory.New()
	defer uow.Close()

	user, err := uow.Users().GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return u.jwtService.GenerateTokenPair(user.ID, user.Username, string(user.Role))
}

// ChangePassword verifies the current password and stores a new hash.
func (u *AuthUsecase) ChangePassword(ctx context.Context, userID uint, input *entities.ChangePasswordInput) error {
	uow := u.uowFactory.New()
	defer uow.Close()

	user, err := uow.Users().GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !crypto.CheckPassword(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.ErrInvalidCredentials
	}

	newHash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	return uow.Users().UpdatePassword(ctx, userID, newHash)
}

// GetMe returns the account and its player profile.
func (u *AuthUsecase) GetMe(ctx context.Context, userID uint) (*entities.User, *entities.Player, error) {
	uow := u.uowFactory.New()
	defer uow.Close()

	user, err := uow.Users().GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	player, err := uow.Players().GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, nil, err
	}

	return user, player, nil
}
