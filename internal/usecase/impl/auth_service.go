// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "linkvault/internal/delivery/context"
	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/repository"
	"linkvault/internal/domain/service"
	"linkvault/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	signer           service.TokenSigner
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	Signer           service.TokenSigner
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		signer:           params.Signer,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration process. The duplicate
// email check runs before the password mismatch check so an attacker cannot
// use the mismatch error to probe which addresses are registered.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting registration", slog.String("email", input.Email))

	var registeredUser *entity.User
	var accessToken, refreshToken string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing user")
		}

		if input.Password != input.RetypePassword {
			return domainerrors.ErrPasswordMismatch
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password during registration")
		}

		newUser := &entity.User{
			Email:        input.Email,
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			PasswordHash: hashedPassword,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		accessToken, refreshToken, err = srv.issueTokenPair(ctx, repoFactory.RefreshTokenRepo(), newUser.ID)
		if err != nil {
			return err
		}

		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", registeredUser.ID))

	return &usecase.AuthOutput{
		User:         usecase.UserOutput{ID: registeredUser.ID, Email: registeredUser.Email},
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Login verifies credentials and issues a fresh token pair. Unknown email and
// wrong password both collapse to ErrInvalidCredentials.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load user during login")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.issueTokenPair(ctx, srv.refreshTokenRepo, user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue tokens during login", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{
		User:         usecase.UserOutput{ID: user.ID, Email: user.Email},
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshToken rotates a refresh token. The presented token is verified,
// consumed by its stored hash and replaced with a fresh pair in one
// transaction. Every failure collapses to ErrInvalidRefreshToken so a caller
// cannot distinguish forged, expired and already-consumed tokens.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.TokenPairOutput, error) {
	userID, err := srv.signer.VerifyRefreshToken(input.RefreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh token verification failed")

		return nil, domainerrors.ErrInvalidRefreshToken
	}

	var accessToken, refreshToken string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.RefreshTokenRepo()

		// Single conditional delete. Concurrent rotations of the same token
		// cannot both pass this point.
		if err := tokenRepo.ConsumeRefreshTokenByHash(ctx, srv.signer.HashToken(input.RefreshToken)); err != nil {
			return err
		}

		accessToken, refreshToken, err = srv.issueTokenPair(ctx, tokenRepo, userID)

		return err
	})

	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			srv.log(ctx).Warn("Refresh token already consumed or unknown", slog.Any("userID", userID))

			return nil, domainerrors.ErrInvalidRefreshToken
		}

		srv.log(ctx).Error("Failed to rotate refresh token", slog.Any("userID", userID), slog.Any("error", err))

		return nil, domainerrors.ErrInvalidRefreshToken
	}

	srv.log(ctx).Debug("Refresh token rotated", slog.Any("userID", userID))

	return &usecase.TokenPairOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// VerifyAccessToken checks an access token without touching storage. It only
// reports validity; the failure reason stays internal.
func (srv *authService) VerifyAccessToken(token string) (uuid.UUID, bool) {
	userID, err := srv.signer.VerifyAccessToken(token)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}

// GetUserFromToken resolves the full user record behind an access token.
func (srv *authService) GetUserFromToken(ctx context.Context, token string) (*entity.User, error) {
	userID, err := srv.signer.VerifyAccessToken(token)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user from token")
	}

	return user, nil
}

// issueTokenPair signs a fresh access/refresh pair and persists the refresh
// token's hash through the given repository.
func (srv *authService) issueTokenPair(ctx context.Context, tokenRepo repository.RefreshTokenRepository, userID uuid.UUID) (accessToken, refreshToken string, err error) {
	accessToken, err = srv.signer.SignAccessToken(userID)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to sign access token")
	}

	refreshToken, err = srv.signer.SignRefreshToken(userID)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to sign refresh token")
	}

	newToken := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: srv.signer.HashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.signer.RefreshTokenTTL()),
	}

	if err := tokenRepo.CreateRefreshToken(ctx, newToken); err != nil {
		return "", "", errors.Wrap(err, "failed to persist refresh token")
	}

	return accessToken, refreshToken, nil
}
