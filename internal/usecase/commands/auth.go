package commands

import (
	"context"
	"log/slog"

	"experience-market/internal/domain/user"
	"experience-market/internal/infra"
	"experience-market/internal/pkg/errs"
	"experience-market/internal/pkg/jwt"
	"experience-market/internal/pkg/password"
	"experience-market/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errs.New("user not found")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrUserInactive       = errs.New("user inactive")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	User      *queries.AuthorizedUserView
	TokenPair *TokenPair
}

type AuthCommands interface {
	Login(ctx context.Context, credentials user.Credentials) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthCommands(userRepo UserRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, credentials user.Credentials) (*LoginResult, error) {
	view, passwordHash, err := a.userRepo.FindByEmail(ctx, credentials.Email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(passwordHash, credentials.Password.Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	pair, err := a.generatePair(view.ID, role)
	if err != nil {
		return nil, err
	}

	if err := a.userRepo.UpdateLastLogin(ctx, view.ID); err != nil {
		// Not critical; login already succeeded.
		slog.Warn("failed to update last login", "user_id", view.ID, "error", err.Error())
	}

	return &LoginResult{User: view, TokenPair: pair}, nil
}

func (a *authCommandsImpl) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	view, err := a.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return a.generatePair(view.ID, role)
}

func (a *authCommandsImpl) CurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error) {
	view, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}
	return view, nil
}

func (a *authCommandsImpl) generatePair(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
