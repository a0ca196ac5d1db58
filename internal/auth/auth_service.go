package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	autherrors "github.com/saitej-a/Leave-System/internal/auth/errors"
	"github.com/saitej-a/Leave-System/internal/auth/token"
	"github.com/saitej-a/Leave-System/internal/shared/apperror"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (TokenPair, error)
	Login(ctx context.Context, req LoginRequest) (TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
	Logout(ctx context.Context, accessToken string) error
}

type service struct {
	repo     Repository
	hasher   PasswordHasher
	tokens   token.Service
	denylist token.Denylist
	logger   *zap.Logger
}

func NewService(
	repo Repository,
	hasher PasswordHasher,
	tokens token.Service,
	denylist token.Denylist,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		repo:     repo,
		hasher:   hasher,
		tokens:   tokens,
		denylist: denylist,
		logger:   l,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (TokenPair, error) {
	if req.Email == "" || req.Password == "" {
		return TokenPair{}, autherrors.ErrMissingCredentials
	}

	taken, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error("register existence check failed", zap.Error(err))
		return TokenPair{}, err
	}
	if taken {
		return TokenPair{}, autherrors.ErrEmailAlreadyRegistered
	}

	hashed, err := s.hasher.HashPassword(req.Password)
	if err != nil {
		return TokenPair{}, err
	}

	account := &Account{
		Email:     req.Email,
		Password:  hashed,
		IsActive:  true,
		IsHR:      req.IsHR,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	// The unique-violation mapping covers the window between the existence
	// check and the insert.
	if err := s.repo.Create(ctx, account); err != nil {
		s.logger.Error("register persist failed", zap.Error(err))
		return TokenPair{}, mapRepositoryError(err)
	}

	s.logger.Info("account registered",
		zap.String("email", account.Email),
		zap.Bool("is_hr", account.IsHR),
	)

	return s.issuePair(account)
}

func (s *service) Login(ctx context.Context, req LoginRequest) (TokenPair, error) {
	if req.Email == "" || req.Password == "" {
		return TokenPair{}, autherrors.ErrMissingCredentials
	}

	account, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenPair{}, autherrors.ErrUserNotFound
		}
		// Store failures stay internal instead of collapsing to 404.
		s.logger.Error("login lookup failed", zap.Error(err))
		return TokenPair{}, apperror.Wrap(err, apperror.CodeInternalError, apperror.ErrInternal.Message, apperror.ErrInternal.HTTPStatus)
	}

	if !account.IsActive {
		return TokenPair{}, autherrors.ErrAccountInactive
	}

	if err := s.hasher.VerifyPassword(account.Password, req.Password); err != nil {
		s.logger.Warn("login password mismatch", zap.String("email", req.Email))
		return TokenPair{}, autherrors.ErrPasswordInvalid
	}

	return s.issuePair(account)
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.tokens.VerifyToken(refreshToken)
	if err != nil || claims.Kind != token.KindRefresh {
		return TokenPair{}, autherrors.ErrInvalidRefreshToken
	}

	revoked, err := s.denylist.IsRevoked(ctx, refreshToken)
	if err != nil {
		s.logger.Error("refresh denylist check failed", zap.Error(err))
		return TokenPair{}, err
	}
	if revoked {
		return TokenPair{}, autherrors.ErrTokenRevoked
	}

	account, err := s.repo.GetByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenPair{}, autherrors.ErrUserNotFound
		}
		return TokenPair{}, err
	}
	if !account.IsActive {
		return TokenPair{}, autherrors.ErrAccountInactive
	}

	// Rotate: the presented refresh token is dead after one use.
	if err := s.denylist.Revoke(ctx, refreshToken, claims.ExpiresAt); err != nil {
		s.logger.Error("refresh token revoke failed", zap.Error(err))
		return TokenPair{}, err
	}

	return s.issuePair(account)
}

func (s *service) Logout(ctx context.Context, accessToken string) error {
	claims, err := s.tokens.VerifyToken(accessToken)
	if err != nil {
		return err
	}
	return s.denylist.Revoke(ctx, accessToken, claims.ExpiresAt)
}

func (s *service) issuePair(account *Account) (TokenPair, error) {
	access, err := s.tokens.IssueToken(account.Email, account.IsHR, token.KindAccess, token.AccessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.tokens.IssueToken(account.Email, account.IsHR, token.KindRefresh, token.RefreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
