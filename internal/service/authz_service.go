package service

import (
	"context"
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/roster-service/internal/auth"
	"github.com/spec-kit/roster-service/internal/config"
	"github.com/spec-kit/roster-service/internal/repository"
	apperrors "github.com/spec-kit/roster-service/pkg/util"
)

// AuthorizationService verifies presented bearer tokens against the session
// store and decodes their claims.
type AuthorizationService struct {
	sessions repository.SessionRepository
	tokenMgr *auth.TokenManager
	logger   *zap.Logger
}

// NewAuthorizationService builds the service.
func NewAuthorizationService(cfg config.AuthConfig, sessions repository.SessionRepository, logger *zap.Logger) *AuthorizationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthorizationService{
		sessions: sessions,
		tokenMgr: auth.NewTokenManager(cfg.Issuer, cfg.TokenTTL()),
		logger:   logger,
	}
}

// VerifyToken looks the session up by exact token match and verifies the
// signature with that session's own secret. An expired token deletes the
// stale session row as a side effect; there is no background sweep.
func (s *AuthorizationService) VerifyToken(ctx context.Context, token string) (*auth.Claims, error) {
	if token == "" {
		return nil, apperrors.NewMissingToken()
	}

	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewInvalidToken()
		}
		return nil, apperrors.MapError(err)
	}

	claims, err := s.tokenMgr.Parse(token, session.SecretKey)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			if delErr := s.sessions.DeleteByToken(ctx, token); delErr != nil {
				s.logger.Warn("failed to delete expired session",
					zap.String("username", session.Username), zap.Error(delErr))
			}
			return nil, apperrors.NewTokenExpired()
		}
		return nil, apperrors.NewInvalidToken()
	}
	return claims, nil
}

// TokenTTL reports the configured session lifetime.
func (s *AuthorizationService) TokenTTL() time.Duration {
	return s.tokenMgr.TTL()
}
