package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/roster-service/internal/auth"
	"github.com/spec-kit/roster-service/internal/config"
	"github.com/spec-kit/roster-service/internal/domain"
	"github.com/spec-kit/roster-service/internal/events"
	"github.com/spec-kit/roster-service/internal/repository"
	apperrors "github.com/spec-kit/roster-service/pkg/util"
)

// AuthService coordinates registration and the session lifecycle.
type AuthService struct {
	users      repository.UserRepository
	roles      repository.RoleRepository
	sessions   repository.SessionRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	logger     *zap.Logger
	bcryptCost int
}

// AuthDependencies bundles repo requirements for the auth service.
type AuthDependencies struct {
	UserRepo    repository.UserRepository
	RoleRepo    repository.RoleRepository
	SessionRepo repository.SessionRepository
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:      deps.UserRepo,
		roles:      deps.RoleRepo,
		sessions:   deps.SessionRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Issuer, cfg.TokenTTL()),
		dispatcher: deps.Dispatcher,
		logger:     logger,
		bcryptCost: cfg.BcryptCost,
	}
}

// Signin is the result of a successful sign-in: the signed token, its
// declared lifetime and the identity snapshot embedded in it.
type Signin struct {
	AccessToken string
	ExpiresIn   time.Duration
	User        auth.UserClaims
}

// Register creates a user account. The role must resolve by name and both
// username and email must be unused. The stored password is hashed; the
// returned user never carries the hash.
func (s *AuthService) Register(ctx context.Context, data domain.NewUserData) (*domain.User, error) {
	role, err := s.roles.GetByName(ctx, data.RoleName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewRoleNotFound(data.RoleName)
		}
		return nil, apperrors.MapError(err)
	}

	taken, err := s.users.UsernameExists(ctx, data.Username)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if taken {
		return nil, apperrors.NewDuplicate("Username already exists")
	}

	if data.EmailAddress != "" {
		taken, err = s.users.EmailExists(ctx, data.EmailAddress)
		if err != nil {
			return nil, apperrors.MapError(err)
		}
		if taken {
			return nil, apperrors.NewDuplicate("Email address already exists")
		}
	}

	hash, err := auth.HashPassword(data.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	user := &domain.User{
		Username:        data.Username,
		PasswordHash:    hash,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		EmailAddress:    data.EmailAddress,
		ProfileImageURL: data.ProfileImageURL,
		Role:            *role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	user.PasswordHash = ""

	s.publish(ctx, events.EventUserRegistered, user.Username, events.UserRegisteredPayload{
		Username: user.Username,
		Role:     user.Role.Name,
	})
	return user, nil
}

// Signin verifies credentials and issues a session signed with a fresh
// per-session secret. The three failure modes share one external error
// family; the internal detail is logged only.
func (s *AuthService) Signin(ctx context.Context, username, password string) (*Signin, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Info("signin rejected", zap.String("username", username), zap.String("reason", "no such user"))
			return nil, apperrors.NewAuthenticationFailed("no such user")
		}
		return nil, apperrors.MapError(err)
	}

	if !user.Enabled {
		s.logger.Info("signin rejected", zap.String("username", username), zap.String("reason", "account disabled"))
		return nil, apperrors.NewAccountDisabled()
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		s.logger.Info("signin rejected", zap.String("username", username), zap.String("reason", "bad password"))
		return nil, apperrors.NewAuthenticationFailed("bad password")
	}

	secret, err := auth.GenerateSecret()
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	token, _, err := s.tokenMgr.Issue(user, secret)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	session := &domain.Session{
		Username:  user.Username,
		SecretKey: secret,
		Token:     token,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventUserSignedIn, user.Username, events.UserSignedInPayload{
		Username: user.Username,
	})
	return &Signin{
		AccessToken: token,
		ExpiresIn:   s.tokenMgr.TTL(),
		User: auth.UserClaims{
			Username:        user.Username,
			Enabled:         user.Enabled,
			FirstName:       user.FirstName,
			LastName:        user.LastName,
			FullName:        user.FullName(),
			Role:            auth.RoleClaim{ID: user.Role.ID, Name: user.Role.Name},
			ProfileImageURL: user.ProfileImageURL,
			Email:           user.EmailAddress,
		},
	}, nil
}

// Signout deletes the single session matching username and token.
// Idempotent.
func (s *AuthService) Signout(ctx context.Context, username, token string) error {
	if err := s.sessions.Delete(ctx, username, token); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// SignoutAllSessions deletes every session for the username (multi-device
// logout).
func (s *AuthService) SignoutAllSessions(ctx context.Context, username string) error {
	if err := s.sessions.DeleteAll(ctx, username); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// UsernameExists reports whether the username is registered.
func (s *AuthService) UsernameExists(ctx context.Context, username string) (bool, error) {
	if username == "" {
		return false, apperrors.NewPlayerConflict("Username field is empty")
	}
	exists, err := s.users.UsernameExists(ctx, username)
	if err != nil {
		return false, apperrors.MapError(err)
	}
	return exists, nil
}

// EmailExists reports whether the email address is registered.
func (s *AuthService) EmailExists(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, apperrors.NewPlayerConflict("Email field is empty")
	}
	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return false, apperrors.MapError(err)
	}
	return exists, nil
}

// ListUsers returns every account without password material.
func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return users, nil
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, username string, payload any) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.NewEvent(eventType, username, payload))
}
