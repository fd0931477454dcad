package auth

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/roster-service/internal/domain"
	"github.com/spec-kit/roster-service/internal/repository"
	apperrors "github.com/spec-kit/roster-service/pkg/util"
)

const principalKey = "auth_principal"

// TokenVerifier checks a presented bearer token against the session store
// and returns its decoded claims.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*Claims, error)
}

// Principal represents the authenticated caller for the rest of the request.
type Principal struct {
	Claims *Claims
	Token  string
}

// Username returns the authenticated username.
func (p *Principal) Username() string {
	return p.Claims.User.Username
}

// Role returns the authenticated role name.
func (p *Principal) Role() domain.RoleName {
	return p.Claims.User.Role.Name
}

// IsPrivileged reports whether the caller is in the admin class that
// bypasses ownership checks.
func (p *Principal) IsPrivileged() bool {
	return domain.IsPrivileged(p.Role())
}

// Middleware validates bearer tokens and enforces role and ownership gates.
type Middleware struct {
	verifier TokenVerifier
	players  repository.PlayerRepository
	teams    repository.TeamRepository
}

// NewMiddleware constructs the middleware chain builder.
func NewMiddleware(verifier TokenVerifier, players repository.PlayerRepository, teams repository.TeamRepository) *Middleware {
	return &Middleware{verifier: verifier, players: players, teams: teams}
}

// Authenticate extracts the bearer token, verifies it and attaches the
// principal to the request.
func (m *Middleware) Authenticate(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return apperrors.NewMissingToken()
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewMissingToken()
	}

	claims, err := m.verifier.VerifyToken(c.UserContext(), parts[1])
	if err != nil {
		return apperrors.MapError(err)
	}

	c.Locals(principalKey, &Principal{Claims: claims, Token: parts[1]})
	return c.Next()
}

// RequireRoles rejects authenticated callers whose role is not in the
// allowed set.
func RequireRoles(allowed ...domain.RoleName) fiber.Handler {
	allowedSet := make(map[domain.RoleName]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewMissingToken()
		}
		if _, exists := allowedSet[principal.Role()]; !exists {
			return apperrors.NewRoleNotPermitted()
		}
		return c.Next()
	}
}

// AdminClass gates a route to ADMIN and COACH callers.
func AdminClass() fiber.Handler {
	return RequireRoles(domain.RoleAdmin, domain.RoleCoach)
}

// Common gates a route to any authenticated caller.
func Common() fiber.Handler {
	return RequireRoles(domain.RoleAdmin, domain.RoleCoach, domain.RolePlayer)
}

// SameTeam allows the request only when the caller's own player record
// belongs to the team in the path. Admin-class callers bypass the check.
func (m *Middleware) SameTeam(c *fiber.Ctx) error {
	principal, ok := PrincipalFromContext(c)
	if !ok {
		return apperrors.NewMissingToken()
	}
	if principal.IsPrivileged() {
		return c.Next()
	}

	teamID, err := strconv.ParseInt(c.Params("teamId"), 10, 64)
	if err != nil {
		return apperrors.NewOwnershipDenied(apperrors.CodeTeamForbidden)
	}

	team, err := m.teams.GetByID(c.UserContext(), teamID)
	if err != nil {
		return gateLookupError(err, apperrors.CodeTeamForbidden)
	}
	current, err := m.players.GetByUsername(c.UserContext(), principal.Username())
	if err != nil {
		return gateLookupError(err, apperrors.CodeTeamForbidden)
	}

	if current.Team != nil && current.Team.ID == team.ID {
		return c.Next()
	}
	return apperrors.NewOwnershipDenied(apperrors.CodeTeamForbidden)
}

// SamePlayer allows the request only when the player in the path is the
// caller's own player record. Admin-class callers bypass the check.
func (m *Middleware) SamePlayer(c *fiber.Ctx) error {
	principal, ok := PrincipalFromContext(c)
	if !ok {
		return apperrors.NewMissingToken()
	}
	if principal.IsPrivileged() {
		return c.Next()
	}

	playerID, err := strconv.ParseInt(c.Params("playerId"), 10, 64)
	if err != nil {
		return apperrors.NewOwnershipDenied(apperrors.CodePlayerForbidden)
	}

	current, err := m.players.GetByUsername(c.UserContext(), principal.Username())
	if err != nil {
		return gateLookupError(err, apperrors.CodePlayerForbidden)
	}
	requested, err := m.players.GetByID(c.UserContext(), playerID)
	if err != nil {
		return gateLookupError(err, apperrors.CodePlayerForbidden)
	}

	if current.ID == requested.ID {
		return c.Next()
	}
	return apperrors.NewOwnershipDenied(apperrors.CodePlayerForbidden)
}

// CurrentPlayerTeam allows the request only when the caller's player and the
// player in the path share a team. Admin-class callers bypass the check.
func (m *Middleware) CurrentPlayerTeam(c *fiber.Ctx) error {
	principal, ok := PrincipalFromContext(c)
	if !ok {
		return apperrors.NewMissingToken()
	}
	if principal.IsPrivileged() {
		return c.Next()
	}

	playerID, err := strconv.ParseInt(c.Params("playerId"), 10, 64)
	if err != nil {
		return apperrors.NewOwnershipDenied(apperrors.CodePlayerForbidden)
	}

	current, err := m.players.GetByUsername(c.UserContext(), principal.Username())
	if err != nil {
		return gateLookupError(err, apperrors.CodePlayerForbidden)
	}
	requested, err := m.players.GetByID(c.UserContext(), playerID)
	if err != nil {
		return gateLookupError(err, apperrors.CodePlayerForbidden)
	}

	if sameTeamID(current.TeamID(), requested.TeamID()) {
		return c.Next()
	}
	return apperrors.NewOwnershipDenied(apperrors.CodePlayerForbidden)
}

// gateLookupError keeps infrastructure failures as 500s while a missing row
// simply fails the ownership predicate.
func gateLookupError(err error, code string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewOwnershipDenied(code)
	}
	return apperrors.MapError(err)
}

func sameTeamID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// InternalAdmin checks the static perimeter secret carried in a fixed
// request header. It runs before any token-based gate and denies everything
// when no key is configured.
func InternalAdmin(header, key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if key == "" || c.Get(header) != key {
			return apperrors.NewDomainError(
				apperrors.CodeInternalAdmin401,
				"You are not authorized to perform this action",
				fiber.StatusUnauthorized,
			)
		}
		return c.Next()
	}
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
