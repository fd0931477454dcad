package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/roster-service/internal/api/http/handlers"
	"github.com/spec-kit/roster-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Public     *handlers.PublicHandler
	Auth       *handlers.AuthHandler
	Profile    *handlers.ProfileHandler
	Teams      *handlers.TeamsHandler
	Players    *handlers.PlayersHandler
	Admin      *handlers.AdminHandler
	Middleware *auth.Middleware

	InternalAdminHeader string
	InternalAdminKey    string
}

// RegisterRoutes wires HTTP routes with their gate chains.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	mw := cfg.Middleware

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/vtms/api/v1/supported-response-codes", cfg.Public.ResponseCodes)

	app.Post("/vtms/auth/register", cfg.Auth.Register)
	app.Post("/vtms/auth/signin", cfg.Auth.Signin)
	app.Post("/vtms/auth/signout", mw.Authenticate, auth.Common(), cfg.Auth.Signout)
	app.Get("/vtms/auth/all-users", mw.Authenticate, auth.AdminClass(), cfg.Auth.AllUsers)

	app.Get("/v1/vtms/api/profile", mw.Authenticate, auth.Common(), cfg.Profile.GetProfile)

	app.Get("/v1/vtms/api/teams", mw.Authenticate, auth.AdminClass(), cfg.Teams.List)
	app.Post("/v1/vtms/api/teams", mw.Authenticate, auth.AdminClass(), cfg.Teams.Create)
	app.Get("/v1/vtms/api/teams/:teamId", mw.Authenticate, auth.Common(), mw.SameTeam, cfg.Teams.Get)
	app.Put("/v1/vtms/api/teams/:teamId", mw.Authenticate, auth.AdminClass(), cfg.Teams.Update)
	app.Delete("/v1/vtms/api/teams/:teamId", mw.Authenticate, auth.AdminClass(), cfg.Teams.Delete)

	app.Get("/vtms/api/v1/teams/:teamId/players", mw.Authenticate, auth.Common(), mw.SameTeam, cfg.Players.ListInTeam)
	app.Get("/vtms/api/v1/teams/:teamId/players/:playerId", mw.Authenticate, auth.Common(), mw.CurrentPlayerTeam, cfg.Players.Get)

	// Fixed player segments before the :playerId routes; fiber matches in
	// registration order.
	app.Get("/vtms/api/v1/players/available", mw.Authenticate, auth.AdminClass(), cfg.Players.ListAvailable)
	app.Put("/vtms/api/v1/players/assign", mw.Authenticate, auth.AdminClass(), cfg.Players.Assign)
	app.Put("/vtms/api/v1/players/transfer", mw.Authenticate, auth.AdminClass(), cfg.Players.Transfer)
	app.Put("/vtms/api/v1/players/unassign/:playerId", mw.Authenticate, auth.AdminClass(), cfg.Players.Unassign)
	app.Get("/vtms/api/v1/players", mw.Authenticate, auth.AdminClass(), cfg.Players.List)
	app.Post("/vtms/api/v1/players", mw.Authenticate, auth.AdminClass(), cfg.Players.Create)
	app.Get("/vtms/api/v1/players/:playerId", mw.Authenticate, auth.AdminClass(), cfg.Players.Get)
	app.Put("/vtms/api/v1/players/:playerId", mw.Authenticate, auth.Common(), mw.SamePlayer, cfg.Players.Update)
	app.Delete("/vtms/api/v1/players/:playerId", mw.Authenticate, auth.AdminClass(), cfg.Players.Delete)

	// The internal-admin surface sits behind the static header secret, not
	// behind session tokens.
	admin := app.Group("/vtms/internal-admin/v1", auth.InternalAdmin(cfg.InternalAdminHeader, cfg.InternalAdminKey))
	admin.Get("/users/all", cfg.Admin.AllUsers)
	admin.Get("/roles", cfg.Admin.ListRoles)
	admin.Post("/roles", cfg.Admin.CreateRole)
	admin.Put("/roles", cfg.Admin.UpdateRole)
	admin.Delete("/roles", cfg.Admin.DeleteRole)
}
