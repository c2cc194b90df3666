package routes

import (
	"talentmatch/internal/delivery/http/handler"
	"talentmatch/internal/delivery/http/middleware"
	"talentmatch/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	auth   *handler.AuthHandler
	match  *handler.MatchHandler
	skill  *handler.SkillHandler
	wsh    *ws.Handler
	authMW *middleware.AuthMiddleware
}

func NewRegistry(
	health *handler.HealthHandler,
	auth *handler.AuthHandler,
	match *handler.MatchHandler,
	skill *handler.SkillHandler,
	wsh *ws.Handler,
	authMW *middleware.AuthMiddleware,
) *Registry {
	return &Registry{
		health: health,
		auth:   auth,
		match:  match,
		skill:  skill,
		wsh:    wsh,
		authMW: authMW,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	if r.wsh != nil {
		app.Get("/ws/matches", r.wsh.HandleMatchesWS)
	}

	api := app.Group("/api")
	v1 := api.Group("/v1")

	r.auth.RegisterRoutes(v1.Group("/auth"))

	protected := v1.Group("", r.authMW.Middleware())
	r.match.RegisterRoutes(protected)
	r.skill.RegisterRoutes(protected)
}
