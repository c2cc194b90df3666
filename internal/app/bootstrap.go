package app

import (
	"fmt"
	"strings"

	"talentmatch/internal/delivery/http/handler"
	"talentmatch/internal/delivery/http/middleware"
	"talentmatch/internal/delivery/http/routes"
	"talentmatch/internal/domain/taxonomy"
	"talentmatch/internal/pkg/jwt"
	"talentmatch/internal/usecase"
	"talentmatch/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
	Hub   *ws.Hub
}

// Bootstrap wires the HTTP server: repositories from the container,
// usecases, handlers and the websocket hub.
func Bootstrap(c *Container) (*App, func() error, error) {
	if c == nil {
		return nil, nil, fmt.Errorf("nil container")
	}
	cfg := c.Config

	jwtSvc := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TokenTTL, cfg.JWT.RefreshTTL)
	tax := taxonomy.Default()

	hub := ws.NewHub(c.Logger)
	go hub.Run()
	notifier := ws.NewNotifier(hub)

	matchUC := usecase.NewMatchingUsecase(
		tax,
		c.Candidates,
		c.Jobs,
		c.Applications,
		c.Cache,
		cfg.Redis.MatchCacheTTL,
		notifier,
		c.Logger,
	)
	skillUC := usecase.NewSkillUsecase(tax)
	authUC := usecase.NewAuthUsecase(c.Recruiters, jwtSvc)

	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.DB, c.Cache),
		handler.NewAuthHandler(authUC),
		handler.NewMatchHandler(matchUC),
		handler.NewSkillHandler(skillUC),
		ws.NewHandler(hub, c.Logger),
		middleware.NewAuthMiddleware(jwtSvc),
	)

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	f.Use(middleware.NewErrorMiddleware().Middleware())
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	registry.Register(f)

	cleanup := func() error { return c.Close() }
	return &App{Fiber: f, Hub: hub}, cleanup, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
