// Package pillreminder предоставляет маршруты для основного приложения.
package pillreminder

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/pill-reminder/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/pill-reminder/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/pill-reminder/internal/http/handlers/drug/create"
	"github.com/magabrotheeeer/pill-reminder/internal/http/handlers/drug/list"
	"github.com/magabrotheeeer/pill-reminder/internal/http/handlers/health"
	"github.com/magabrotheeeer/pill-reminder/internal/http/middlewarectx"
	"github.com/magabrotheeeer/pill-reminder/internal/lib/jwt"
	authservice "github.com/magabrotheeeer/pill-reminder/internal/services/auth"
	drugservice "github.com/magabrotheeeer/pill-reminder/internal/services/drug"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, jwtMaker jwt.Maker, authService *authservice.AuthService, drugService *drugservice.DrugService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)

		// Группа, требующая сеанс: проверка идёт до любого обращения к хранилищу
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.SessionMiddleware(jwtMaker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Get("/drugs", list.New(logger, drugService).ServeHTTP)
			r.Post("/drugs", create.New(logger, drugService).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
