// Package uniswap собирает HTTP-приложение: маршруты, middleware и зависимости.
package uniswap

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/uniswap/internal/http/handlers/goods/add"
	"github.com/magabrotheeeer/uniswap/internal/http/handlers/goods/prompt"
	"github.com/magabrotheeeer/uniswap/internal/http/handlers/goods/search"
	"github.com/magabrotheeeer/uniswap/internal/http/handlers/health"
	"github.com/magabrotheeeer/uniswap/internal/http/handlers/media/image"
	"github.com/magabrotheeeer/uniswap/internal/http/handlers/school/list"
	"github.com/magabrotheeeer/uniswap/internal/http/handlers/user/info"
	"github.com/magabrotheeeer/uniswap/internal/http/handlers/user/items"
	"github.com/magabrotheeeer/uniswap/internal/http/handlers/user/login"
	"github.com/magabrotheeeer/uniswap/internal/http/handlers/user/mailexist"
	"github.com/magabrotheeeer/uniswap/internal/http/handlers/user/phoneexist"
	"github.com/magabrotheeeer/uniswap/internal/http/handlers/user/profile"
	"github.com/magabrotheeeer/uniswap/internal/http/handlers/user/signup"
	"github.com/magabrotheeeer/uniswap/internal/http/handlers/user/update"
	"github.com/magabrotheeeer/uniswap/internal/http/middlewarectx"
	"github.com/magabrotheeeer/uniswap/internal/metrics"
	catalogservice "github.com/magabrotheeeer/uniswap/internal/services/catalog"
	mediaservice "github.com/magabrotheeeer/uniswap/internal/services/media"
	userservice "github.com/magabrotheeeer/uniswap/internal/services/user"
)

// Deps — зависимости обработчиков.
type Deps struct {
	Users   *userservice.UserService
	Catalog *catalogservice.CatalogService
	Media   *mediaservice.MediaService
	Metrics *metrics.Metrics
	DB      health.Pinger

	MaxUploadBytes int64
	RateLimitRPS   float64
	RateLimitBurst int
	// DocsDir — каталог markdown-заметок, раздаётся по /doc/.
	DocsDir string
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, d Deps) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions, http.MethodHead},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: false,
		}),
		d.Metrics.Middleware,
		middlewarectx.RateLimitMiddleware(logger, d.RateLimitRPS, d.RateLimitBurst),
	)

	// Открытые конечные точки
	r.Route("/user", func(r chi.Router) {
		r.Post("/phone_exist", phoneexist.New(logger, d.Users).ServeHTTP)
		r.Post("/mail_exist", mailexist.New(logger, d.Users).ServeHTTP)
		r.Post("/signup", signup.New(logger, d.Users).ServeHTTP)
		r.Post("/login", login.New(logger, d.Users).ServeHTTP)

		// Группа с заголовком token
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RequireToken(logger))
			r.Get("/info", info.New(logger, d.Users).ServeHTTP)
			r.Post("/profile", profile.New(logger, d.Users).ServeHTTP)
			r.Post("/update", update.New(logger, d.Users).ServeHTTP)
			r.Get("/items", items.New(logger, d.Catalog).ServeHTTP)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.RequireToken(logger))
		r.Post("/goods/search", search.New(logger, d.Catalog).ServeHTTP)
		r.Post("/goods/prompt", prompt.New(logger, d.Catalog).ServeHTTP)
		r.Post("/goods/add", add.New(logger, d.Catalog).ServeHTTP)
		r.Get("/school/list", list.New(logger, d.Catalog).ServeHTTP)
		r.Post("/media/image", image.New(logger, d.Media, d.MaxUploadBytes).ServeHTTP)
	})

	r.Get("/health", health.New(logger, d.DB).ServeHTTP)
	r.Handle("/metrics", d.Metrics.Handler())
	r.Handle("/doc/*", http.StripPrefix("/doc/", http.FileServer(http.Dir(d.DocsDir))))
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
