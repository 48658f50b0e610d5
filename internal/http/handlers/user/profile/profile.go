// Package profile отдаёт профиль пользователя по uid.
package profile

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/uniswap/internal/http/middlewarectx"
	"github.com/magabrotheeeer/uniswap/internal/http/request"
	"github.com/magabrotheeeer/uniswap/internal/http/response"
	"github.com/magabrotheeeer/uniswap/internal/lib/validation"
	"github.com/magabrotheeeer/uniswap/internal/models"
)

// Service описывает получение профиля. Пока возвращается заглушка.
type Service interface {
	Profile(ctx context.Context, token string, req models.UIDRequest) models.UserProfile
}

type Handler struct {
	log      *slog.Logger
	users    Service
	validate *validator.Validate
}

func New(log *slog.Logger, users Service) *Handler {
	return &Handler{
		log:      log,
		users:    users,
		validate: validation.New(),
	}
}

// ServeHTTP godoc
// @Summary Профиль пользователя
// @Description Без uid возвращается профиль текущего пользователя.
// @Tags User
// @Accept  json
// @Produce  json
// @Param token header string true "Токен пользователя"
// @Param request body models.UIDRequest true "uid пользователя"
// @Success 200 {object} response.Envelope{data=models.UserProfile}
// @Failure 400 {object} response.Envelope "Некорректный JSON"
// @Failure 422 {object} response.Envelope "Нет заголовка token"
// @Router /user/profile [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.profile"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.UIDRequest
	if !request.BindJSON(w, r, log, h.validate, &req) {
		return
	}

	profile := h.users.Profile(r.Context(), middlewarectx.TokenFromContext(r.Context()), req)
	render.JSON(w, r, response.OK(profile))
}
