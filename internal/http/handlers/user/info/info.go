package info

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/uniswap/internal/http/middlewarectx"
	"github.com/magabrotheeeer/uniswap/internal/http/response"
	"github.com/magabrotheeeer/uniswap/internal/models"
)

type Service interface {
	Info(ctx context.Context, token string) models.UserInfo
}

type Handler struct {
	log   *slog.Logger
	users Service
}

func New(log *slog.Logger, users Service) *Handler {
	return &Handler{
		log:   log,
		users: users,
	}
}

// ServeHTTP godoc
// @Summary Информация о пользователе
// @Tags User
// @Produce  json
// @Param token header string true "Токен пользователя"
// @Success 200 {object} response.Envelope{data=models.UserInfo}
// @Failure 422 {object} response.Envelope "Нет заголовка token"
// @Router /user/info [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.info"

	h.log.Debug("user info requested",
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	info := h.users.Info(r.Context(), middlewarectx.TokenFromContext(r.Context()))
	render.JSON(w, r, response.OK(info))
}
