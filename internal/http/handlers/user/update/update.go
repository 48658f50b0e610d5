package update

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

type Service interface {
	Update(ctx context.Context, token string, req models.UserUpdateRequest) models.UserInfo
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
// @Summary Обновление профиля
// @Description Все поля необязательны. Изменения не сохраняются.
// @Tags User
// @Accept  json
// @Produce  json
// @Param token header string true "Токен пользователя"
// @Param request body models.UserUpdateRequest true "Изменяемые поля"
// @Success 200 {object} response.Envelope{data=models.UserInfo}
// @Failure 400 {object} response.Envelope "Некорректный JSON"
// @Failure 422 {object} response.Envelope "Нет заголовка token"
// @Router /user/update [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.UserUpdateRequest
	if !request.BindJSON(w, r, log, h.validate, &req) {
		return
	}

	info := h.users.Update(r.Context(), middlewarectx.TokenFromContext(r.Context()), req)
	render.JSON(w, r, response.OK(info))
}
