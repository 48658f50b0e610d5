// Package mailexist реализует проверку, занят ли адрес почты.
package mailexist

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/uniswap/internal/http/request"
	"github.com/magabrotheeeer/uniswap/internal/http/response"
	"github.com/magabrotheeeer/uniswap/internal/lib/sl"
	"github.com/magabrotheeeer/uniswap/internal/lib/validation"
	"github.com/magabrotheeeer/uniswap/internal/models"
	"github.com/magabrotheeeer/uniswap/internal/status"
)

// Service описывает проверку существования пользователя по почте.
type Service interface {
	EmailExists(ctx context.Context, email string) (bool, error)
}

// Handler обрабатывает POST /user/mail_exist.
type Handler struct {
	log      *slog.Logger
	users    Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, users Service) *Handler {
	return &Handler{
		log:      log,
		users:    users,
		validate: validation.New(),
	}
}

// ServeHTTP godoc
// @Summary Проверка почты
// @Description Возвращает SUCCESS, если пользователь с такой почтой уже зарегистрирован, и NOTFOUND иначе.
// @Tags User
// @Accept  json
// @Produce  json
// @Param request body models.EmailRequest true "Адрес почты"
// @Success 200 {object} response.Envelope "SUCCESS или NOTFOUND"
// @Failure 400 {object} response.Envelope "Некорректный JSON"
// @Failure 422 {object} response.Envelope "Ошибка валидации"
// @Router /user/mail_exist [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.mailexist"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.EmailRequest
	if !request.BindJSON(w, r, log, h.validate, &req) {
		return
	}

	found, err := h.users.EmailExists(r.Context(), *req.Email)
	if err != nil {
		log.Error("failed to look up email", sl.Err(err))
		render.JSON(w, r, response.Empty(status.InternalError))
		return
	}
	if !found {
		render.JSON(w, r, response.Empty(status.NotFound))
		return
	}
	render.JSON(w, r, response.Empty(status.Success))
}
