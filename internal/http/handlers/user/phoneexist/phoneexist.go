// Package phoneexist реализует проверку, занят ли номер телефона.
package phoneexist

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

// Service описывает проверку существования пользователя по телефону.
type Service interface {
	PhoneExists(ctx context.Context, phone string) (bool, error)
}

// Handler обрабатывает POST /user/phone_exist.
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
// @Summary Проверка телефона
// @Description Возвращает SUCCESS, если пользователь с таким номером уже зарегистрирован, и NOTFOUND иначе.
// @Tags User
// @Accept  json
// @Produce  json
// @Param request body models.PhoneNumberRequest true "Номер телефона"
// @Success 200 {object} response.Envelope "SUCCESS или NOTFOUND"
// @Failure 400 {object} response.Envelope "Некорректный JSON"
// @Failure 422 {object} response.Envelope "Ошибка валидации"
// @Router /user/phone_exist [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.phoneexist"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.PhoneNumberRequest
	if !request.BindJSON(w, r, log, h.validate, &req) {
		return
	}

	found, err := h.users.PhoneExists(r.Context(), *req.PhoneNumber)
	if err != nil {
		log.Error("failed to look up phone", sl.Err(err))
		render.JSON(w, r, response.Empty(status.InternalError))
		return
	}
	if !found {
		render.JSON(w, r, response.Empty(status.NotFound))
		return
	}
	render.JSON(w, r, response.Empty(status.Success))
}
