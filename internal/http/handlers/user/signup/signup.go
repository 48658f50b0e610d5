// Package signup реализует регистрацию пользователя по почте или телефону.
package signup

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

// Service описывает регистрацию. Возвращает внутренний id созданного пользователя.
type Service interface {
	Signup(ctx context.Context, req models.SignupRequest) (int64, error)
}

// Handler обрабатывает POST /user/signup.
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
// @Summary Регистрация
// @Description Создает пользователя. type=email сохраняет userinfo как почту, type=phone как телефон.
// @Description Уникальность не проверяется.
// @Tags User
// @Accept  json
// @Produce  json
// @Param request body models.SignupRequest true "Данные регистрации"
// @Success 200 {object} response.Envelope "SUCCESS или INTERNALERROR"
// @Failure 400 {object} response.Envelope "Некорректный JSON"
// @Failure 422 {object} response.Envelope "Ошибка валидации"
// @Router /user/signup [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.signup"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.SignupRequest
	if !request.BindJSON(w, r, log, h.validate, &req) {
		return
	}

	id, err := h.users.Signup(r.Context(), req)
	if err != nil {
		log.Error("failed to create user", sl.Err(err))
		render.JSON(w, r, response.Empty(status.InternalError))
		return
	}
	log.Info("user signed up", slog.String("type", string(req.Type)), slog.Int64("internal_id", id))

	render.JSON(w, r, response.Empty(status.Success))
}
