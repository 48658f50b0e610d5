// Package login реализует HTTP-обработчик входа пользователя.
//
// Вход по почте и телефону сверяет пароль с хранилищем и возвращает id
// пользователя в качестве токена. Вход через weixin не реализован и
// возвращает токен "-2". При неверных учётных данных возвращается FAIL с
// токеном "-1".
package login

import (
	"context"
	"errors"
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
	services "github.com/magabrotheeeer/uniswap/internal/services/user"
	"github.com/magabrotheeeer/uniswap/internal/status"
)

// Handler обрабатывает HTTP-запросы для входа.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	users    Service             // Сервис пользователей
	validate *validator.Validate // Валидатор для проверки входных данных
}

// Service описывает интерфейс бизнес-логики входа.
type Service interface {
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)
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
// @Summary Вход
// @Description Проверяет учетные данные. Возвращает token и username, равные id пользователя.
// @Description Пароль обязателен для type=email и type=phone.
// @Tags User
// @Accept  json
// @Produce  json
// @Param request body models.LoginRequest true "Учетные данные пользователя"
// @Success 200 {object} response.Envelope{data=models.LoginResult} "SUCCESS, FAIL или INTERNALERROR"
// @Failure 400 {object} response.Envelope "Некорректный JSON"
// @Failure 422 {object} response.Envelope "Ошибка валидации"
// @Router /user/login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.LoginRequest
	if !request.BindJSON(w, r, log, h.validate, &req) {
		return
	}

	result, err := h.users.Login(r.Context(), req)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		log.Info("invalid credentials", slog.String("type", string(req.Type)))
		render.JSON(w, r, response.New(status.Fail, result))
		return
	case err != nil:
		log.Error("login failed", sl.Err(err))
		render.JSON(w, r, response.Empty(status.InternalError))
		return
	}

	render.JSON(w, r, response.OK(result))
}
