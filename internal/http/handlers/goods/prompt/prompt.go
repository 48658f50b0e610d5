package prompt

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/uniswap/internal/http/request"
	"github.com/magabrotheeeer/uniswap/internal/http/response"
	"github.com/magabrotheeeer/uniswap/internal/lib/validation"
	"github.com/magabrotheeeer/uniswap/internal/models"
)

type Service interface {
	Prompt(ctx context.Context, req models.PromptRequest) models.Payload
}

type Handler struct {
	log      *slog.Logger
	catalog  Service
	validate *validator.Validate
}

func New(log *slog.Logger, catalog Service) *Handler {
	return &Handler{
		log:      log,
		catalog:  catalog,
		validate: validation.New(),
	}
}

// ServeHTTP godoc
// @Summary Подсказки поиска
// @Tags Goods
// @Accept  json
// @Produce  json
// @Param token header string true "Токен пользователя"
// @Param request body models.PromptRequest true "Начало запроса"
// @Success 200 {object} response.Envelope
// @Failure 422 {object} response.Envelope "Ошибка валидации"
// @Router /goods/prompt [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.goods.prompt"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.PromptRequest
	if !request.BindJSON(w, r, log, h.validate, &req) {
		return
	}

	render.JSON(w, r, response.OK(h.catalog.Prompt(r.Context(), req)))
}
