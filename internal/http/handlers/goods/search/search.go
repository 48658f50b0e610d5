// Package search реализует поиск товаров.
//
// Ключевые слова и фильтры валидируются, но результат пока фиксированный.
// Фильтры details.area, details.type и details.time по умолчанию равны "all".
package search

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

// Service описывает поиск по каталогу.
type Service interface {
	Search(ctx context.Context, req models.SearchRequest) models.GoodsList
}

// Handler обрабатывает POST /goods/search.
type Handler struct {
	log      *slog.Logger
	catalog  Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, catalog Service) *Handler {
	return &Handler{
		log:      log,
		catalog:  catalog,
		validate: validation.New(),
	}
}

// ServeHTTP godoc
// @Summary Поиск товаров
// @Description area: all, A1, B1, C1. type: all, type1, type2, type3. time: all, month, week, three days, today.
// @Tags Goods
// @Accept  json
// @Produce  json
// @Param token header string true "Токен пользователя"
// @Param request body models.SearchRequest true "Ключевые слова и фильтры"
// @Success 200 {object} response.Envelope{data=models.GoodsList}
// @Failure 400 {object} response.Envelope "Некорректный JSON"
// @Failure 422 {object} response.Envelope "Ошибка валидации"
// @Router /goods/search [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.goods.search"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	req := models.NewSearchRequest()
	if !request.BindJSON(w, r, log, h.validate, &req) {
		return
	}

	render.JSON(w, r, response.OK(h.catalog.Search(r.Context(), req)))
}
