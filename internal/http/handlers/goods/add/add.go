// Package add реализует публикацию нового объявления.
//
// Поля принимаются формой (multipart/form-data или
// application/x-www-form-urlencoded): imgs (повторяется), name, location,
// price, bio. Объявление не сохраняется, а отправляется событием в брокер.
package add

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
)

const maxFormMemory = 8 << 20

// Service описывает добавление объявления.
type Service interface {
	AddGoods(ctx context.Context, req models.AddGoodsRequest) error
}

// Handler обрабатывает POST /goods/add.
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
// @Summary Новое объявление
// @Tags Goods
// @Accept  multipart/form-data
// @Produce  json
// @Param token header string true "Токен пользователя"
// @Param imgs formData []string true "Адреса изображений" collectionFormat(multi)
// @Param name formData string true "Название"
// @Param location formData string true "Место"
// @Param price formData string true "Цена"
// @Param bio formData string true "Описание"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope "Некорректная форма"
// @Failure 422 {object} response.Envelope "Ошибка валидации"
// @Router /goods/add [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.goods.add"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		log.Error("failed to parse form", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(http.StatusBadRequest, "invalid form"))
		return
	}

	req := models.AddGoodsRequest{
		Imgs:     r.PostForm["imgs"],
		Name:     r.PostForm.Get("name"),
		Location: r.PostForm.Get("location"),
		Price:    r.PostForm.Get("price"),
		Bio:      r.PostForm.Get("bio"),
	}
	if !request.Validate(w, r, log, h.validate, &req) {
		return
	}

	if err := h.catalog.AddGoods(r.Context(), req); err != nil {
		log.Error("failed to publish goods", sl.Err(err))
	}

	render.JSON(w, r, response.OK(nil))
}
