package items

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
	UserItems(ctx context.Context, token string) models.GoodsList
}

type Handler struct {
	log     *slog.Logger
	catalog Service
}

func New(log *slog.Logger, catalog Service) *Handler {
	return &Handler{
		log:     log,
		catalog: catalog,
	}
}

// ServeHTTP godoc
// @Summary Товары пользователя
// @Tags User
// @Produce  json
// @Param token header string true "Токен пользователя"
// @Success 200 {object} response.Envelope{data=models.GoodsList}
// @Failure 422 {object} response.Envelope "Нет заголовка token"
// @Router /user/items [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.items"

	h.log.Debug("user items requested",
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	list := h.catalog.UserItems(r.Context(), middlewarectx.TokenFromContext(r.Context()))
	render.JSON(w, r, response.OK(list))
}
