package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/uniswap/internal/http/response"
	"github.com/magabrotheeeer/uniswap/internal/models"
)

type Service interface {
	Schools(ctx context.Context) models.SchoolList
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
// @Summary Список школ
// @Tags School
// @Produce  json
// @Param token header string true "Токен пользователя"
// @Success 200 {object} response.Envelope{data=models.SchoolList}
// @Router /school/list [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.OK(h.catalog.Schools(r.Context())))
}
