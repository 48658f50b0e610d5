// Package image принимает изображение и возвращает адрес, по которому оно
// будет доступно. Файл вычитывается, но не хранится.
package image

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/uniswap/internal/http/response"
	"github.com/magabrotheeeer/uniswap/internal/lib/sl"
	"github.com/magabrotheeeer/uniswap/internal/models"
	"github.com/magabrotheeeer/uniswap/internal/status"
)

// FormField — имя поля формы с файлом.
const FormField = "image"

// Service описывает приём файла.
type Service interface {
	Upload(ctx context.Context, filename string, file io.Reader) (models.UploadedMedia, error)
}

// Handler обрабатывает POST /media/image.
type Handler struct {
	log      *slog.Logger
	media    Service
	maxBytes int64
}

// New создает новый экземпляр Handler. maxBytes ограничивает размер тела запроса.
func New(log *slog.Logger, media Service, maxBytes int64) *Handler {
	return &Handler{
		log:      log,
		media:    media,
		maxBytes: maxBytes,
	}
}

// ServeHTTP godoc
// @Summary Загрузка изображения
// @Tags Media
// @Accept  multipart/form-data
// @Produce  json
// @Param token header string true "Токен пользователя"
// @Param image formData file true "Изображение"
// @Success 200 {object} response.Envelope{data=models.UploadedMedia}
// @Failure 400 {object} response.Envelope "Некорректная форма"
// @Failure 413 {object} response.Envelope "Файл слишком большой"
// @Failure 422 {object} response.Envelope "Нет поля image"
// @Router /media/image [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.media.image"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Warn("image too large", slog.Int64("limit", tooLarge.Limit))
			render.Status(r, http.StatusRequestEntityTooLarge)
			render.JSON(w, r, response.Error(http.StatusRequestEntityTooLarge, "file too large"))
			return
		}
		log.Error("failed to parse multipart form", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(http.StatusBadRequest, "invalid form"))
		return
	}

	file, header, err := r.FormFile(FormField)
	if err != nil {
		log.Error("image field is missing", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error(http.StatusUnprocessableEntity, "field image is a required field"))
		return
	}
	defer file.Close()

	media, err := h.media.Upload(r.Context(), header.Filename, file)
	if err != nil {
		log.Error("failed to receive image", sl.Err(err))
		render.JSON(w, r, response.Empty(status.InternalError))
		return
	}
	log.Info("image received", slog.String("src", media.Src))

	render.JSON(w, r, response.OK(media))
}
