// Package services выдаёт адреса для загруженных изображений.
package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/uniswap/internal/models"
)

// MediaService принимает файл и возвращает адрес, по которому он якобы
// доступен. Содержимое никуда не сохраняется.
type MediaService struct {
	baseURL string
	log     *slog.Logger
	newID   func() uuid.UUID
}

// NewMediaService создает новый экземпляр MediaService.
func NewMediaService(baseURL string, log *slog.Logger) *MediaService {
	return &MediaService{
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
		newID:   uuid.New,
	}
}

// Upload вычитывает файл до конца и возвращает его адрес.
func (s *MediaService) Upload(ctx context.Context, filename string, file io.Reader) (models.UploadedMedia, error) {
	const op = "services.MediaService.Upload"

	select {
	case <-ctx.Done():
		return models.UploadedMedia{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	n, err := io.Copy(io.Discard, file)
	if err != nil {
		return models.UploadedMedia{}, fmt.Errorf("%s: %w", op, err)
	}

	name := s.newID().String() + strings.ToLower(filepath.Ext(filename))
	s.log.Debug("image received", slog.String("filename", filename), slog.Int64("size", n), slog.String("stored_as", name))

	return models.UploadedMedia{Src: s.baseURL + "/" + name}, nil
}
