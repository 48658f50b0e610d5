// Package services содержит логику каталога: списки товаров, поиск, школы и
// публикацию новых объявлений.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/uniswap/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/uniswap/internal/models"
)

// Publisher отправляет событие в брокер.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
}

// GoodsAdded — событие о новом объявлении.
type GoodsAdded struct {
	Name     string    `json:"name"`
	Location string    `json:"location"`
	Price    string    `json:"price"`
	Bio      string    `json:"bio"`
	Imgs     []string  `json:"imgs"`
	AddedAt  time.Time `json:"added_at"`
}

// CatalogService отдаёт заглушки каталога и публикует новые объявления.
type CatalogService struct {
	publisher Publisher
	log       *slog.Logger
	now       func() time.Time
}

// NewCatalogService создает новый экземпляр CatalogService.
func NewCatalogService(publisher Publisher, log *slog.Logger) *CatalogService {
	return &CatalogService{
		publisher: publisher,
		log:       log,
		now:       time.Now,
	}
}

// UserItems возвращает товары текущего пользователя.
func (s *CatalogService) UserItems(_ context.Context, _ string) models.GoodsList {
	return models.SampleUserItems()
}

// Search возвращает результат поиска. Ключевые слова и фильтры не учитываются.
func (s *CatalogService) Search(_ context.Context, req models.SearchRequest) models.GoodsList {
	s.log.Debug("search",
		slog.String("keywords", models.Text(req.Keywords)),
		slog.String("area", string(req.Details.Area)),
		slog.String("type", string(req.Details.Type)),
		slog.String("time", string(req.Details.Time)),
	)
	return models.SampleSearchResult()
}

// Prompt возвращает подсказки по ключевым словам. Подсказок пока нет.
func (s *CatalogService) Prompt(_ context.Context, _ models.PromptRequest) models.Payload {
	return models.Empty{}
}

// Schools возвращает список школ.
func (s *CatalogService) Schools(_ context.Context) models.SchoolList {
	return models.SampleSchools()
}

// AddGoods публикует новое объявление. Объявление не сохраняется.
func (s *CatalogService) AddGoods(ctx context.Context, req models.AddGoodsRequest) error {
	const op = "services.CatalogService.AddGoods"

	event := GoodsAdded{
		Name:     req.Name,
		Location: req.Location,
		Price:    req.Price,
		Bio:      req.Bio,
		Imgs:     req.Imgs,
		AddedAt:  s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, rabbitmq.RoutingGoodsAdded, event); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// LogPublisher используется, когда брокер выключен: событие только пишется в лог.
type LogPublisher struct {
	Log *slog.Logger
}

// Publish пишет событие в лог.
func (p LogPublisher) Publish(_ context.Context, routingKey string, message any) error {
	p.Log.Info("broker disabled, event not published",
		slog.String("routing_key", routingKey),
		slog.Any("event", message),
	)
	return nil
}

var _ Publisher = LogPublisher{}
var _ Publisher = (*rabbitmq.Publisher)(nil)

