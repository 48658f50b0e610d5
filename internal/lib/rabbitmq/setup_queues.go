package rabbitmq

// GoodsExchange — обменник событий о товарах.
const GoodsExchange = "goods"

// RoutingGoodsAdded — ключ маршрутизации для новых товаров.
const RoutingGoodsAdded = "added"

type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

func GetGoodsQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "goods.added", RoutingKey: RoutingGoodsAdded},
	}
}
