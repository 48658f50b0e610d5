package models

const sampleImage = "../../static/image/sample.png"

// GoodsItem — карточка товара в списках.
type GoodsItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Imgurl   string  `json:"imgurl"`
	Price    *int    `json:"price"`
	Location *string `json:"location"`
	Bio      *string `json:"bio"`
	AddTime  *string `json:"add_time"`
}

// GoodsList — список товаров с длиной.
type GoodsList struct {
	Len   int         `json:"len"`
	Items []GoodsItem `json:"items"`
}

// AddGoodsRequest — поля формы /goods/add.
type AddGoodsRequest struct {
	Imgs     []string `json:"imgs" validate:"required,dive,required"`
	Name     string   `json:"name" validate:"required"`
	Location string   `json:"location" validate:"required"`
	Price    string   `json:"price" validate:"required"`
	Bio      string   `json:"bio" validate:"required"`
}

// SampleUserItems возвращает фиксированный список товаров пользователя.
func SampleUserItems() GoodsList {
	items := []GoodsItem{
		{ID: 1, Imgurl: sampleImage, Name: "200BYTE,OR HIDE?", Price: ptr(100), AddTime: ptr("13h")},
		{ID: 2, Imgurl: sampleImage, Name: "sofa", Price: ptr(120), AddTime: ptr("13h")},
		{ID: 3, Imgurl: sampleImage, Name: "121", Price: ptr(220), AddTime: ptr("13h")},
	}
	return GoodsList{Len: len(items), Items: items}
}

// SampleSearchResult возвращает фиксированный результат поиска.
func SampleSearchResult() GoodsList {
	const favicon = "https://fastapi.tiangolo.com/img/favicon.png"
	items := []GoodsItem{
		{ID: 1, Name: "crow", Imgurl: favicon},
		{ID: 2, Name: "mice", Imgurl: favicon},
	}
	return GoodsList{Len: len(items), Items: items}
}
