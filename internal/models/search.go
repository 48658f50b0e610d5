package models

// SearchArea — фильтр по району.
type SearchArea string

// SearchType — фильтр по типу товара.
type SearchType string

// SearchTime — фильтр по давности публикации.
type SearchTime string

const (
	SearchAll = "all"

	AreaA1 SearchArea = "A1"
	AreaB1 SearchArea = "B1"
	AreaC1 SearchArea = "C1"

	Type1 SearchType = "type1"
	Type2 SearchType = "type2"
	Type3 SearchType = "type3"

	TimeMonth     SearchTime = "month"
	TimeWeek      SearchTime = "week"
	TimeThreeDays SearchTime = "three days"
	TimeToday     SearchTime = "today"
)

func (a SearchArea) Valid() bool {
	switch a {
	case SearchAll, AreaA1, AreaB1, AreaC1:
		return true
	}
	return false
}

func (t SearchType) Valid() bool {
	switch t {
	case SearchAll, Type1, Type2, Type3:
		return true
	}
	return false
}

func (t SearchTime) Valid() bool {
	switch t {
	case SearchAll, TimeMonth, TimeWeek, TimeThreeDays, TimeToday:
		return true
	}
	return false
}

// SearchDetails — фильтры поиска. Отсутствующие поля равны "all".
type SearchDetails struct {
	Area SearchArea `json:"area" validate:"enum"`
	Type SearchType `json:"type" validate:"enum"`
	Time SearchTime `json:"time" validate:"enum"`
}

// SearchRequest — тело /goods/search.
type SearchRequest struct {
	Keywords *string       `json:"keywords" validate:"required"`
	Details  SearchDetails `json:"details"`
}

// NewSearchRequest возвращает запрос со значениями по умолчанию.
// JSON декодируется поверх него, поэтому отсутствующие поля сохраняют "all".
func NewSearchRequest() SearchRequest {
	return SearchRequest{
		Details: SearchDetails{
			Area: SearchAll,
			Type: SearchAll,
			Time: SearchAll,
		},
	}
}

// PromptRequest — тело /goods/prompt.
type PromptRequest struct {
	Keywords *string `json:"keywords" validate:"required"`
}
