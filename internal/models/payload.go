package models

// Payload — закрытое объединение содержимого поля data ответа.
// Реализовать его могут только типы этого пакета.
type Payload interface {
	isPayload()
}

// Empty — пустое содержимое, сериализуется как {}.
type Empty struct{}

func (Empty) isPayload()         {}
func (LoginResult) isPayload()   {}
func (UserInfo) isPayload()      {}
func (UserProfile) isPayload()   {}
func (UploadedMedia) isPayload() {}
func (GoodsList) isPayload()     {}
func (SchoolList) isPayload()    {}

// Text возвращает значение строки или "", если поле не передано.
func Text(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ptr[T any](v T) *T {
	return &v
}
