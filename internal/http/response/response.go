// Package response содержит единый конверт ответа {status, data, msg}
// и функции для его построения. Бизнес-исход кодируется внутри конверта,
// а транспортный код меняется только при ошибках декодирования и валидации.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/uniswap/internal/lib/validation"
	"github.com/magabrotheeeer/uniswap/internal/models"
	"github.com/magabrotheeeer/uniswap/internal/status"
)

// Envelope — ответ любого обработчика.
type Envelope struct {
	Status int            `json:"status" example:"200"`
	Data   models.Payload `json:"data" swaggertype:"object"`
	Msg    string         `json:"msg" example:"ok"`
}

// MarshalJSON сериализует конверт; отсутствующее содержимое выводится как {}.
func (e Envelope) MarshalJSON() ([]byte, error) {
	type plain Envelope
	p := plain(e)
	if p.Data == nil {
		p.Data = models.Empty{}
	}
	return json.Marshal(p)
}

// New собирает конверт из исхода и содержимого.
func New(s status.Status, data models.Payload) Envelope {
	code, msg := s.Pair()
	if data == nil {
		data = models.Empty{}
	}
	return Envelope{
		Status: code,
		Data:   data,
		Msg:    msg,
	}
}

// OK возвращает конверт SUCCESS.
func OK(data models.Payload) Envelope {
	return New(status.Success, data)
}

// Empty возвращает конверт с пустым содержимым.
func Empty(s status.Status) Envelope {
	return New(s, models.Empty{})
}

// Error возвращает конверт транспортной ошибки с произвольным кодом.
func Error(code int, msg string) Envelope {
	return Envelope{
		Status: code,
		Data:   models.Empty{},
		Msg:    msg,
	}
}

// ValidationError формирует конверт 422 на основе ошибок валидации.
// Каждое нарушение формируется в человеко‑читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) Envelope {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case validation.EnumTag:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s has unsupported value %v", err.Field(), err.Value()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return Error(http.StatusUnprocessableEntity, strings.Join(errsMsgs, ", "))
}

// Invalid превращает ошибку Validate.Struct в конверт 422.
func Invalid(err error) Envelope {
	if errs, ok := err.(validator.ValidationErrors); ok {
		return ValidationError(errs)
	}
	return Error(http.StatusUnprocessableEntity, err.Error())
}
