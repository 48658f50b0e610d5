// Package validation собирает валидатор запросов с правилами,
// которых нет в go-playground/validator из коробки.
package validation

import (
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/uniswap/internal/models"
)

// EnumTag — тег для полей-перечислений, тип которых реализует Valid() bool.
const EnumTag = "enum"

type enum interface {
	Valid() bool
}

// New возвращает валидатор с тегом enum и правилом для LoginRequest.
func New() *validator.Validate {
	v := validator.New()
	// Ошибка возможна только при пустом имени тега.
	_ = v.RegisterValidation(EnumTag, validateEnum)
	v.RegisterStructValidation(validateLogin, models.LoginRequest{})
	return v
}

func validateEnum(fl validator.FieldLevel) bool {
	field := fl.Field()
	if !field.CanInterface() {
		return false
	}
	e, ok := field.Interface().(enum)
	if !ok {
		return false
	}
	return e.Valid()
}

// Ключ pwd обязателен для входа по почте и телефону, для weixin не нужен.
// Пустой пароль допустим и приводит к неудачному входу.
func validateLogin(sl validator.StructLevel) {
	req := sl.Current().Interface().(models.LoginRequest)
	if req.Type == models.AccountWeixin {
		return
	}
	if req.Data.Pwd == nil {
		sl.ReportError(req.Data.Pwd, "Pwd", "Pwd", "required", "")
	}
}
