// Package request декодирует и валидирует тела запросов.
package request

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/uniswap/internal/http/response"
	"github.com/magabrotheeeer/uniswap/internal/lib/sl"
)

// BindJSON декодирует JSON-тело в dst и проверяет его валидатором.
// При ошибке сам пишет ответ (400 для битого JSON, 422 для невалидных
// полей) и возвращает false.
func BindJSON(w http.ResponseWriter, r *http.Request, log *slog.Logger, validate *validator.Validate, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(http.StatusBadRequest, "invalid request body"))
		return false
	}
	log.Debug("request body decoded")

	return Validate(w, r, log, validate, dst)
}

// Validate проверяет уже заполненную структуру.
func Validate(w http.ResponseWriter, r *http.Request, log *slog.Logger, validate *validator.Validate, dst any) bool {
	if err := validate.Struct(dst); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Invalid(err))
		return false
	}
	return true
}
