// Package middlewarectx содержит HTTP middleware: заголовок token и
// ограничение частоты запросов.
//
// RequireToken требует заголовок token и кладёт его значение в контекст.
// Токен не проверяется: им служит id пользователя, выданный /user/login.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/uniswap/internal/http/response"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// Token — ключ для значения заголовка token в контексте
	Token Key = "token"
)

// TokenHeader — имя заголовка с токеном.
const TokenHeader = "token"

// RequireToken возвращает middleware, который отвечает 422, если заголовок
// token отсутствует.
func RequireToken(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.RequireToken"

			token, ok := r.Header[http.CanonicalHeaderKey(TokenHeader)]
			if !ok || len(token) == 0 {
				log.With(
					slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				).Warn("missing token header")
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, response.Error(http.StatusUnprocessableEntity, "field token is a required field"))
				return
			}
			ctx := context.WithValue(r.Context(), Token, token[0])
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TokenFromContext возвращает токен, сохранённый RequireToken.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(Token).(string)
	return token
}
