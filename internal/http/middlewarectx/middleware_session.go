// Package middlewarectx содержит HTTP middleware для обработки и проверки JWT токенов сеанса.
//
// SessionMiddleware проверяет наличие и валидность JWT токена в заголовке Authorization
// и в случае успеха кладёт в контекст единое типизированное значение сеанса
// {uid, fullname, username} для дальнейшего использования в обработчиках.
//
// Запрос без валидного сеанса отклоняется с HTTP 401 до любого обращения
// к хранилищу — это серверный аналог редиректа на экран входа.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/pill-reminder/internal/http/response"
	"github.com/magabrotheeeer/pill-reminder/internal/lib/jwt"
	"github.com/magabrotheeeer/pill-reminder/internal/lib/sl"
	"github.com/magabrotheeeer/pill-reminder/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// SessionKey — ключ, под которым сеанс лежит в контексте запроса.
const SessionKey Key = "session"

// SessionFromContext достаёт сеанс текущего запроса.
// Второе значение false означает, что middleware сеанс не записывал.
func SessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(SessionKey).(models.Session)
	return session, ok
}

// SessionMiddleware возвращает HTTP middleware, который проверяет JWT в заголовке Authorization.
//
// Если токен валиден, добавляет значение сеанса в контекст запроса,
// иначе возвращает ошибку с HTTP статусом 401 Unauthorized.
func SessionMiddleware(maker jwt.Maker, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.SessionMiddleware"
			authHeader := r.Header.Get("Authorization")

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := maker.ParseToken(tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}
			ctx := context.WithValue(r.Context(), SessionKey, claims.Session())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
