// Package list реализует HTTP-обработчик для выдачи списка лекарств текущего пользователя.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/pill-reminder/internal/http/middlewarectx"
	"github.com/magabrotheeeer/pill-reminder/internal/http/response"
	"github.com/magabrotheeeer/pill-reminder/internal/lib/sl"
	"github.com/magabrotheeeer/pill-reminder/internal/models"
)

// Handler управляет HTTP-запросами на получение списка лекарств.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики выдачи списка.
type Service interface {
	List(ctx context.Context, userUID string) ([]*models.Drug, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список лекарств пользователя
// @Description Возвращает все записи о лекарствах владельца сеанса. Пустой список — успешный ответ.
// @Tags Drugs
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} map[string]any "Список записей"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /drugs [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.drug.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	session, ok := middlewarectx.SessionFromContext(r.Context())
	if !ok {
		log.Error("session not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	drugs, err := h.service.List(r.Context(), session.UID)
	if err != nil {
		log.Error("failed to list drugs", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}
	if drugs == nil {
		drugs = []*models.Drug{}
	}

	log.Info("drugs listed", slog.Int("count", len(drugs)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"drugs": drugs,
		"count": len(drugs),
	}))
}
