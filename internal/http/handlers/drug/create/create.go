// Package create реализует HTTP-обработчик для добавления новых лекарств пользователя.
//
// Handler принимает JSON-запрос с данными лекарства, валидирует их, извлекает сеанс из контекста,
// вызывает бизнес-логику создания записи через сервис и возвращает сохранённую строку в JSON-формате.
// Владелец записи всегда берётся из сеанса, а не из тела запроса.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/pill-reminder/internal/http/middlewarectx"
	"github.com/magabrotheeeer/pill-reminder/internal/http/response"
	"github.com/magabrotheeeer/pill-reminder/internal/lib/sl"
	"github.com/magabrotheeeer/pill-reminder/internal/models"
)

// Handler управляет HTTP-запросами на добавление лекарств.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания записи о лекарстве.
type Service interface {
	Create(ctx context.Context, session models.Session, req models.DummyDrug) (*models.Drug, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Добавить лекарство
// @Description Создает запись о лекарстве для текущего пользователя. Возвращает сохранённую запись.
// @Tags Drugs
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param request body models.DummyDrug true "Данные нового лекарства"
// @Success 200 {object} map[string]any "Созданная запись"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании записи"
// @Router /drugs [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.drug.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyDrug
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	session, ok := middlewarectx.SessionFromContext(r.Context())
	if !ok {
		log.Error("session not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	drug, err := h.service.Create(r.Context(), session, req)
	if err != nil {
		log.Error("failed to create drug", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	log.Info("drug created", slog.Int("id", drug.ID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"drug": drug,
	}))
}
