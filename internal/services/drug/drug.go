// Package services содержит бизнес-логику для работы с лекарствами и кешированием их списков.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/pill-reminder/internal/models"
)

// DrugRepository определяет методы для работы с лекарствами в хранилище.
type DrugRepository interface {
	// CreateDrug добавляет новую запись и возвращает сохранённую строку.
	CreateDrug(ctx context.Context, drug models.Drug) (*models.Drug, error)
	// ListDrugs возвращает все лекарства пользователя.
	ListDrugs(ctx context.Context, userUID string) ([]*models.Drug, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// DrugService реализует бизнес-логику работы с лекарствами, включая кеширование.
type DrugService struct {
	repo  DrugRepository
	cache Cache
	log   *slog.Logger
}

// NewDrugService создает новый экземпляр DrugService.
func NewDrugService(repo DrugRepository, cache Cache, log *slog.Logger) *DrugService {
	return &DrugService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create создаёт запись о лекарстве для владельца сеанса. Владельца задаёт
// сеанс запроса, а не тело: user_uid всегда равен uid текущего сеанса.
// Время напоминания клиент не передаёт — подставляется фиксированное значение.
// Возвращается строка из хранилища, а не эхо запроса.
func (s *DrugService) Create(ctx context.Context, session models.Session, req models.DummyDrug) (*models.Drug, error) {
	drug := models.Drug{
		UserUID:         session.UID,
		Name:            req.Name,
		Form:            req.Form,
		TimingCondition: req.TimingCondition,
		TimesPerDay:     req.TimesPerDay,
		UnitsPerDose:    req.UnitsPerDose,
		TotalUnits:      req.TotalUnits,
		ReminderTime:    models.DefaultReminderTime,
	}

	stored, err := s.repo.CreateDrug(ctx, drug)
	if err != nil {
		return nil, err
	}

	s.log.Info("created new drug", slog.Int("id", stored.ID))

	cacheKey := fmt.Sprintf("drugs:%s", session.UID)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate drug list cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return stored, nil
}

// List возвращает все лекарства пользователя, используя кеш или репозиторий.
func (s *DrugService) List(ctx context.Context, userUID string) ([]*models.Drug, error) {
	var result []*models.Drug
	cacheKey := fmt.Sprintf("drugs:%s", userUID)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		return nil, err
	}
	if found {
		return result, nil
	}

	result, err = s.repo.ListDrugs(ctx, userUID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to cache drug list", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}
