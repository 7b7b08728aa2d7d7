// Package models содержит доменные структуры, описывающие лекарства,
// а также вспомогательные типы для работы с данными из внешних источников (например, JSON-запросы).
package models

import "time"

// Формы выпуска лекарства.
const (
	FormCapsule  = "capsule"
	FormTablet   = "tablet"
	FormSyrup    = "syrup"
	FormOintment = "ointment"
)

// Условия приёма лекарства относительно еды.
const (
	TimingBeforeMeal        = "before_meal"
	TimingAfterMeal         = "after_meal"
	TimingOneHourBeforeMeal = "one_hour_before_meal"
	TimingOneHourAfterMeal  = "one_hour_after_meal"
)

// DefaultReminderTime фиксированное время напоминания. Поле пока
// только сохраняется, никакая логика уведомлений на нём не строится.
const DefaultReminderTime = "07:00"

// Drug представляет собой основную модель лекарства,
// используемую в бизнес-логике и хранилище. Поля ID и CreatedAt
// назначаются базой данных при вставке.
type Drug struct {
	ID              int       `json:"id"`               // Идентификатор записи
	UserUID         string    `json:"user_uid"`         // Владелец записи
	Name            string    `json:"name"`             // Название лекарства
	Form            string    `json:"form"`             // Форма выпуска
	TimingCondition string    `json:"timing_condition"` // Условие приёма
	TimesPerDay     int       `json:"times_per_day"`    // Сколько раз в день
	UnitsPerDose    int       `json:"units_per_dose"`   // Сколько единиц за один приём
	TotalUnits      int       `json:"total_units"`      // Всего единиц в наличии
	ReminderTime    string    `json:"reminder_time"`    // Время напоминания, HH:MM
	CreatedAt       time.Time `json:"created_at"`       // Дата создания записи
}

// DummyDrug используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в Drug. Числовые поля типизированы,
// поэтому нечисловой ввод отклоняется на границе декодирования,
// а не доезжает до хранилища. ReminderTime клиентом не передаётся.
type DummyDrug struct {
	Name            string `json:"name" validate:"required"`
	Form            string `json:"form" validate:"required,oneof=capsule tablet syrup ointment"`
	TimingCondition string `json:"timing_condition" validate:"required,oneof=before_meal after_meal one_hour_before_meal one_hour_after_meal"`
	TimesPerDay     int    `json:"times_per_day" validate:"required"`
	UnitsPerDose    int    `json:"units_per_dose" validate:"required"`
	TotalUnits      int    `json:"total_units" validate:"required"`
}
