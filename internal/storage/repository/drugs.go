package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/pill-reminder/internal/models"
)

// CreateDrug вставляет новую запись о лекарстве и возвращает сохранённую
// строку целиком. Ответ базы — единственный источник истины о созданной
// записи: id и created_at назначает она.
func (s *Storage) CreateDrug(ctx context.Context, drug models.Drug) (*models.Drug, error) {
	const op = "storage.CreateDrug"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO drugs (user_uid, name, form, timing_condition,
			      times_per_day, units_per_dose, total_units, reminder_time)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, user_uid, name, form, timing_condition,
			      times_per_day, units_per_dose, total_units, reminder_time, created_at`
	row := s.DB.QueryRowContext(ctx, query,
		drug.UserUID, drug.Name, drug.Form, drug.TimingCondition,
		drug.TimesPerDay, drug.UnitsPerDose, drug.TotalUnits, drug.ReminderTime)

	var stored models.Drug
	if err := row.Scan(&stored.ID, &stored.UserUID, &stored.Name, &stored.Form,
		&stored.TimingCondition, &stored.TimesPerDay, &stored.UnitsPerDose,
		&stored.TotalUnits, &stored.ReminderTime, &stored.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &stored, nil
}

// ListDrugs возвращает все лекарства пользователя по его UID.
func (s *Storage) ListDrugs(ctx context.Context, userUID string) ([]*models.Drug, error) {
	const op = "storage.ListDrugs"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, name, form, timing_condition,
			      times_per_day, units_per_dose, total_units, reminder_time, created_at
			  FROM drugs
			  WHERE user_uid = $1
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Drug
	for rows.Next() {
		var item models.Drug
		if err := rows.Scan(&item.ID, &item.UserUID, &item.Name, &item.Form,
			&item.TimingCondition, &item.TimesPerDay, &item.UnitsPerDose,
			&item.TotalUnits, &item.ReminderTime, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
