// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи и хэш пароля.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	UID          string    // Уникальный идентификатор пользователя
	Username     string    // Имя пользователя (уникальное)
	Fullname     string    // Полное имя пользователя
	Phone        string    // Номер телефона
	PasswordHash string    // Хэш пароля пользователя
	IsAdmin      bool      // Признак администратора, при регистрации всегда false
	CreatedAt    time.Time // Дата создания записи, назначается базой данных
}
