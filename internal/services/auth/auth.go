// Package services содержит логику бизнес-уровня для регистрации и входа пользователей.
package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/magabrotheeeer/pill-reminder/internal/lib/jwt"
	"github.com/magabrotheeeer/pill-reminder/internal/lib/password"
	"github.com/magabrotheeeer/pill-reminder/internal/models"
)

// Ошибки уровня аутентификации. Обработчики превращают их в фиксированные
// пользовательские сообщения, всё остальное уходит клиенту как есть.
var (
	// ErrUserNotFound — по username не нашлось ни одной записи.
	ErrUserNotFound = errors.New("user not found")
	// ErrWrongPassword — пользователь есть, но пароль не совпал с хэшем.
	ErrWrongPassword = errors.New("wrong password")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его UID.
	CreateUser(ctx context.Context, user models.User) (string, error)

	// GetUserByUsername возвращает пользователя по имени или ошибку, если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService отвечает за регистрацию и вход. Результат обеих операций —
// подписанный токен с данными сеанса {uid, fullname, username}.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя: хэширует пароль, сохраняет запись
// с is_admin = false и сразу выдаёт сеанс. Откатывать нечего — запись одна.
func (s *AuthService) Register(ctx context.Context, username, fullname, phone, rawPassword string) (string, models.Session, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", models.Session{}, err
	}
	user := models.User{
		Username:     username,
		Fullname:     fullname,
		Phone:        phone,
		PasswordHash: hashed,
		IsAdmin:      false,
	}
	uid, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return "", models.Session{}, err
	}

	session := models.Session{UID: uid, Fullname: fullname, Username: username}
	token, err := s.jwtMaker.GenerateToken(session)
	if err != nil {
		return "", models.Session{}, err
	}
	return token, session, nil
}

// Login ищет пользователя по точному username, сверяет пароль с хэшем
// и выдаёт сеанс. На любом из отказов сеанс не создаётся.
func (s *AuthService) Login(ctx context.Context, username, rawPassword string) (string, models.Session, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", models.Session{}, ErrUserNotFound
		}
		return "", models.Session{}, err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", models.Session{}, ErrWrongPassword
	}

	session := models.Session{UID: user.UID, Fullname: user.Fullname, Username: user.Username}
	token, err := s.jwtMaker.GenerateToken(session)
	if err != nil {
		return "", models.Session{}, err
	}
	return token, session, nil
}
