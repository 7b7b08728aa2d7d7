// Package jwt реализует генерацию и парсинг JWT токенов с пользовательскими claim полями.
//
// SessionClaims переносит в токене несекретную часть учётной записи
// (uid, username, fullname) — то самое значение сеанса, которым
// авторизуются экраны работы с лекарствами.
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/magabrotheeeer/pill-reminder/internal/models"
)

// SessionClaims описывает пользовательские данные, хранящиеся в JWT.
type SessionClaims struct {
	UserUID              string `json:"uid"`      // Идентификатор пользователя
	Username             string `json:"username"` // Имя пользователя
	Fullname             string `json:"fullname"` // Полное имя
	jwt.RegisteredClaims        // Встроенные стандартные claims JWT (ExpiresAt, IssuedAt и пр.)
}

// Session собирает из claims значение сеанса для прокидывания через контекст.
func (c *SessionClaims) Session() models.Session {
	return models.Session{
		UID:      c.UserUID,
		Username: c.Username,
		Fullname: c.Fullname,
	}
}

// GenerateToken создает JWT токен c данными сеанса, подписывая его секретным ключом.
//
// Время жизни токена определяется полем tokenTTL.
func (j *MakerImpl) GenerateToken(session models.Session) (string, error) {
	claims := SessionClaims{
		UserUID:  session.UID,
		Username: session.Username,
		Fullname: session.Fullname,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// ParseToken парсит JWT токен, проверяет его подпись и валидность,
// возвращает SessionClaims с данными, если токен корректен.
func (j *MakerImpl) ParseToken(tokenStr string) (*SessionClaims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}
