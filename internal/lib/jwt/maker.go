package jwt

import (
	"time"

	"github.com/magabrotheeeer/pill-reminder/internal/models"
)

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
//
// Методы позволяют создавать токен с данными сеанса пользователя,
// а также разбирать токен и извлекать из него сеанс обратно.
type Maker interface {
	// GenerateToken подписывает значение сеанса пользователя
	GenerateToken(session models.Session) (string, error)
	// ParseToken возвращает *SessionClaims с данными сеанса
	ParseToken(tokenStr string) (*SessionClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
