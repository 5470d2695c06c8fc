package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type tokenClaims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
}

// TokenManager разбирает и выпускает токены доступа. Аутентификация выполняется
// внешней платформой: сервис лишь извлекает личность уже вошедшего пользователя.
type TokenManager struct {
	signingKey string
	tokenTTL   time.Duration
}

func NewTokenManager(signingKey string, tokenTTL time.Duration) *TokenManager {
	return &TokenManager{
		signingKey: signingKey,
		tokenTTL:   tokenTTL,
	}
}

func (m *TokenManager) Generate(userID int64, role string) (string, error) {
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
		Role:   role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.signingKey))
}

func (m *TokenManager) Parse(tokenString string) (int64, string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("неожиданный метод подписи токена")
		}
		return []byte(m.signingKey), nil
	})
	if err != nil {
		return 0, "", errors.New("недействительный токен")
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return 0, "", errors.New("недействительный токен")
	}

	return claims.UserID, claims.Role, nil
}
