package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry извлекает время истечения из JWT без проверки подписи.
// Подпись проверяет сервер; клиенту нужен только срок действия,
// чтобы не запускать синхронизацию с заведомо протухшим токеном.
// Возвращает нулевое время, если claim exp отсутствует.
func TokenExpiry(token string) (time.Time, error) {
	parser := jwt.NewParser()

	claims := jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, nil
	}

	return claims.ExpiresAt.Time, nil
}
