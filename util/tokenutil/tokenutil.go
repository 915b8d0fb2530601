package tokenutil

import (
	"errors"
	"fmt"
	"time"

	"github.com/Super-Badmen-Viper/VibeJewel/domain"
	"github.com/golang-jwt/jwt/v4"
)

// SessionClaims 会话令牌载荷，Subject 为会话ID
type SessionClaims struct {
	jwt.RegisteredClaims
}

// CreateSessionToken 签发 HS256 会话令牌
func CreateSessionToken(sessionID string, secret string, expiry time.Duration, now time.Time) (string, error) {
	if secret == "" {
		return "", errors.New("session token secret is empty")
	}
	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// ExtractSessionID 校验令牌并返回会话ID
func ExtractSessionID(requestToken string, secret string) (string, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(requestToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}
