package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Kinds de token: cada eje de sesión viaja en su propio token.
const (
	KindStore      = "store"
	KindSuperAdmin = "super_admin"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// SessionID referencia el registro de sesión del lado servidor; Kind indica el eje
// (tienda o super admin) para que el middleware no tenga que adivinar.
type Claims struct {
	jwt.RegisteredClaims
	SessionID string `json:"session_id"`
	Kind      string `json:"kind"` // "store" | "super_admin"
}

// Generate genera un token JWT firmado que referencia una sesión.
// subject es el store_id (kind=store) o el username (kind=super_admin).
func Generate(secret, kind, sessionID, subject, issuer string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		SessionID: sessionID,
		Kind:      kind,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve kind, sessionID y subject.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (kind, sessionID, subject string, err error) {
	if secret == "" {
		return "", "", "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", "", fmt.Errorf("claims inválidos")
	}
	return claims.Kind, claims.SessionID, claims.Subject, nil
}
