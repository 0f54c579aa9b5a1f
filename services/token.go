package services

import (
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"

	"travelcms/errors"
)

// AdminInfo is the identity carried by an admin access token
type AdminInfo struct {
	AdminID uint   `json:"adminid"`
	Email   string `json:"email"`
}

type Claims struct {
	AdminInfo AdminInfo `json:"admininfo"`
	jwt.StandardClaims
}

// GenerateToken signs an HS256 token valid for expiryMinutes
func GenerateToken(info AdminInfo, secret string, expiryMinutes int) (string, error) {
	if secret == "" {
		return "", errors.NewAppError(errors.ErrCodeUnauthorized, "Token signing is not configured", nil)
	}
	claims := &Claims{
		AdminInfo: info,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies the signature and expiry and returns the admin identity
func ParseToken(tokenString, secret string) (*AdminInfo, error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer "))
	if tokenString == "" {
		return nil, errors.NewAppError(errors.ErrCodeMissingToken, "Missing token", nil)
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Unexpected signing method", nil)
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid token", err)
	}
	if claims.AdminInfo.AdminID == 0 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Admin not found in token", nil)
	}
	return &claims.AdminInfo, nil
}
