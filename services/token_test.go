package services

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"

	"travelcms/errors"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(AdminInfo{AdminID: 7, Email: "ops@example.com"}, "s3cret", 5)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	info, err := ParseToken("Bearer "+token, "s3cret")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if info.AdminID != 7 || info.Email != "ops@example.com" {
		t.Fatalf("unexpected claims %+v", info)
	}
}

func TestParseTokenRejects(t *testing.T) {
	good, _ := GenerateToken(AdminInfo{AdminID: 1}, "s3cret", 5)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		AdminInfo:      AdminInfo{AdminID: 1},
		StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(-time.Minute).Unix()},
	})
	expiredStr, _ := expired.SignedString([]byte("s3cret"))

	noAdmin, _ := GenerateToken(AdminInfo{}, "s3cret", 5)

	cases := []struct {
		name  string
		token string
		code  errors.ErrorCode
	}{
		{"missing", "", errors.ErrCodeMissingToken},
		{"garbage", "a.b.c", errors.ErrCodeInvalidToken},
		{"wrong secret", good, errors.ErrCodeInvalidToken},
		{"expired", expiredStr, errors.ErrCodeInvalidToken},
		{"no admin", noAdmin, errors.ErrCodeInvalidToken},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			secret := "s3cret"
			if tc.name == "wrong secret" {
				secret = "other"
			}
			if _, err := ParseToken(tc.token, secret); !errors.HasCode(err, tc.code) {
				t.Fatalf("expected %s, got %v", tc.code, err)
			}
		})
	}
}

func TestGenerateTokenWithoutSecret(t *testing.T) {
	if _, err := GenerateToken(AdminInfo{AdminID: 1}, "", 5); err == nil {
		t.Fatal("expected error without secret")
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !CheckPassword(hash, "correct horse") || CheckPassword(hash, "wrong") {
		t.Fatal("password check mismatch")
	}
}
