// file: internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"litefarm_backend/internals/configs"
	userModel "litefarm_backend/internals/features/users/user/model"
)

const (
	accessTTL = 24 * time.Hour
	resetTTL  = 2 * time.Hour
	inviteTTL = 7 * 24 * time.Hour
)

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", errors.New("JWT_SECRET is not set")
	}
	return secret, nil
}

/* ==========================
   ACCESS TOKEN
========================== */

// CreateAccessToken issues the signed session credential carried by the
// web app on every request.
func CreateAccessToken(userID string) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(accessTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseAccessToken verifies signature and expiry and returns the user id.
func ParseAccessToken(tokenString string) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return "", errors.New("invalid access token")
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return "", errors.New("invalid access token")
	}
	return userID, nil
}

/* ==========================
   RESET / INVITATION TOKENS
========================== */

// CreatePasswordResetToken binds the token to the password row's reset
// version, so a completed reset invalidates every outstanding token.
func CreatePasswordResetToken(user *userModel.User, resetTokenVersion int, passwordCreatedAt time.Time) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id":             user.UserID,
		"email":               user.Email,
		"first_name":          user.FirstName,
		"reset_token_version": resetTokenVersion,
		"created_at":          passwordCreatedAt.UnixMilli(),
		"iat":                 now.Unix(),
		"exp":                 now.Add(resetTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// CreateInvitationToken is embedded in farm invitation links.
func CreateInvitationToken(userID string, farmID string) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id": userID,
		"farm_id": farmID,
		"iat":     now.Unix(),
		"exp":     now.Add(inviteTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
