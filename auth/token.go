// Package auth issues and verifies the bearer tokens handed to admin clients
// at login. The browser admin panel relies on the session flag instead; the
// token exists for non-browser clients (scripts, the mobile back office).
package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hedibld92/margueritecookie/apperr"
)

const tokenTTL = 24 * time.Hour

// IssueAdminToken signs a 24h HS256 token for the given admin username.
func IssueAdminToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  username,
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// VerifyAdminToken checks signature, expiry and the admin role claim.
func VerifyAdminToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return apperr.Auth("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["role"] != "admin" {
		return apperr.Auth("Invalid token claims")
	}
	return nil
}
