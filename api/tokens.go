package main

import (
	"eventboard/data/models"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type appClaims struct {
	UserID   int64  `json:"uid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// userAuth is the registration/login response shape: the user plus an opaque
// signed credential with an expiry.
type userAuth struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Image    *string `json:"image"`
	Token    string  `json:"token"`
}

func (app *application) issueToken(u models.User) (string, error) {
	now := time.Now()
	claims := appClaims{
		UserID:   u.ID,
		Username: u.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(app.Config.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(app.Config.JWTSecret))
}

func (app *application) parseToken(tokenString string) (*appClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &appClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(app.Config.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*appClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

func (app *application) userAuthResponse(u models.User) (userAuth, error) {
	token, err := app.issueToken(u)
	if err != nil {
		return userAuth{}, err
	}
	return userAuth{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Image:    u.Image,
		Token:    token,
	}, nil
}
