package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidSession = errors.New("invalid or expired session")

// SessionClaims identify the restaurant dashboard a client opened.
type SessionClaims struct {
	RestaurantID string `json:"restaurant_id"`
	Email        string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

type SessionTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionTokens(secret string, ttl time.Duration) *SessionTokens {
	return &SessionTokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (st *SessionTokens) Generate(restaurantID, email string) (string, error) {
	now := st.now()
	claims := &SessionClaims{
		RestaurantID: restaurantID,
		Email:        email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(st.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "KelofaDashboard",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(st.secret)
	if err != nil {
		ErrorLogger.Errorf("Error generating session token: %v", err)
		return "", err
	}
	return signed, nil
}

func (st *SessionTokens) Parse(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return st.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(st.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidSession
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || claims.RestaurantID == "" {
		return nil, ErrInvalidSession
	}
	return claims, nil
}
