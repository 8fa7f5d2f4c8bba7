package service

import (
	"errors"
	"fmt"
	"time"

	"checkers/internal/core"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL bounds the life of a seat token.
const DefaultTokenTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid seat token")

// SeatClaims bind a token to one seat of one game. The subject is the
// participant ID.
type SeatClaims struct {
	GameID string `json:"gid"`
	Seat   string `json:"seat"`
	jwt.RegisteredClaims
}

type tokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func (ti tokenIssuer) issue(gameID string, p *core.Participant) (string, error) {
	now := time.Now()
	claims := SeatClaims{
		GameID: gameID,
		Seat:   p.Seat.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ti.secret)
	if err != nil {
		return "", fmt.Errorf("sign seat token: %w", err)
	}
	return signed, nil
}

func (ti tokenIssuer) parse(token string) (*SeatClaims, error) {
	claims := &SeatClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return ti.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}
