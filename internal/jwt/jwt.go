package jwt

import (
	"errors"
	"fmt"
	"holdem-server/internal/config"
	"time"

	jwtgo "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Issuer issues the JWT
const Issuer = "holdem-server"

var errMissingSecret = errors.New("jwt secret is not configured")

// SeatClaims identifies a seated player
type SeatClaims struct {
	PlayerID  string
	TableUUID string
}

func secret() ([]byte, error) {
	s := config.Instance().JWT.Secret
	if s == "" {
		return nil, errMissingSecret
	}

	return []byte(s), nil
}

// Sign will sign a JWT binding the player to the table
func Sign(playerID, tableUUID string) (string, error) {
	key, err := secret()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwtgo.RegisteredClaims{
		Audience: jwtgo.ClaimStrings{tableUUID},
		ID:       uuid.New().String(),
		IssuedAt: jwtgo.NewNumericDate(now),
		Issuer:   Issuer,
		Subject:  playerID,
	}

	if ttl := config.Instance().JWT.TTL; ttl > 0 {
		claims.ExpiresAt = jwtgo.NewNumericDate(now.Add(ttl))
	}

	return jwtgo.NewWithClaims(jwtgo.SigningMethodHS256, claims).SignedString(key)
}

// ValidSeat will validate a signed JWT for the table
func ValidSeat(signedString, tableUUID string) (*SeatClaims, error) {
	key, err := secret()
	if err != nil {
		return nil, err
	}

	token, err := jwtgo.ParseWithClaims(signedString, &jwtgo.RegisteredClaims{}, func(token *jwtgo.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwtgo.SigningMethodHMAC); !ok {
			return nil, errors.New("expected HS256 signing method")
		}

		return key, nil
	}, jwtgo.WithIssuer(Issuer), jwtgo.WithAudience(tableUUID))

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*jwtgo.RegisteredClaims)
	if !ok {
		return nil, fmt.Errorf("expected jwt.RegisteredClaims, got %T", token.Claims)
	}

	if claims.Subject == "" {
		return nil, errors.New("missing subject")
	}

	return &SeatClaims{
		PlayerID:  claims.Subject,
		TableUUID: tableUUID,
	}, nil
}
