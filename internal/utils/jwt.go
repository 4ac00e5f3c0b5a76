package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-db-journal/models"
	"github.com/golang-jwt/jwt/v5"
)

var errNoSubject = errors.New("token has no subject")

// accessClaims are the claims of an API access token. The user id travels
// as the decimal "sub" claim.
type accessClaims struct {
	jwt.RegisteredClaims
	DeviceID string `json:"device,omitempty"`
}

// IssueAccessToken signs an HS256 access token for userID. The API only
// verifies tokens; issuing lives here for tooling and tests.
func IssueAccessToken(issuer string, userID int64, deviceID string, ttl time.Duration, signKey string) (string, error) {
	if issuer == "" || ttl == 0 || signKey == "" {
		return "", errors.New("issuer, ttl and sign key are required")
	}

	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		DeviceID: deviceID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

// ParseAccessToken verifies raw against signKey and issuer and returns the
// caller it names. Expired tokens fail with an error wrapping
// [jwt.ErrTokenExpired].
func ParseAccessToken(raw, signKey, issuer string) (models.Caller, error) {
	var claims accessClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Caller{}, fmt.Errorf("parse access token: %w", err)
	}

	if claims.Subject == "" {
		return models.Caller{}, errNoSubject
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.Caller{}, fmt.Errorf("subject %q is not a user id: %w", claims.Subject, err)
	}

	return models.Caller{
		UserID:    userID,
		DeviceID:  claims.DeviceID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
