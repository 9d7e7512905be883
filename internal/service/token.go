package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/kelcho-spense/farmer-certification-portal-api/internal/config"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/model"
)

// Claims is the payload carried by both token kinds. UserID is filled in
// from the subject during verification and is not serialized itself.
type Claims struct {
	UserID uuid.UUID  `json:"-"`
	Email  string     `json:"email"`
	Role   model.Role `json:"role"`
	jwt.RegisteredClaims
}

// IssueTokenPair signs an access and a refresh token for the user, each
// with its own secret and TTL.
func IssueTokenPair(user model.User, cfg *config.Config) (accessToken string, refreshToken string, err error) {
	accessToken, err = issueToken(user, cfg.AccessSecret, cfg.AccessTTL)
	if err != nil {
		return "", "", err
	}
	refreshToken, err = issueToken(user, cfg.RefreshSecret, cfg.RefreshTTL)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func issueToken(user model.User, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("signing secret not set")
	}

	now := time.Now()
	claims := Claims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			// jti makes every issued token unique, so rotation always
			// replaces the stored refresh hash with a different digest.
			ID:        uuid.NewString(),
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken parses and validates a token against the given secret and
// resolves the subject into Claims.UserID.
func VerifyToken(tokenString, secret string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("signing secret not set")
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("invalid token subject")
	}
	claims.UserID = userID

	return claims, nil
}

// HashRefreshToken digests a refresh token for storage. SHA-256 rather
// than bcrypt: signed refresh tokens exceed bcrypt's 72-byte input limit.
func HashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// RefreshTokenMatches compares a presented refresh token against the
// stored digest in constant time.
func RefreshTokenMatches(hash, token string) bool {
	computed := HashRefreshToken(token)
	return subtle.ConstantTimeCompare([]byte(hash), []byte(computed)) == 1
}
