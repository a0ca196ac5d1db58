// Package token holds the bearer-token contracts. It sits below both the auth
// module and the HTTP middleware so neither has to import the other.
package token

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"

	autherrors "github.com/saitej-a/Leave-System/internal/auth/errors"
)

const (
	KindAccess  = "access"
	KindRefresh = "refresh"

	AccessTTL  = 24 * time.Hour
	RefreshTTL = 7 * 24 * time.Hour
)

// Claims is the identity carried by a bearer token.
type Claims struct {
	Email     string
	IsHR      bool
	Kind      string
	ExpiresAt time.Time
}

// Service issues and verifies opaque bearer tokens. The JWT library is an
// implementation detail behind this interface.
//
//go:generate mockgen -source=token.go -destination=mock/token_mock.go -package=mock
type Service interface {
	IssueToken(email string, isHR bool, kind string, ttl time.Duration) (string, error)
	VerifyToken(token string) (Claims, error)
}

type jwtService struct {
	secret []byte
}

func NewJWTService(secret string) Service {
	return &jwtService{secret: []byte(secret)}
}

func (s *jwtService) IssueToken(email string, isHR bool, kind string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"is_hr": isHR,
		"kind":  kind,
		"exp":   time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *jwtService) VerifyToken(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, autherrors.ErrTokenExpired
		}
		return Claims{}, autherrors.ErrInvalidToken
	}
	if !token.Valid {
		return Claims{}, autherrors.ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, autherrors.ErrInvalidToken
	}

	email, ok := mapClaims["email"].(string)
	if !ok || email == "" {
		return Claims{}, autherrors.ErrInvalidToken
	}
	isHR, _ := mapClaims["is_hr"].(bool)
	kind, _ := mapClaims["kind"].(string)

	var expiresAt time.Time
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		expiresAt = exp.Time
	}

	return Claims{
		Email:     email,
		IsHR:      isHR,
		Kind:      kind,
		ExpiresAt: expiresAt,
	}, nil
}

// Denylist records tokens invalidated by logout until they expire on
// their own.
type Denylist interface {
	Revoke(ctx context.Context, token string, until time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

type redisDenylist struct {
	rdb *redis.Client
}

func NewRedisDenylist(rdb *redis.Client) Denylist {
	return &redisDenylist{rdb: rdb}
}

func denylistKey(token string) string {
	return "auth:denylist:" + token
}

func (d *redisDenylist) Revoke(ctx context.Context, token string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return d.rdb.Set(ctx, denylistKey(token), "revoked", ttl).Err()
}

func (d *redisDenylist) IsRevoked(ctx context.Context, token string) (bool, error) {
	_, err := d.rdb.Get(ctx, denylistKey(token)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
