package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminClaims is the payload of a locally signed admin token
type AdminClaims struct {
	jwt.RegisteredClaims
	MemID   string `json:"mem_id"`
	IsAdmin string `json:"isadmin"`
	MemIdx  int64  `json:"mem_idx"`
}

// JWTVerifier checks HS256 admin tokens signed with a shared secret.
// Used when no introspection endpoint is reachable (local development, tests).
type JWTVerifier struct {
	secretKey []byte
}

// NewJWTVerifier creates a new JWTVerifier
func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secretKey: []byte(secret)}
}

// Verify implements Verifier
func (v *JWTVerifier) Verify(_ context.Context, tokenString string) (*Admin, error) {
	claims, err := v.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.IsAdmin != "Y" {
		return nil, ErrNotAdmin
	}
	return &Admin{MemID: claims.MemID, MemIdx: claims.MemIdx}, nil
}

func (v *JWTVerifier) parse(tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Join(ErrInvalidToken, err)
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*AdminClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}

// Sign issues a token for the given member, valid for ttl
func (v *JWTVerifier) Sign(memIdx int64, memID string, isAdmin bool, ttl time.Duration) (string, error) {
	flag := "N"
	if isAdmin {
		flag = "Y"
	}
	now := time.Now()
	claims := AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Subject:   memID,
		},
		MemID:   memID,
		MemIdx:  memIdx,
		IsAdmin: flag,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secretKey)
}
