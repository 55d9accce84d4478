package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/rs/zerolog"
)

// VerdictCache stores positive admin verdicts
type VerdictCache interface {
	GetAdmin(ctx context.Context, key string) (*Admin, bool)
	SetAdmin(ctx context.Context, key string, admin *Admin, ttl time.Duration) error
}

// CachedVerifier remembers positive verdicts for ttl. Rejections and failures are never cached;
// cache errors fall through to the wrapped verifier.
type CachedVerifier struct {
	next   Verifier
	cache  VerdictCache
	logger *zerolog.Logger
	ttl    time.Duration
}

// NewCachedVerifier wraps next with a verdict cache
func NewCachedVerifier(next Verifier, cache VerdictCache, ttl time.Duration, logger *zerolog.Logger) *CachedVerifier {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &CachedVerifier{next: next, cache: cache, ttl: ttl, logger: logger}
}

// TokenKey is the cache key of a token. Raw tokens are never stored.
func TokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Verify implements Verifier
func (v *CachedVerifier) Verify(ctx context.Context, token string) (*Admin, error) {
	key := TokenKey(token)
	if admin, ok := v.cache.GetAdmin(ctx, key); ok {
		return admin, nil
	}

	admin, err := v.next.Verify(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := v.cache.SetAdmin(ctx, key, admin, v.ttl); err != nil {
		v.logger.Warn().Err(err).Msg("failed to cache admin verdict")
	}
	return admin, nil
}
