package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hituru/admin-backend/pkg/auth"
)

// 캐시 키 접두사
const (
	PrefixAdmin = "hituru:admin:verdict:"
)

// TTLAdmin 관리자 판정 기본 유지 시간
const TTLAdmin = time.Minute

// Service Redis 캐시 서비스 인터페이스
type Service interface {
	// 기본 캐시 연산
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// 관리자 토큰 판정 캐시
	GetAdmin(ctx context.Context, tokenKey string) (*auth.Admin, bool)
	SetAdmin(ctx context.Context, tokenKey string, admin *auth.Admin, ttl time.Duration) error

	// 유틸리티
	IsAvailable() bool
	Ping(ctx context.Context) error
}

// ErrUnavailable Redis 미설정
var ErrUnavailable = errors.New("redis not available")

// redisCache Redis 기반 캐시 구현
type redisCache struct {
	client *redis.Client
}

// NewService 새로운 캐시 서비스 생성. client 가 nil 이면 모든 조회는 miss, 저장은 무시된다.
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

// IsAvailable Redis 연결 가능 여부
func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

// Ping Redis 연결 테스트
func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}

// Get 캐시에서 값 조회
func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return ErrUnavailable
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// Set 캐시에 값 저장
func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil // Redis 없으면 무시
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

// ========================================
// 관리자 판정 캐시
// ========================================

// GetAdmin 캐시된 관리자 판정 조회. 오류는 miss 로 취급한다.
func (c *redisCache) GetAdmin(ctx context.Context, tokenKey string) (*auth.Admin, bool) {
	var admin auth.Admin
	if err := c.Get(ctx, PrefixAdmin+tokenKey, &admin); err != nil {
		return nil, false
	}
	return &admin, true
}

// SetAdmin 관리자 판정 저장
func (c *redisCache) SetAdmin(ctx context.Context, tokenKey string, admin *auth.Admin, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = TTLAdmin
	}
	return c.Set(ctx, PrefixAdmin+tokenKey, admin, ttl)
}
