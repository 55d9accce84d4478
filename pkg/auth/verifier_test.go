package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractToken(t *testing.T) {
	assert.Equal(t, "abc", ExtractToken("Bearer abc"))
	assert.Equal(t, "abc", ExtractToken("abc"))
	assert.Equal(t, "", ExtractToken(""))
}

func introspection(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req introspectRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "tok", req.Token)
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRemoteVerifier(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
		status  int
		fails   bool
	}{
		{name: "admin", status: 200, body: `{"success":true,"data":{"isadmin":"Y","mem_id":"root","mem_idx":1}}`},
		{name: "not admin", status: 200, body: `{"success":true,"data":{"isadmin":"N"}}`, wantErr: ErrNotAdmin},
		{name: "unsuccessful", status: 200, body: `{"success":false}`, wantErr: ErrInvalidToken},
		{name: "rejected", status: 401, body: `{}`, wantErr: ErrInvalidToken},
		{name: "issuer down", status: 502, body: ``, fails: true},
		{name: "garbage", status: 200, body: `not json`, fails: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := introspection(t, tt.status, tt.body)
			admin, err := NewRemoteVerifier(srv.URL, time.Second).Verify(context.Background(), "tok")

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsRejection(err))
			case tt.fails:
				require.Error(t, err)
				assert.False(t, IsRejection(err))
			default:
				require.NoError(t, err)
				assert.Equal(t, &Admin{MemID: "root", MemIdx: 1}, admin)
			}
		})
	}
}

func TestJWTVerifier(t *testing.T) {
	v := NewJWTVerifier("secret")

	token, err := v.Sign(7, "admin", true, time.Hour)
	require.NoError(t, err)
	admin, err := v.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, &Admin{MemID: "admin", MemIdx: 7}, admin)

	token, err = v.Sign(8, "user", false, time.Hour)
	require.NoError(t, err)
	_, err = v.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrNotAdmin)

	token, err = v.Sign(7, "admin", true, -time.Minute)
	require.NoError(t, err)
	_, err = v.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	token, err = NewJWTVerifier("other").Sign(7, "admin", true, time.Hour)
	require.NoError(t, err)
	_, err = v.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

type memoryVerdicts struct {
	m  map[string]*Admin
	mu sync.Mutex
}

func (c *memoryVerdicts) GetAdmin(_ context.Context, key string) (*Admin, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	a, ok := c.m[key]
	return a, ok
}

func (c *memoryVerdicts) SetAdmin(_ context.Context, key string, admin *Admin, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = admin
	return nil
}

type countingVerifier struct {
	err   error
	calls int
}

func (v *countingVerifier) Verify(context.Context, string) (*Admin, error) {
	v.calls++
	if v.err != nil {
		return nil, v.err
	}
	return &Admin{MemID: "root"}, nil
}

func TestCachedVerifier(t *testing.T) {
	cache := &memoryVerdicts{m: map[string]*Admin{}}
	next := &countingVerifier{}
	v := NewCachedVerifier(next, cache, time.Minute, nil)

	for i := 0; i < 3; i++ {
		admin, err := v.Verify(context.Background(), "tok")
		require.NoError(t, err)
		assert.Equal(t, "root", admin.MemID)
	}
	assert.Equal(t, 1, next.calls)
	assert.NotContains(t, cache.m, "tok")
	assert.Contains(t, cache.m, TokenKey("tok"))
}

func TestCachedVerifier_RejectionsNotCached(t *testing.T) {
	cache := &memoryVerdicts{m: map[string]*Admin{}}
	next := &countingVerifier{err: ErrNotAdmin}
	v := NewCachedVerifier(next, cache, time.Minute, nil)

	_, err := v.Verify(context.Background(), "tok")
	assert.True(t, errors.Is(err, ErrNotAdmin))
	_, err = v.Verify(context.Background(), "tok")
	assert.True(t, errors.Is(err, ErrNotAdmin))
	assert.Equal(t, 2, next.calls)
	assert.Empty(t, cache.m)
}
