package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeLimiterStore struct {
	counts map[string]int64
}

func newFakeLimiterStore() *fakeLimiterStore {
	return &fakeLimiterStore{counts: map[string]int64{}}
}

func (f *fakeLimiterStore) IncrWithTTL(_ context.Context, key string, _ time.Duration) (int64, error) {
	f.counts[key]++
	return f.counts[key], nil
}

func (f *fakeLimiterStore) RateLimitKey(scope, name, value string) string {
	return "nt:rl:" + scope + ":" + name + ":" + value
}

func limitedHandler(policy AuthRateLimitPolicy, store RateLimiterStore) http.Handler {
	return AuthRateLimit(policy, store, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestAuthRateLimitBlocksIPAfterLimit(t *testing.T) {
	store := newFakeLimiterStore()
	handler := limitedHandler(NewAuthRateLimitPolicy("token", time.Minute, 2, 0), store)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/user/token", strings.NewReader(`{}`))
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/user/token", strings.NewReader(`{}`))
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestAuthRateLimitCountsEmailsAcrossIPs(t *testing.T) {
	store := newFakeLimiterStore()
	handler := limitedHandler(NewAuthRateLimitPolicy("token", time.Minute, 0, 1), store)

	body := `{"email":"user@example.com","password":"x"}`

	req := httptest.NewRequest(http.MethodPost, "/user/token", strings.NewReader(body))
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/user/token", strings.NewReader(body))
	req.RemoteAddr = "10.9.9.9:1234"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestAuthRateLimitDisabledPolicyPassesThrough(t *testing.T) {
	handler := limitedHandler(NewAuthRateLimitPolicy("token", 0, 0, 0), newFakeLimiterStore())

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodPost, "/user/token", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestAuthRateLimitPreservesRequestBody(t *testing.T) {
	store := newFakeLimiterStore()
	var seen string
	handler := AuthRateLimit(NewAuthRateLimitPolicy("token", time.Minute, 0, 5), store, nil)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			buf := make([]byte, 256)
			n, _ := r.Body.Read(buf)
			seen = string(buf[:n])
			w.WriteHeader(http.StatusOK)
		}))

	body := `{"email":"user@example.com","password":"x"}`
	req := httptest.NewRequest(http.MethodPost, "/user/token", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, body, seen)
}
