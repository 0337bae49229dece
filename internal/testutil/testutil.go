// Package testutil provides testing helpers for the arena client.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

// testSigningKey signs test tokens. The client never verifies signatures, so
// the key only needs to be stable within a test run.
var testSigningKey = []byte("arena-test-secret")

// SignedToken builds a signed bearer token carrying the given claims.
func SignedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSigningKey)
	if err != nil {
		t.Fatalf("sign test token: %v", err)
	}
	return token
}

// ValidToken builds a token with the standard identity claims and an expiry
// one hour out, plus any extra claims merged on top.
func ValidToken(t *testing.T, extra jwt.MapClaims) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":   "user-1",
		"email": "user@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}
	for k, v := range extra {
		claims[k] = v
	}
	return SignedToken(t, claims)
}

// SetupTestRedis creates a Redis client for testing with address detection
// via REDIS_TEST_ADDR. Tests are skipped if Redis is not available.
func SetupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr, DB: 9})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		if cerr := client.Close(); cerr != nil {
			t.Logf("warning: close redis client after ping error: %v", cerr)
		}
		t.Skipf("Redis not available for testing at %s: %v", addr, err)
	}

	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Logf("warning: close redis client: %v", err)
		}
	})
	return client
}
