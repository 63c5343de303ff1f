package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"jar-rating/internal/domain"
)

func sampleReport() domain.MatchupReport {
	return domain.MatchupReport{
		MatchupType: "Mixed Styles",
		Evenness:    "Very Even",
		Analysis:    []string{"sentence"},
		ProfileA:    domain.RollDynamicsProfile{PractitionerName: "Ana"},
		ProfileB:    domain.RollDynamicsProfile{PractitionerName: "Bruno"},
	}
}

func TestMemoryReportCache_SetGet(t *testing.T) {
	cache := NewMemoryReportCache()
	ctx := context.Background()

	if _, ok := cache.Get(ctx, "missing"); ok {
		t.Fatalf("expected miss on empty cache")
	}

	cache.Set(ctx, "k1", sampleReport(), time.Minute)
	got, ok := cache.Get(ctx, "k1")
	if !ok {
		t.Fatalf("expected hit")
	}
	if got.MatchupType != "Mixed Styles" || got.ProfileA.PractitionerName != "Ana" {
		t.Fatalf("unexpected cached report: %+v", got)
	}
}

func TestMemoryReportCache_Expiry(t *testing.T) {
	cache := NewMemoryReportCache()
	ctx := context.Background()

	cache.Set(ctx, "k1", sampleReport(), 20*time.Millisecond)
	time.Sleep(40 * time.Millisecond)
	if _, ok := cache.Get(ctx, "k1"); ok {
		t.Fatalf("expected expired entry to miss")
	}
}

type mockRedisGetSetClient struct {
	values map[string]string

	lastSetKey string
	lastSetTTL time.Duration
	getErr     error
}

func (m *mockRedisGetSetClient) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	if m.getErr != nil {
		cmd.SetErr(m.getErr)
		return cmd
	}
	val, ok := m.values[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(val)
	return cmd
}

func (m *mockRedisGetSetClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	m.lastSetKey = key
	m.lastSetTTL = expiration
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.values[key] = string(value.([]byte))
	cmd := redis.NewStatusCmd(ctx)
	cmd.SetVal("OK")
	return cmd
}

func TestRedisReportCache_RoundTrip(t *testing.T) {
	mock := &mockRedisGetSetClient{}
	cache := &redisReportCache{client: mock, prefix: "jar:report:"}
	ctx := context.Background()

	cache.Set(ctx, "abc", sampleReport(), 0)
	if mock.lastSetKey != "jar:report:abc" {
		t.Fatalf("unexpected key %q", mock.lastSetKey)
	}
	if mock.lastSetTTL <= 0 {
		t.Fatalf("expected positive TTL fallback, got %v", mock.lastSetTTL)
	}

	got, ok := cache.Get(ctx, "abc")
	if !ok {
		t.Fatalf("expected hit")
	}
	if got.ProfileB.PractitionerName != "Bruno" {
		t.Fatalf("unexpected report: %+v", got)
	}
}

func TestRedisReportCache_MissAndErrors(t *testing.T) {
	mock := &mockRedisGetSetClient{}
	cache := &redisReportCache{client: mock, prefix: "jar:report:"}
	ctx := context.Background()

	if _, ok := cache.Get(ctx, "missing"); ok {
		t.Fatalf("expected miss for absent key")
	}

	mock.getErr = errors.New("connection refused")
	if _, ok := cache.Get(ctx, "any"); ok {
		t.Fatalf("expected miss on client error")
	}
}

func TestRedisReportCache_CorruptPayloadIsMiss(t *testing.T) {
	mock := &mockRedisGetSetClient{values: map[string]string{"jar:report:bad": "{not json"}}
	cache := &redisReportCache{client: mock, prefix: "jar:report:"}

	if _, ok := cache.Get(context.Background(), "bad"); ok {
		t.Fatalf("expected corrupt payload to miss")
	}

	// Sanidad: el formato almacenado es JSON del reporte.
	cache.Set(context.Background(), "good", sampleReport(), time.Minute)
	var report domain.MatchupReport
	if err := json.Unmarshal([]byte(mock.values["jar:report:good"]), &report); err != nil {
		t.Fatalf("stored payload not valid JSON: %v", err)
	}
}
