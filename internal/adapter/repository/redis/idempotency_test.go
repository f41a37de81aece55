package redis

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestIdempotencyCheckAndSetNewKey(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	exists, existing, err := store.CheckAndSet(ctx, "key-1", nil, time.Minute)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if exists {
		t.Fatalf("expected new key, got existing=%s", existing)
	}
}

func TestIdempotencyCheckAndSetExistingKey(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	response := []byte(`{"id":"loan-1"}`)
	if _, _, err := store.CheckAndSet(ctx, "key-1", response, time.Minute); err != nil {
		t.Fatalf("initial set failed: %v", err)
	}

	exists, existing, err := store.CheckAndSet(ctx, "key-1", nil, time.Minute)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !exists {
		t.Fatalf("expected key to exist")
	}
	if !bytes.Equal(existing, response) {
		t.Fatalf("expected stored response, got %s", existing)
	}
}

func TestIdempotencyUpdate(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	if _, _, err := store.CheckAndSet(ctx, "key-1", nil, time.Minute); err != nil {
		t.Fatalf("lock failed: %v", err)
	}

	final := []byte(`{"id":"loan-1","settled":true}`)
	if err := store.Update(ctx, "key-1", final, time.Minute); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	exists, existing, err := store.CheckAndSet(ctx, "key-1", nil, time.Minute)
	if err != nil || !exists {
		t.Fatalf("expected updated key, got exists=%v err=%v", exists, err)
	}
	if !bytes.Equal(existing, final) {
		t.Fatalf("expected final response, got %s", existing)
	}
}
