package redis_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"

	redisStore "github.com/oneacre/farmbooks/internal/adapter/repository/redis"
	"github.com/oneacre/farmbooks/internal/infrastructure/redis"
	"github.com/oneacre/farmbooks/internal/usecase"
)

func newStore(t *testing.T) (*redisStore.Store, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)

	ctx := context.Background()
	client, err := redis.NewClient(ctx, fmt.Sprintf("redis://%s", s.Addr()))
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	return redisStore.NewStore(client), s
}

func TestStore_SetGetDelete(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	if _, err := store.Get(ctx, "transactions"); !errors.Is(err, usecase.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound for missing key, got %v", err)
	}

	want := []byte(`[{"id":"t1"}]`)
	if err := store.Set(ctx, "transactions", want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Get(ctx, "transactions")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("expected %s, got %s", want, got)
	}

	if err := store.Delete(ctx, "transactions"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Get(ctx, "transactions"); !errors.Is(err, usecase.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound after delete, got %v", err)
	}
}

func TestStore_KeysArePrefixed(t *testing.T) {
	store, s := newStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "categories", []byte(`[]`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !s.Exists("farmbooks:categories") {
		t.Error("expected key to carry the farmbooks: prefix")
	}
}

func TestStore_Ping(t *testing.T) {
	store, s := newStore(t)

	if err := store.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Close()
	if err := store.Ping(context.Background()); err == nil {
		t.Error("expected ping failure after server shutdown")
	}
}
