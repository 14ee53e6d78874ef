package redis

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestKVRoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	kv := NewKV(client, "kanzanso:")
	ctx := context.Background()

	if _, ok, err := kv.Load(ctx, "todos"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := kv.Store(ctx, "todos", `[{"id":"local-1"}]`); err != nil {
		t.Fatalf("store: %v", err)
	}
	if !mr.Exists("kanzanso:todos") {
		t.Fatalf("expected prefixed redis key")
	}

	value, ok, err := kv.Load(ctx, "todos")
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if value != `[{"id":"local-1"}]` {
		t.Fatalf("unexpected value %q", value)
	}

	// Whole-blob overwrite, never a partial merge.
	if err := kv.Store(ctx, "todos", `[]`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	value, _, _ = kv.Load(ctx, "todos")
	if value != `[]` {
		t.Fatalf("expected overwritten blob, got %q", value)
	}
}
