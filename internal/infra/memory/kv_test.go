package memory

import (
	"context"
	"testing"
)

func TestKVLoadStore(t *testing.T) {
	kv := NewKV()
	ctx := context.Background()

	if _, ok, _ := kv.Load(ctx, "gratitude_entries"); ok {
		t.Fatalf("expected empty kv")
	}
	if err := kv.Store(ctx, "gratitude_entries", "[]"); err != nil {
		t.Fatalf("store: %v", err)
	}
	value, ok, err := kv.Load(ctx, "gratitude_entries")
	if err != nil || !ok || value != "[]" {
		t.Fatalf("load: value=%q ok=%v err=%v", value, ok, err)
	}
}
