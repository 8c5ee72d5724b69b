package redisstore

import (
	"bytes"
	"context"
	"os"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	addr := os.Getenv("DMS_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("set DMS_TEST_REDIS_ADDR to run redis integration test")
	}

	ctx := context.Background()
	s := New(addr, os.Getenv("DMS_TEST_REDIS_PASSWORD"), 0)
	t.Cleanup(func() {
		_ = s.Close()
	})

	if err := s.Ping(ctx); err != nil {
		t.Fatalf("ping failed: %v", err)
	}

	payload := []byte(`{"vehicles":[],"customers":[]}`)
	if err := s.Save(ctx, payload); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !bytes.Equal(loaded, payload) {
		t.Fatalf("expected %s, got %s", payload, loaded)
	}
}
