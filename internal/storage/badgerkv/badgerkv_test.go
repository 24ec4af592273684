package badgerkv

import (
	"context"
	"sort"
	"testing"
)

func openTestStore(t *testing.T, cfg Config) *Store {
	t.Helper()
	s, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(Config{}); err == nil {
		t.Fatal("Open with no path and no InMemory should fail")
	}
}

func TestSetGetDelete(t *testing.T) {
	s := openTestStore(t, InMemoryConfig())
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "a"); err != nil || ok {
		t.Fatalf("Get on empty store = ok %v, err %v", ok, err)
	}

	if err := s.Set(ctx, "a", "1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set(ctx, "a", "2"); err != nil {
		t.Fatalf("overwrite Set failed: %v", err)
	}

	v, ok, err := s.Get(ctx, "a")
	if err != nil || !ok || v != "2" {
		t.Fatalf("Get = %q, %v, %v; want \"2\", true, nil", v, ok, err)
	}

	if err := s.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "a"); ok {
		t.Error("key still present after Delete")
	}
	if err := s.Delete(ctx, "a"); err != nil {
		t.Errorf("Delete of absent key = %v, want nil", err)
	}
}

func TestKeys(t *testing.T) {
	s := openTestStore(t, InMemoryConfig())
	ctx := context.Background()

	for _, k := range []string{"c", "a", "b"} {
		if err := s.Set(ctx, k, "x"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}

	keys, err := s.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	sort.Strings(keys)
	want := []string{"a", "b", "c"}
	if len(keys) != len(want) {
		t.Fatalf("Keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("Keys = %v, want %v", keys, want)
		}
	}
}

func TestPersistentStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	s1, err := Open(DefaultConfig(dir))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := s1.Set(context.Background(), "a", "1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s1.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	s2 := openTestStore(t, DefaultConfig(dir))
	v, ok, err := s2.Get(context.Background(), "a")
	if err != nil || !ok || v != "1" {
		t.Fatalf("Get after reopen = %q, %v, %v; want \"1\", true, nil", v, ok, err)
	}
}
