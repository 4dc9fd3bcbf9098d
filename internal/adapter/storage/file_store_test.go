package storage

import (
	"bytes"
	"context"
	"testing"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	ctx := context.Background()

	want := []byte(`[{"id":"p-a"}]`)
	if err := store.Save(ctx, "mitasai_products", want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Load(ctx, "mitasai_products")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestFileStore_MissingSlot(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	got, err := store.Load(context.Background(), "never-written")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing slot, got %s", got)
	}
}

func TestFileStore_Overwrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	ctx := context.Background()

	store.Save(ctx, "slot", []byte("first"))
	store.Save(ctx, "slot", []byte("second"))

	got, _ := store.Load(ctx, "slot")
	if string(got) != "second" {
		t.Errorf("expected second write to win, got %s", got)
	}
}
