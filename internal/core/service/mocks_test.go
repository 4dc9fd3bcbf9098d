package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/yushi512/mitasai-casher/internal/core/domain"
)

// Mock BlobStore
type memStore struct {
	blobs map[string][]byte
	saves int
	err   error
}

func newMemStore() *memStore {
	return &memStore{blobs: make(map[string][]byte)}
}

func (m *memStore) Load(ctx context.Context, slot string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.blobs[slot], nil
}

func (m *memStore) Save(ctx context.Context, slot string, data []byte) error {
	if m.err != nil {
		return m.err
	}
	m.blobs[slot] = append([]byte(nil), data...)
	m.saves++
	return nil
}

func (m *memStore) seed(t *testing.T, slot string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("seed %s: %v", slot, err)
	}
	m.blobs[slot] = data
}

// Mock WorkbookWriter
type mockWriter struct {
	calls    int
	lastWB   domain.Workbook
	lastName string
	err      error
}

func (w *mockWriter) Write(ctx context.Context, wb domain.Workbook, fileName string) (string, error) {
	w.calls++
	w.lastWB = wb
	w.lastName = fileName
	if w.err != nil {
		return "", w.err
	}
	return "/exports/" + fileName, nil
}

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: "p-a", Name: "A", Price: 500},
		{ID: "p-b", Name: "B", Price: 200},
	}
}

func testDiscounts() []domain.Discount {
	return []domain.Discount{
		{ID: "d-none", Label: "None", Rate: 0},
		{ID: "d-10", Label: "Student", Rate: 10},
		{ID: "d-20", Label: "Happy", Rate: 20},
	}
}

func newTestCatalog(t *testing.T, store *memStore) *CatalogService {
	t.Helper()
	store.seed(t, slotProducts, testProducts())
	store.seed(t, slotDiscounts, testDiscounts())
	catalog := NewCatalogService(store)
	if err := catalog.Load(context.Background()); err != nil {
		t.Fatalf("catalog load failed: %v", err)
	}
	store.saves = 0
	return catalog
}
