package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/yushi512/mitasai-casher/internal/port"
)

// Storage slots. Names are kept from the original deployment so existing
// state stays readable.
const (
	slotProducts  = "mitasai_products"
	slotDiscounts = "mitasai_discounts"
	slotSales     = "mitasai_sales"
)

// loadSlot reads one slot, falling back to def when the slot is missing or
// its contents do not parse. Corruption is logged and replaced, never fatal.
func loadSlot[T any](ctx context.Context, store port.BlobStore, slot string, def T) (T, error) {
	data, err := store.Load(ctx, slot)
	if err != nil {
		return def, fmt.Errorf("load %s: %w", slot, err)
	}
	if data == nil {
		return def, nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		slog.Warn("discarding corrupt state blob", "slot", slot, "error", err)
		return def, nil
	}
	return v, nil
}

func saveSlot(ctx context.Context, store port.BlobStore, slot string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", slot, err)
	}
	if err := store.Save(ctx, slot, data); err != nil {
		return fmt.Errorf("save %s: %w", slot, err)
	}
	return nil
}
