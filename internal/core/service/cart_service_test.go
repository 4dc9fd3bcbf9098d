package service

import (
	"testing"
)

func TestCartTotals_WithSelectedDiscount(t *testing.T) {
	store := newMemStore()
	catalog := newTestCatalog(t, store)
	cart := NewCartService(catalog)

	cart.AdjustQuantity("p-a", 2)
	cart.AdjustQuantity("p-b", 1)
	if err := catalog.SelectDiscount("d-10"); err != nil {
		t.Fatalf("SelectDiscount failed: %v", err)
	}

	totals := cart.Totals()
	if totals.Subtotal != 1200 {
		t.Errorf("expected subtotal 1200, got %d", totals.Subtotal)
	}
	if totals.DiscountAmount != 120 {
		t.Errorf("expected discount 120, got %d", totals.DiscountAmount)
	}
	if totals.Total != 1080 {
		t.Errorf("expected total 1080, got %d", totals.Total)
	}
}

func TestCartTotals_DefaultSelectionIsZeroRate(t *testing.T) {
	store := newMemStore()
	catalog := newTestCatalog(t, store)
	cart := NewCartService(catalog)

	cart.AdjustQuantity("p-a", 1)

	totals := cart.Totals()
	if totals.DiscountAmount != 0 {
		t.Errorf("expected no discount by default, got %d", totals.DiscountAmount)
	}
	if totals.Total != 500 {
		t.Errorf("expected total 500, got %d", totals.Total)
	}
}

func TestCartItems_ExcludesDanglingLines(t *testing.T) {
	store := newMemStore()
	catalog := newTestCatalog(t, store)
	cart := NewCartService(catalog)

	cart.AdjustQuantity("p-a", 1)
	cart.AdjustQuantity("p-gone", 3)

	items := cart.Items()
	if len(items) != 1 || items[0].ProductID != "p-a" {
		t.Errorf("expected dangling line excluded, got %+v", items)
	}
	if totals := cart.Totals(); totals.Subtotal != 500 {
		t.Errorf("expected subtotal 500, got %d", totals.Subtotal)
	}
}

func TestCartClear(t *testing.T) {
	store := newMemStore()
	catalog := newTestCatalog(t, store)
	cart := NewCartService(catalog)

	cart.AdjustQuantity("p-a", 2)
	cart.Clear()

	if len(cart.Items()) != 0 {
		t.Error("expected empty cart after Clear")
	}
	if q := cart.Quantity("p-a"); q != 0 {
		t.Errorf("expected quantity 0 after Clear, got %d", q)
	}
}
