package domain

import (
	"testing"
	"time"
)

func TestAdjust_FloorsAtZeroAndRemovesEntry(t *testing.T) {
	cart := Cart{}

	if got := cart.Adjust("p-1", 1); got != 1 {
		t.Errorf("expected quantity 1, got %d", got)
	}
	if got := cart.Adjust("p-1", 2); got != 3 {
		t.Errorf("expected quantity 3, got %d", got)
	}
	if got := cart.Adjust("p-1", -5); got != 0 {
		t.Errorf("expected floor at 0, got %d", got)
	}
	if _, ok := cart["p-1"]; ok {
		t.Error("expected entry removed at quantity 0")
	}

	// Decrementing an absent entry must not create one.
	cart.Adjust("p-2", -1)
	if _, ok := cart["p-2"]; ok {
		t.Error("expected no entry for decrement on absent product")
	}
}

func TestAdjust_QuantityNeverNegative(t *testing.T) {
	cart := Cart{}
	deltas := []int{3, -1, -1, -7, 2, -1, -1, -1, 5}
	for _, d := range deltas {
		cart.Adjust("p-1", d)
		if q := cart.Quantity("p-1"); q < 0 {
			t.Fatalf("quantity went negative: %d", q)
		}
	}
	for id, q := range cart {
		if q <= 0 {
			t.Errorf("cart stores non-positive quantity %d for %s", q, id)
		}
	}
}

func TestResolve_CatalogOrderAndDanglingExclusion(t *testing.T) {
	products := []Product{
		{ID: "p-a", Name: "A", Price: 500},
		{ID: "p-b", Name: "B", Price: 200},
	}
	cart := Cart{"p-b": 1, "p-a": 2, "p-gone": 4}

	items := cart.Resolve(products)
	if len(items) != 2 {
		t.Fatalf("expected 2 resolved lines, got %d", len(items))
	}
	if items[0].ProductID != "p-a" || items[1].ProductID != "p-b" {
		t.Errorf("expected catalog order [p-a p-b], got [%s %s]",
			items[0].ProductID, items[1].ProductID)
	}
	if items[0].LineTotal != 1000 {
		t.Errorf("expected line total 1000, got %d", items[0].LineTotal)
	}
}

func TestComputeTotals_Example(t *testing.T) {
	items := []CartItem{
		{ProductID: "p-a", Quantity: 2, UnitPrice: 500, LineTotal: 1000},
		{ProductID: "p-b", Quantity: 1, UnitPrice: 200, LineTotal: 200},
	}
	got := ComputeTotals(items, Discount{Rate: 10})

	if got.Subtotal != 1200 {
		t.Errorf("expected subtotal 1200, got %d", got.Subtotal)
	}
	if got.DiscountAmount != 120 {
		t.Errorf("expected discount 120, got %d", got.DiscountAmount)
	}
	if got.Total != 1080 {
		t.Errorf("expected total 1080, got %d", got.Total)
	}
	if got.TotalQuantity != 3 {
		t.Errorf("expected quantity 3, got %d", got.TotalQuantity)
	}
}

func TestComputeTotals_RoundsHalfAwayFromZero(t *testing.T) {
	// 1005 * 15% = 150.75 -> 151; 1050 * 5% = 52.5 -> 53
	cases := []struct {
		subtotal int
		rate     int
		want     int
	}{
		{1005, 15, 151},
		{1050, 5, 53},
		{999, 10, 100},
		{1, 100, 1},
		{0, 50, 0},
	}
	for _, tc := range cases {
		items := []CartItem{{Quantity: 1, UnitPrice: tc.subtotal, LineTotal: tc.subtotal}}
		got := ComputeTotals(items, Discount{Rate: tc.rate})
		if got.DiscountAmount != tc.want {
			t.Errorf("subtotal %d rate %d: expected discount %d, got %d",
				tc.subtotal, tc.rate, tc.want, got.DiscountAmount)
		}
		if got.Total < 0 {
			t.Errorf("subtotal %d rate %d: total went negative", tc.subtotal, tc.rate)
		}
		if got.Total != got.Subtotal-got.DiscountAmount {
			t.Errorf("subtotal %d rate %d: total %d != subtotal - discount",
				tc.subtotal, tc.rate, got.Total)
		}
	}
}

func TestComputeTotals_Idempotent(t *testing.T) {
	items := []CartItem{{Quantity: 3, UnitPrice: 500, LineTotal: 1500}}
	d := Discount{Rate: 20}

	first := ComputeTotals(items, d)
	second := ComputeTotals(items, d)
	if first != second {
		t.Errorf("repeated calls differ: %+v vs %+v", first, second)
	}
	if first.DiscountAmount != 300 || first.Total != 1200 {
		t.Errorf("expected 300/1200, got %d/%d", first.DiscountAmount, first.Total)
	}
}

func TestTimeSlotLabel_Boundaries(t *testing.T) {
	date := func(hour, min int) time.Time {
		return time.Date(2025, 11, 23, hour, min, 0, 0, time.Local)
	}
	cases := []struct {
		at   time.Time
		want string
	}{
		{date(13, 10), "2025/11/23 12:00-14:00"},
		{date(14, 45), "2025/11/23 14:00-16:00"},
		{date(0, 0), "2025/11/23 00:00-02:00"},
		{date(23, 59), "2025/11/23 22:00-00:00"},
	}
	for _, tc := range cases {
		if got := TimeSlotLabel(tc.at); got != tc.want {
			t.Errorf("at %v: expected %q, got %q", tc.at, tc.want, got)
		}
	}
}
