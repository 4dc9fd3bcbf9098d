package domain

import (
	"fmt"
	"time"
)

// SaleItem snapshots a cart line at checkout. Name and unit price are copied
// from the catalog so later edits never alter recorded sales.
type SaleItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     int    `json:"price"`
	LineTotal int    `json:"lineTotal"`
}

// Sale is an immutable checkout record. The ledger is append-only: sales are
// never edited or voided.
type Sale struct {
	ID             string     `json:"id"`
	Timestamp      time.Time  `json:"timestamp"`
	Items          []SaleItem `json:"items"`
	Subtotal       int        `json:"subtotal"`
	DiscountLabel  string     `json:"discountLabel"`
	DiscountRate   int        `json:"discountRate"`
	DiscountAmount int        `json:"discountAmount"`
	Total          int        `json:"total"`
	TotalQuantity  int        `json:"totalQuantity"`
}

// TimeSlotLabel buckets a point in time into a fixed two-hour slot of its
// local calendar day, e.g. "2025/11/23 12:00-14:00". The end hour wraps at
// midnight. Zero-padded so lexicographic order equals chronological order.
func TimeSlotLabel(t time.Time) string {
	start := t.Hour() / 2 * 2
	end := (start + 2) % 24
	return fmt.Sprintf("%04d/%02d/%02d %02d:00-%02d:00",
		t.Year(), int(t.Month()), t.Day(), start, end)
}
