package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/yushi512/mitasai-casher/internal/core/domain"
	"github.com/yushi512/mitasai-casher/internal/port"
)

var ErrEmptyCart = errors.New("cart is empty")

// SalesService owns the append-only sales ledger. Checkout is the only
// operation that creates records; there is no edit or void.
type SalesService struct {
	store    port.BlobStore
	catalog  *CatalogService
	cart     *CartService
	exporter *ExportService

	sales []domain.Sale

	now   func() time.Time
	newID func() string
}

func NewSalesService(store port.BlobStore, catalog *CatalogService, cart *CartService, exporter *ExportService) *SalesService {
	return &SalesService{
		store:    store,
		catalog:  catalog,
		cart:     cart,
		exporter: exporter,
		now:      time.Now,
		newID:    func() string { return "sale-" + uuid.NewString() },
	}
}

// Load reads the ledger from storage. A missing or corrupt slot yields an
// empty ledger.
func (s *SalesService) Load(ctx context.Context) error {
	sales, err := loadSlot(ctx, s.store, slotSales, []domain.Sale{})
	if err != nil {
		return err
	}
	s.sales = sales
	return nil
}

// Sales returns the ledger, oldest first.
func (s *SalesService) Sales() []domain.Sale {
	return append([]domain.Sale(nil), s.sales...)
}

// Checkout snapshots the cart into an immutable sale, persists the ledger,
// kicks off an export, and clears the cart. Names and prices are copied
// from the catalog so later edits never change recorded history. An export
// failure is logged but does not void the sale.
func (s *SalesService) Checkout(ctx context.Context) (domain.Sale, error) {
	items := s.cart.Items()
	if len(items) == 0 {
		return domain.Sale{}, ErrEmptyCart
	}
	discount := s.catalog.SelectedDiscount()
	totals := domain.ComputeTotals(items, discount)

	saleItems := make([]domain.SaleItem, len(items))
	for i, item := range items {
		saleItems[i] = domain.SaleItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.UnitPrice,
			LineTotal: item.LineTotal,
		}
	}

	sale := domain.Sale{
		ID:             s.newID(),
		Timestamp:      s.now(),
		Items:          saleItems,
		Subtotal:       totals.Subtotal,
		DiscountLabel:  discount.Label,
		DiscountRate:   discount.Rate,
		DiscountAmount: totals.DiscountAmount,
		Total:          totals.Total,
		TotalQuantity:  totals.TotalQuantity,
	}

	s.sales = append(s.sales, sale)
	if err := saveSlot(ctx, s.store, slotSales, s.sales); err != nil {
		// Roll the append back so a retry does not double-record.
		s.sales = s.sales[:len(s.sales)-1]
		return domain.Sale{}, err
	}

	if _, err := s.exporter.Export(ctx, s.sales); err != nil {
		slog.Warn("post-checkout export failed", "sale_id", sale.ID, "error", err)
	}

	s.cart.Clear()
	return sale, nil
}

// Export writes the full ledger through the export pipeline and returns the
// path of the written file.
func (s *SalesService) Export(ctx context.Context) (string, error) {
	return s.exporter.Export(ctx, s.sales)
}
