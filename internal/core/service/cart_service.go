package service

import (
	"github.com/yushi512/mitasai-casher/internal/core/domain"
)

// CartService owns the running cart. It never stores names or prices; lines
// are resolved against the catalog on every read, so a deleted product
// simply stops resolving.
type CartService struct {
	catalog *CatalogService
	cart    domain.Cart
}

func NewCartService(catalog *CatalogService) *CartService {
	s := &CartService{catalog: catalog, cart: domain.Cart{}}
	catalog.OnProductDeleted(func(productID string) {
		s.cart.Remove(productID)
	})
	return s
}

// AdjustQuantity applies a signed delta to a line, flooring at zero.
// Returns the resulting quantity.
func (s *CartService) AdjustQuantity(productID string, delta int) int {
	return s.cart.Adjust(productID, delta)
}

// Quantity reports the current quantity for a product, zero when absent.
func (s *CartService) Quantity(productID string) int {
	return s.cart.Quantity(productID)
}

// Items resolves the cart against the catalog in catalog order.
func (s *CartService) Items() []domain.CartItem {
	return s.cart.Resolve(s.catalog.Products())
}

// Totals computes the money view of the cart under the currently selected
// discount.
func (s *CartService) Totals() domain.Totals {
	return domain.ComputeTotals(s.Items(), s.catalog.SelectedDiscount())
}

// Clear empties the cart. Called on reset and after a successful checkout.
func (s *CartService) Clear() {
	s.cart = domain.Cart{}
}
