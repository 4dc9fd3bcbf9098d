package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yushi512/mitasai-casher/internal/core/domain"
	"github.com/yushi512/mitasai-casher/internal/port"
)

var (
	ErrEmptyName         = errors.New("name must not be empty")
	ErrInvalidPrice      = errors.New("price must be a non-negative amount")
	ErrInvalidRate       = errors.New("rate must be between 0 and 100")
	ErrProductNotFound   = errors.New("product not found")
	ErrDiscountNotFound  = errors.New("discount not found")
	ErrProtectedDiscount = errors.New("the no-discount entry cannot be removed")
)

// CatalogService owns the product and discount collections and the active
// discount selection. Every mutation is written through to the blob store
// before it returns; validation failures leave no partial state.
type CatalogService struct {
	store port.BlobStore

	products  []domain.Product
	discounts []domain.Discount
	selected  string

	productDeleted []func(productID string)

	now func() time.Time
}

func NewCatalogService(store port.BlobStore) *CatalogService {
	return &CatalogService{store: store, now: time.Now}
}

// OnProductDeleted registers a hook invoked after a product is removed from
// the catalog. The cart uses it to drop the matching line.
func (s *CatalogService) OnProductDeleted(fn func(productID string)) {
	s.productDeleted = append(s.productDeleted, fn)
}

// Load pulls both collections from storage, seeding defaults when a slot is
// missing or unreadable, and restores the zero-rate discount if a stored
// blob lost it. The selection starts on the first discount.
func (s *CatalogService) Load(ctx context.Context) error {
	products, err := loadSlot(ctx, s.store, slotProducts, domain.DefaultProducts())
	if err != nil {
		return err
	}
	discounts, err := loadSlot(ctx, s.store, slotDiscounts, domain.DefaultDiscounts())
	if err != nil {
		return err
	}
	s.products = products
	s.discounts = discounts
	if err := s.ensureNoDiscount(ctx); err != nil {
		return err
	}
	s.selected = s.discounts[0].ID
	return nil
}

func (s *CatalogService) ensureNoDiscount(ctx context.Context) error {
	for _, d := range s.discounts {
		if d.Rate == 0 {
			return nil
		}
	}
	s.discounts = append([]domain.Discount{domain.NoDiscount()}, s.discounts...)
	return saveSlot(ctx, s.store, slotDiscounts, s.discounts)
}

// Products returns a copy of the catalog in display order.
func (s *CatalogService) Products() []domain.Product {
	return append([]domain.Product(nil), s.products...)
}

// FindProduct looks a product up by ID.
func (s *CatalogService) FindProduct(id string) (domain.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (s *CatalogService) AddProduct(ctx context.Context, name string, price int) (domain.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Product{}, ErrEmptyName
	}
	if price < 0 {
		return domain.Product{}, ErrInvalidPrice
	}
	p := domain.Product{
		ID:    fmt.Sprintf("p-%d", s.now().UnixNano()),
		Name:  name,
		Price: price,
	}
	s.products = append(s.products, p)
	if err := saveSlot(ctx, s.store, slotProducts, s.products); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (s *CatalogService) UpdateProductPrice(ctx context.Context, id string, price int) error {
	if price < 0 {
		return ErrInvalidPrice
	}
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Price = price
			return saveSlot(ctx, s.store, slotProducts, s.products)
		}
	}
	return ErrProductNotFound
}

// DeleteProduct removes a product and notifies deletion hooks so the cart
// line referencing it goes away with it.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) (domain.Product, error) {
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			for _, fn := range s.productDeleted {
				fn(id)
			}
			return p, saveSlot(ctx, s.store, slotProducts, s.products)
		}
	}
	return domain.Product{}, ErrProductNotFound
}

// Discounts returns a copy of the discount list in display order.
func (s *CatalogService) Discounts() []domain.Discount {
	return append([]domain.Discount(nil), s.discounts...)
}

// FindDiscount looks a discount up by ID.
func (s *CatalogService) FindDiscount(id string) (domain.Discount, bool) {
	for _, d := range s.discounts {
		if d.ID == id {
			return d, true
		}
	}
	return domain.Discount{}, false
}

func (s *CatalogService) AddDiscount(ctx context.Context, label string, rate int) (domain.Discount, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return domain.Discount{}, ErrEmptyName
	}
	if rate < 0 || rate > 100 {
		return domain.Discount{}, ErrInvalidRate
	}
	d := domain.Discount{
		ID:    fmt.Sprintf("d-%d", s.now().UnixNano()),
		Label: label,
		Rate:  rate,
	}
	s.discounts = append(s.discounts, d)
	if err := saveSlot(ctx, s.store, slotDiscounts, s.discounts); err != nil {
		return domain.Discount{}, err
	}
	return d, nil
}

// UpdateDiscountRate changes a discount's rate. Changing the last rate-0
// discount to a non-zero rate is refused: a zero-rate fallback must always
// exist.
func (s *CatalogService) UpdateDiscountRate(ctx context.Context, id string, rate int) error {
	if rate < 0 || rate > 100 {
		return ErrInvalidRate
	}
	for i := range s.discounts {
		if s.discounts[i].ID == id {
			if rate != 0 && s.discounts[i].Rate == 0 && s.countZeroRate() == 1 {
				return ErrProtectedDiscount
			}
			s.discounts[i].Rate = rate
			return saveSlot(ctx, s.store, slotDiscounts, s.discounts)
		}
	}
	return ErrDiscountNotFound
}

func (s *CatalogService) countZeroRate() int {
	n := 0
	for _, d := range s.discounts {
		if d.Rate == 0 {
			n++
		}
	}
	return n
}

// DeleteDiscount removes a discount. Zero-rate discounts are undeletable.
// Deleting the selected discount resets the selection to the first entry.
func (s *CatalogService) DeleteDiscount(ctx context.Context, id string) (domain.Discount, error) {
	for i, d := range s.discounts {
		if d.ID == id {
			if d.Rate == 0 {
				return domain.Discount{}, ErrProtectedDiscount
			}
			s.discounts = append(s.discounts[:i], s.discounts[i+1:]...)
			if s.selected == id {
				s.selected = s.discounts[0].ID
			}
			return d, saveSlot(ctx, s.store, slotDiscounts, s.discounts)
		}
	}
	return domain.Discount{}, ErrDiscountNotFound
}

// SelectDiscount sets the active discount.
func (s *CatalogService) SelectDiscount(id string) error {
	if _, ok := s.FindDiscount(id); !ok {
		return ErrDiscountNotFound
	}
	s.selected = id
	return nil
}

// SelectedDiscount resolves the active discount, falling back to the first
// entry when the selection no longer exists.
func (s *CatalogService) SelectedDiscount() domain.Discount {
	if d, ok := s.FindDiscount(s.selected); ok {
		return d
	}
	if len(s.discounts) > 0 {
		s.selected = s.discounts[0].ID
		return s.discounts[0]
	}
	return domain.NoDiscount()
}
