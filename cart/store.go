package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/sahil-jamadar/new-couture-project/models"
	"github.com/sahil-jamadar/new-couture-project/storage"
)

// TaxRate is the GST applied to the cart subtotal.
const TaxRate = 0.18

// Storage keys carry the historical record name so existing carts keep
// loading after a backend swap.
const keyPrefix = "coutures-cart:"

// Store maintains the authoritative line-item list for each cart through the
// key-value port. Every mutation reads the whole list, changes it in memory
// and writes it back in a single Set; there is no merge across concurrent
// writers, the last write wins.
type Store struct {
	kv storage.Store
}

func NewStore(kv storage.Store) *Store {
	return &Store{kv: kv}
}

func (s *Store) key(cartID string) string {
	return keyPrefix + cartID
}

// Load returns the persisted line items for a cart. A missing record is an
// empty cart; a corrupt record is logged and also treated as empty so a bad
// write can never take the cart view down.
func (s *Store) Load(ctx context.Context, cartID string) ([]models.CartItem, error) {
	raw, err := s.kv.Get(ctx, s.key(cartID))
	if errors.Is(err, storage.ErrNotFound) {
		return []models.CartItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart %s: %w", cartID, err)
	}

	var items []models.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("Corrupt cart record for %s, starting empty: %v", cartID, err)
		return []models.CartItem{}, nil
	}
	return items, nil
}

func (s *Store) save(ctx context.Context, cartID string, items []models.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart %s: %w", cartID, err)
	}
	if err := s.kv.Set(ctx, s.key(cartID), raw); err != nil {
		return fmt.Errorf("save cart %s: %w", cartID, err)
	}
	return nil
}

// Add puts a product in the cart. When a line item with the same id already
// exists its quantity is incremented and no other field is touched; otherwise
// a new line item is appended. The returned flag reports whether an existing
// item was updated, so callers can pick the right notification.
func (s *Store) Add(ctx context.Context, cartID string, product models.Product, quantity int) (models.CartItem, bool, error) {
	if quantity <= 0 {
		quantity = 1
	}

	items, err := s.Load(ctx, cartID)
	if err != nil {
		return models.CartItem{}, false, err
	}

	for i := range items {
		if items[i].ID == product.ID {
			items[i].Quantity += quantity
			if err := s.save(ctx, cartID, items); err != nil {
				return models.CartItem{}, false, err
			}
			return items[i], true, nil
		}
	}

	item := models.CartItem{Product: product, Quantity: quantity}
	items = append(items, item)
	if err := s.save(ctx, cartID, items); err != nil {
		return models.CartItem{}, false, err
	}
	return item, false, nil
}

// SetQuantity replaces a line item's quantity. The store does not clamp the
// value; callers enforce the floor of one before invoking it. The returned
// flag reports whether the item existed.
func (s *Store) SetQuantity(ctx context.Context, cartID, itemID string, quantity int) (bool, error) {
	items, err := s.Load(ctx, cartID)
	if err != nil {
		return false, err
	}

	for i := range items {
		if items[i].ID == itemID {
			items[i].Quantity = quantity
			if err := s.save(ctx, cartID, items); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Remove drops a line item entirely. Removal, not a zero quantity, is how
// deletion is represented.
func (s *Store) Remove(ctx context.Context, cartID, itemID string) (bool, error) {
	items, err := s.Load(ctx, cartID)
	if err != nil {
		return false, err
	}

	for i := range items {
		if items[i].ID == itemID {
			items = append(items[:i], items[i+1:]...)
			if err := s.save(ctx, cartID, items); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Clear deletes the whole cart record.
func (s *Store) Clear(ctx context.Context, cartID string) error {
	if err := s.kv.Delete(ctx, s.key(cartID)); err != nil {
		return fmt.Errorf("clear cart %s: %w", cartID, err)
	}
	return nil
}

// Count returns the total item count across line items, used for the cart
// badge. It is recomputed from storage on demand, never pushed.
func (s *Store) Count(ctx context.Context, cartID string) (int, error) {
	items, err := s.Load(ctx, cartID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count, nil
}

// Summary carries the derived order totals.
type Summary struct {
	Subtotal int     `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Summarize computes subtotal, tax and total over a line-item list. The
// totals are recomputed from scratch on every call, never cached.
func Summarize(items []models.CartItem) Summary {
	subtotal := 0
	for _, item := range items {
		subtotal += item.Price * item.Quantity
	}
	tax := float64(subtotal) * TaxRate
	return Summary{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    float64(subtotal) + tax,
	}
}

// Summary loads a cart and computes its totals.
func (s *Store) Summary(ctx context.Context, cartID string) (Summary, error) {
	items, err := s.Load(ctx, cartID)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(items), nil
}
