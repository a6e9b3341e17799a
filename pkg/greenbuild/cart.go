package greenbuild

import (
	"context"
	"fmt"
	"net/http"
)

// CartStore holds the cart line items mirrored from the server. Every
// mutation is a request followed by an authoritative reload; the local
// state is never the source of truth for longer than one round trip.
type CartStore struct {
	client *Client
	notify Notifier

	items []LineItem
	promo *Promo
}

func NewCartStore(client *Client, notify Notifier) *CartStore {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &CartStore{client: client, notify: notify}
}

// LoadCart replaces local state wholesale with the server's cart. On
// failure the previous items stay visible (stale but available).
func (s *CartStore) LoadCart(ctx context.Context) Result {
	var lines []LineItem
	if err := s.client.do(ctx, http.MethodGet, "/api/cart", nil, &lines); err != nil {
		return failRemote(remoteMessage(err))
	}

	// Validate on ingestion: savings must never go negative.
	for i := range lines {
		if lines[i].OriginalUnitPrice < lines[i].UnitPrice {
			lines[i].OriginalUnitPrice = lines[i].UnitPrice
		}
	}

	s.items = lines
	return ok()
}

func (s *CartStore) AddToCart(ctx context.Context, designID, quantity uint) Result {
	if quantity < 1 {
		quantity = 1
	}

	body := map[string]uint{"design_id": designID, "quantity": quantity}
	if err := s.client.do(ctx, http.MethodPost, "/api/cart", body, nil); err != nil {
		msg := remoteMessage(err)
		s.notify.Error(msg)
		return failRemote(msg)
	}

	s.LoadCart(ctx)
	s.notify.Success("Added to cart")
	return ok()
}

func (s *CartStore) UpdateCartItem(ctx context.Context, designID uint, quantity int) Result {
	if quantity < 1 {
		return failValidation("quantity must be at least 1")
	}

	path := fmt.Sprintf("/api/cart/%d", designID)
	body := map[string]int{"quantity": quantity}
	if err := s.client.do(ctx, http.MethodPut, path, body, nil); err != nil {
		msg := remoteMessage(err)
		s.notify.Error(msg)
		return failRemote(msg)
	}

	s.LoadCart(ctx)
	return ok()
}

func (s *CartStore) RemoveFromCart(ctx context.Context, designID uint) Result {
	path := fmt.Sprintf("/api/cart/%d", designID)
	if err := s.client.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		msg := remoteMessage(err)
		s.notify.Error(msg)
		return failRemote(msg)
	}

	s.LoadCart(ctx)
	return ok()
}

func (s *CartStore) ClearCart(ctx context.Context) Result {
	if err := s.client.do(ctx, http.MethodDelete, "/api/cart", nil, nil); err != nil {
		msg := remoteMessage(err)
		s.notify.Error(msg)
		return failRemote(msg)
	}

	// Optimistic reset, reconciled by the reload.
	s.items = nil
	s.LoadCart(ctx)
	return ok()
}

func (s *CartStore) Items() []LineItem {
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// CartTotal and CartCount are recomputed on every call so they always
// reflect the latest mutation.
func (s *CartStore) CartTotal() float64 {
	total, _ := CalculateTotals(s.items, nil).Subtotal.Float64()
	return total
}

func (s *CartStore) CartCount() uint {
	var count uint
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// ApplyPromo matches the code against the fixed table; an unknown code is a
// validation error and leaves any previously applied promo in place.
func (s *CartStore) ApplyPromo(code string) Result {
	promo, found := LookupPromo(code)
	if !found {
		return failValidation("invalid promo code")
	}
	s.promo = &promo
	return ok()
}

func (s *CartStore) ClearPromo() {
	s.promo = nil
}

func (s *CartStore) AppliedPromo() *Promo {
	if s.promo == nil {
		return nil
	}
	p := *s.promo
	return &p
}

func (s *CartStore) Totals() Totals {
	return CalculateTotals(s.items, s.promo)
}
