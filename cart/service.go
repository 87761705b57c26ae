// Package cart implements the session-backed shopping cart operations.
package cart

import (
	"context"
	"errors"

	"github.com/hedibld92/margueritecookie/apperr"
	"github.com/hedibld92/margueritecookie/models"
	"github.com/hedibld92/margueritecookie/session"
)

// Catalog is the slice of the cookie store the cart needs: exact-id lookup
// for validating and snapshotting added items.
type Catalog interface {
	FindByID(id string) (models.Cookie, error)
}

// Service runs every cart mutation as a locked load-mutate-save cycle against
// the session store. The per-session lock makes the cycle atomic for one
// session, so concurrent tabs cannot lose updates. A failed operation saves
// nothing: the stored cart stays exactly as it was.
type Service struct {
	catalog  Catalog
	sessions session.Store
	locks    *session.KeyedMutex
}

func NewService(catalog Catalog, sessions session.Store) *Service {
	return &Service{
		catalog:  catalog,
		sessions: sessions,
		locks:    session.NewKeyedMutex(),
	}
}

// Fetch returns the session's cart, lazily initializing an empty one.
func (s *Service) Fetch(ctx context.Context, sessionID string) (*models.Cart, error) {
	s.locks.Lock(sessionID)
	defer s.locks.Unlock(sessionID)

	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess.Cart, nil
}

// Add puts quantity units of the cookie in the cart, snapshotting its current
// name and price. Adding a cookie already in the cart increments its line.
func (s *Service) Add(ctx context.Context, sessionID, cookieID string, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, apperr.Validation("quantity must be at least 1")
	}

	s.locks.Lock(sessionID)
	defer s.locks.Unlock(sessionID)

	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cookie, err := s.catalog.FindByID(cookieID)
	if err != nil {
		return nil, err
	}

	if item := sess.Cart.FindItem(cookieID); item != nil {
		item.Quantity += quantity
	} else {
		sess.Cart.Items = append(sess.Cart.Items, models.CartItem{
			CookieID: cookie.ID,
			Name:     cookie.Name,
			Price:    cookie.Price,
			Quantity: quantity,
		})
	}
	sess.Cart.Recompute()

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess.Cart, nil
}

// UpdateQuantity sets the line's quantity to exactly the given value. Zero or
// negative removes the line entirely.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, cookieID string, quantity int) (*models.Cart, error) {
	s.locks.Lock(sessionID)
	defer s.locks.Unlock(sessionID)

	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	item := sess.Cart.FindItem(cookieID)
	if item == nil {
		return nil, apperr.NotFound("Item not found in cart")
	}

	if quantity > 0 {
		item.Quantity = quantity
	} else {
		sess.Cart.RemoveItem(cookieID)
	}
	sess.Cart.Recompute()

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess.Cart, nil
}

// Remove drops the line if present. Removing an absent line is a no-op, not
// an error.
func (s *Service) Remove(ctx context.Context, sessionID, cookieID string) (*models.Cart, error) {
	s.locks.Lock(sessionID)
	defer s.locks.Unlock(sessionID)

	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sess.Cart.RemoveItem(cookieID)
	sess.Cart.Recompute()

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess.Cart, nil
}

// Clear resets the cart to empty.
func (s *Service) Clear(ctx context.Context, sessionID string) (*models.Cart, error) {
	s.locks.Lock(sessionID)
	defer s.locks.Unlock(sessionID)

	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sess.Cart = models.NewCart()

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess.Cart, nil
}

// load fetches the session, starting a fresh one when missing or expired.
func (s *Service) load(ctx context.Context, sessionID string) (*session.Session, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if errors.Is(err, session.ErrNotFound) {
		return session.New(sessionID), nil
	}
	if err != nil {
		return nil, err
	}
	if sess.Cart == nil {
		sess.Cart = models.NewCart()
	}
	return sess, nil
}
