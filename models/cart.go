package models

import "math"

// CartItem is one line of a cart. Name and price are a snapshot of the
// catalog item at the time the line was created, so an admin price change
// never alters a cart already in progress.
type CartItem struct {
	CookieID string  `json:"cookieId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Cart holds one session's in-progress selection. Total is derived from the
// lines and recomputed after every mutation, never set directly.
type Cart struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}

func NewCart() *Cart {
	return &Cart{Items: []CartItem{}}
}

// FindItem returns the line for cookieID, or nil. At most one line exists
// per cookie id.
func (c *Cart) FindItem(cookieID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].CookieID == cookieID {
			return &c.Items[i]
		}
	}
	return nil
}

// RemoveItem drops the line for cookieID and reports whether one existed.
func (c *Cart) RemoveItem(cookieID string) bool {
	for i := range c.Items {
		if c.Items[i].CookieID == cookieID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Recompute rebuilds Total from the lines, rounded to cents.
func (c *Cart) Recompute() {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	c.Total = math.Round(total*100) / 100
}
