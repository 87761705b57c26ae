package models

// Cookie is a purchasable catalog item. Ids are opaque strings, stable for
// the life of the item.
type Cookie struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Category     string   `json:"category,omitempty"`
	Price        float64  `json:"price"`
	Image        string   `json:"image,omitempty"`
	Ingredients  []string `json:"ingredients,omitempty"`
	IsBestSeller bool     `json:"isBestSeller"`
}

// CookieUpdate enumerates the fields an admin may change on an existing
// cookie. A nil field keeps the current value.
type CookieUpdate struct {
	Name         *string
	Description  *string
	Category     *string
	Price        *float64
	Image        *string
	Ingredients  *[]string
	IsBestSeller *bool
}
