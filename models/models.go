package models

import "errors"

// Product holds the user-supplied attributes of a catalog entry.
type Product struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Image       *string `json:"image"`
	Brand       *string `json:"brand"`
	Model       *string `json:"model"`
	Year        *int    `json:"year"`
}

// Validate checks the structural requirements of an incoming product body.
func (p Product) Validate() error {
	if p.Title == "" {
		return errors.New("title is required")
	}
	if p.Description == "" {
		return errors.New("description is required")
	}
	if p.Category == "" {
		return errors.New("category is required")
	}
	if p.Price < 0 {
		return errors.New("price must not be negative")
	}
	return nil
}

// StoredProduct is a Product persisted in the catalog with its assigned id.
type StoredProduct struct {
	ID int `json:"id"`
	Product
}

// MenuItem is one entry of the fixed navigation menu.
type MenuItem struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
