package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"

	"portal/models"
)

// ErrNotFound is returned when no product matches the requested id.
var ErrNotFound = errors.New("product not found")

// state is the on-disk representation of the catalog.
type state struct {
	Products []models.StoredProduct `json:"products"`
	Counter  int                    `json:"counter"`
}

// Catalog owns the product list and the next-id counter. Every mutation
// updates the in-memory state and rewrites the data file within the same
// critical section, so concurrent handlers never interleave a counter
// read-modify-write or race on the file.
type Catalog struct {
	mu       sync.Mutex
	path     string
	products []models.StoredProduct
	counter  int
}

// Open loads the catalog from path. A missing, unreadable or corrupt file is
// logged and the catalog starts empty with counter 1; Open never fails.
func Open(path string) *Catalog {
	c := &Catalog{path: path, counter: 1}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Error().Err(err).Str("path", path).Msg("failed to read catalog file")
		}
		return c
	}

	var s state
	if err := json.Unmarshal(data, &s); err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to parse catalog file")
		return c
	}

	c.products = s.Products
	c.counter = s.Counter

	// A hand-edited file can carry a counter at or below an existing id;
	// raise it so ids stay strictly increasing.
	for _, p := range c.products {
		if p.ID >= c.counter {
			c.counter = p.ID + 1
		}
	}
	if c.counter < 1 {
		c.counter = 1
	}
	return c
}

// List returns all products in insertion order.
func (c *Catalog) List() []models.StoredProduct {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.StoredProduct, len(c.products))
	copy(out, c.products)
	return out
}

// Get returns the product with the given id.
func (c *Catalog) Get(id int) (models.StoredProduct, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.StoredProduct{}, ErrNotFound
}

// Create assigns the next id, appends the product and persists the catalog.
func (c *Catalog) Create(p models.Product) models.StoredProduct {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored := models.StoredProduct{ID: c.counter, Product: p}
	c.counter++
	c.products = append(c.products, stored)
	c.persist()
	return stored
}

// Update replaces every field except the id and persists the catalog.
func (c *Catalog) Update(id int, p models.Product) (models.StoredProduct, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID == id {
			c.products[i] = models.StoredProduct{ID: id, Product: p}
			c.persist()
			return c.products[i], nil
		}
	}
	return models.StoredProduct{}, ErrNotFound
}

// Delete removes the product with the given id and persists the catalog.
// The id is never handed out again.
func (c *Catalog) Delete(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			c.persist()
			return nil
		}
	}
	return ErrNotFound
}

// Len reports the number of stored products.
func (c *Catalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.products)
}

// persist rewrites the data file in full. The file is written to a temporary
// sibling and renamed into place so readers never see a partial file. A write
// failure is logged and the in-memory state stays authoritative.
// Callers must hold c.mu.
func (c *Catalog) persist() {
	s := state{Products: c.products, Counter: c.counter}
	if s.Products == nil {
		s.Products = []models.StoredProduct{}
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), ".catalog-*.json")
	if err != nil {
		log.Error().Err(err).Str("path", c.path).Msg("failed to save catalog")
		return
	}

	enc := json.NewEncoder(tmp)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		log.Error().Err(err).Str("path", c.path).Msg("failed to save catalog")
		return
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		log.Error().Err(err).Str("path", c.path).Msg("failed to save catalog")
		return
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		log.Error().Err(err).Str("path", c.path).Msg("failed to save catalog")
	}
}
