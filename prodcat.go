// Package prodcat manages a product catalog stored in an embedded SQL
// table: search by code, name or format prefix, point create, update and
// delete, and a listing ordered by name.
package prodcat

import (
	"fmt"

	"github.com/pankajredekar/prodcat/internal/config"
	"github.com/pankajredekar/prodcat/internal/editor"
	"github.com/pankajredekar/prodcat/internal/product"
	"github.com/pankajredekar/prodcat/internal/search"
	"github.com/pankajredekar/prodcat/internal/store"
	"github.com/rs/zerolog"
)

// Product is a catalog record
type Product = product.Product

// Config locates the catalog database
type Config = config.Config

// Mode selects the field a search matches against
type Mode = search.Mode

// Result is the outcome of a write
type Result = store.Result

const (
	ByCode   = search.ByCode
	ByName   = search.ByName
	ByFormat = search.ByFormat

	Ok            = store.Ok
	AlreadyExists = store.AlreadyExists
	NotFound      = store.NotFound
)

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	return config.Default()
}

// Catalog wires the store, search engine and editor together.
type Catalog struct {
	store  *store.Store
	engine *search.Engine
	editor *editor.Editor
}

// Open validates cfg and creates the products table if needed.
func Open(cfg *Config, logger zerolog.Logger) (*Catalog, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	s := store.New(cfg, logger)
	if err := s.Init(); err != nil {
		return nil, err
	}

	return &Catalog{
		store:  s,
		engine: search.NewEngine(s, logger),
		editor: editor.New(s, logger),
	}, nil
}

// Search returns the products matching query in mode.
func (c *Catalog) Search(query string, mode Mode) ([]Product, error) {
	return c.engine.Search(query, mode)
}

// Insert adds a product; a duplicate code returns AlreadyExists.
func (c *Catalog) Insert(code, name, format string) (Result, error) {
	return c.editor.Insert(code, name, format)
}

// Update changes name and format by code; an unknown code returns NotFound.
func (c *Catalog) Update(code, name, format string) (Result, error) {
	return c.editor.Update(code, name, format)
}

// Delete removes a product by code; an unknown code returns NotFound.
func (c *Catalog) Delete(code string) (Result, error) {
	return c.editor.Delete(code)
}

// Get returns one product by code.
func (c *Catalog) Get(code string) (*Product, error) {
	return c.store.Get(code)
}

// List returns all products ordered by name.
func (c *Catalog) List() ([]Product, error) {
	return c.store.List()
}

// Count returns the number of products.
func (c *Catalog) Count() (int64, error) {
	return c.store.Count()
}
