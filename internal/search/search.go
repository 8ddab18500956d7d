// Package search filters the catalog by code, name or format prefix.
package search

import (
	"fmt"
	"strings"

	"github.com/pankajredekar/prodcat/internal/errs"
	"github.com/pankajredekar/prodcat/internal/product"
	"github.com/rs/zerolog"
)

// Mode selects the field a query is matched against.
type Mode string

const (
	ByCode   Mode = "code"
	ByName   Mode = "name"
	ByFormat Mode = "format"
)

// ErrEmptyQuery is returned for a blank query; nothing is read.
var ErrEmptyQuery = errs.NewValidationError("query", "empty query")

// Modes lists the supported modes.
func Modes() []Mode {
	return []Mode{ByCode, ByName, ByFormat}
}

// ParseMode converts a mode name. "laize" is accepted for format.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ByCode:
		return ByCode, nil
	case ByName:
		return ByName, nil
	case ByFormat, "laize":
		return ByFormat, nil
	}
	return "", errs.NewValidationError("mode", fmt.Sprintf("unknown search mode %q", s))
}

// Source provides the full record set to filter.
type Source interface {
	Products() ([]product.Product, error)
}

// Engine runs queries against a Source.
type Engine struct {
	src Source
	log zerolog.Logger
}

// NewEngine creates a search engine reading from src.
func NewEngine(src Source, logger zerolog.Logger) *Engine {
	return &Engine{src: src, log: logger.With().Str("component", "search").Logger()}
}

// Search returns the products matching query in the given mode, in
// storage order.
func (e *Engine) Search(query string, mode Mode) ([]product.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	mode, err := ParseMode(string(mode))
	if err != nil {
		return nil, err
	}

	all, err := e.src.Products()
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	matches := Filter(all, query, mode)
	e.log.Debug().
		Str("query", query).
		Str("mode", string(mode)).
		Int("scanned", len(all)).
		Int("matched", len(matches)).
		Msg("search")
	return matches, nil
}

// Filter keeps the products for which Match is true. mode must already be
// one of the Mode constants.
func Filter(products []product.Product, query string, mode Mode) []product.Product {
	var out []product.Product
	for _, p := range products {
		if Match(p, query, mode) {
			out = append(out, p)
		}
	}
	return out
}

// Match reports whether p matches query. Code and name use case-sensitive
// substring containment; format compares the leading dimension digits
// with query as text.
func Match(p product.Product, query string, mode Mode) bool {
	switch mode {
	case ByCode:
		return strings.Contains(p.Code, query)
	case ByName:
		return strings.Contains(p.Name, query)
	case ByFormat:
		return product.ParseFormat(p.Format).MatchesLeading(query)
	}
	return false
}
