// Package editor implements point create, update and delete on the catalog.
package editor

import (
	"strings"

	"github.com/pankajredekar/prodcat/internal/errs"
	"github.com/pankajredekar/prodcat/internal/product"
	"github.com/pankajredekar/prodcat/internal/store"
	"github.com/rs/zerolog"
)

// Writer is the subset of the store the editor writes through.
type Writer interface {
	Insert(p product.Product) (store.Result, error)
	Update(p product.Product) (store.Result, error)
	Delete(code string) (store.Result, error)
}

// Editor validates input and forwards it to the store.
type Editor struct {
	w   Writer
	log zerolog.Logger
}

// New creates an editor writing through w.
func New(w Writer, logger zerolog.Logger) *Editor {
	return &Editor{w: w, log: logger.With().Str("component", "editor").Logger()}
}

// Insert adds a product. All fields are required; a duplicate code yields
// store.AlreadyExists and leaves the stored product untouched.
func (e *Editor) Insert(code, name, format string) (store.Result, error) {
	p := clean(code, name, format)
	if err := required("code", p.Code); err != nil {
		return store.Ok, err
	}
	if err := required("name", p.Name); err != nil {
		return store.Ok, err
	}
	if err := required("format", p.Format); err != nil {
		return store.Ok, err
	}

	res, err := e.w.Insert(p)
	if err != nil {
		return store.Ok, err
	}
	if res == store.AlreadyExists {
		e.log.Info().Str("code", p.Code).Msg("product already exists, insert skipped")
	}
	return res, nil
}

// Update sets name and format of an existing product. Only code is
// required; an unknown code yields store.NotFound.
func (e *Editor) Update(code, name, format string) (store.Result, error) {
	p := clean(code, name, format)
	if err := required("code", p.Code); err != nil {
		return store.Ok, err
	}

	res, err := e.w.Update(p)
	if err != nil {
		return store.Ok, err
	}
	if res == store.NotFound {
		e.log.Info().Str("code", p.Code).Msg("no product to update")
	}
	return res, nil
}

// Delete removes a product. An unknown code yields store.NotFound.
func (e *Editor) Delete(code string) (store.Result, error) {
	code = strings.TrimSpace(code)
	if err := required("code", code); err != nil {
		return store.Ok, err
	}
	return e.w.Delete(code)
}

func clean(code, name, format string) product.Product {
	return product.Product{
		Code:   strings.TrimSpace(code),
		Name:   strings.TrimSpace(name),
		Format: strings.TrimSpace(format),
	}
}

func required(field, value string) error {
	if value == "" {
		return errs.NewValidationError(field, "required")
	}
	return nil
}
