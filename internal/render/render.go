// Package render turns catalog results into text.
//
// The markup flavour uses [b]..[/b] and [color=rrggbb]..[/color] tags so the
// output can be shown by a markup-aware label or stripped for a terminal.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pankajredekar/prodcat/internal/errs"
	"github.com/pankajredekar/prodcat/internal/product"
	"gopkg.in/yaml.v3"
)

// User-facing messages.
const (
	NoResults  = "[color=ff3333]Aucun produit trouvé.[/color]"
	EmptyQuery = "[color=ff3333]Veuillez entrer un terme.[/color]"
)

var markupTag = regexp.MustCompile(`\[/?(?:b|i|u|color(?:=[0-9a-fA-F]{6})?)\]`)

// Results renders search matches as markup blocks.
func Results(products []product.Product) string {
	if len(products) == 0 {
		return NoResults
	}
	var b strings.Builder
	for _, p := range products {
		fmt.Fprintf(&b, "[b]Produit:[/b] %s\nCode: %s | Format: %s\n\n", p.Name, p.Code, p.Format)
	}
	return b.String()
}

// ListingLine renders one row of the full catalog listing.
func ListingLine(p product.Product) string {
	return fmt.Sprintf("%s | %s | %s", p.Code, p.Format, p.Name)
}

// Listing renders the full catalog, one product per line.
func Listing(products []product.Product) string {
	var b strings.Builder
	for _, p := range products {
		b.WriteString(ListingLine(p))
		b.WriteByte('\n')
	}
	return b.String()
}

// Failure renders an error shown in place of results.
func Failure(err error) string {
	return fmt.Sprintf("[color=ff3333]Erreur: %s[/color]", err)
}

// Error renders err as the message a user sees: the empty-query prompt for
// validation failures, the failure line otherwise.
func Error(err error) string {
	var ve *errs.ValidationError
	if errors.As(err, &ve) && ve.Field == "query" {
		return EmptyQuery
	}
	return Failure(err)
}

// StripMarkup removes markup tags from s.
func StripMarkup(s string) string {
	return markupTag.ReplaceAllString(s, "")
}

// Format types for output.
type Format string

const (
	FormatMarkup  Format = "markup"
	FormatPlain   Format = "plain"
	FormatListing Format = "listing"
	FormatTable   Format = "table"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
)

// ParseFormat converts s to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatMarkup, FormatPlain, FormatListing, FormatTable, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", errs.NewValidationError("output", fmt.Sprintf("unsupported output format %q", s))
}

// Formatter writes a product list to w.
type Formatter interface {
	Format(w io.Writer, products []product.Product) error
}

// FormatterFunc allows functions to implement Formatter.
type FormatterFunc func(io.Writer, []product.Product) error

// Format implements the Formatter interface.
func (f FormatterFunc) Format(w io.Writer, products []product.Product) error {
	return f(w, products)
}

// NewFormatter returns the formatter for format. Unknown formats fall back
// to markup.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatPlain:
		return FormatterFunc(func(w io.Writer, products []product.Product) error {
			_, err := io.WriteString(w, StripMarkup(Results(products)))
			return err
		})
	case FormatListing:
		return FormatterFunc(func(w io.Writer, products []product.Product) error {
			_, err := io.WriteString(w, Listing(products))
			return err
		})
	case FormatTable:
		return FormatterFunc(writeTable)
	case FormatJSON:
		return FormatterFunc(writeJSON)
	case FormatYAML:
		return FormatterFunc(writeYAML)
	default:
		return FormatterFunc(func(w io.Writer, products []product.Product) error {
			_, err := io.WriteString(w, Results(products))
			return err
		})
	}
}

func writeTable(w io.Writer, products []product.Product) error {
	table := tablewriter.NewTable(w)
	table.Header("Code", "Format", "Name")
	for _, p := range products {
		if err := table.Append(p.Code, p.Format, p.Name); err != nil {
			return err
		}
	}
	return table.Render()
}

func writeJSON(w io.Writer, products []product.Product) error {
	if products == nil {
		products = []product.Product{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(products)
}

func writeYAML(w io.Writer, products []product.Product) error {
	if products == nil {
		products = []product.Product{}
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(products); err != nil {
		return err
	}
	return encoder.Close()
}
