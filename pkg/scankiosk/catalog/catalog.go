// Package catalog holds the static product table the kiosk resolves scans against.
//
// A Catalog is loaded once at startup, either from the embedded default or from a
// TOML file, and is immutable afterwards.
package catalog

import (
	"strings"
)

// BackButtonStyle selects the back-button variant drawn over a product image.
type BackButtonStyle string

const (
	BackButtonDark  BackButtonStyle = "dark"  // Dark glyph for light product artwork (default)
	BackButtonLight BackButtonStyle = "light" // Light glyph for dark product artwork
)

// Product is one catalog entry.
type Product struct {
	Code         string
	Name         string
	TileImage    string
	ProductImage string
	Placeholder  bool
	BackButton   BackButtonStyle
}

// Activatable reports whether scanning or selecting this product opens its detail view.
// Placeholders and entries without detail artwork only have a home tile.
func (p Product) Activatable() bool {
	return !p.Placeholder && p.ProductImage != ""
}

// Catalog maps normalized codes to products, keeping declaration order.
type Catalog struct {
	version  string
	order    []string
	products map[string]Product
}

// NormalizeCode upper-cases a code and trims outer whitespace.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Lookup returns the product for code. The code is normalized before lookup.
func (c *Catalog) Lookup(code string) (Product, bool) {
	p, ok := c.products[NormalizeCode(code)]
	return p, ok
}

// Codes returns product codes in declaration order.
func (c *Catalog) Codes() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Products returns the products in declaration order.
func (c *Catalog) Products() []Product {
	out := make([]Product, 0, len(c.order))
	for _, code := range c.order {
		out = append(out, c.products[code])
	}
	return out
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Version returns the catalog schema version declared by its source.
func (c *Catalog) Version() string {
	return c.version
}
