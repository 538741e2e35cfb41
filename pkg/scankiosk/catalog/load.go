package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// SchemaVersion is the catalog file format understood by this build.
// Files declare their own version and must be caret-compatible with it.
const SchemaVersion = "1.0.0"

//go:embed default_catalog.toml
var defaultCatalog []byte

// Validation errors returned by Parse and Load.
var (
	ErrEmptyCode          = errors.New("product code is empty")
	ErrDuplicateCode      = errors.New("duplicate product code")
	ErrMissingTileImage   = errors.New("product has no tile image")
	ErrIncompatible       = errors.New("incompatible catalog version")
	ErrInvalidBackButton  = errors.New("invalid back button style")
	ErrMissingVersionDecl = errors.New("catalog version is not declared")
)

type fileFormat struct {
	Version  string        `toml:"version"`
	Products []productFile `toml:"product"`
}

type productFile struct {
	Code         string `toml:"code"`
	Name         string `toml:"name"`
	TileImage    string `toml:"tile_image"`
	ProductImage string `toml:"product_image"`
	Placeholder  bool   `toml:"placeholder"`
	BackButton   string `toml:"back_button"`
}

// Default returns the catalog embedded in the binary.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded default is invalid: %v", err))
	}
	return c
}

// Load reads and parses a TOML catalog from fs.
func Load(fs billy.Filesystem, path string) (*Catalog, error) {
	data, err := util.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a TOML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var f fileFormat
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if err := checkVersion(f.Version); err != nil {
		return nil, err
	}

	c := &Catalog{
		version:  f.Version,
		order:    make([]string, 0, len(f.Products)),
		products: make(map[string]Product, len(f.Products)),
	}

	for i, pf := range f.Products {
		code := NormalizeCode(pf.Code)
		if code == "" {
			return nil, fmt.Errorf("product %d: %w", i, ErrEmptyCode)
		}
		if _, exists := c.products[code]; exists {
			return nil, fmt.Errorf("product %q: %w", code, ErrDuplicateCode)
		}
		if pf.TileImage == "" {
			return nil, fmt.Errorf("product %q: %w", code, ErrMissingTileImage)
		}

		style, err := parseBackButton(pf.BackButton)
		if err != nil {
			return nil, fmt.Errorf("product %q: %w", code, err)
		}

		c.products[code] = Product{
			Code:         code,
			Name:         pf.Name,
			TileImage:    pf.TileImage,
			ProductImage: pf.ProductImage,
			Placeholder:  pf.Placeholder,
			BackButton:   style,
		}
		c.order = append(c.order, code)
	}

	return c, nil
}

// IsCompatible reports whether a catalog file version can be read by this build.
func IsCompatible(version string) (bool, error) {
	constraint, err := semver.NewConstraint("^" + SchemaVersion)
	if err != nil {
		return false, fmt.Errorf("invalid schema version: %w", err)
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return false, fmt.Errorf("invalid catalog version %q: %w", version, err)
	}

	return constraint.Check(v), nil
}

func checkVersion(version string) error {
	if version == "" {
		return ErrMissingVersionDecl
	}
	ok, err := IsCompatible(version)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s (supported ^%s)", ErrIncompatible, version, SchemaVersion)
	}
	return nil
}

func parseBackButton(s string) (BackButtonStyle, error) {
	switch BackButtonStyle(s) {
	case "", BackButtonDark:
		return BackButtonDark, nil
	case BackButtonLight:
		return BackButtonLight, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidBackButton, s)
	}
}
