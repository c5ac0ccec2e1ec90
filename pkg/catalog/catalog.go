package catalog

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/flowmable/background-color-scorer/pkg/errors"
	"github.com/flowmable/background-color-scorer/pkg/formats"
)

// Entry is one garment color. MarketBonus, when set, replaces the engine's
// market-bias formula for this hex (pre-scale, on the [-2, 2] range).
type Entry struct {
	Name        string   `yaml:"name" json:"name"`
	Hex         string   `yaml:"hex" json:"hex"`
	MarketBonus *float64 `yaml:"market_bonus,omitempty" json:"market_bonus,omitempty"`
}

// Catalog is an ordered garment color slate.
type Catalog struct {
	entries []Entry
	byHex   map[string]int
}

type catalogFile struct {
	Colors []Entry `yaml:"colors"`
}

// Default returns the built-in solid garment palette. Heather and other
// multi-region fabrics are out of scope and deliberately absent.
func Default() *Catalog {
	c, err := New([]Entry{
		{Name: "White", Hex: "#FFFFFF"},
		{Name: "Black", Hex: "#000000"},
		{Name: "Navy", Hex: "#1F2A44"},
		{Name: "Charcoal", Hex: "#36454F"},
		{Name: "Red", Hex: "#C8102E"},
		{Name: "Royal", Hex: "#224D8F"},
		{Name: "Irish Green", Hex: "#00A651"},
		{Name: "Purple", Hex: "#582C83"},
		{Name: "Sand", Hex: "#C9BDA6"},
		{Name: "Maroon", Hex: "#5B2B38"},
		{Name: "Forest", Hex: "#1B4D3E"},
		{Name: "Orange", Hex: "#F96302"},
		{Name: "Gold", Hex: "#FFB81C"},
		{Name: "Light Blue", Hex: "#A3B3CB"},
		{Name: "Light Pink", Hex: "#F8C8DC"},
		{Name: "Military Green", Hex: "#5A5A40"},
		{Name: "Brown", Hex: "#5C4033"},
		{Name: "Cardinal", Hex: "#8A1538"},
		{Name: "Kelly", Hex: "#007A53"},
		{Name: "Daisy", Hex: "#FED141"},
	})
	if err != nil {
		panic(err)
	}
	return c
}

// New builds a catalog from entries, normalizing every hex. Later duplicates
// of the same hex replace earlier ones in place.
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		byHex:   make(map[string]int, len(entries)),
	}

	for _, entry := range entries {
		hex, err := formats.NormalizeHex(entry.Hex)
		if err != nil {
			return nil, err
		}
		entry.Hex = hex

		if i, ok := c.byHex[hex]; ok {
			c.entries[i] = entry
			continue
		}
		c.byHex[hex] = len(c.entries)
		c.entries = append(c.entries, entry)
	}

	return c, nil
}

// LoadFile reads a YAML catalog file and returns it as a standalone catalog.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.CatalogError{Path: path, Err: err}
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &errors.CatalogError{Path: path, Err: err}
	}

	c, err := New(file.Colors)
	if err != nil {
		return nil, &errors.CatalogError{Path: path, Err: err}
	}
	return c, nil
}

// Hexes returns the slate in catalog order.
func (c *Catalog) Hexes() []string {
	hexes := make([]string, len(c.entries))
	for i, entry := range c.entries {
		hexes[i] = entry.Hex
	}
	return hexes
}

// Overrides returns the per-hex market bonuses declared in the catalog.
func (c *Catalog) Overrides() map[string]float64 {
	overrides := make(map[string]float64)
	for _, entry := range c.entries {
		if entry.MarketBonus != nil {
			overrides[entry.Hex] = *entry.MarketBonus
		}
	}
	return overrides
}

// Name returns the display name for a hex, or the hex itself when unknown.
func (c *Catalog) Name(hex string) string {
	key, err := formats.NormalizeHex(hex)
	if err != nil {
		return hex
	}
	if i, ok := c.byHex[key]; ok {
		return c.entries[i].Name
	}
	return hex
}

// Len returns the number of entries in the slate.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the slate in catalog order.
func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}
