package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var embeddedCatalog []byte

//go:embed data/catalog.schema.json
var embeddedSchema []byte

const schemaURL = "catalog.schema.json"

// ErrItemNotFound indicates an unknown item id
var ErrItemNotFound = errors.New("catalog item not found")

// Catalog is the static, read-only list of items shipped with the app
type Catalog struct {
	byID  map[string]int
	items []Item
}

type document struct {
	Items []Item `json:"items"`
}

// Load parses the catalog compiled into the binary
func Load() (*Catalog, error) {
	return Parse(embeddedCatalog)
}

// Parse parses and validates a YAML catalog document
func Parse(data []byte) (*Catalog, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	// YAML -> JSON, чтобы проверить схему и декодировать по json тегам
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to convert catalog to json: %w", err)
	}

	if err := validateSchema(jsonData); err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	return New(doc.Items)
}

// New builds a catalog from items. Ids must be unique.
func New(items []Item) (*Catalog, error) {
	c := &Catalog{
		items: make([]Item, 0, len(items)),
		byID:  make(map[string]int, len(items)),
	}

	for _, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("catalog item %q has empty id", item.Name)
		}
		if !item.Type.Valid() {
			return nil, fmt.Errorf("catalog item %s has unknown type %q", item.ID, item.Type)
		}
		if _, dup := c.byID[item.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog item id %s", item.ID)
		}
		c.byID[item.ID] = len(c.items)
		c.items = append(c.items, item.Clone())
	}

	return c, nil
}

func validateSchema(jsonData []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(embeddedSchema)); err != nil {
		return fmt.Errorf("failed to add catalog schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("failed to compile catalog schema: %w", err)
	}

	var v any
	if err := json.Unmarshal(jsonData, &v); err != nil {
		return fmt.Errorf("failed to decode catalog json: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("catalog does not match schema: %w", err)
	}
	return nil
}

// Len returns the number of items
func (c *Catalog) Len() int {
	return len(c.items)
}

// All returns copies of all items in catalog order
func (c *Catalog) All() []Item {
	return c.filter(func(Item) bool { return true })
}

// ByID returns the item with the given id
func (c *Catalog) ByID(id string) (Item, error) {
	idx, ok := c.byID[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	return c.items[idx].Clone(), nil
}

// ByType returns items of the given type
func (c *Catalog) ByType(t Type) []Item {
	return c.filter(func(item Item) bool { return item.Type == t })
}

// ByCategory returns items of the given type and category
func (c *Catalog) ByCategory(t Type, category string) []Item {
	return c.filter(func(item Item) bool {
		return item.Type == t && fold(item.Category) == fold(category)
	})
}

// Categories returns the distinct categories of a type, sorted
func (c *Catalog) Categories(t Type) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, item := range c.items {
		if item.Type != t || seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		categories = append(categories, item.Category)
	}
	sort.Strings(categories)
	return categories
}

// WithModels returns items that have a 3D model
func (c *Catalog) WithModels() []Item {
	return c.filter(Item.HasModel)
}

func (c *Catalog) filter(keep func(Item) bool) []Item {
	var out []Item
	for _, item := range c.items {
		if keep(item) {
			out = append(out, item.Clone())
		}
	}
	return out
}
