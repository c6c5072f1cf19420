package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestCatalog(t *testing.T) *Catalog {
	t.Helper()

	c, err := Load()
	require.NoError(t, err)
	return c
}

func TestLoad_Embedded(t *testing.T) {
	c := loadTestCatalog(t)

	assert.Equal(t, 12, c.Len())
	assert.Len(t, c.ByType(TypeTourism), 6)
	assert.Len(t, c.ByType(TypeCulture), 6)

	seen := make(map[string]bool)
	for _, item := range c.All() {
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
		assert.NotEmpty(t, item.Name)
		assert.NotEmpty(t, item.Image)
	}
}

func TestParse_SchemaViolation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "unknown type",
			doc: `items:
  - {id: "1", name: A, type: food, category: C, image: a.jpg, description: d}`,
		},
		{
			name: "missing name",
			doc: `items:
  - {id: "1", type: tourism, category: C, image: a.jpg, description: d}`,
		},
		{
			name: "unknown field",
			doc: `items:
  - {id: "1", name: A, type: tourism, category: C, image: a.jpg, description: d, price: 10}`,
		},
		{
			name: "latitude out of range",
			doc: `items:
  - {id: "1", name: A, type: tourism, category: C, image: a.jpg, description: d, coordinates: {latitude: 91, longitude: 0}}`,
		},
		{
			name: "no items",
			doc:  `items: []`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "schema")
		})
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("items: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse catalog")
}

func TestParse_DuplicateID(t *testing.T) {
	doc := `items:
  - {id: "1", name: A, type: tourism, category: C, image: a.jpg, description: d}
  - {id: "1", name: B, type: culture, category: C, image: b.jpg, description: d}`

	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestCatalog_ByID(t *testing.T) {
	c := loadTestCatalog(t)

	item, err := c.ByID("8")
	require.NoError(t, err)
	assert.Equal(t, "Kolintang", item.Name)
	assert.Equal(t, TypeCulture, item.Type)
	assert.Equal(t, "audio/kolintang.mp3", item.AudioFile)
	assert.True(t, item.HasModel())

	_, err = c.ByID("404")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	c := loadTestCatalog(t)

	item, err := c.ByID("1")
	require.NoError(t, err)
	require.NotNil(t, item.Coordinates)
	item.Name = "changed"
	item.Coordinates.Latitude = 0

	again, err := c.ByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Pulau Lihaga", again.Name)
	assert.InDelta(t, 1.7444, again.Coordinates.Latitude, 1e-9)
}

func TestCatalog_Categories(t *testing.T) {
	c := loadTestCatalog(t)

	assert.Equal(t, []string{"Air Terjun", "Gunung", "Pantai", "Pulau"}, c.Categories(TypeTourism))
	assert.Equal(t, []string{"Kuliner", "Musik Tradisional", "Rumah Adat", "Situs Sejarah", "Tarian"}, c.Categories(TypeCulture))

	dances := c.ByCategory(TypeCulture, "tarian")
	require.Len(t, dances, 2)
	assert.Equal(t, "Tari Maengket", dances[0].Name)
	assert.Equal(t, "Tari Kabasaran", dances[1].Name)

	assert.Empty(t, c.ByCategory(TypeTourism, "Tarian"))
}

func TestCatalog_WithModels(t *testing.T) {
	c := loadTestCatalog(t)

	models := c.WithModels()
	require.Len(t, models, 2)
	assert.Equal(t, "models/waruga.gltf", models[0].Model)
	assert.Equal(t, "models/kolintang.gltf", models[1].Model)
}

func TestNew_RejectsInvalidItems(t *testing.T) {
	_, err := New([]Item{{Name: "no id", Type: TypeTourism}})
	assert.Error(t, err)

	_, err = New([]Item{{ID: "1", Type: "food"}})
	assert.Error(t, err)
}
