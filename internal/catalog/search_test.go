package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name)
	}
	return out
}

func TestCatalog_Search(t *testing.T) {
	c := loadTestCatalog(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "case insensitive", query: "PULAU", want: []string{"Pulau Lihaga", "Pulau Gangga"}},
		{name: "all words", query: "tari kabasaran", want: []string{"Tari Kabasaran"}},
		{name: "diacritics ignored", query: "Tinutúan", want: []string{"Tinutuan"}},
		{name: "location", query: "marinsow", want: []string{"Pantai Paal"}},
		{name: "name before description", query: "kolintang", want: []string{"Kolintang"}},
		{name: "no match", query: "volcano surfing", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(c.Search(tt.query)))
		})
	}
}

func TestCatalog_Search_NameFirst(t *testing.T) {
	c := loadTestCatalog(t)

	results := c.Search("waruga")
	require.NotEmpty(t, results)
	assert.Equal(t, "Waruga Sawangan", results[0].Name)

	custom, err := New([]Item{
		{ID: "1", Name: "Bukit Kasih", Type: TypeTourism, Description: "view of danau tondano lake"},
		{ID: "2", Name: "Danau Tondano", Type: TypeTourism, Description: "the lake"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Danau Tondano", "Bukit Kasih"}, names(custom.Search("danau")))
	assert.Equal(t, []string{"Bukit Kasih", "Danau Tondano"}, names(custom.Search("lake")))
}

func TestCatalog_Search_Empty(t *testing.T) {
	c := loadTestCatalog(t)

	assert.Nil(t, c.Search(""))
	assert.Nil(t, c.Search("   "))
}

func TestFold(t *testing.T) {
	assert.Equal(t, "pantai", fold(" Pantaí "))
	assert.Equal(t, "strasse", fold("STRASSE"))
}
