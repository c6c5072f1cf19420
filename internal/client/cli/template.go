package cli

import (
	"fmt"
	"text/template"

	"github.com/iudanet/minahasa-guide/internal/catalog"
)

const itemTemplate = `
=== {{.Item.Name}} ===

ID:       {{.Item.ID}}
Type:     {{.Item.Type}}
Category: {{.Item.Category}}
{{- if .Item.Location }}
Location: {{.Item.Location}}
{{- end}}
{{- if .Item.Coordinates }}
Position: {{printf "%.5f, %.5f" .Item.Coordinates.Latitude .Item.Coordinates.Longitude}}
Map:      {{.MapURL}}
{{- end}}
Image:    {{.Item.Image}}
{{- if .Item.AudioFile }}
Audio:    {{.Item.AudioFile}}
{{- end}}
{{- if .Item.Video }}
Video:    {{.Item.Video}}
{{- end}}
{{- if .Item.Model }}
3D model: {{.Item.Model}} (guide view {{.Item.ID}})
{{- end}}
Saved:    {{if .Saved}}yes{{else}}no{{end}}

{{.Item.Description}}
`

const itemListTemplate = `{{range .}}{{printf "%-4s" .ID}} {{printf "%-28s" .Name}} {{.Type}}/{{.Category}}
{{end}}`

const nearbyTemplate = `{{range .}}{{printf "%-4s" .Item.ID}} {{printf "%-28s" .Item.Name}} {{printf "%6.1f km" .DistanceKm}}
{{end}}`

var (
	itemTmpl     = template.Must(template.New("item").Parse(itemTemplate))
	itemListTmpl = template.Must(template.New("list").Parse(itemListTemplate))
	nearbyTmpl   = template.Must(template.New("nearby").Parse(nearbyTemplate))
)

type itemView struct {
	Item   catalog.Item
	MapURL string
	Saved  bool
}

func (c *Cli) printItem(item catalog.Item) error {
	view := itemView{
		Item:   item,
		MapURL: catalog.MapURL(item),
		Saved:  c.bookmarks.IsSaved(item.ID),
	}
	if err := itemTmpl.Execute(c.io, view); err != nil {
		return fmt.Errorf("failed to render item: %w", err)
	}
	return nil
}

func (c *Cli) printItems(items []catalog.Item) error {
	if len(items) == 0 {
		c.io.Println("Nothing found")
		return nil
	}
	if err := itemListTmpl.Execute(c.io, items); err != nil {
		return fmt.Errorf("failed to render list: %w", err)
	}
	c.io.Printf("\nTotal: %d\n", len(items))
	return nil
}
