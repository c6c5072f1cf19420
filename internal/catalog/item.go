package catalog

// Type is the top-level category of a catalog item
type Type string

const (
	TypeTourism Type = "tourism" // places to visit
	TypeCulture Type = "culture" // traditions, music, dances, food
)

// Valid reports whether t is a known type
func (t Type) Valid() bool {
	return t == TypeTourism || t == TypeCulture
}

// Coordinates is a WGS84 position
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Item is a read-only catalog record.
// A bookmark is a snapshot copy of an Item, so the same type is persisted in savedItems.
type Item struct {
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        Type         `json:"type"`
	Category    string       `json:"category"`
	Image       string       `json:"image"`
	Description string       `json:"description"`
	Location    string       `json:"location,omitempty"`
	AudioFile   string       `json:"audioFile,omitempty"`
	Video       string       `json:"video,omitempty"`
	Model       string       `json:"model,omitempty"`
}

// Clone returns a deep copy of the item
func (i Item) Clone() Item {
	if i.Coordinates != nil {
		c := *i.Coordinates
		i.Coordinates = &c
	}
	return i
}

// HasModel reports whether the item has a 3D model
func (i Item) HasModel() bool {
	return i.Model != ""
}
