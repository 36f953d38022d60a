package entity

// Place is a registered check-in location. Places are seeded externally and
// read-only at runtime.
type Place struct {
	ID          string
	Name        string
	Category    string
	Area        string
	Description string
	Points      int
	Lat         float64
	Lng         float64
}

// PlaceFilter narrows a place listing. Search matches name, description and
// area case-insensitively; Category is an exact match when non-empty.
type PlaceFilter struct {
	Search   string
	Category string
}
