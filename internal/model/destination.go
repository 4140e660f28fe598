package model

// DestinationCode identifies a place in the site's fixed catalog.
// Codes outside the catalog may exist in stored lists (e.g. written by older
// clients); they are dropped at render time rather than treated as errors.
type DestinationCode string

// Category groups destinations for the browsing pages.
type Category string

// Known categories
const (
	CategoryCities  Category = "cities"
	CategoryIslands Category = "islands"
	CategoryHiking  Category = "hiking"
)

// Destination is a catalog entry: a stable code plus its display name,
// route path and category.
type Destination struct {
	Code     DestinationCode
	Name     string
	Path     string
	Category Category
}

// Catalog is the closed set of known destinations, in presentation order.
// Routes and list rendering are both driven from this table so a new
// destination is a one-line change.
var Catalog = []Destination{
	{Code: "rome", Name: "Rome", Path: "/rome", Category: CategoryCities},
	{Code: "paris", Name: "Paris", Path: "/paris", Category: CategoryCities},
	{Code: "bali", Name: "Bali", Path: "/bali", Category: CategoryIslands},
	{Code: "santorini", Name: "Santorini", Path: "/santorini", Category: CategoryIslands},
	{Code: "annapurna", Name: "Annapurna", Path: "/annapurna", Category: CategoryHiking},
	{Code: "inca", Name: "Inca", Path: "/inca", Category: CategoryHiking},
}

// Categories lists the browsing categories in presentation order.
var Categories = []Category{CategoryHiking, CategoryCities, CategoryIslands}

// LookupDestination returns the catalog entry for code.
// The second return is false for codes outside the catalog.
func LookupDestination(code DestinationCode) (Destination, bool) {
	for _, d := range Catalog {
		if d.Code == code {
			return d, true
		}
	}
	return Destination{}, false
}

// DestinationsInCategory returns the catalog entries for a category,
// preserving catalog order.
func DestinationsInCategory(cat Category) []Destination {
	var out []Destination
	for _, d := range Catalog {
		if d.Category == cat {
			out = append(out, d)
		}
	}
	return out
}
