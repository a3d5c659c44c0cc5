// Package category exposes the category catalog endpoints. Catalog entries
// are display metadata; transactions reference categories by name only.
package category

// Category is the API model for one catalog entry.
type Category struct {
	Name  string `json:"name" doc:"Category name"`
	Color string `json:"color" doc:"Display color token"`
	Icon  string `json:"icon" doc:"Display icon token"`
}
