// Package catalog holds the fixed dish categories and the initial menu.
package catalog

// Category is a fixed grouping label for dishes. Categories are not persisted.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var categories = []Category{
	{ID: "stirfry", Name: "湘味小炒"},
	{ID: "noodle", Name: "嗦粉吃面"},
	{ID: "hotpot", Name: "热辣火锅"},
	{ID: "bbq", Name: "夜宵烧烤"},
	{ID: "snack", Name: "特色小吃"},
	{ID: "drink", Name: "解辣神器"},
}

// Categories returns a copy of the category list in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// IsKnown reports whether id names one of the fixed categories.
func IsKnown(id string) bool {
	for _, c := range categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Name returns the display name for id, or id itself when unknown.
func Name(id string) string {
	for _, c := range categories {
		if c.ID == id {
			return c.Name
		}
	}
	return id
}
