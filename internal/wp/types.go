// ABOUTME: Wire-format types for the WordPress REST API
// ABOUTME: Mirrors the {rendered} envelope used for HTML-bearing fields
package wp

// Rendered wraps HTML-bearing fields in the WordPress REST representation.
type Rendered struct {
	Rendered string `json:"rendered"`
}

// RawPost is a post exactly as the WordPress API returns it. Author,
// categories, and tags are numeric cross-references that still need
// resolution. Title, content, and excerpt may be absent for trashed or
// sparsely populated records.
type RawPost struct {
	ID         int       `json:"id"`
	Date       string    `json:"date"`
	Modified   string    `json:"modified,omitempty"`
	Slug       string    `json:"slug"`
	Status     string    `json:"status"`
	Type       string    `json:"type"`
	Link       string    `json:"link"`
	Title      *Rendered `json:"title,omitempty"`
	Content    *Rendered `json:"content,omitempty"`
	Excerpt    *Rendered `json:"excerpt,omitempty"`
	Author     int       `json:"author"`
	Categories []int     `json:"categories"`
	Tags       []int     `json:"tags"`
	Sticky     bool      `json:"sticky,omitempty"`
}

// RawUser is a WordPress user record.
type RawUser struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// NamedItem is the common shape of users, categories, and tags when
// fetched through a collection endpoint.
type NamedItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// RawDeleteResult is the payload of DELETE /posts/{id}. With force=true
// WordPress reports {deleted, previous}; without force it returns the
// trashed post itself, which the client normalizes into this shape.
type RawDeleteResult struct {
	Deleted  bool     `json:"deleted"`
	Previous *RawPost `json:"previous"`
}

// ItemType selects a WordPress collection for batched include fetches.
type ItemType string

const (
	ItemUsers      ItemType = "users"
	ItemCategories ItemType = "categories"
	ItemTags       ItemType = "tags"
)
