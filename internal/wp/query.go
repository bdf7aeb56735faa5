// ABOUTME: Post list query options and their serialization to URL parameters
// ABOUTME: Unset fields are omitted entirely; WordPress treats absence and defaults differently
package wp

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/araddon/dateparse"
)

// IntList accepts either a single integer or an array of integers in
// JSON, normalizing to a list at the boundary.
type IntList []int

func (l *IntList) UnmarshalJSON(data []byte) error {
	var one int
	if err := json.Unmarshal(data, &one); err == nil {
		*l = IntList{one}
		return nil
	}
	var many []int
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("expected integer or array of integers: %s", string(data))
	}
	*l = many
	return nil
}

func (l IntList) join() string {
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// StringList accepts either a single string or an array of strings in
// JSON, normalizing to a list at the boundary.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*l = StringList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("expected string or array of strings: %s", string(data))
	}
	*l = many
	return nil
}

// Defaults applied when the corresponding PostQuery field is unset.
const (
	DefaultPage    = 1
	DefaultPerPage = 10
	DefaultStatus  = "publish"
	DefaultOrderBy = "date"
	DefaultOrder   = "desc"
)

var validStatuses = map[string]bool{
	"publish": true,
	"draft":   true,
	"pending": true,
	"private": true,
	"future":  true,
	"trash":   true,
	"any":     true,
}

var validOrderBy = map[string]bool{
	"date":      true,
	"id":        true,
	"author":    true,
	"title":     true,
	"modified":  true,
	"slug":      true,
	"include":   true,
	"relevance": true,
}

// PostQuery holds filter options for listing posts. Zero values mean
// "unset"; unset fields never appear in the outgoing request. Fields
// with documented defaults (page, per_page, status, orderby, order) are
// always sent, filled in when unset.
type PostQuery struct {
	Page              int        `json:"page,omitempty" jsonschema:"Page number to fetch, starting at 1"`
	PerPage           int        `json:"per_page,omitempty" jsonschema:"Number of posts per page, between 1 and 100"`
	Search            string     `json:"search,omitempty" jsonschema:"Full-text search keyword matched against title and body"`
	After             string     `json:"after,omitempty" jsonschema:"Only posts published after this ISO 8601 datetime"`
	Before            string     `json:"before,omitempty" jsonschema:"Only posts published before this ISO 8601 datetime"`
	ModifiedAfter     string     `json:"modified_after,omitempty" jsonschema:"Only posts modified after this ISO 8601 datetime"`
	ModifiedBefore    string     `json:"modified_before,omitempty" jsonschema:"Only posts modified before this ISO 8601 datetime"`
	Author            IntList    `json:"author,omitempty" jsonschema:"Author ID or list of author IDs to include"`
	AuthorExclude     IntList    `json:"author_exclude,omitempty" jsonschema:"Author ID or list of author IDs to exclude"`
	Include           IntList    `json:"include,omitempty" jsonschema:"Post ID or list of post IDs to include"`
	Exclude           IntList    `json:"exclude,omitempty" jsonschema:"Post ID or list of post IDs to exclude"`
	Slug              StringList `json:"slug,omitempty" jsonschema:"Post slug or list of post slugs to match"`
	Status            StringList `json:"status,omitempty" jsonschema:"Post status filter such as publish or draft, defaults to publish"`
	Categories        IntList    `json:"categories,omitempty" jsonschema:"Category ID or list of category IDs to include"`
	CategoriesExclude IntList    `json:"categories_exclude,omitempty" jsonschema:"Category ID or list of category IDs to exclude"`
	Tags              IntList    `json:"tags,omitempty" jsonschema:"Tag ID or list of tag IDs to include"`
	Format            string     `json:"format,omitempty" jsonschema:"Post format such as standard, aside, or gallery"`
	OrderBy           string     `json:"orderby,omitempty" jsonschema:"Sort field such as date, id, title, modified, or slug, defaults to date"`
	Order             string     `json:"order,omitempty" jsonschema:"Sort direction, asc or desc, defaults to desc"`
	Sticky            *bool      `json:"sticky,omitempty" jsonschema:"Limit results to sticky or non-sticky posts"`
}

// Validate checks all set fields against their constraints. It runs
// before any network call so a bad query never reaches WordPress.
func (q *PostQuery) Validate() error {
	if q.Page < 0 {
		return &ValidationError{Field: "page", Reason: "must be 1 or greater"}
	}
	if q.PerPage != 0 && (q.PerPage < 1 || q.PerPage > 100) {
		return &ValidationError{Field: "per_page", Reason: "must be between 1 and 100"}
	}
	for _, field := range []struct{ name, value string }{
		{"after", q.After},
		{"before", q.Before},
		{"modified_after", q.ModifiedAfter},
		{"modified_before", q.ModifiedBefore},
	} {
		if field.value == "" {
			continue
		}
		if _, err := dateparse.ParseAny(field.value); err != nil {
			return &ValidationError{Field: field.name, Reason: fmt.Sprintf("not a recognizable datetime: %q", field.value)}
		}
	}
	for _, s := range q.Status {
		if !validStatuses[s] {
			return &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", s)}
		}
	}
	if q.OrderBy != "" && !validOrderBy[q.OrderBy] {
		return &ValidationError{Field: "orderby", Reason: fmt.Sprintf("unknown sort field %q", q.OrderBy)}
	}
	if q.Order != "" && q.Order != "asc" && q.Order != "desc" {
		return &ValidationError{Field: "order", Reason: "must be asc or desc"}
	}
	return nil
}

// Values serializes the query to URL parameters. Fields without a value
// are dropped; defaulted fields are filled in.
func (q *PostQuery) Values() url.Values {
	v := url.Values{}

	page := q.Page
	if page == 0 {
		page = DefaultPage
	}
	v.Set("page", strconv.Itoa(page))

	perPage := q.PerPage
	if perPage == 0 {
		perPage = DefaultPerPage
	}
	v.Set("per_page", strconv.Itoa(perPage))

	if q.Search != "" {
		v.Set("search", q.Search)
	}
	setDate(v, "after", q.After)
	setDate(v, "before", q.Before)
	setDate(v, "modified_after", q.ModifiedAfter)
	setDate(v, "modified_before", q.ModifiedBefore)

	setInts(v, "author", q.Author)
	setInts(v, "author_exclude", q.AuthorExclude)
	setInts(v, "include", q.Include)
	setInts(v, "exclude", q.Exclude)
	if len(q.Slug) > 0 {
		v.Set("slug", strings.Join(q.Slug, ","))
	}

	status := q.Status
	if len(status) == 0 {
		status = StringList{DefaultStatus}
	}
	v.Set("status", strings.Join(status, ","))

	setInts(v, "categories", q.Categories)
	setInts(v, "categories_exclude", q.CategoriesExclude)
	setInts(v, "tags", q.Tags)
	if q.Format != "" {
		v.Set("format", q.Format)
	}

	orderBy := q.OrderBy
	if orderBy == "" {
		orderBy = DefaultOrderBy
	}
	v.Set("orderby", orderBy)

	order := q.Order
	if order == "" {
		order = DefaultOrder
	}
	v.Set("order", order)

	if q.Sticky != nil {
		v.Set("sticky", strconv.FormatBool(*q.Sticky))
	}
	return v
}

// setDate normalizes a validated datetime to RFC 3339 before sending.
func setDate(v url.Values, key, value string) {
	if value == "" {
		return
	}
	if t, err := dateparse.ParseAny(value); err == nil {
		v.Set(key, t.Format("2006-01-02T15:04:05"))
		return
	}
	v.Set(key, value)
}

func setInts(v url.Values, key string, ids IntList) {
	if len(ids) == 0 {
		return
	}
	v.Set(key, ids.join())
}
