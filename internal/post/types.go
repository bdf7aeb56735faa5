// ABOUTME: Normalized post types exposed by the content tools
// ABOUTME: All cross-references are resolved names, never raw IDs
package post

import "time"

// Author is a resolved post author.
type Author struct {
	ID   int    `json:"id" jsonschema:"Unique ID of the post author"`
	Name string `json:"name" jsonschema:"Display name of the post author"`
}

// Post is a fully normalized content record: HTML stripped, date parsed,
// and author, categories, and tags resolved to names. Immutable once
// constructed.
type Post struct {
	ID         int       `json:"id" jsonschema:"Unique post ID assigned by WordPress"`
	Slug       string    `json:"slug" jsonschema:"URL slug identifying the post"`
	Title      string    `json:"title" jsonschema:"Post title as plain text"`
	Author     Author    `json:"author" jsonschema:"Resolved author of the post"`
	Date       time.Time `json:"date" jsonschema:"Publication datetime in ISO 8601"`
	Categories []string  `json:"categories" jsonschema:"Resolved category names"`
	Tags       []string  `json:"tags" jsonschema:"Resolved tag names"`
	Content    string    `json:"content" jsonschema:"Post body as plain text"`
	Excerpt    string    `json:"excerpt" jsonschema:"Post excerpt as plain text"`
	URL        string    `json:"url" jsonschema:"Public URL of the post"`
	Status     string    `json:"status" jsonschema:"Post status, draft or publish"`
}

// Result messages for List.
const (
	MessageRetrieved = "Posts retrieved"
	MessageNone      = "No posts found"
)

// List wraps an ordered sequence of posts. Count always equals
// len(Posts).
type List struct {
	Posts   []Post `json:"posts" jsonschema:"The retrieved posts in remote order"`
	Count   int    `json:"count" jsonschema:"Number of posts retrieved"`
	Message string `json:"message" jsonschema:"Result message, Posts retrieved or No posts found"`
}

// NewList builds a List from posts, filling in count and message.
func NewList(posts []Post) List {
	if posts == nil {
		posts = []Post{}
	}
	message := MessageRetrieved
	if len(posts) == 0 {
		message = MessageNone
	}
	return List{Posts: posts, Count: len(posts), Message: message}
}

// PreviousPost is the pre-deletion state of a post. Delete responses are
// sparser than live records, so author, date, and content are optional.
type PreviousPost struct {
	ID      int     `json:"id" jsonschema:"Unique ID of the deleted post"`
	Date    string  `json:"date,omitempty" jsonschema:"Publication datetime of the deleted post"`
	Slug    string  `json:"slug" jsonschema:"Slug of the deleted post"`
	Status  string  `json:"status" jsonschema:"Status of the post before deletion"`
	Type    string  `json:"type" jsonschema:"Record type of the deleted post"`
	Title   string  `json:"title" jsonschema:"Title of the deleted post as plain text"`
	Content string  `json:"content,omitempty" jsonschema:"Body of the deleted post as plain text"`
	Author  *Author `json:"author,omitempty" jsonschema:"Resolved author of the deleted post"`
	Link    string  `json:"link,omitempty" jsonschema:"URL of the deleted post"`
	Deleted bool    `json:"deleted" jsonschema:"True when the post was permanently deleted rather than trashed"`
}
