// ABOUTME: Converts raw WordPress records into normalized posts
// ABOUTME: Strips HTML, parses dates, and resolves cross-references concurrently
package post

import (
	"context"
	"fmt"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/jaytaylor/html2text"
	"golang.org/x/sync/errgroup"

	"github.com/harper/pressroom/internal/wp"
)

// Placeholders for fields WordPress omits on some record states.
const (
	NoTitle   = "No Title"
	NoContent = "No Content"
	NoExcerpt = "No Excerpt"
)

// Normalizer builds normalized posts from raw records. A post never
// leaves the normalizer half-resolved: either every cross-reference is
// resolved or the whole record fails.
type Normalizer struct {
	resolver *Resolver
}

// NewNormalizer creates a normalizer over the given source.
func NewNormalizer(src Source) *Normalizer {
	return &Normalizer{resolver: NewResolver(src)}
}

// Normalize converts one raw post. The author lookup and the two term
// lookups are independent, so they run concurrently and join before the
// post is returned.
func (n *Normalizer) Normalize(ctx context.Context, raw *wp.RawPost) (Post, error) {
	date, err := dateparse.ParseAny(raw.Date)
	if err != nil {
		return Post{}, fmt.Errorf("parse post %d date %q: %w", raw.ID, raw.Date, err)
	}

	p := Post{
		ID:      raw.ID,
		Slug:    raw.Slug,
		Title:   textOrDefault(raw.Title, NoTitle),
		Date:    date,
		Content: textOrDefault(raw.Content, NoContent),
		Excerpt: textOrDefault(raw.Excerpt, NoExcerpt),
		URL:     raw.Link,
		Status:  raw.Status,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		author, err := n.resolver.Author(gctx, raw.Author)
		if err != nil {
			return err
		}
		p.Author = author
		return nil
	})
	g.Go(func() error {
		categories, err := n.resolver.Terms(gctx, wp.ItemCategories, raw.Categories)
		if err != nil {
			return err
		}
		p.Categories = categories
		return nil
	})
	g.Go(func() error {
		tags, err := n.resolver.Terms(gctx, wp.ItemTags, raw.Tags)
		if err != nil {
			return err
		}
		p.Tags = tags
		return nil
	})
	if err := g.Wait(); err != nil {
		return Post{}, err
	}
	return p, nil
}

// NormalizeAll converts a list of raw posts, resolving every record
// concurrently. The returned slice preserves the order of raws; a
// failure on any record discards the whole result.
func (n *Normalizer) NormalizeAll(ctx context.Context, raws []wp.RawPost) ([]Post, error) {
	posts := make([]Post, len(raws))
	g, gctx := errgroup.WithContext(ctx)
	for i := range raws {
		g.Go(func() error {
			p, err := n.Normalize(gctx, &raws[i])
			if err != nil {
				return err
			}
			posts[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return posts, nil
}

// NormalizePrevious converts the pre-deletion payload of a delete call.
// Trashed records may omit author, date, and content entirely.
func (n *Normalizer) NormalizePrevious(ctx context.Context, raw *wp.RawPost, deleted bool) (PreviousPost, error) {
	prev := PreviousPost{
		ID:      raw.ID,
		Date:    raw.Date,
		Slug:    raw.Slug,
		Status:  raw.Status,
		Type:    raw.Type,
		Title:   textOrDefault(raw.Title, NoTitle),
		Link:    raw.Link,
		Deleted: deleted,
	}
	if raw.Content != nil {
		prev.Content = stripHTML(raw.Content.Rendered)
	}
	if raw.Author != 0 {
		author, err := n.resolver.Author(ctx, raw.Author)
		if err != nil {
			return PreviousPost{}, err
		}
		prev.Author = &author
	}
	return prev, nil
}

func textOrDefault(r *wp.Rendered, fallback string) string {
	if r == nil || strings.TrimSpace(r.Rendered) == "" {
		return fallback
	}
	return stripHTML(r.Rendered)
}

func stripHTML(s string) string {
	text, err := html2text.FromString(s, html2text.Options{TextOnly: true})
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(text)
}
