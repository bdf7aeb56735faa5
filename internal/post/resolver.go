// ABOUTME: Resolves author and term cross-references to display names
// ABOUTME: Term lookups are batched into a single include request
package post

import (
	"context"
	"fmt"

	"github.com/harper/pressroom/internal/wp"
)

// Source is the subset of the WordPress client the resolver needs. The
// client is owned elsewhere; the resolver only borrows it.
type Source interface {
	GetUserByID(ctx context.Context, id int) (*wp.RawUser, error)
	FetchItemsByIDs(ctx context.Context, itemType wp.ItemType, ids []int) ([]wp.NamedItem, error)
}

// Resolver turns raw cross-reference IDs into display names.
type Resolver struct {
	src Source
}

// NewResolver creates a resolver over the given source.
func NewResolver(src Source) *Resolver {
	return &Resolver{src: src}
}

// Author resolves one author ID. The display name falls back to the
// user's slug, then to "No Name".
func (r *Resolver) Author(ctx context.Context, id int) (Author, error) {
	user, err := r.src.GetUserByID(ctx, id)
	if err != nil {
		return Author{}, fmt.Errorf("resolve author %d: %w", id, err)
	}
	name := user.Name
	if name == "" {
		name = user.Slug
	}
	if name == "" {
		name = "No Name"
	}
	return Author{ID: user.ID, Name: name}, nil
}

// Terms resolves a set of term IDs to names with one batched fetch,
// preserving the order of ids. An empty set returns without a network
// call.
func (r *Resolver) Terms(ctx context.Context, itemType wp.ItemType, ids []int) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}
	items, err := r.src.FetchItemsByIDs(ctx, itemType, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve %s %v: %w", itemType, ids, err)
	}

	// WordPress does not guarantee include order, so reorder by the
	// requested ID list.
	byID := make(map[int]string, len(items))
	for _, item := range items {
		byID[item.ID] = item.Name
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := byID[id]; ok {
			names = append(names, name)
		}
	}
	return names, nil
}
