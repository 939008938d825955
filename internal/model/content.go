package model

import "time"

// Content is implemented by the pointer types stored in a content collection.
// T is the item type itself and P the partial-update type accepted by Apply.
type Content[T any, P any] interface {
	GetID() string
	GetAuthorID() string
	// Stamp prepares a freshly created item: id, both timestamps and a zero engagement count.
	Stamp(id string, now time.Time)
	// Apply merges the non-nil fields of patch and bumps the update timestamp.
	Apply(patch P, now time.Time)
	HasTag(tag string) bool
	Clone() T
}

// Clappable is implemented by items that carry an engagement counter.
type Clappable interface {
	Clap()
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func cloneTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
