// Package cache holds the client-side collection state behind the
// dashboard: one cached, most-recent-first list per entity, updated
// optimistically from mutation results instead of refetching. Caches
// are plain constructor-injected values; nothing here is global.
package cache

import "errors"

// ErrNotSignedIn is raised synchronously by mutation entry points that
// require an identity, before any remote call is made.
var ErrNotSignedIn = errors.New("not signed in")

func prepend[T any](list []T, item T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, item)
	return append(out, list...)
}

// replaceByID swaps the matching element in place, preserving order.
// Lists without a match are returned unchanged.
func replaceByID[T any, ID comparable](list []T, id ID, item T, idOf func(T) ID) []T {
	for i := range list {
		if idOf(list[i]) == id {
			list[i] = item
			break
		}
	}
	return list
}

func removeByID[T any, ID comparable](list []T, id ID, idOf func(T) ID) []T {
	for i := range list {
		if idOf(list[i]) == id {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func snapshot[T any](list []T) []T {
	out := make([]T, len(list))
	copy(out, list)
	return out
}

func filter[T any](list []T, keep func(T) bool) []T {
	var out []T
	for _, item := range list {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
