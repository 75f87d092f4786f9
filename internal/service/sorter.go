package service

import (
	"slices"

	"github.com/magicdawn/finder-sort/internal/domain"
)

type keyed[T any] struct {
	item T
	key  domain.SortKey
}

// SortBy returns a sorted copy of items. mapKey projects each item to the
// path its key is built from. Items with equal keys keep their input order.
func SortBy[T any](items []T, mapKey func(T) string, folderFirst bool, compare func(a, b domain.SortKey) int) []T {
	entries := make([]keyed[T], len(items))
	for i, item := range items {
		entries[i] = keyed[T]{item: item, key: domain.BuildSortKey(mapKey(item), folderFirst)}
	}

	slices.SortStableFunc(entries, func(a, b keyed[T]) int {
		return compare(a.key, b.key)
	})

	sorted := make([]T, len(entries))
	for i, e := range entries {
		sorted[i] = e.item
	}
	return sorted
}
