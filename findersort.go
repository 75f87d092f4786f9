// Package findersort orders paths the way the macOS Finder does.
//
// Digit runs compare by numeric value ("x2.txt" before "x10.txt"), each
// path component's extension is compared after its base name, and
// directories can optionally be listed before sibling files. Strings are
// compared with locale collation from golang.org/x/text.
//
//	sorted := findersort.SortStrings(paths, findersort.WithLocale("zh-CN"))
//
// Key and NewComparator expose the two halves separately for callers that
// run their own multi-key sorts.
package findersort

import (
	"github.com/magicdawn/finder-sort/internal/adapter/collation"
	"github.com/magicdawn/finder-sort/internal/domain"
	"github.com/magicdawn/finder-sort/internal/service"
)

// SortKey is the comparison form of a path. Build one with Key.
type SortKey = domain.SortKey

// Comparator orders two sort keys, returning -1, 0 or 1. It is safe for
// concurrent use.
type Comparator func(a, b SortKey) int

var (
	// ErrMissingMapKey is returned by Sort when no projection is given.
	ErrMissingMapKey = domain.ErrMissingMapKey
	// ErrInvalidLocale reports a malformed BCP 47 tag.
	ErrInvalidLocale = domain.ErrInvalidLocale
)

// Option configures Sort and SortStrings.
type Option func(*domain.Options)

// WithFolderFirst places directory components ahead of sibling files
// sharing the same parent.
func WithFolderFirst(enabled bool) Option {
	return func(o *domain.Options) {
		o.FolderFirst = enabled
	}
}

// WithLocale selects the collation used for segment comparison, e.g.
// "en-US" or "zh-CN". A malformed tag falls back to the root collation.
func WithLocale(locale string) Option {
	return func(o *domain.Options) {
		o.Locale = locale
	}
}

// Sort returns a sorted copy of items, ordering them by the path mapKey
// returns for each. items is left untouched and items with identical paths
// keep their relative order.
func Sort[T any](items []T, mapKey func(T) string, opts ...Option) ([]T, error) {
	if mapKey == nil {
		return nil, ErrMissingMapKey
	}

	var o domain.Options
	for _, opt := range opts {
		opt(&o)
	}

	return service.SortBy(items, mapKey, o.FolderFirst, NewComparator(o.Locale)), nil
}

// SortStrings returns a sorted copy of paths.
func SortStrings(paths []string, opts ...Option) []string {
	sorted, _ := Sort(paths, func(s string) string { return s }, opts...)
	return sorted
}

// Key builds the sort key for path. With folderFirst, every component but
// the last is padded so it sorts ahead of sibling files.
func Key(path string, folderFirst bool) SortKey {
	return domain.BuildSortKey(path, folderFirst)
}

// NewComparator returns a Comparator collating with locale. An empty
// locale selects the root collation.
func NewComparator(locale string) Comparator {
	// ParseLocale yields language.Und for malformed tags.
	tag, _ := collation.ParseLocale(locale)
	return service.NewComparator(collation.New(tag)).Compare
}
