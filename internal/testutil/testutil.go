package testutil

import (
	"fmt"
	"strings"
)

// BytewiseCollator implements port.Collator with plain byte order.
type BytewiseCollator struct{}

func (BytewiseCollator) CompareString(a, b string) int { return strings.Compare(a, b) }

// FoldingCollator implements port.Collator with case folded away, so
// strings differing only in case collate equal.
type FoldingCollator struct{}

func (FoldingCollator) CompareString(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// Record is an item sorted by File with Val as a secondary key.
type Record struct {
	File string
	Val  int
}

// NumberedFiles returns prefix0ext through prefix{n}ext in numeric order.
func NumberedFiles(prefix, ext string, n int) []string {
	files := make([]string, 0, n+1)
	for i := 0; i <= n; i++ {
		files = append(files, fmt.Sprintf("%s%d%s", prefix, i, ext))
	}
	return files
}

// Reversed returns a reversed copy of s.
func Reversed[T any](s []T) []T {
	out := make([]T, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}
