package domain

import (
	"strings"

	bufferPool "github.com/libp2p/go-buffer-pool"
)

// folderPadding is prefixed to every non-terminal path component when
// folder-first ordering is requested. It must be longer than any component
// it competes with.
var folderPadding = strings.Repeat("0", 20)

// BuildSortKey turns a path into the segments compared by the cascading
// comparator. Digit runs are rewritten so that they order by magnitude,
// the path is split on '/', and every component contributes a name segment
// and an extension segment.
//
// Example: "a/file10.txt" -> ["a", "", "file9010", ".txt"]
func BuildSortKey(path string, folderFirst bool) SortKey {
	components := strings.Split(normalizeNumbers(path), "/")

	key := make(SortKey, 0, 2*len(components))
	last := len(components) - 1
	for i, component := range components {
		if folderFirst && i != last {
			component = folderPadding + component
		}
		name, ext := splitExtension(component)
		key = append(key, name, ext)
	}
	return key
}

// normalizeNumbers replaces every run of n ASCII digits with n-1 nines, a
// zero and the original run, so "7" -> "07" and "123" -> "990123". A longer
// run always gets a longer prefix of nines and sorts after a shorter one.
func normalizeNumbers(s string) string {
	if !strings.ContainsAny(s, "0123456789") {
		return s
	}

	dst := bufferPool.NewBuffer(nil)
	dst.Grow(2 * len(s))
	defer dst.Reset()

	//nolint:errcheck
	for i := 0; i < len(s); {
		j := i
		if isDigit(s[i]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			dst.WriteString(strings.Repeat("9", j-i-1))
			dst.WriteString("0")
		} else {
			for j < len(s) && !isDigit(s[j]) {
				j++
			}
		}
		dst.WriteString(s[i:j])
		i = j
	}

	return dst.String()
}

// splitExtension splits a path component at its first dot. The dot stays
// with the extension; a component without a dot has an empty extension.
func splitExtension(component string) (name, ext string) {
	i := strings.IndexByte(component, '.')
	if i < 0 {
		return component, ""
	}
	return component[:i], component[i:]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
