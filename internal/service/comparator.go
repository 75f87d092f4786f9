package service

import (
	"cmp"
	"slices"

	"github.com/magicdawn/finder-sort/internal/domain"
	"github.com/magicdawn/finder-sort/internal/port"
)

// Comparator orders sort keys segment by segment using locale collation.
type Comparator struct {
	collator port.Collator
}

func NewComparator(collator port.Collator) *Comparator {
	return &Comparator{collator: collator}
}

// Compare returns -1, 0 or 1. The first segment pair that differs decides
// the order. If the collator ranks two different segments as equal, the
// whole keys are compared bytewise instead.
// When one key is a prefix of the other, the shorter key sorts first.
func (c *Comparator) Compare(a, b domain.SortKey) int {
	for i := range min(len(a), len(b)) {
		if a[i] == b[i] {
			continue
		}
		if r := c.collator.CompareString(a[i], b[i]); r != 0 {
			return cmp.Compare(r, 0)
		}
		return slices.Compare(a, b)
	}
	return cmp.Compare(len(a), len(b))
}
