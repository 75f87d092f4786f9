package collation

import (
	"fmt"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/magicdawn/finder-sort/internal/domain"
)

// Collator implements port.Collator on top of golang.org/x/text/collate.
// A collate.Collator reuses internal buffers between calls, so each
// comparison borrows its own instance from a pool.
type Collator struct {
	pool sync.Pool
}

// New returns a Collator for tag. language.Und selects the root collation.
func New(tag language.Tag) *Collator {
	c := &Collator{}
	c.pool.New = func() any {
		return collate.New(tag)
	}
	return c
}

// ParseLocale parses a BCP 47 tag. The empty string maps to language.Und.
func ParseLocale(locale string) (language.Tag, error) {
	if locale == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q: %s", domain.ErrInvalidLocale, locale, err)
	}
	return tag, nil
}

func (c *Collator) CompareString(a, b string) int {
	col := c.pool.Get().(*collate.Collator)
	defer c.pool.Put(col)
	return col.CompareString(a, b)
}
