package port

import "io"

//go:generate mockgen -source=port.go -destination=../mock/mock_port.go -package=mock

// Collator compares two strings under locale collation rules.
// Implementations must be safe for concurrent use.
type Collator interface {
	CompareString(a, b string) int
}

// PathCodec reads and writes delimited path lists.
type PathCodec interface {
	Decode(r io.Reader) ([]string, error)
	Encode(w io.Writer, paths []string) error
}
