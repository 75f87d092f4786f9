package lines

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

const maxLineSize = 1 << 20

// Codec implements port.PathCodec for delimiter-separated path lists, the
// format produced by find(1) with -print or -print0.
type Codec struct {
	Delim byte
}

// NewCodec returns a newline codec, or a NUL codec when null is set.
func NewCodec(null bool) *Codec {
	if null {
		return &Codec{Delim: 0}
	}
	return &Codec{Delim: '\n'}
}

func (c *Codec) Decode(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	scanner.Split(c.split)

	paths := []string{}
	for scanner.Scan() {
		line := scanner.Text()
		if c.Delim == '\n' {
			line = strings.TrimSuffix(line, "\r")
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading paths: %w", err)
	}
	return paths, nil
}

func (c *Codec) Encode(w io.Writer, paths []string) error {
	bw := bufio.NewWriter(w)
	for _, p := range paths {
		bw.WriteString(p)
		bw.WriteByte(c.Delim)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing paths: %w", err)
	}
	return nil
}

// split is bufio.ScanLines generalized to an arbitrary delimiter.
func (c *Codec) split(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, c.Delim); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
