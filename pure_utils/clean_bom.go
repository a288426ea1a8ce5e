package pure_utils

import (
	"bufio"
	"bytes"
	"io"
)

var utf8Bom = []byte{0xef, 0xbb, 0xbf}

// NewReaderWithoutBom wraps r, skipping a leading UTF-8 byte order mark when
// one is present.
func NewReaderWithoutBom(r io.Reader) io.Reader {
	buf := bufio.NewReader(r)
	head, err := buf.Peek(len(utf8Bom))
	if err != nil {
		// fewer than 3 bytes, nothing to strip
		return buf
	}
	if bytes.Equal(head, utf8Bom) {
		_, _ = buf.Discard(len(utf8Bom))
	}
	return buf
}
