package sps

// ByteSource is an immutable, bounds-checked view over one file's raw bytes.
// A decode session owns exactly one ByteSource; all stages (header parse,
// sweep scan) read through it, and because it never mutates, pipelined reads
// need no synchronisation.
type ByteSource struct {
	data []byte
}

// NewByteSource wraps raw bytes in a read-only source. The caller must not
// modify data afterwards.
func NewByteSource(data []byte) *ByteSource {
	return &ByteSource{data: data}
}

// Size returns the total length of the source in bytes.
func (s *ByteSource) Size() int {
	return len(s.data)
}

// Read returns exactly length bytes starting at offset, or a *BoundsError if
// the request extends past the end of the source. A read ending exactly at
// the last byte succeeds; exceeding it by one fails. The returned slice
// aliases the underlying data and must be treated as read-only.
func (s *ByteSource) Read(offset, length int) ([]byte, error) {
	if offset < 0 || length < 0 || offset+length > len(s.data) {
		return nil, &BoundsError{Offset: offset, Length: length, Size: len(s.data)}
	}
	return s.data[offset : offset+length], nil
}
