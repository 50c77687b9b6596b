package sps

import "fmt"

// BoundsError reports a read that would exceed the byte source's extent.
// Header parsing recovers from it per field; the sweep stream treats it as
// fatal for the current file.
type BoundsError struct {
	Offset int // requested start offset
	Length int // requested byte count
	Size   int // total size of the source
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("read of %d bytes at offset %d exceeds source size %d (out of bounds by %d)",
		e.Length, e.Offset, e.Size, e.Offset+e.Length-e.Size)
}

// FormatError reports a file that does not look like an SPS stream: no
// delimiter was ever found, so zero sweeps were decoded. Batch processing
// skips the file and moves on.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "malformed SPS stream: " + e.Reason
}

// RaggedError reports sweeps of unequal width at assembly time. The file is
// rejected rather than padded or truncated to a rectangle.
type RaggedError struct {
	Sweep int // index of the first sweep whose width disagrees
	Want  int // width of sweep 0
	Got   int // width of the offending sweep
}

func (e *RaggedError) Error() string {
	return fmt.Sprintf("ragged sweep data: sweep %d has %d samples, expected %d", e.Sweep, e.Got, e.Want)
}
