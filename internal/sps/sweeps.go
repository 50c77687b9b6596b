package sps

// Sweep stream decoding.
//
// After the header and note, an SPS file is a run of big-endian 16-bit words.
// The reserved word 0xFEFE terminates a sweep; everything between delimiters
// is sample data. There is no declared sweep length anywhere in the header:
// record boundaries come from delimiter placement alone, so sweeps may in
// principle differ in width within one file (rectangularisation handles that
// at assembly time, see dataset.go).
//
// The scan is a two-state machine. It begins already inside the first sweep
// (there is no leading delimiter and therefore no idle state), and each
// delimiter word closes the current sweep and opens a new empty one. A sweep
// still open when the stream ends without a final delimiter is discarded, not
// emitted. Whether that trailing truncation is intended by the format or
// silently loses legitimate data is an open question upstream; the behaviour
// is preserved here, and DecodeSweeps reports the dropped word count so
// callers can at least log it.

const (
	// SweepDelimiter is the reserved big-endian word marking end of sweep.
	SweepDelimiter = 0xFEFE

	// wordSize is the width of one sweep-stream word in bytes.
	wordSize = 2
)

// Sweep is one delimiter-bounded record of consecutive 16-bit samples. A
// zero-length sweep (two adjacent delimiters) is legal and preserved.
type Sweep []uint16

// DecodeSweeps scans src from startOffset to the end of the file and returns
// the ordered list of delimiter-terminated sweeps. dropped is the number of
// sample words discarded from an unterminated trailing sweep (0 when the
// stream ends cleanly on a delimiter).
//
// Scanning stops when fewer than two bytes remain; a lone trailing byte (the
// end-of-file marker) is never read. Unlike header parsing, any read fault
// mid-stream is fatal to the whole file: DecodeSweeps returns nil sweeps and
// the error, and batch callers must skip the file rather than keep a partial
// dataset.
func DecodeSweeps(src *ByteSource, startOffset int) (sweeps []Sweep, dropped int, err error) {
	if startOffset < 0 {
		return nil, 0, &BoundsError{Offset: startOffset, Length: wordSize, Size: src.Size()}
	}

	// State: scanning always starts inside a sweep.
	current := Sweep{}

	for off := startOffset; off+wordSize <= src.Size(); off += wordSize {
		raw, err := src.Read(off, wordSize)
		if err != nil {
			// Abort the file; a partial dataset is worse than none.
			return nil, 0, err
		}
		word := DecodeWord(raw)
		if word == SweepDelimiter {
			// End of sweep: emit, even if empty, and reopen.
			sweeps = append(sweeps, current)
			current = Sweep{}
		} else {
			current = append(current, word)
		}
	}

	// An unterminated trailing sweep is dropped. Known data-loss risk,
	// preserved from the original decoder on purpose.
	return sweeps, len(current), nil
}
