package export

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/radiosky-data/spectro.report/internal/sps"
)

// Raw array dump: a minimal self-describing container for the bare numeric
// matrix, for consumers that want neither FITS nor text. Layout:
//
//	bytes 0-5   magic "SPSRAW"
//	byte  6     format version (1)
//	byte  7     reserved (0)
//	bytes 8-11  rows, little-endian uint32
//	bytes 12-15 cols, little-endian uint32
//	bytes 16-   samples, little-endian uint16, row-major
var rawMagic = [6]byte{'S', 'P', 'S', 'R', 'A', 'W'}

const rawVersion = 1

// WriteRaw writes the dataset's matrix as a raw array dump. Metadata other
// than the matrix dimensions is intentionally not carried; that is what the
// FITS and CSV forms are for.
func WriteRaw(w io.Writer, ds *sps.Dataset) error {
	hdr := make([]byte, 16)
	copy(hdr, rawMagic[:])
	hdr[6] = rawVersion
	binary.LittleEndian.PutUint32(hdr[8:], uint32(ds.Rows))
	binary.LittleEndian.PutUint32(hdr[12:], uint32(ds.Cols))
	if _, err := w.Write(hdr); err != nil {
		return fmt.Errorf("failed to write raw header: %w", err)
	}

	buf := make([]byte, len(ds.Samples)*2)
	for i, v := range ds.Samples {
		binary.LittleEndian.PutUint16(buf[i*2:], v)
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("failed to write raw samples: %w", err)
	}
	return nil
}

// ReadRaw parses a raw array dump back into dimensions and samples. It
// exists for consumers of the dump format (and for verifying writes); it is
// not an SPS reader.
func ReadRaw(r io.Reader) (rows, cols int, samples []uint16, err error) {
	hdr := make([]byte, 16)
	if _, err := io.ReadFull(r, hdr); err != nil {
		return 0, 0, nil, fmt.Errorf("failed to read raw header: %w", err)
	}
	if [6]byte(hdr[:6]) != rawMagic {
		return 0, 0, nil, fmt.Errorf("bad raw magic % x", hdr[:6])
	}
	if hdr[6] != rawVersion {
		return 0, 0, nil, fmt.Errorf("unsupported raw version %d", hdr[6])
	}

	rows = int(binary.LittleEndian.Uint32(hdr[8:]))
	cols = int(binary.LittleEndian.Uint32(hdr[12:]))

	buf := make([]byte, rows*cols*2)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, 0, nil, fmt.Errorf("raw dump truncated: %w", err)
	}
	samples = make([]uint16, rows*cols)
	for i := range samples {
		samples[i] = binary.LittleEndian.Uint16(buf[i*2:])
	}
	return rows, cols, samples, nil
}
