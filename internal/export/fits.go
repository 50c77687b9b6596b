// Package export serialises decoded SPS datasets into interchange formats:
// a FITS image container, tabular CSV, a raw numeric array dump and an
// optional PNG spectrogram.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/radiosky-data/spectro.report/internal/sps"
	"github.com/radiosky-data/spectro.report/internal/units"
)

// FITS primary-HDU layout constants. FITS stores data in fixed 2880-byte
// blocks; every header card is exactly 80 bytes of ASCII.
const (
	fitsBlockSize = 2880
	fitsCardSize  = 80

	// FITS has no unsigned 16-bit type. Unsigned data is stored as signed
	// 16-bit with the conventional BZERO offset so readers recover the
	// original values.
	fitsBZero = 32768
)

// WriteFITS writes ds as a single-HDU FITS image: 16-bit data, NAXIS1 =
// samples per sweep, NAXIS2 = sweeps. Annotation cards carry the object
// name, site coordinates and the derived observation start/end timestamps.
func WriteFITS(w io.Writer, ds *sps.Dataset) error {
	var cards []string
	cards = append(cards,
		cardLogical("SIMPLE", true, "conforms to FITS standard"),
		cardInt("BITPIX", 16, "16-bit signed integers"),
		cardInt("NAXIS", 2, "number of data axes"),
		cardInt("NAXIS1", ds.Cols, "samples per sweep"),
		cardInt("NAXIS2", ds.Rows, "number of sweeps"),
		cardInt("BZERO", fitsBZero, "offset for unsigned 16-bit data"),
		cardInt("BSCALE", 1, "data scaling"),
		cardString("OBJECT", "RSS Spectrogram", ""),
		cardString("BUNIT", "Intensity", ""),
		cardString("DATE-OBS", units.FormatTimestamp(ds.Meta.Start), "observation start"),
		cardString("DATE-END", units.FormatTimestamp(ds.Meta.End), "observation end"),
		cardFloat("LATITUDE", ds.Meta.Latitude, "site latitude, degrees"),
		cardFloat("LONGITUD", ds.Meta.Longitude, "site longitude, degrees"),
		cardString("TELESCOP", strings.TrimRight(ds.Meta.Name, " "), ""),
		cardString("INSTRUME", strings.TrimRight(ds.Meta.Source, " "), ""),
		cardComment("Created from SPS sweep data"),
		padCard("END"),
	)

	header := strings.Join(cards, "")
	if pad := len(header) % fitsBlockSize; pad != 0 {
		header += strings.Repeat(" ", fitsBlockSize-pad)
	}
	if _, err := io.WriteString(w, header); err != nil {
		return fmt.Errorf("failed to write FITS header: %w", err)
	}

	// Data: big-endian int16, value - BZERO.
	data := make([]byte, 0, ds.Rows*ds.Cols*2)
	for _, v := range ds.Samples {
		s := int32(v) - fitsBZero
		data = append(data, byte(uint16(s)>>8), byte(uint16(s)))
	}
	if pad := len(data) % fitsBlockSize; pad != 0 {
		data = append(data, make([]byte, fitsBlockSize-pad)...)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write FITS data: %w", err)
	}
	return nil
}

// padCard pads a card image to exactly 80 bytes.
func padCard(s string) string {
	if len(s) > fitsCardSize {
		s = s[:fitsCardSize]
	}
	return s + strings.Repeat(" ", fitsCardSize-len(s))
}

// keyEquals renders "KEYWORD = " with the keyword left-justified in 8 bytes.
func keyEquals(key string) string {
	return fmt.Sprintf("%-8s= ", key)
}

// cardLogical renders a FITS logical card: T/F right-justified at byte 30.
func cardLogical(key string, v bool, comment string) string {
	val := "F"
	if v {
		val = "T"
	}
	return valueCard(key, fmt.Sprintf("%20s", val), comment)
}

// cardInt renders an integer card, right-justified at byte 30.
func cardInt(key string, v int, comment string) string {
	return valueCard(key, fmt.Sprintf("%20d", v), comment)
}

// cardFloat renders a floating-point card, right-justified at byte 30.
func cardFloat(key string, v float64, comment string) string {
	return valueCard(key, fmt.Sprintf("%20G", v), comment)
}

// cardString renders a quoted string card. Single quotes inside the value
// are doubled per the standard; the value field is at least 8 characters.
func cardString(key, v, comment string) string {
	quoted := "'" + fmt.Sprintf("%-8s", strings.ReplaceAll(v, "'", "''")) + "'"
	return valueCard(key, quoted, comment)
}

func valueCard(key, value, comment string) string {
	card := keyEquals(key) + value
	if comment != "" {
		card += " / " + comment
	}
	return padCard(card)
}

// cardComment renders a COMMENT card (no value indicator).
func cardComment(text string) string {
	return padCard("COMMENT " + text)
}
