package sps

import (
	"encoding/binary"
	"fmt"
	"math"
)

// FieldKind identifies how a fixed-size byte slice is interpreted.
//
// The SPS format mixes two byte orders: every header scalar is little-endian,
// but the 16-bit words of the sweep stream (sample values and the end-of-sweep
// delimiter) are big-endian. This is a hard requirement of the external format,
// not a quirk to normalise away, so the two orders are kept as separately
// named decode paths below.
type FieldKind int

const (
	KindString FieldKind = iota // 7-bit ASCII, trailing padding preserved
	KindReal64                  // little-endian IEEE-754 double
	KindInt16                   // little-endian signed 16-bit
	KindInt32                   // little-endian signed 32-bit
	KindUint16                  // big-endian unsigned 16-bit (sweep words)
)

// String returns the schema name of the kind.
func (k FieldKind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindReal64:
		return "Real64"
	case KindInt16:
		return "Int16"
	case KindInt32:
		return "Int32"
	case KindUint16:
		return "UInt16"
	}
	return fmt.Sprintf("FieldKind(%d)", int(k))
}

// DecodeField interprets b according to kind and returns the scalar value as
// string, float64, int16, int32 or uint16. Passing an unknown kind, or a
// slice shorter than the kind's width, is a programming error and panics:
// callers supply sizes from the fixed header schema, so a mismatch means the
// schema itself is wrong.
func DecodeField(kind FieldKind, b []byte) any {
	switch kind {
	case KindString:
		return string(b)
	case KindReal64:
		return decodeReal64(b)
	case KindInt16:
		return decodeInt16(b)
	case KindInt32:
		return decodeInt32(b)
	case KindUint16:
		return DecodeWord(b)
	}
	panic(fmt.Sprintf("sps: decode of unknown field kind %d", int(kind)))
}

// EncodeField is the inverse of DecodeField for the header scalar kinds. It
// exists so header round-trip behaviour is testable; the decoder itself never
// writes SPS data.
func EncodeField(kind FieldKind, v any) []byte {
	switch kind {
	case KindString:
		return []byte(v.(string))
	case KindReal64:
		b := make([]byte, 8)
		binary.LittleEndian.PutUint64(b, math.Float64bits(v.(float64)))
		return b
	case KindInt16:
		b := make([]byte, 2)
		binary.LittleEndian.PutUint16(b, uint16(v.(int16)))
		return b
	case KindInt32:
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, uint32(v.(int32)))
		return b
	case KindUint16:
		b := make([]byte, 2)
		binary.BigEndian.PutUint16(b, v.(uint16))
		return b
	}
	panic(fmt.Sprintf("sps: encode of unknown field kind %d", int(kind)))
}

// DecodeWord interprets two bytes as a big-endian unsigned 16-bit word. This
// is the sweep-stream decode path; the delimiter check in the sweep scanner
// goes through the same function so sample values and delimiter detection can
// never disagree on byte order.
func DecodeWord(b []byte) uint16 {
	return binary.BigEndian.Uint16(b)
}

// decodeReal64 interprets eight bytes as a little-endian IEEE-754 double.
func decodeReal64(b []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}

// decodeInt16 interprets two bytes as a little-endian signed 16-bit integer.
func decodeInt16(b []byte) int16 {
	return int16(binary.LittleEndian.Uint16(b))
}

// decodeInt32 interprets four bytes as a little-endian signed 32-bit integer.
func decodeInt32(b []byte) int32 {
	return int32(binary.LittleEndian.Uint32(b))
}
