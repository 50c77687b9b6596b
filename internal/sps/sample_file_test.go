package sps

import "encoding/binary"

// Helpers for constructing synthetic SPS files in tests. Field values are
// written with the same endianness rules the decoder must honour: header
// scalars little-endian, sweep words big-endian.

func putString(b []byte, off1 int, s string) {
	copy(b[off1-1:], s)
}

func putReal64(b []byte, off1 int, v float64) {
	copy(b[off1-1:], EncodeField(KindReal64, v))
}

func putInt16(b []byte, off1 int, v int16) {
	copy(b[off1-1:], EncodeField(KindInt16, v))
}

func putInt32(b []byte, off1 int, v int32) {
	copy(b[off1-1:], EncodeField(KindInt32, v))
}

// buildTestHeader returns the 156-byte fixed header region populated with
// the canonical test values, declaring a note of noteLen bytes.
func buildTestHeader(noteLen int) []byte {
	b := make([]byte, 156)
	putString(b, 1, "SPS-2.00  ")
	putReal64(b, 11, 42.5)
	putReal64(b, 19, 42.75)
	putReal64(b, 27, 51.5074)
	putReal64(b, 35, -0.1278)
	putReal64(b, 43, 2500)
	putReal64(b, 51, 100)
	putInt16(b, 59, -5)
	putString(b, 61, "RSP-DUAL  ")
	putString(b, 71, "Jove Observatory    ")
	putString(b, 91, "Test Antenna        ")
	putString(b, 111, "Greenwich, London, United Kingdom       ")
	putInt16(b, 151, 1)
	putInt32(b, 153, int32(noteLen))
	return b
}

// appendWords appends big-endian 16-bit words to b.
func appendWords(b []byte, words ...uint16) []byte {
	for _, w := range words {
		var buf [2]byte
		binary.BigEndian.PutUint16(buf[:], w)
		b = append(b, buf[:]...)
	}
	return b
}

// buildTestFile assembles header + note + sweep words into a full SPS image.
func buildTestFile(note string, words ...uint16) []byte {
	b := buildTestHeader(len(note))
	b = append(b, note...)
	return appendWords(b, words...)
}
