package sps

import (
	"bytes"
	"testing"
)

func TestParseHeaderAllFields(t *testing.T) {
	src := NewByteSource(buildTestHeader(12))
	h := ParseHeader(src)

	if h.Version != "SPS-2.00  " {
		t.Errorf("Version = %q, want %q", h.Version, "SPS-2.00  ")
	}
	if h.Start != 42.5 {
		t.Errorf("Start = %v, want 42.5", h.Start)
	}
	if h.End != 42.75 {
		t.Errorf("End = %v, want 42.75", h.End)
	}
	if h.Latitude != 51.5074 {
		t.Errorf("Latitude = %v, want 51.5074", h.Latitude)
	}
	if h.Longitude != -0.1278 {
		t.Errorf("Longitude = %v, want -0.1278", h.Longitude)
	}
	if h.ChartMax != 2500 || h.ChartMin != 100 {
		t.Errorf("Chart bounds = %v/%v, want 2500/100", h.ChartMax, h.ChartMin)
	}
	if h.TimeZone != -5 {
		t.Errorf("TimeZone = %d, want -5", h.TimeZone)
	}
	if h.Source != "RSP-DUAL  " {
		t.Errorf("Source = %q, want %q", h.Source, "RSP-DUAL  ")
	}
	if h.Author != "Jove Observatory    " {
		t.Errorf("Author = %q", h.Author)
	}
	if h.Name != "Test Antenna        " {
		t.Errorf("Name = %q", h.Name)
	}
	if h.Location != "Greenwich, London, United Kingdom       " {
		t.Errorf("Location = %q", h.Location)
	}
	if h.Channels != 1 {
		t.Errorf("Channels = %d, want 1", h.Channels)
	}
	if h.NoteLength != 12 {
		t.Errorf("NoteLength = %d, want 12", h.NoteLength)
	}
}

func TestHeaderDataStart(t *testing.T) {
	src := NewByteSource(buildTestHeader(40))
	h := ParseHeader(src)

	// Fixed region is bytes 1..156; the note occupies NoteLength bytes; the
	// sweep stream starts at NoteLength + 157 - 1, 0-indexed.
	if got := h.DataStart(); got != 40+157-1 {
		t.Errorf("DataStart() = %d, want %d", got, 40+157-1)
	}
}

// Truncated files degrade per field rather than failing the whole parse:
// fields that fit inside the truncated image decode normally, fields past the
// end resolve to their zero value.
func TestParseHeaderTruncatedDegradesPerField(t *testing.T) {
	full := buildTestHeader(0)
	src := NewByteSource(full[:60]) // through TimeZone, nothing after
	h := ParseHeader(src)

	if h.Version != "SPS-2.00  " {
		t.Errorf("Version should survive truncation, got %q", h.Version)
	}
	if h.Start != 42.5 {
		t.Errorf("Start should survive truncation, got %v", h.Start)
	}
	if h.TimeZone != -5 {
		t.Errorf("TimeZone should survive truncation, got %d", h.TimeZone)
	}
	if h.Source != "" {
		t.Errorf("Source lies past EOF, want empty, got %q", h.Source)
	}
	if h.Channels != 0 {
		t.Errorf("Channels lies past EOF, want 0, got %d", h.Channels)
	}
	if h.NoteLength != 0 {
		t.Errorf("NoteLength lies past EOF, want 0, got %d", h.NoteLength)
	}
}

func TestParseHeaderEmptySource(t *testing.T) {
	h := ParseHeader(NewByteSource(nil))
	if h.Version != "" || h.Start != 0 || h.NoteLength != 0 {
		t.Errorf("empty source should yield an all-zero header, got %+v", h)
	}
	if h.DataStart() != 156 {
		t.Errorf("DataStart() of zero header = %d, want 156", h.DataStart())
	}
}

// Re-encoding every schema field at its declared offset must reproduce the
// original header bytes exactly (round trip for header-only data).
func TestHeaderRoundTrip(t *testing.T) {
	orig := buildTestHeader(12)
	h := ParseHeader(NewByteSource(orig))

	rebuilt := make([]byte, len(orig))
	for _, f := range HeaderSchema {
		enc := EncodeField(f.Kind, h.Field(f.Name))
		if len(enc) != f.Size {
			t.Fatalf("field %s encoded to %d bytes, schema says %d", f.Name, len(enc), f.Size)
		}
		copy(rebuilt[f.Offset-1:], enc)
	}

	if !bytes.Equal(rebuilt, orig) {
		t.Errorf("header round trip mismatch:\n got % x\nwant % x", rebuilt, orig)
	}
}

func TestHeaderFieldLookup(t *testing.T) {
	h := ParseHeader(NewByteSource(buildTestHeader(7)))

	if got := h.Field("NoteLength"); got != int32(7) {
		t.Errorf("Field(NoteLength) = %v, want 7", got)
	}
	if got := h.Field("NoSuchField"); got != nil {
		t.Errorf("Field of unknown name = %v, want nil", got)
	}
}
