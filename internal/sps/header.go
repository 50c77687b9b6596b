package sps

// SPS header schema. Offsets are 1-indexed as documented in the format
// reference and converted to 0-indexed reads at parse time. The fixed region
// ends at byte 156; a variable-length note of NoteLength bytes follows, then
// the sweep stream.
//
// Layout (offset, name, kind, size):
//
//	  1  Version     String  10
//	 11  Start       Real64   8
//	 19  End         Real64   8
//	 27  Latitude    Real64   8
//	 35  Longitude   Real64   8
//	 43  ChartMax    Real64   8
//	 51  ChartMin    Real64   8
//	 59  TimeZone    Int16    2
//	 61  Source      String  10
//	 71  Author      String  20
//	 91  Name        String  20
//	111  Location    String  40
//	151  Channels    Int16    2
//	153  NoteLength  Int32    4

// headerFixedEnd is the first 1-indexed byte position after the fixed header
// region. The sweep stream begins at NoteLength + headerFixedEnd - 1
// (0-indexed).
const headerFixedEnd = 157

// HeaderField is one entry of the fixed header schema.
type HeaderField struct {
	Offset int // 1-indexed byte position
	Name   string
	Kind   FieldKind
	Size   int // bytes
}

// HeaderSchema enumerates the 14 fixed header fields in file order.
var HeaderSchema = []HeaderField{
	{1, "Version", KindString, 10},
	{11, "Start", KindReal64, 8},
	{19, "End", KindReal64, 8},
	{27, "Latitude", KindReal64, 8},
	{35, "Longitude", KindReal64, 8},
	{43, "ChartMax", KindReal64, 8},
	{51, "ChartMin", KindReal64, 8},
	{59, "TimeZone", KindInt16, 2},
	{61, "Source", KindString, 10},
	{71, "Author", KindString, 20},
	{91, "Name", KindString, 20},
	{111, "Location", KindString, 40},
	{151, "Channels", KindInt16, 2},
	{153, "NoteLength", KindInt32, 4},
}

// Header is the decoded fixed-offset metadata block of one SPS file. String
// fields keep their trailing padding exactly as stored; Start and End are
// fractional day counts relative to the format epoch (see units.FromDayCount).
type Header struct {
	Version    string
	Start      float64
	End        float64
	Latitude   float64
	Longitude  float64
	ChartMax   float64
	ChartMin   float64
	TimeZone   int16
	Source     string
	Author     string
	Name       string
	Location   string
	Channels   int16
	NoteLength int32

	fields map[string]any
}

// ParseHeader applies the fixed schema against src and returns the decoded
// header. A field whose read would run past the end of the file degrades to
// its zero value instead of failing the parse, so truncated files still yield
// a partial header. ParseHeader itself never returns an error for short
// input; it only fails on a nil source.
func ParseHeader(src *ByteSource) *Header {
	h := &Header{fields: make(map[string]any, len(HeaderSchema))}
	for _, f := range HeaderSchema {
		raw, err := src.Read(f.Offset-1, f.Size)
		var v any
		if err != nil {
			// Truncated file: this field is absent. Degrade to the
			// kind's zero value rather than aborting the whole parse.
			v = zeroValue(f.Kind)
		} else {
			v = DecodeField(f.Kind, raw)
		}
		h.fields[f.Name] = v
		h.assign(f.Name, v)
	}
	return h
}

// Field returns the decoded value of the named schema field, or nil for a
// name outside the schema.
func (h *Header) Field(name string) any {
	return h.fields[name]
}

// DataStart returns the 0-indexed byte offset where the sweep stream begins:
// the fixed header region plus the variable-length note.
func (h *Header) DataStart() int {
	return int(h.NoteLength) + headerFixedEnd - 1
}

func (h *Header) assign(name string, v any) {
	switch name {
	case "Version":
		h.Version = v.(string)
	case "Start":
		h.Start = v.(float64)
	case "End":
		h.End = v.(float64)
	case "Latitude":
		h.Latitude = v.(float64)
	case "Longitude":
		h.Longitude = v.(float64)
	case "ChartMax":
		h.ChartMax = v.(float64)
	case "ChartMin":
		h.ChartMin = v.(float64)
	case "TimeZone":
		h.TimeZone = v.(int16)
	case "Source":
		h.Source = v.(string)
	case "Author":
		h.Author = v.(string)
	case "Name":
		h.Name = v.(string)
	case "Location":
		h.Location = v.(string)
	case "Channels":
		h.Channels = v.(int16)
	case "NoteLength":
		h.NoteLength = v.(int32)
	}
}

// zeroValue returns the degraded value used for a header field whose bytes
// lie past the end of a truncated file.
func zeroValue(kind FieldKind) any {
	switch kind {
	case KindString:
		return ""
	case KindReal64:
		return float64(0)
	case KindInt16:
		return int16(0)
	case KindInt32:
		return int32(0)
	case KindUint16:
		return uint16(0)
	}
	panic("sps: zero value of unknown field kind")
}
