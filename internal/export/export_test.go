package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radiosky-data/spectro.report/internal/sps"
)

// testDataset builds a small 3x4 dataset with annotation metadata.
func testDataset() *sps.Dataset {
	return &sps.Dataset{
		Rows: 3,
		Cols: 4,
		Samples: []uint16{
			100, 200, 300, 400,
			110, 210, 310, 410,
			120, 220, 320, 420,
		},
		Meta: sps.Metadata{
			Name:      "Test Antenna        ",
			Source:    "RSP-DUAL  ",
			Latitude:  51.5074,
			Longitude: -0.1278,
			TimeZone:  -5,
			Start:     time.Date(1900, time.February, 14, 12, 0, 0, 0, time.UTC),
			End:       time.Date(1900, time.February, 14, 18, 0, 0, 0, time.UTC),
		},
	}
}

func TestWriteFITSStructure(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFITS(&buf, testDataset()))

	out := buf.Bytes()
	require.Zero(t, len(out)%2880, "FITS output must be 2880-byte blocks")

	header := string(out[:2880])
	assert.True(t, strings.HasPrefix(header, "SIMPLE  =                    T"),
		"header must open with SIMPLE = T, got %q", header[:30])

	for _, want := range []string{
		"BITPIX  =                   16",
		"NAXIS   =                    2",
		"NAXIS1  =                    4",
		"NAXIS2  =                    3",
		"BZERO   =                32768",
		"OBJECT  = 'RSS Spectrogram'",
		"DATE-OBS= '1900-02-14T12:00:00'",
		"DATE-END= '1900-02-14T18:00:00'",
		"END",
	} {
		assert.Contains(t, header, want)
	}

	// Every card is 80 bytes, so values sit at fixed positions; check the
	// first data value: 100 - 32768 = -32668 big-endian.
	data := out[2880:]
	got := int16(uint16(data[0])<<8 | uint16(data[1]))
	assert.Equal(t, int16(100-32768), got)
}

func TestWriteFITSDataPadding(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFITS(&buf, testDataset()))

	// 12 samples = 24 data bytes, padded to one full 2880-byte block.
	assert.Equal(t, 2880*2, buf.Len())
}

func TestWriteCSVRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testDataset()))

	r := csv.NewReader(&buf)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)

	// 7 metadata rows + header + 3 sweeps.
	require.Len(t, records, 11)

	assert.Equal(t, []string{"# name", "Test Antenna"}, records[0])
	assert.Equal(t, []string{"# start", "1900-02-14T12:00:00"}, records[4])
	assert.Equal(t, []string{"# timezone", "-05:00"}, records[6])
	assert.Equal(t, []string{"sweep", "sample_0", "sample_1", "sample_2", "sample_3"}, records[7])
	assert.Equal(t, []string{"0", "100", "200", "300", "400"}, records[8])
	assert.Equal(t, []string{"2", "120", "220", "320", "420"}, records[10])
}

func TestWriteRawRoundTrip(t *testing.T) {
	ds := testDataset()
	var buf bytes.Buffer
	require.NoError(t, WriteRaw(&buf, ds))

	rows, cols, samples, err := ReadRaw(&buf)
	require.NoError(t, err)
	assert.Equal(t, ds.Rows, rows)
	assert.Equal(t, ds.Cols, cols)
	assert.Equal(t, ds.Samples, samples)
}

func TestReadRawBadMagic(t *testing.T) {
	_, _, _, err := ReadRaw(bytes.NewReader(make([]byte, 32)))
	assert.Error(t, err)
}

func TestStats(t *testing.T) {
	s := Stats(testDataset())
	assert.Equal(t, 100.0, s.Min)
	assert.Equal(t, 420.0, s.Max)
	assert.InDelta(t, 260.0, s.Mean, 1e-9)
	assert.Greater(t, s.StdDev, 0.0)
}

func TestStatsEmpty(t *testing.T) {
	s := Stats(&sps.Dataset{})
	assert.Zero(t, s)
}

func TestWritePlotProducesPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePlot(&buf, testDataset()))

	// PNG signature.
	require.Greater(t, buf.Len(), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, buf.Bytes()[:8])
}

func TestWritePlotEmptyDataset(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WritePlot(&buf, &sps.Dataset{}))
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]Format{
		"fits": FormatFITS,
		"csv":  FormatCSV,
		"raw":  FormatRaw,
	} {
		got, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.String())
	}

	_, err := ParseFormat("npy")
	assert.Error(t, err)
}

func TestFormatExt(t *testing.T) {
	assert.Equal(t, ".fits", FormatFITS.Ext())
	assert.Equal(t, ".csv", FormatCSV.Ext())
	assert.Equal(t, ".raw", FormatRaw.Ext())
}
