package sps

// Decode runs the full single-file pipeline over src: parse the header,
// locate the data start, scan the sweep stream and assemble the rectangular
// dataset. Each stage depends on the previous stage's complete output, so the
// decode is strictly sequential. dropped reports sample words discarded from
// an unterminated trailing sweep (see DecodeSweeps).
func Decode(src *ByteSource) (ds *Dataset, dropped int, err error) {
	header := ParseHeader(src)

	sweeps, dropped, err := DecodeSweeps(src, header.DataStart())
	if err != nil {
		return nil, 0, err
	}

	ds, err = Assemble(sweeps, header)
	if err != nil {
		return nil, 0, err
	}
	return ds, dropped, nil
}
