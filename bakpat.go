package omf

func decodeBakpatLocation(offset int, v byte) (BakpatLocation, error) {
	switch v {
	case 0:
		return BakpatByte, nil
	case 1:
		return BakpatWord, nil
	case 2, 9:
		return BakpatDword, nil
	default:
		return 0, newErr(ErrInvalidEnum, offset, "invalid BAKPAT location")
	}
}

// decodeBakpat decodes a BAKPAT record: a segment index, a location byte,
// then a loop of (offset, value) pairs until the payload is exhausted.
func decodeBakpat(c *cursor, is32 bool) (Record, error) {
	seg, err := c.nextIndex()
	if err != nil {
		return nil, err
	}
	locByte, err := c.nextByte()
	if err != nil {
		return nil, err
	}
	loc, err := decodeBakpatLocation(c.offset, locByte)
	if err != nil {
		return nil, err
	}

	width := 2
	if is32 {
		width = 4
	}

	var fixups []BakpatFixup
	for !c.end() {
		off, err := c.nextUint(width)
		if err != nil {
			return nil, err
		}
		val, err := c.nextUint(width)
		if err != nil {
			return nil, err
		}
		fixups = append(fixups, BakpatFixup{Offset: off, Value: val})
	}

	return BAKPAT{Seg: seg, Location: loc, Fixups: fixups}, nil
}
