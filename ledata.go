package omf

// decodeLedata decodes a LEDATA record: a segment index, an offset, and the
// remainder of the payload copied out as initializer bytes.
func decodeLedata(c *cursor, is32 bool) (Record, error) {
	seg, err := c.nextIndex()
	if err != nil {
		return nil, err
	}
	width := 2
	if is32 {
		width = 4
	}
	offset, err := c.nextUint(width)
	if err != nil {
		return nil, err
	}
	return LEDATA{Seg: seg, Offset: offset, Data: c.restBytes()}, nil
}
