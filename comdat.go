package omf

// decodeComdat decodes a COMDAT record: flags, attributes (selection in the
// high nibble, allocation in the low nibble), alignment, offset, a type
// index, an optional group/seg pair (or, if both are absent, an absolute
// frame), a name index, and the remaining payload as inline data bytes.
func decodeComdat(c *cursor, is32 bool) (Record, error) {
	flags, err := c.nextByte()
	if err != nil {
		return nil, err
	}
	attrs, err := c.nextByte()
	if err != nil {
		return nil, err
	}
	align, err := c.nextByte()
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
	typeIdx, err := c.nextIndex()
	if err != nil {
		return nil, err
	}

	group, hasGroup, err := c.nextOptIndex()
	if err != nil {
		return nil, err
	}
	seg, hasSeg, err := c.nextOptIndex()
	if err != nil {
		return nil, err
	}

	var frame uint16
	var hasFrame bool
	if !hasGroup && !hasSeg {
		f, err := c.nextUint(2)
		if err != nil {
			return nil, err
		}
		frame = uint16(f)
		hasFrame = true
	}

	name, err := c.nextIndex()
	if err != nil {
		return nil, err
	}

	return COMDAT{Comdat: Comdat{
		Flags:     flags,
		Selection: attrs >> 4,
		Alloc:     attrs & 0x0f,
		Align:     align,
		Offset:    offset,
		TypeIdx:   typeIdx,
		Group:     group, HasGroup: hasGroup,
		Seg: seg, HasSeg: hasSeg,
		Frame: frame, HasFrame: hasFrame,
		Name: name,
		Data: c.restBytes(),
	}}, nil
}
