package omf

func decodeAlign(offset int, v byte) (Align, error) {
	switch v {
	case 0:
		return AlignAbsolute, nil
	case 1:
		return AlignByte, nil
	case 2:
		return AlignWord, nil
	case 3:
		return AlignParagraph, nil
	case 4:
		return AlignPage, nil
	case 5:
		return AlignDword, nil
	default:
		return 0, newErr(ErrInvalidEnum, offset, "invalid SEGDEF align")
	}
}

// decodeCombine decodes ACBP bits 4:2. Values 2, 4, and 7 all collapse onto
// CombinePublic; that is not an oversight, it is what every OMF-producing
// toolchain since the mid-1980s relies on.
func decodeCombine(offset int, v byte) (Combine, error) {
	switch v {
	case 0:
		return CombinePrivate, nil
	case 2, 4, 7:
		return CombinePublic, nil
	case 5:
		return CombineStack, nil
	case 6:
		return CombineCommon, nil
	default:
		return 0, newErr(ErrInvalidEnum, offset, "invalid SEGDEF combine")
	}
}

// decodeSegdef decodes a SEGDEF record's payload: a loop of segment entries
// until the payload is exhausted.
func decodeSegdef(c *cursor, is32 bool) (Record, error) {
	var segs []Segdef
	width := 2
	if is32 {
		width = 4
	}

	for !c.end() {
		acbp, err := c.nextByte()
		if err != nil {
			return nil, err
		}

		align, err := decodeAlign(c.offset, acbp>>5)
		if err != nil {
			return nil, err
		}
		combine, err := decodeCombine(c.offset, (acbp>>2)&0x07)
		if err != nil {
			return nil, err
		}
		big := acbp&0x02 != 0
		use32 := acbp&0x01 != 0

		var abs *AbsoluteSeg
		if align == AlignAbsolute {
			frame, err := c.nextUint(2)
			if err != nil {
				return nil, err
			}
			off, err := c.nextByte()
			if err != nil {
				return nil, err
			}
			abs = &AbsoluteSeg{Frame: uint16(frame), Offset: off}
		}

		length, err := c.nextUint(width)
		if err != nil {
			return nil, err
		}
		var length64 uint64
		if big {
			if length != 0 {
				return nil, newErr(ErrBigBitWithNonZeroLength, c.offset, "SEGDEF length field non-zero with BIG bit set")
			}
			if is32 {
				length64 = 1 << 32
			} else {
				length64 = 1 << 16
			}
		} else {
			length64 = uint64(length)
		}

		class, hasClass, err := c.nextOptIndex()
		if err != nil {
			return nil, err
		}
		name, hasName, err := c.nextOptIndex()
		if err != nil {
			return nil, err
		}
		overlay, hasOverlay, err := c.nextOptIndex()
		if err != nil {
			return nil, err
		}

		segs = append(segs, Segdef{
			Align:      align,
			Combine:    combine,
			Use32:      use32,
			Abs:        abs,
			Length:     length64,
			Class:      class,
			HasClass:   hasClass,
			Name:       name,
			HasName:    hasName,
			Overlay:    overlay,
			HasOverlay: hasOverlay,
		})
	}

	return SEGDEF{Segs: segs}, nil
}

// decodeGrpdef decodes a GRPDEF record's payload: a group name index
// followed by a non-empty list of 0xff-tagged segment indices.
func decodeGrpdef(c *cursor) (Record, error) {
	name, err := c.nextIndex()
	if err != nil {
		return nil, err
	}

	var segs []int
	for !c.end() {
		typ, err := c.nextByte()
		if err != nil {
			return nil, err
		}
		if typ != 0xff {
			return nil, newErr(ErrBadGrpdefElement, c.offset, "GRPDEF element type is not 0xff")
		}
		idx, err := c.nextIndex()
		if err != nil {
			return nil, err
		}
		segs = append(segs, idx)
	}

	if len(segs) == 0 {
		return nil, newErr(ErrTruncatedGrpdef, c.offset, "GRPDEF names no segments")
	}

	return GRPDEF{Name: name, Segs: segs}, nil
}
