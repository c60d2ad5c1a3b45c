package omf

// decodeModend decodes a MODEND record.
//
// The published spec claims bit 0x20 of modtype must be zero and bit 0x01
// must be one; real MS-toolchain output routinely violates both, so neither
// is enforced here. See SPEC_FULL.md §9.
func decodeModend(c *cursor, is32 bool) (Record, error) {
	modtype, err := c.nextByte()
	if err != nil {
		return nil, err
	}
	main := modtype&0x80 != 0
	hasStart := modtype&0x40 != 0

	if !hasStart {
		return MODEND{Main: main}, nil
	}

	fixData, err := c.nextByte()
	if err != nil {
		return nil, err
	}

	sa := StartAddress{FixData: fixData}
	fThread := fixData&0x80 != 0
	tThread := fixData&0x08 != 0
	suppressDisp := fixData&0x04 != 0

	if !fThread {
		method, err := decodeFrameMethod(c.offset, (fixData>>4)&0x07)
		if err != nil {
			return nil, err
		}
		if method.HasDatum() {
			idx, has, err := c.nextOptIndex()
			if err != nil {
				return nil, err
			}
			sa.FrameDatum = idx
			sa.HasFrameDatum = has
		}
	}

	if !tThread {
		idx, has, err := c.nextOptIndex()
		if err != nil {
			return nil, err
		}
		sa.TargetDatum = idx
		sa.HasTargetDatum = has
	}

	if !suppressDisp {
		width := 2
		if is32 {
			width = 4
		}
		disp, err := c.nextUint(width)
		if err != nil {
			return nil, err
		}
		sa.TargetDisp = disp
		sa.HasTargetDisp = true
	}

	return MODEND{Main: main, StartAddress: &sa}, nil
}
