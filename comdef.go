package omf

// comdefFarDataType is the COMDEF datatype byte indicating a "far" (element
// count x element size) common, whose length is the product of two encoded
// lengths rather than one.
const comdefFarDataType = 0x61

// decodeCommLength decodes a COMDEF encoded-length field: a lead byte
// <= 0x80 is the value itself; 0x81/0x82/0x83 are followed by a 2/3/4-byte
// little-endian length. Any other lead byte is an error.
func decodeCommLength(c *cursor) (uint64, error) {
	lead, err := c.nextByte()
	if err != nil {
		return 0, err
	}
	switch {
	case lead <= 0x80:
		return uint64(lead), nil
	case lead == 0x81:
		v, err := c.nextUint(2)
		return uint64(v), err
	case lead == 0x82:
		v, err := c.nextUint(3)
		return uint64(v), err
	case lead == 0x83:
		v, err := c.nextUint(4)
		return uint64(v), err
	default:
		return 0, newErr(ErrBadCommLength, c.offset, "invalid COMDEF length lead byte")
	}
}

// decodeComdef decodes a COMDEF record: a loop of (counted name, type
// index, datatype byte, encoded length) entries. A "far" datatype (0x61)
// carries a second encoded length, and the final length is the product of
// the two (element count times element size).
func decodeComdef(c *cursor) (Record, error) {
	var commons []Common
	for !c.end() {
		name, err := c.nextStr()
		if err != nil {
			return nil, err
		}
		typeIdx, err := c.nextIndex()
		if err != nil {
			return nil, err
		}
		dataType, err := c.nextByte()
		if err != nil {
			return nil, err
		}
		length, err := decodeCommLength(c)
		if err != nil {
			return nil, err
		}
		if dataType == comdefFarDataType {
			elemSize, err := decodeCommLength(c)
			if err != nil {
				return nil, err
			}
			length *= elemSize
		}
		commons = append(commons, Common{Name: name, Length: length, DataType: dataType, TypeIdx: typeIdx})
	}
	return COMDEF{Commons: commons}, nil
}
