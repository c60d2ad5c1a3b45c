package omf

// decodeExtdef decodes EXTDEF or LEXTDEF: a loop of (counted name, type
// index) pairs. The caller supplies which Record variant to wrap the result
// in, since the two record types are structurally identical.
func decodeExtdef(c *cursor) ([]Extern, error) {
	var externs []Extern
	for !c.end() {
		name, err := c.nextStr()
		if err != nil {
			return nil, err
		}
		typeIdx, err := c.nextIndex()
		if err != nil {
			return nil, err
		}
		externs = append(externs, Extern{Name: name, TypeIdx: typeIdx})
	}
	return externs, nil
}

// decodeCextdef decodes CEXTDEF: a loop of (name index, type index) pairs,
// where the name is a reference into the module's LNAMES table rather than
// an inline string.
func decodeCextdef(c *cursor) (Record, error) {
	var externs []CExtern
	for !c.end() {
		name, err := c.nextIndex()
		if err != nil {
			return nil, err
		}
		typeIdx, err := c.nextIndex()
		if err != nil {
			return nil, err
		}
		externs = append(externs, CExtern{Name: name, TypeIdx: typeIdx})
	}
	return CEXTDEF{Externs: externs}, nil
}
