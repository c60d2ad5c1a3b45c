package omf

// pubdefBody is the shared decode for PUBDEF and LPUBDEF, which are
// structurally identical: an optional (group, seg) pair or, if both are
// absent, an absolute frame, followed by a loop of public definitions.
type pubdefBody struct {
	group    int
	hasGroup bool
	seg      int
	hasSeg   bool
	frame    uint16
	hasFrame bool
	publics  []Public
}

func decodePubdefBody(c *cursor, is32 bool) (pubdefBody, error) {
	var body pubdefBody

	group, hasGroup, err := c.nextOptIndex()
	if err != nil {
		return body, err
	}
	seg, hasSeg, err := c.nextOptIndex()
	if err != nil {
		return body, err
	}
	body.group, body.hasGroup = group, hasGroup
	body.seg, body.hasSeg = seg, hasSeg

	if !hasGroup && !hasSeg {
		frame, err := c.nextUint(2)
		if err != nil {
			return body, err
		}
		body.frame = uint16(frame)
		body.hasFrame = true
	}

	width := 2
	if is32 {
		width = 4
	}

	for !c.end() {
		name, err := c.nextStr()
		if err != nil {
			return body, err
		}
		offset, err := c.nextUint(width)
		if err != nil {
			return body, err
		}
		typeIdx, err := c.nextIndex()
		if err != nil {
			return body, err
		}
		body.publics = append(body.publics, Public{Name: name, Offset: offset, TypeIdx: typeIdx})
	}

	return body, nil
}

func decodePubdef(c *cursor, is32 bool) (Record, error) {
	body, err := decodePubdefBody(c, is32)
	if err != nil {
		return nil, err
	}
	return PUBDEF{
		Group: body.group, HasGroup: body.hasGroup,
		Seg: body.seg, HasSeg: body.hasSeg,
		Frame: body.frame, HasFrame: body.hasFrame,
		Publics: body.publics,
	}, nil
}

func decodeLpubdef(c *cursor, is32 bool) (Record, error) {
	body, err := decodePubdefBody(c, is32)
	if err != nil {
		return nil, err
	}
	return LPUBDEF{
		Group: body.group, HasGroup: body.hasGroup,
		Seg: body.seg, HasSeg: body.hasSeg,
		Frame: body.frame, HasFrame: body.hasFrame,
		Publics: body.publics,
	}, nil
}
