package omf

// Comment class bytes, per §4.4.
const (
	comClassTranslator        = 0x00
	comClassMemoryModel       = 0x9d
	comClassDosSeg            = 0x9e
	comClassDefaultLibrary    = 0x9f
	comClassNewOMF            = 0xa1
	comClassLinkPassSeparator = 0xa2
	comClassLibmod            = 0xa3
	comClassWeakExtern        = 0xa8
	comClassUser              = 0xdf
)

// decodeComent decodes a COMENT record: a comtype/comclass header followed
// by a payload whose shape is entirely determined by comclass.
func decodeComent(c *cursor) (Record, error) {
	comtype, err := c.nextByte()
	if err != nil {
		return nil, err
	}
	comclass, err := c.nextByte()
	if err != nil {
		return nil, err
	}
	header := ComentHeader{ComType: comtype, ComClass: comclass}

	coment, err := decodeComentPayload(c, comclass)
	if err != nil {
		return nil, err
	}
	return COMENT{Header: header, Coment: coment}, nil
}

func decodeComentPayload(c *cursor, comclass byte) (Coment, error) {
	switch comclass {
	case comClassTranslator:
		text, err := c.restStr()
		if err != nil {
			return nil, err
		}
		return ComentTranslator{Text: text}, nil

	case comClassMemoryModel:
		text, err := c.restStr()
		if err != nil {
			return nil, err
		}
		return ComentMemoryModel{Text: text}, nil

	case comClassDosSeg:
		return ComentDosSeg{}, nil

	case comClassDefaultLibrary:
		name, err := c.restStr()
		if err != nil {
			return nil, err
		}
		return ComentDefaultLibrary{Name: name}, nil

	case comClassNewOMF:
		text, err := c.restStr()
		if err != nil {
			return nil, err
		}
		return ComentNewOMF{Text: text}, nil

	case comClassLinkPassSeparator:
		return ComentLinkPassSeparator{}, nil

	case comClassLibmod:
		name, err := c.nextStr()
		if err != nil {
			return nil, err
		}
		return ComentLibmod{Name: name}, nil

	case comClassWeakExtern:
		var pairs []WeakExternPair
		for !c.end() {
			weak, err := c.nextIndex()
			if err != nil {
				return nil, err
			}
			def, err := c.nextIndex()
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, WeakExternPair{Weak: weak, Default: def})
		}
		return ComentWeakExtern{Externs: pairs}, nil

	case comClassUser:
		text, err := c.restStr()
		if err != nil {
			return nil, err
		}
		return ComentUser{Text: text}, nil

	default:
		return ComentUnknown{}, nil
	}
}
