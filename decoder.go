package omf

// OMF record type bytes, per §4.3's dispatch table.
const (
	recTHEADR    = 0x80
	recCOMENT    = 0x88
	recMODEND    = 0x8a
	recMODEND32  = 0x8b
	recEXTDEF    = 0x8c
	recPUBDEF    = 0x90
	recPUBDEF32  = 0x91
	recLNAMES    = 0x96
	recSEGDEF    = 0x98
	recSEGDEF32  = 0x99
	recGRPDEF    = 0x9a
	recFIXUPP    = 0x9c
	recFIXUPP32  = 0x9d
	recLEDATA    = 0xa0
	recLEDATA32  = 0xa1
	recCOMDEF    = 0xb0
	recBAKPAT    = 0xb2
	recBAKPAT32  = 0xb3
	recLEXTDEF   = 0xb4
	recLEXTDEF32 = 0xb5
	recLPUBDEF   = 0xb6
	recLPUBDEF32 = 0xb7
	recCEXTDEF   = 0xbc
	recCOMDAT    = 0xc2
	recCOMDAT32  = 0xc3
	recALIAS     = 0xc6
)

// Decode converts a frame into a typed Record. A type byte not present in
// the dispatch table yields Unknown, not an error — the framer has already
// validated length and checksum, and OMF is an extensible format.
//
// Width variants (is32 selects 2-byte vs 4-byte integer fields) are two type
// bytes sharing one sub-decoder; the low bit of the type byte conventionally
// marks the 32-bit variant, and producers occasionally emit the 32-bit type
// byte for a record whose fields would have fit in 16 bits — that is
// accepted; width affects read size only, never validity.
func Decode(frame *Frame) (Record, error) {
	c := newCursor(frame.Payload, frame.Offset)

	rec, err := decodeBody(c, frame.RecType)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func decodeBody(c *cursor, rectype byte) (Record, error) {
	switch rectype {
	case recTHEADR:
		name, err := c.nextStr()
		if err != nil {
			return nil, err
		}
		return THEADR{Name: name}, nil

	case recCOMENT:
		return decodeComent(c)

	case recMODEND:
		return decodeModend(c, false)
	case recMODEND32:
		return decodeModend(c, true)

	case recEXTDEF:
		externs, err := decodeExtdef(c)
		if err != nil {
			return nil, err
		}
		return EXTDEF{Externs: externs}, nil

	case recPUBDEF:
		return decodePubdef(c, false)
	case recPUBDEF32:
		return decodePubdef(c, true)

	case recLNAMES:
		return decodeLnames(c)

	case recSEGDEF:
		return decodeSegdef(c, false)
	case recSEGDEF32:
		return decodeSegdef(c, true)

	case recGRPDEF:
		return decodeGrpdef(c)

	case recFIXUPP:
		return decodeFixupRecord(c, false)
	case recFIXUPP32:
		return decodeFixupRecord(c, true)

	case recLEDATA:
		return decodeLedata(c, false)
	case recLEDATA32:
		return decodeLedata(c, true)

	case recCOMDEF:
		return decodeComdef(c)

	case recBAKPAT:
		return decodeBakpat(c, false)
	case recBAKPAT32:
		return decodeBakpat(c, true)

	case recLEXTDEF, recLEXTDEF32:
		externs, err := decodeExtdef(c)
		if err != nil {
			return nil, err
		}
		return LEXTDEF{Externs: externs}, nil

	case recLPUBDEF:
		return decodeLpubdef(c, false)
	case recLPUBDEF32:
		return decodeLpubdef(c, true)

	case recCEXTDEF:
		return decodeCextdef(c)

	case recCOMDAT:
		return decodeComdat(c, false)
	case recCOMDAT32:
		return decodeComdat(c, true)

	case recALIAS:
		return decodeAlias(c)

	default:
		return Unknown{RecType: rectype}, nil
	}
}

func decodeLnames(c *cursor) (Record, error) {
	var names []string
	for !c.end() {
		name, err := c.nextStr()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return LNAMES{Names: names}, nil
}
