package omf

import (
	"fmt"
	"os"
)

// libMagic is LIBHEAD's record type byte: every OMF library archive opens
// with a library header record, the same way every object module opens
// with a THEADR record.
const libMagic = 0xf0

// libEnd is LIBEND's record type byte, marking the start of the trailing
// dictionary that follows the last module in an archive.
const libEnd = 0xf1

// Verbose gates the one-line diagnostics LibraryIndex writes to os.Stderr
// when a module's frames cannot be walked, mirroring the teacher's
// package-level VerboseMode switch used around ELF/PE/Mach-O section
// layout. The decoder itself (Framer, Decode) never logs; this is the only
// place in the package with something worth logging in its normal path.
var Verbose bool

func logf(format string, args ...interface{}) {
	if Verbose {
		fmt.Fprintf(os.Stderr, "omf: "+format+"\n", args...)
	}
}

// LibraryIndex locates successive object-module byte ranges inside a
// library archive buffer. Each returned slice is independently decodable
// with NewFramer/Decode (or NewModule); a decode failure in a returned slice
// does not affect the index, and the caller can still call Next for the
// following module. If the index itself cannot frame a module (truncated or
// bad-checksum record), Next reports no further modules; the modules after it
// are not returned.
type LibraryIndex struct {
	buf      []byte
	pageSize int
	pos      int
}

// NewLibraryIndex parses buf's LIBHEAD record and positions the index at
// the first module. It fails if buf does not open with the library magic
// record type or if the LIBHEAD frame itself is malformed.
func NewLibraryIndex(buf []byte) (*LibraryIndex, error) {
	if len(buf) == 0 || buf[0] != libMagic {
		return nil, newErr(ErrTruncatedHeader, 0, "buffer does not open with a LIBHEAD record")
	}

	framer := NewFramer(buf)
	header, err := framer.Next()
	if err != nil {
		return nil, err
	}

	// Per the OMF library convention, every page (including the header's
	// own) is exactly the header record's on-disk length, padded out with
	// arbitrary filler bytes to that boundary.
	pageSize := 3 + len(header.Payload) + 1 // +1 restores the checksum byte Framer stripped
	if pageSize <= 0 {
		return nil, newErr(ErrTruncatedHeader, 0, "LIBHEAD declares a non-positive page size")
	}

	return &LibraryIndex{buf: buf, pageSize: pageSize, pos: pageSize}, nil
}

// Next returns the byte range of the next module in the archive, or
// (nil, false) once only the trailing dictionary (or nothing) remains, or
// when a record of the module cannot be framed.
func (li *LibraryIndex) Next() ([]byte, bool) {
	if li.pos >= len(li.buf) {
		return nil, false
	}
	if li.buf[li.pos] == libEnd {
		return nil, false
	}

	start := li.pos
	framer := NewFramer(li.buf[start:])

	for {
		frame, err := framer.Next()
		if err != nil {
			logf("module at offset 0x%x failed to frame: %v", start, err)
			return nil, false
		}
		if frame == nil {
			// Ran off the end of the buffer without a MODEND; treat
			// whatever remains as the last (possibly truncated) module.
			break
		}
		if frame.RecType == recMODEND || frame.RecType == recMODEND32 {
			break
		}
	}

	end := start + framer.Offset()
	li.pos = nextPageBoundary(end, li.pageSize)
	return li.buf[start:end], true
}

func nextPageBoundary(offset, pageSize int) int {
	if offset%pageSize == 0 {
		return offset
	}
	return (offset/pageSize + 1) * pageSize
}
