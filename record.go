// Package omf decodes Object Module Format (OMF) object files and library
// archives: the binary, record-oriented format historically produced by
// 16-bit and 32-bit compilers and consumed by linkers. The package turns a
// byte buffer into a sequence of strongly-typed records; it does not
// interpret the semantic relationships between them (segment/fixup
// resolution is a linker's job) and performs no I/O of its own.
package omf

// Record is implemented by every decoded record variant. The marker method
// keeps the set closed to this package, the way the teacher's AST node
// types close their own variant sets.
type Record interface {
	isRecord()
}

// Unknown is returned for a recognized frame whose type byte has no
// sub-decoder registered. This is not an error: OMF is an extensible format
// and producers ship record types this decoder does not recognize.
type Unknown struct {
	RecType byte
}

func (Unknown) isRecord() {}

// THEADR carries the module's source name.
type THEADR struct {
	Name string
}

func (THEADR) isRecord() {}

// StartAddress is MODEND's optional entry-point fixup. It carries the raw
// fix_data byte, the same way the original objfile.rs does, and exposes the
// frame/target thread bits through accessor methods rather than
// pre-decoding them into separate booleans.
type StartAddress struct {
	FixData       byte
	FrameDatum    int
	HasFrameDatum bool

	TargetDatum    int
	HasTargetDatum bool

	TargetDisp    uint32
	HasTargetDisp bool
}

// FrameThread reports whether the frame half of FixData names a thread slot
// (bit 0x80) rather than an inline method.
func (s StartAddress) FrameThread() bool { return s.FixData&0x80 != 0 }

// FrameThreadNo returns the frame thread slot number; only meaningful when
// FrameThread reports true.
func (s StartAddress) FrameThreadNo() int { return int((s.FixData >> 4) & 0x03) }

// TargetThread reports whether the target half of FixData names a thread
// slot (bit 0x08) rather than an inline reference.
func (s StartAddress) TargetThread() bool { return s.FixData&0x08 != 0 }

// TargetThreadNo returns the target thread slot number; only meaningful when
// TargetThread reports true.
func (s StartAddress) TargetThreadNo() int { return int(s.FixData & 0x03) }

// MODEND marks the end of a module.
type MODEND struct {
	Main         bool
	StartAddress *StartAddress
}

func (MODEND) isRecord() {}

// LNAMES appends to the module's running, 1-based name table.
type LNAMES struct {
	Names []string
}

func (LNAMES) isRecord() {}

// SEGDEF carries one or more segment definitions.
type SEGDEF struct {
	Segs []Segdef
}

func (SEGDEF) isRecord() {}

// GRPDEF is an ordered list of segment indices under one group name.
type GRPDEF struct {
	Name int
	Segs []int
}

func (GRPDEF) isRecord() {}

// Extern is one EXTDEF/LEXTDEF entry: an externally-visible name and its
// type index.
type Extern struct {
	Name    string
	TypeIdx int
}

// EXTDEF declares external symbols referenced, not defined, by this module.
type EXTDEF struct {
	Externs []Extern
}

func (EXTDEF) isRecord() {}

// LEXTDEF is structurally identical to EXTDEF but declares local externs.
type LEXTDEF struct {
	Externs []Extern
}

func (LEXTDEF) isRecord() {}

// CExtern is one CEXTDEF entry: a name referenced by LNAMES index rather
// than inline string.
type CExtern struct {
	Name    int
	TypeIdx int
}

// CEXTDEF declares externs named by LNAMES index.
type CEXTDEF struct {
	Externs []CExtern
}

func (CEXTDEF) isRecord() {}

// Public is one PUBDEF/LPUBDEF entry.
type Public struct {
	Name    string
	Offset  uint32
	TypeIdx int
}

// PUBDEF declares public symbol definitions. Exactly one of (Group or Seg
// present) or Frame present holds.
type PUBDEF struct {
	Group    int
	HasGroup bool
	Seg      int
	HasSeg   bool
	Frame    uint16
	HasFrame bool
	Publics  []Public
}

func (PUBDEF) isRecord() {}

// LPUBDEF is structurally identical to PUBDEF but for local publics.
type LPUBDEF struct {
	Group    int
	HasGroup bool
	Seg      int
	HasSeg   bool
	Frame    uint16
	HasFrame bool
	Publics  []Public
}

func (LPUBDEF) isRecord() {}

// COMENT is a comment-class record; see Coment for its ~10 semantic variants.
type COMENT struct {
	Header ComentHeader
	Coment Coment
}

func (COMENT) isRecord() {}

// LEDATA is a contiguous run of segment initializer bytes.
type LEDATA struct {
	Seg    int
	Offset uint32
	Data   []byte
}

func (LEDATA) isRecord() {}

// BakpatFixup is one (offset, value) pair inside a BAKPAT record.
type BakpatFixup struct {
	Offset uint32
	Value  uint32
}

// BakpatLocation is the width of a BAKPAT patch location.
type BakpatLocation int

const (
	BakpatByte BakpatLocation = iota
	BakpatWord
	BakpatDword
)

// BAKPAT is a back-patch directive list for one segment.
type BAKPAT struct {
	Seg      int
	Location BakpatLocation
	Fixups   []BakpatFixup
}

func (BAKPAT) isRecord() {}

// FIXUPP carries a sequence of thread and fixup sub-records; see fixup.go.
type FIXUPP struct {
	Fixups []FixupSubrecord
}

func (FIXUPP) isRecord() {}

// Common is one COMDEF entry: a communal data declaration.
type Common struct {
	Name     string
	Length   uint64
	DataType byte
	TypeIdx  int
}

// COMDEF declares communal (tentative) data.
type COMDEF struct {
	Commons []Common
}

func (COMDEF) isRecord() {}

// AliasPair is one ALIAS entry.
type AliasPair struct {
	Alias      string
	Substitute string
}

// ALIAS maps alternate names onto their substitutes.
type ALIAS struct {
	Aliases []AliasPair
}

func (ALIAS) isRecord() {}

// Comdat is the payload of a COMDAT record.
type Comdat struct {
	Flags     byte
	Selection byte
	Alloc     byte
	Align     byte
	Offset    uint32
	TypeIdx   int
	Group     int
	HasGroup  bool
	Seg       int
	HasSeg    bool
	Frame     uint16
	HasFrame  bool
	Name      int
	Data      []byte
}

// COMDAT is a communal data definition with attributes, alignment, and
// inline initializer bytes.
type COMDAT struct {
	Comdat Comdat
}

func (COMDAT) isRecord() {}

// --- Shared value types ---

// Align is SEGDEF's alignment requirement, decoded from ACBP bits 7:5.
type Align int

const (
	AlignAbsolute Align = iota
	AlignByte
	AlignWord
	AlignParagraph
	AlignPage
	AlignDword
)

// Combine is SEGDEF's combination rule, decoded from ACBP bits 4:2.
type Combine int

const (
	CombinePrivate Combine = iota
	CombinePublic
	CombineStack
	CombineCommon
)

// AbsoluteSeg is present on a Segdef iff its Align is AlignAbsolute.
type AbsoluteSeg struct {
	Frame  uint16
	Offset byte
}

// Segdef is one segment definition inside a SEGDEF record.
type Segdef struct {
	Align    Align
	Combine  Combine
	Use32    bool
	Abs      *AbsoluteSeg
	Length   uint64
	Class    int
	HasClass bool
	Name     int
	HasName  bool
	Overlay  int
	HasOverlay bool
}

// ComentHeader carries a COMENT record's type and class bytes.
type ComentHeader struct {
	ComType  byte
	ComClass byte
}

// NoPurge reports whether the comment must survive into the linked output.
func (h ComentHeader) NoPurge() bool { return h.ComType&0x80 != 0 }

// NoList reports whether the comment should be suppressed from listings.
func (h ComentHeader) NoList() bool { return h.ComType&0x40 != 0 }

// WeakExternPair is one (weak, default) index pair in a WeakExtern comment.
type WeakExternPair struct {
	Weak    int
	Default int
}

// Coment is the tagged payload of a COMENT record's comment-class dispatch.
type Coment interface {
	isComent()
}

type ComentUnknown struct{}

func (ComentUnknown) isComent() {}

type ComentTranslator struct{ Text string }

func (ComentTranslator) isComent() {}

type ComentMemoryModel struct{ Text string }

func (ComentMemoryModel) isComent() {}

type ComentDosSeg struct{}

func (ComentDosSeg) isComent() {}

type ComentDefaultLibrary struct{ Name string }

func (ComentDefaultLibrary) isComent() {}

type ComentLinkPassSeparator struct{}

func (ComentLinkPassSeparator) isComent() {}

type ComentNewOMF struct{ Text string }

func (ComentNewOMF) isComent() {}

type ComentLibmod struct{ Name string }

func (ComentLibmod) isComent() {}

type ComentWeakExtern struct{ Externs []WeakExternPair }

func (ComentWeakExtern) isComent() {}

type ComentUser struct{ Text string }

func (ComentUser) isComent() {}
