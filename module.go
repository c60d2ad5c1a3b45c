package omf

// Module drives a Framer and the record decoder over one object module's
// bytes, collecting every decoded Record and resolving the running name
// table as it goes. It stops at MODEND or at the first decode error,
// whichever comes first. This mirrors the original dostools implementation's
// decode_module loop (objfile.rs): spec.md scopes the library archive index
// in but leaves the per-module driving loop implicit, and every caller of
// Framer+Decode would otherwise hand-write this same glue.
type Module struct {
	names   NameTable
	records []Record
	err     error
}

// NewModule decodes buf, a single object module's bytes (not a library
// archive), eagerly: the whole module is walked during this call.
func NewModule(buf []byte) *Module {
	m := &Module{}
	framer := NewFramer(buf)

	for {
		frame, err := framer.Next()
		if err != nil {
			m.err = err
			return m
		}
		if frame == nil {
			return m
		}

		rec, err := Decode(frame)
		if err != nil {
			m.err = err
			return m
		}

		if ln, ok := rec.(LNAMES); ok {
			m.names.Append(ln.Names...)
		}

		m.records = append(m.records, rec)

		if _, ok := rec.(MODEND); ok {
			return m
		}
	}
}

// Records returns every record decoded before MODEND or the first error.
func (m *Module) Records() []Record {
	return m.records
}

// Names returns the module's running LNAMES table.
func (m *Module) Names() *NameTable {
	return &m.names
}

// Err returns the first decode error encountered, if any.
func (m *Module) Err() error {
	return m.err
}
