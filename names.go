package omf

// NameTable is the running, 1-based table of strings accumulated from every
// LNAMES record seen in a module. SEGDEF, GRPDEF, CEXTDEF, and COMDAT
// reference names by index into this table rather than carrying the string
// inline; the decoder itself never resolves these indices (it keeps no state
// across frames), so resolution is a small, separate type the caller drives
// alongside decoding.
type NameTable struct {
	names []string
}

// Append records the names carried by one LNAMES record, in order.
func (t *NameTable) Append(names ...string) {
	t.names = append(t.names, names...)
}

// Resolve looks up a 1-based NameIdx. idx == 0 ("no reference") always
// misses, matching the OMF convention that zero is not a valid index.
func (t *NameTable) Resolve(idx int) (string, bool) {
	if idx <= 0 || idx > len(t.names) {
		return "", false
	}
	return t.names[idx-1], true
}

// Len reports how many names have been appended so far.
func (t *NameTable) Len() int {
	return len(t.names)
}
