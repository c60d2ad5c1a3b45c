package omf

import "testing"

func TestDecodeALIAS(t *testing.T) {
	buf := []byte{
		0xc6, 0x09, 0x00,
		0x03, 'F', 'O', 'O', 0x03, 'B', 'A', 'R',
		0x00,
	}
	rec := decodeOne(t, buf)
	al, ok := rec.(ALIAS)
	if !ok {
		t.Fatalf("expected ALIAS, got %T", rec)
	}
	if len(al.Aliases) != 1 {
		t.Fatalf("got %d pairs, want 1", len(al.Aliases))
	}
	p := al.Aliases[0]
	if p.Alias != "FOO" || p.Substitute != "BAR" {
		t.Errorf("pair = %+v", p)
	}
}
