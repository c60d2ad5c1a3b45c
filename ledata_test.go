package omf

import (
	"bytes"
	"testing"
)

func TestDecodeLEDATA(t *testing.T) {
	buf := []byte{
		0xa0, 0x08, 0x00,
		0x01, 0x34, 0x12, 0xde, 0xad, 0xbe, 0xef,
		0x00,
	}
	rec := decodeOne(t, buf)
	ld, ok := rec.(LEDATA)
	if !ok {
		t.Fatalf("expected LEDATA, got %T", rec)
	}
	if ld.Seg != 1 {
		t.Errorf("Seg = %d, want 1", ld.Seg)
	}
	if ld.Offset != 0x1234 {
		t.Errorf("Offset = 0x%x, want 0x1234", ld.Offset)
	}
	want := []byte{0xde, 0xad, 0xbe, 0xef}
	if !bytes.Equal(ld.Data, want) {
		t.Errorf("Data = %x, want %x", ld.Data, want)
	}
}

func TestDecodeLEDATA32(t *testing.T) {
	buf := []byte{
		0xa1, 0x08, 0x00,
		0x01, 0x78, 0x56, 0x34, 0x12, 0xca, 0xfe,
		0x00,
	}
	rec := decodeOne(t, buf)
	ld := rec.(LEDATA)
	if ld.Offset != 0x12345678 {
		t.Errorf("Offset = 0x%x, want 0x12345678", ld.Offset)
	}
	want := []byte{0xca, 0xfe}
	if !bytes.Equal(ld.Data, want) {
		t.Errorf("Data = %x, want %x", ld.Data, want)
	}
}
