package omf

import "testing"

func TestDecodeCOMDEF(t *testing.T) {
	buf := []byte{
		0xb0, 0x06, 0x00,
		0x01, 'X', 0x00, 0x01, 0x10,
		0x00,
	}
	rec := decodeOne(t, buf)
	cd, ok := rec.(COMDEF)
	if !ok {
		t.Fatalf("expected COMDEF, got %T", rec)
	}
	if len(cd.Commons) != 1 {
		t.Fatalf("got %d commons, want 1", len(cd.Commons))
	}
	c := cd.Commons[0]
	if c.Name != "X" || c.Length != 16 || c.DataType != 0x01 || c.TypeIdx != 0 {
		t.Errorf("common = %+v", c)
	}
}

func TestDecodeCOMDEFFarDataType(t *testing.T) {
	buf := []byte{
		0xb0, 0x09, 0x00,
		0x01, 'Y', 0x00, 0x61, 0x81, 0x05, 0x00, 0x02,
		0x00,
	}
	rec := decodeOne(t, buf)
	cd := rec.(COMDEF)
	c := cd.Commons[0]
	if c.DataType != comdefFarDataType {
		t.Errorf("DataType = 0x%x, want 0x%x", c.DataType, comdefFarDataType)
	}
	if c.Length != 10 {
		t.Errorf("Length = %d, want 10 (5 elements x 2 bytes)", c.Length)
	}
}

func TestDecodeCOMDEFBadLengthLead(t *testing.T) {
	buf := []byte{
		0xb0, 0x06, 0x00,
		0x01, 'Z', 0x00, 0x01, 0x90,
		0x00,
	}
	f := NewFramer(buf)
	frame, err := f.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	_, err = Decode(frame)
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != ErrBadCommLength {
		t.Fatalf("expected ErrBadCommLength, got %v", err)
	}
}
