package omf

import (
	"bytes"
	"testing"
)

func TestFramerTHEADR(t *testing.T) {
	buf := []byte{
		0x80, 0x0e, 0x00, 0x0c, 0x64, 0x6f, 0x73, 0x5c,
		0x63, 0x72, 0x74, 0x30, 0x2e, 0x61, 0x73, 0x6d, 0xdc,
	}
	f := NewFramer(buf)
	frame, err := f.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if frame == nil {
		t.Fatal("expected a frame, got nil")
	}
	if frame.RecType != recTHEADR {
		t.Errorf("RecType = 0x%x, want 0x%x", frame.RecType, recTHEADR)
	}
	if frame.Offset != 0 {
		t.Errorf("Offset = %d, want 0", frame.Offset)
	}
	wantPayload := []byte{0x0c, 0x64, 0x6f, 0x73, 0x5c, 0x63, 0x72, 0x74, 0x30, 0x2e, 0x61, 0x73, 0x6d}
	if !bytes.Equal(frame.Payload, wantPayload) {
		t.Errorf("Payload = %x, want %x", frame.Payload, wantPayload)
	}

	next, err := f.Next()
	if err != nil {
		t.Fatalf("Next at EOF: %v", err)
	}
	if next != nil {
		t.Errorf("expected nil at clean EOF, got %+v", next)
	}
}

func TestFramerChecksumZeroAlwaysPasses(t *testing.T) {
	buf := []byte{0x80, 0x02, 0x00, 0x41, 0x00}
	f := NewFramer(buf)
	if _, err := f.Next(); err != nil {
		t.Fatalf("expected checksum-zero frame to pass, got %v", err)
	}
}

func TestFramerBadChecksum(t *testing.T) {
	buf := []byte{
		0x80, 0x0e, 0x00, 0x0c, 0x64, 0x6f, 0x73, 0x5c,
		0x63, 0x72, 0x74, 0x30, 0x2e, 0x61, 0x73, 0x6d, 0xdd,
	}
	f := NewFramer(buf)
	_, err := f.Next()
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != ErrBadChecksum {
		t.Fatalf("expected ErrBadChecksum, got %v", err)
	}
	if de.Offset != 0 {
		t.Errorf("Offset = %d, want 0", de.Offset)
	}
}

func TestFramerTruncatedBody(t *testing.T) {
	buf := []byte{0x80, 0x0e, 0x00, 0x0c, 0x64, 0x6f, 0x73, 0x5c, 0xdc}
	f := NewFramer(buf)
	_, err := f.Next()
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != ErrTruncatedBody {
		t.Fatalf("expected ErrTruncatedBody, got %v", err)
	}
}

func TestFramerTruncatedHeader(t *testing.T) {
	buf := []byte{0x42, 0x00}
	f := NewFramer(buf)
	_, err := f.Next()
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != ErrTruncatedHeader {
		t.Fatalf("expected ErrTruncatedHeader, got %v", err)
	}
}

func TestFramerUnknownTypeIsNotAnError(t *testing.T) {
	buf := []byte{0x42, 0x00, 0x00, 0x00}
	f := NewFramer(buf)
	frame, err := f.Next()
	if err != nil {
		t.Fatalf("unexpected error for unrecognized-but-well-formed frame: %v", err)
	}
	rec, err := Decode(frame)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	u, ok := rec.(Unknown)
	if !ok {
		t.Fatalf("expected Unknown, got %T", rec)
	}
	if u.RecType != 0x42 {
		t.Errorf("RecType = 0x%x, want 0x42", u.RecType)
	}
}

func TestFramerEmptyBuffer(t *testing.T) {
	f := NewFramer(nil)
	frame, err := f.Next()
	if err != nil || frame != nil {
		t.Fatalf("expected (nil, nil) on empty buffer, got (%+v, %v)", frame, err)
	}
}
