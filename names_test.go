package omf

import "testing"

func TestNameTableResolve(t *testing.T) {
	var names NameTable
	names.Append("CODE", "DATA")
	names.Append("STACK")

	if names.Len() != 3 {
		t.Fatalf("Len = %d, want 3", names.Len())
	}

	tests := []struct {
		idx     int
		want    string
		present bool
	}{
		{1, "CODE", true},
		{2, "DATA", true},
		{3, "STACK", true},
		{0, "", false},
		{4, "", false},
		{-1, "", false},
	}
	for _, tt := range tests {
		got, ok := names.Resolve(tt.idx)
		if ok != tt.present || got != tt.want {
			t.Errorf("Resolve(%d) = (%q, %v), want (%q, %v)", tt.idx, got, ok, tt.want, tt.present)
		}
	}
}
