package bits

import (
	"testing"
	"unsafe"
)

// The catalog is closed: every specifier satisfies Field, and nothing
// outside this package can.
var (
	_ Field = B0{}
	_ Field = B1{}
	_ Field = B8{}
	_ Field = B32{}
	_ Field = B64{}
)

func TestSpecifierWidths(t *testing.T) {
	tests := []struct {
		field Field
		want  uint
	}{
		{B0{}, 0},
		{B1{}, 1},
		{B7{}, 7},
		{B8{}, 8},
		{B63{}, 63},
		{B64{}, 64},
	}

	for _, tt := range tests {
		if got := tt.field.Bits(); got != tt.want {
			t.Errorf("Bits() = %d, want %d", got, tt.want)
		}
	}
}

func TestSpecifiersAreZeroSize(t *testing.T) {
	// Markers may appear in real structs without costing anything
	type header struct {
		Version B3
		Flags   B5
	}
	if size := unsafe.Sizeof(header{}); size != 0 {
		t.Errorf("marker fields must be zero-size, struct is %d bytes", size)
	}
}
