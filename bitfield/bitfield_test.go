package bitfield

import "testing"

var sevenFlags = []string{"a", "b", "c", "d", "e", "f", "g"}

func TestDecode(t *testing.T) {
	// 37 = 32 + 4 + 1, so bits 0, 2 and 5 are set.
	flags := Decode(37, sevenFlags)
	want := map[string]bool{
		"a": true, "b": false, "c": true, "d": false,
		"e": false, "f": true, "g": false,
	}
	for name, w := range want {
		if flags[name] != w {
			t.Errorf("Decode(37)[%q] = %v, want %v", name, flags[name], w)
		}
	}
}

func TestEncode(t *testing.T) {
	flags := map[string]bool{"a": true, "c": true, "f": true}
	if got := Encode(flags, sevenFlags); got != 37 {
		t.Errorf("Encode = %d, want 37", got)
	}
}

func TestRoundTrip(t *testing.T) {
	for n := uint64(0); n < 1<<7; n++ {
		if got := Encode(Decode(n, sevenFlags), sevenFlags); got != n {
			t.Errorf("Encode(Decode(%d)) = %d", n, got)
		}
	}
}

func TestDecode_DropsPaddingBits(t *testing.T) {
	// Bits beyond the declared flag count are not flags and do not survive
	// a decode/encode cycle.
	n := uint64(1<<12 | 1)
	flags := Decode(n, sevenFlags)
	if len(flags) != len(sevenFlags) {
		t.Fatalf("Decode produced %d flags, want %d", len(flags), len(sevenFlags))
	}
	if got := Encode(flags, sevenFlags); got != 1 {
		t.Errorf("Encode after high-bit decode = %d, want 1", got)
	}
}

func TestEncode_IgnoresUnknownNames(t *testing.T) {
	flags := map[string]bool{"a": true, "zz": true}
	if got := Encode(flags, sevenFlags); got != 1 {
		t.Errorf("Encode with unknown name = %d, want 1", got)
	}
}
