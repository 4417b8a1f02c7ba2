// Package bitfield packs ordered sets of named boolean flags into integers
// the way the API transmits badges and team permissions: flag i occupies
// bit i, least significant first.
package bitfield

// Decode expands n into named flags. Bits at or beyond len(names) are
// ignorable padding: they are dropped here and never reproduced by Encode,
// so a declared flag set always behaves as a prefix bit-mask.
func Decode(n uint64, names []string) map[string]bool {
	flags := make(map[string]bool, len(names))
	for i, name := range names {
		flags[name] = (n>>i)&1 == 1
	}
	return flags
}

// Encode packs named flags back into an integer. Names missing from flags
// are treated as false.
func Encode(flags map[string]bool, names []string) uint64 {
	var n uint64
	for i, name := range names {
		if flags[name] {
			n |= 1 << i
		}
	}
	return n
}
