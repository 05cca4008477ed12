// Package abi provides low-level Canonical ABI helpers shared by the
// witlayout calculations.
package abi

// AlignTo rounds offset up to the next multiple of align.
// align must be a power of two; align 0 leaves the offset unchanged.
func AlignTo(offset, align uint32) uint32 {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// DiscriminantSize: 1 byte for <=256 cases, 2 for <=65536, else 4 per spec.
func DiscriminantSize(numCases int) uint32 {
	if numCases <= 256 {
		return 1
	} else if numCases <= 65536 {
		return 2
	}
	return 4
}
