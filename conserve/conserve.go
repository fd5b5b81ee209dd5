package conserve

// Modulus is the base of the conservation law: a region is valid when the
// sum of its bytes is congruent to zero modulo 96.
const Modulus = 96

// Sum folds region into its conservation value: the sum of all byte
// values modulo 96. An empty (or nil) region sums to 0.
//
// The fold accumulates into a uint64 and reduces once at the end; a
// uint64 cannot overflow below ~2^56 bytes, far beyond any attachable
// region.
//
// Complexity: O(len(region)) time, O(1) memory.
func Sum(region []byte) uint8 {
	var acc uint64
	for _, b := range region {
		acc += uint64(b)
	}

	return uint8(acc % Modulus)
}

// IsConserved reports whether region satisfies the conservation law,
// i.e. Sum(region) == 0. Empty regions are trivially conserved.
//
// Complexity: O(len(region)) time, O(1) memory.
func IsConserved(region []byte) bool {
	return Sum(region) == 0
}

// Delta returns the conservation drift between two snapshots of a region:
// (Sum(after) - Sum(before)) mod 96, normalized into [0,96).
//
// The subtraction is lifted to int before normalization so a negative raw
// difference wraps upward (e.g. before=5, after=0 yields 91, never -5).
// Delta(x, x) is always 0.
//
// Complexity: O(len(before)+len(after)) time, O(1) memory.
func Delta(before, after []byte) uint8 {
	d := int(Sum(after)) - int(Sum(before))

	return uint8(((d % Modulus) + Modulus) % Modulus)
}
