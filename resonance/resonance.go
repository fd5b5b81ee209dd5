package resonance

import "errors"

const (
	// NumClasses is the number of resonance equivalence classes.
	NumClasses = 96

	// PageSize is the fixed page length, in bytes, for page-level operations.
	PageSize = 256
)

// ErrBadPageSize indicates a page-level operation received a slice whose
// length is not exactly PageSize.
var ErrBadPageSize = errors.New("resonance: page must be exactly 256 bytes")

// Class is a resonance equivalence class in [0, NumClasses).
//
// Classify always produces a valid Class; values constructed by hand
// should be checked with Valid before use in offset arithmetic.
type Class uint8

// Valid reports whether c lies in [0, NumClasses).
func (c Class) Valid() bool {
	return c < NumClasses
}

// Classify maps a byte to its resonance class: b mod 96.
func Classify(b byte) Class {
	return Class(b % NumClasses)
}

// ClassifyPage maps every byte of a 256-byte page to its resonance class,
// preserving order. Returns ErrBadPageSize unless len(page) == PageSize.
//
// Complexity: O(PageSize) time, one 256-element allocation.
func ClassifyPage(page []byte) ([]Class, error) {
	if len(page) != PageSize {
		return nil, ErrBadPageSize
	}

	classes := make([]Class, PageSize)
	for i, b := range page {
		classes[i] = Classify(b)
	}

	return classes, nil
}

// Histogram counts the occurrences of each resonance class across a
// 256-byte page. The returned counts always sum to PageSize. Returns
// ErrBadPageSize unless len(page) == PageSize.
//
// Complexity: O(PageSize) time, O(NumClasses) memory.
func Histogram(page []byte) ([NumClasses]int, error) {
	var hist [NumClasses]int
	if len(page) != PageSize {
		return hist, ErrBadPageSize
	}

	for _, b := range page {
		hist[Classify(b)]++
	}

	return hist, nil
}

// HarmonicConjugate returns the unique class that harmonizes with r:
// 0 for class 0, otherwise 96 - r. Inputs outside [0,96) are first
// reduced mod 96 so the result is always a valid Class.
func HarmonicConjugate(r Class) Class {
	r %= NumClasses
	if r == 0 {
		return 0
	}

	return NumClasses - r
}

// Harmonizes reports whether two classes cancel under the conservation
// law: (r1 + r2) mod 96 == 0.
func Harmonizes(r1, r2 Class) bool {
	return (uint16(r1)+uint16(r2))%NumClasses == 0
}
