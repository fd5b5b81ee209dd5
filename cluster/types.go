package cluster

import (
	"errors"

	"go.uber.org/zap"

	"github.com/selivant/harmonia/resonance"
)

// Sentinel errors for cluster construction and view access.
var (
	// ErrEmptyInput indicates Build received no data.
	ErrEmptyInput = errors.New("cluster: input must contain at least one page")

	// ErrPageAlign indicates input length is not a multiple of the page size.
	ErrPageAlign = errors.New("cluster: input length must be a multiple of 256")

	// ErrViewDestroyed indicates access to a destroyed view.
	ErrViewDestroyed = errors.New("cluster: view has been destroyed")

	// ErrClassRange indicates a class outside [0,95] was requested.
	ErrClassRange = errors.New("cluster: class must be in [0,95]")
)

// Options configures a cluster build.
//
//   - Workers — number of parallel chunks for the two passes. Values ≤ 1
//     select the sequential path; values above the page count are clamped.
//   - Logger  — optional zap logger for build statistics (nop if nil).
//
// Example:
//
//	opts := cluster.DefaultOptions()
//	opts.Workers = 4
//	view, err := cluster.Build(data, &opts)
type Options struct {
	Workers int
	Logger  *zap.Logger
}

// DefaultOptions returns the sequential, silent configuration.
func DefaultOptions() Options {
	return Options{Workers: 1, Logger: nil}
}

// View is a CSR index over N coordinates grouped by resonance class.
//
// offsets has NumClasses+1 entries; indices has N. Both are owned by the
// view (allocated per build, never shared scratch), so concurrent builds
// cannot alias. Destroy clears them and poisons the view.
type View struct {
	offsets []int
	indices []int
	n       int // total coordinates; -1 once destroyed
}

// Len returns the total number of coordinates in the view, or
// ErrViewDestroyed after Destroy.
func (v *View) Len() (int, error) {
	if v == nil || v.n < 0 {
		return 0, ErrViewDestroyed
	}

	return v.n, nil
}

// CountForClass returns the number of coordinates of class r:
// offsets[r+1] - offsets[r].
func (v *View) CountForClass(r resonance.Class) (int, error) {
	if v == nil || v.n < 0 {
		return 0, ErrViewDestroyed
	}
	if !r.Valid() {
		return 0, ErrClassRange
	}

	return v.offsets[r+1] - v.offsets[r], nil
}

// CoordinatesForClass returns the coordinates of class r in encounter
// order. The returned slice aliases the view's storage and is only valid
// until Destroy.
func (v *View) CoordinatesForClass(r resonance.Class) ([]int, error) {
	if v == nil || v.n < 0 {
		return nil, ErrViewDestroyed
	}
	if !r.Valid() {
		return nil, ErrClassRange
	}

	return v.indices[v.offsets[r]:v.offsets[r+1]], nil
}

// Classes returns the non-empty classes in ascending order.
func (v *View) Classes() ([]resonance.Class, error) {
	if v == nil || v.n < 0 {
		return nil, ErrViewDestroyed
	}

	var occupied []resonance.Class
	for r := 0; r < resonance.NumClasses; r++ {
		if v.offsets[r+1] > v.offsets[r] {
			occupied = append(occupied, resonance.Class(r))
		}
	}

	return occupied, nil
}

// Destroy clears the view's storage and poisons all further access with
// ErrViewDestroyed. Idempotent and safe on nil.
func (v *View) Destroy() {
	if v == nil {
		return
	}
	v.offsets = nil
	v.indices = nil
	v.n = -1
}
