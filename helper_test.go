// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec_test

import (
	"errors"
	"slices"
	"testing"

	"code.hybscloud.com/vec"
)

var (
	errCopy      = errors.New("copy failed")
	errMove      = errors.New("move failed")
	errInit      = errors.New("init failed")
	errConstruct = errors.New("construct failed")
)

// counters is shared by every element built from the same origin, so
// copies and moves report into one place.
type counters struct {
	moves, copies, destroys, inits int

	// failCopyIn, failMoveIn and failInitIn fail the n-th next operation
	// of their kind; 0 disables.
	failCopyIn, failMoveIn, failInitIn int
}

func trip(n *int) bool {
	if *n == 0 {
		return false
	}
	*n--
	return *n == 0
}

// relocating moves infallibly: PolicyMove.
type relocating struct {
	v int
	c *counters
}

func (x *relocating) RelocateTo(dst *relocating) {
	x.c.moves++
	*dst = *x
}

func (x *relocating) CloneTo(dst *relocating) error {
	if trip(&x.c.failCopyIn) {
		return errCopy
	}
	x.c.copies++
	*dst = *x
	return nil
}

func (x *relocating) Destroy() {
	if x.c != nil {
		x.c.destroys++
	}
}

// copying has a fallible move and a working copy: PolicyCopy.
type copying struct {
	v int
	c *counters
}

func (x *copying) MoveTo(dst *copying) error {
	if trip(&x.c.failMoveIn) {
		return errMove
	}
	x.c.moves++
	*dst = *x
	return nil
}

func (x *copying) CloneTo(dst *copying) error {
	if trip(&x.c.failCopyIn) {
		return errCopy
	}
	x.c.copies++
	*dst = *x
	return nil
}

func (x *copying) Destroy() {
	if x.c != nil {
		x.c.destroys++
	}
}

// moveOnly has a fallible move and no copy: PolicyMove.
type moveOnly struct {
	v int
	c *counters
}

func (x *moveOnly) MoveTo(dst *moveOnly) error {
	if trip(&x.c.failMoveIn) {
		return errMove
	}
	x.c.moves++
	*dst = *x
	return nil
}

func (*moveOnly) Uncopyable() {}

func (x *moveOnly) Destroy() {
	if x.c != nil {
		x.c.destroys++
	}
}

// initializing counts default constructions and can fail them.
type initializing struct {
	v int
	c *counters
}

func (x *initializing) Init() error {
	if trip(&shared.failInitIn) {
		return errInit
	}
	shared.inits++
	x.v = -1
	x.c = &shared
	return nil
}

func (x *initializing) Destroy() {
	if x.c != nil {
		x.c.destroys++
	}
}

// shared backs initializing, whose Init has no origin to take counters from.
var shared counters

func resetShared() *counters {
	shared = counters{}
	return &shared
}

// state captures everything observable about a vector.
type state struct {
	size, capacity int
	serial         vec.Serial
	values         []int
}

func snapshot[T any](v *vec.Vector[T], val func(T) int) state {
	s := state{size: v.Size(), capacity: v.Capacity(), serial: v.Serial()}
	for x := range v.Values() {
		s.values = append(s.values, val(x))
	}
	return s
}

func requireState(t *testing.T, got, want state) {
	t.Helper()
	if got.size != want.size || got.capacity != want.capacity || got.serial != want.serial {
		t.Fatalf("state: got size=%d cap=%d serial=%d, want size=%d cap=%d serial=%d",
			got.size, got.capacity, got.serial, want.size, want.capacity, want.serial)
	}
	if !slices.Equal(got.values, want.values) {
		t.Fatalf("values: got %v, want %v", got.values, want.values)
	}
}

func ints(v *vec.Vector[int]) []int {
	return slices.Collect(v.Values())
}

func fill(t *testing.T, v *vec.Vector[int], xs ...int) {
	t.Helper()
	for _, x := range xs {
		if err := v.PushBack(x); err != nil {
			t.Fatalf("PushBack(%d): %v", x, err)
		}
	}
}

func valRelocating(x relocating) int { return x.v }
func valCopying(x copying) int       { return x.v }
func valMoveOnly(x moveOnly) int     { return x.v }
