// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

import (
	"reflect"
	"sync"
)

// Element capabilities are declared on the pointer type *T.
// A type implementing none of them is relocated and copied by plain
// assignment, neither of which can fail.

// Relocator is implemented by *T when T has a custom move construction
// that never fails. RelocateTo move-constructs the receiver into the raw
// slot dst; the receiver is left moved-from and is destroyed afterwards.
type Relocator[T any] interface {
	RelocateTo(dst *T)
}

// Mover is implemented by *T when T has a custom move construction that
// can fail. On error, the receiver must be unchanged and dst must hold no
// live element.
type Mover[T any] interface {
	MoveTo(dst *T) error
}

// Cloner is implemented by *T when copy construction needs more than
// assignment, typically a deep copy. On error, dst must hold no live element.
type Cloner[T any] interface {
	CloneTo(dst *T) error
}

// Uncopyable marks element types that offer no copy construction.
// Copy operations on such vectors panic.
type Uncopyable interface {
	Uncopyable()
}

// Destroyer is implemented by *T when destruction must release something
// beyond the memory of the slot.
type Destroyer interface {
	Destroy()
}

// Initializer is implemented by *T when default construction can fail or
// differs from the zero value. Init runs on a zeroed slot.
type Initializer interface {
	Init() error
}

// Policy is the relocation strategy used when live elements move to a new block.
type Policy uint8

const (
	// PolicyMove relocates by move construction.
	PolicyMove Policy = iota
	// PolicyCopy relocates by copy construction, leaving the old block
	// intact until the new one is complete.
	PolicyCopy
)

func (p Policy) String() string {
	switch p {
	case PolicyMove:
		return "move"
	case PolicyCopy:
		return "copy"
	default:
		return "unknown"
	}
}

// traits caches what an element type declares. Computed once per type.
type traits struct {
	policy      Policy
	relocator   bool
	mover       bool
	cloner      bool
	uncopyable  bool
	destroyer   bool
	initializer bool
}

// fallibleMove reports whether moving an element can fail, which rules
// out shifting elements in place.
func (t *traits) fallibleMove() bool {
	return t.mover && !t.relocator
}

// customMove reports whether a moved-from element is still an object
// that has to be destroyed, as opposed to a bitwise duplicate.
func (t *traits) customMove() bool {
	return t.relocator || t.mover
}

// traitCache maps reflect.Type to *traits.
var traitCache sync.Map

func traitsOf[T any]() *traits {
	key := reflect.TypeFor[T]()
	if t, ok := traitCache.Load(key); ok {
		return t.(*traits)
	}
	var p any = (*T)(nil)
	t := &traits{}
	_, t.relocator = p.(Relocator[T])
	_, t.mover = p.(Mover[T])
	_, t.cloner = p.(Cloner[T])
	_, t.uncopyable = p.(Uncopyable)
	_, t.destroyer = p.(Destroyer)
	_, t.initializer = p.(Initializer)
	// Move when it cannot fail, or when there is nothing else to do.
	if t.fallibleMove() && !t.uncopyable {
		t.policy = PolicyCopy
	}
	actual, _ := traitCache.LoadOrStore(key, t)
	return actual.(*traits)
}

// PolicyOf returns the relocation policy the container uses for T.
func PolicyOf[T any]() Policy {
	return traitsOf[T]().policy
}
