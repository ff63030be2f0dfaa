// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

import (
	"errors"
	"fmt"

	"code.hybscloud.com/kont"
)

var (
	// ErrAllocation reports that a storage block could not be reserved.
	// The container that requested it is left unmodified.
	ErrAllocation = errors.New("vec: allocation failed")

	// ErrOutOfRange reports a checked access outside [0, Size()).
	// Only [Vector.At] reports it; [Vector.Index] panics instead.
	ErrOutOfRange = errors.New("vec: index out of range")
)

// At returns the element at index i as Right, or Left(ErrOutOfRange)
// when i is not a live index. It is the checked counterpart of Index.
//
// The element is returned by value; use Index for in-place access.
func (v *Vector[T]) At(i int) kont.Either[error, T] {
	if i < 0 || i >= v.size {
		return kont.Left[error, T](fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, i, v.size))
	}
	return kont.Right[error, T](v.data.buf[i])
}

// uncopyable panics for copy operations on element types that declare
// [Uncopyable]. It is a programmer error, like copying a sync.Mutex.
func uncopyable(op string) {
	panic("vec: " + op + " on uncopyable element type")
}
