// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

import "iter"

// Begin returns the position of the first element, always 0.
func (v *Vector[T]) Begin() int {
	return 0
}

// End returns the position one past the last element, which is Size().
// It is a valid position for Emplace and Insert, never for Index or Erase.
func (v *Vector[T]) End() int {
	return v.size
}

// Slice returns the live range [Begin(), End()) as a slice sharing v's
// block. It is valid until the next mutating call; appending to it
// never affects v.
func (v *Vector[T]) Slice() []T {
	return v.live()
}

// All yields index/element pairs in order.
// Size is re-read each step, so elements popped during iteration are not yielded.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data.buf[i]) {
				return
			}
		}
	}
}

// Values yields elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.data.buf[i]) {
				return
			}
		}
	}
}

// Backward yields index/element pairs from the last element to the first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if i >= v.size {
				continue
			}
			if !yield(i, v.data.buf[i]) {
				return
			}
		}
	}
}
