// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package vec provides [Vector], a contiguous, growable sequence container
// with explicit control over element lifetime.
//
// Storage and elements are separate layers. A block of slots is allocated
// untyped with respect to liveness; the [Vector] alone knows which slots
// hold live elements and decides when a slot's element is constructed,
// moved, copied or destroyed.
//
// # Architecture
//
//   - Storage: a block of exactly Capacity() slots, identified by a [Serial]. Raw slots hold the zero value.
//   - Growth: appending to a full vector allocates max(1, 2*Capacity()) slots, so n appends cost O(n) transfers in total.
//   - Build-then-swap: a new block is fully built before it is adopted. Allocation comes first, the old block is never disturbed before the new one is complete.
//   - Failures: [ErrAllocation] and element construction errors are returned unchanged; an operation either completes or leaves the vector as it was.
//
// # Element Capabilities
//
// Element types declare lifetime behavior through methods on *T:
//
//   - [Relocator]: move construction that never fails.
//   - [Mover]: move construction that can fail.
//   - [Cloner]: copy construction, typically a deep copy.
//   - [Uncopyable]: no copy construction at all.
//   - [Destroyer]: destruction hook.
//   - [Initializer]: default construction that can fail.
//
// Types declaring none of them are moved and copied by assignment.
//
// # Relocation Policy
//
// [PolicyOf] is decided once per element type. Growth moves elements when
// moving cannot fail, or when T is [Uncopyable] and there is no
// alternative; otherwise it copies them, so a failure halfway leaves the
// old block intact.
//
// # Preconditions
//
// [Vector.Index], [Vector.PopBack] and [Vector.Erase] take positions that
// must be valid; violations panic rather than return errors.
// [Vector.At] is the checked alternative and returns a [code.hybscloud.com/kont.Either].
//
// # Example
//
//	var v vec.Vector[int]
//	for i := 1; i <= 5; i++ {
//		if err := v.PushBack(i); err != nil {
//			return err
//		}
//	}
//	// v.Size() == 5, v.Capacity() == 8
//	v.Insert(2, 42)
//	v.Erase(0)
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
package vec
