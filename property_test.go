// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec_test

import (
	"slices"
	"testing"
	"testing/quick"

	"code.hybscloud.com/vec"
)

// TestPropertyMatchesSliceModel drives a vector and a plain slice with the
// same arbitrary operation sequence and requires identical contents and
// 0 <= size <= capacity after every step.
func TestPropertyMatchesSliceModel(t *testing.T) {
	property := func(ops []uint16) bool {
		var v vec.Vector[int]
		var model []int
		for n, op := range ops {
			x := int(op >> 3)
			switch op & 7 {
			case 0, 1:
				if v.PushBack(x) != nil {
					return false
				}
				model = append(model, x)
			case 2:
				pos := x % (len(model) + 1)
				if _, err := v.Insert(pos, n); err != nil {
					return false
				}
				model = slices.Insert(model, pos, n)
			case 3:
				if len(model) == 0 {
					continue
				}
				pos := x % len(model)
				if _, err := v.Erase(pos); err != nil {
					return false
				}
				model = slices.Delete(model, pos, pos+1)
			case 4:
				if len(model) == 0 {
					continue
				}
				v.PopBack()
				model = model[:len(model)-1]
			case 5:
				size := x % 64
				if v.Resize(size) != nil {
					return false
				}
				if size < len(model) {
					model = model[:size]
				} else {
					model = append(model, make([]int, size-len(model))...)
				}
			case 6:
				if v.Reserve(x%128) != nil {
					return false
				}
			case 7:
				if v.ShrinkToFit() != nil {
					return false
				}
			}
			if v.Size() < 0 || v.Size() > v.Capacity() {
				return false
			}
			if !slices.Equal(v.Slice(), model) {
				return false
			}
		}
		return v.Size() == len(model)
	}
	if err := quick.Check(property, quickConfig()); err != nil {
		t.Fatal(err)
	}
}

// TestPropertyInsertEraseRoundTrip proves that inserting any value at any
// position and erasing it again restores the original sequence.
func TestPropertyInsertEraseRoundTrip(t *testing.T) {
	property := func(xs []int, at uint8, x int) bool {
		var v vec.Vector[int]
		for _, e := range xs {
			if v.PushBack(e) != nil {
				return false
			}
		}
		pos := int(at) % (len(xs) + 1)
		if _, err := v.Insert(pos, x); err != nil {
			return false
		}
		if *v.Index(pos) != x {
			return false
		}
		if _, err := v.Erase(pos); err != nil {
			return false
		}
		return slices.Equal(v.Slice(), xs)
	}
	if err := quick.Check(property, quickConfig()); err != nil {
		t.Fatal(err)
	}
}

// TestPropertyCopyPolicyNeverMoves proves that growth of a type whose move
// can fail never moves, whatever the append count.
func TestPropertyCopyPolicyNeverMoves(t *testing.T) {
	property := func(n uint8) bool {
		c := &counters{}
		var v vec.Vector[copying]
		for i := range int(n) {
			if v.PushBack(copying{v: i, c: c}) != nil {
				return false
			}
		}
		return c.moves == 0 && v.Size() == int(n)
	}
	if err := quick.Check(property, quickConfig()); err != nil {
		t.Fatal(err)
	}
}
