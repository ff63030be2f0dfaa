// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"code.hybscloud.com/vec"
)

func TestAtRight(t *testing.T) {
	var v vec.Vector[int]
	fill(t, &v, 10, 20, 30)

	for i, want := range []int{10, 20, 30} {
		r := v.At(i)
		if !r.IsRight() {
			t.Fatalf("At(%d) expected Right, got Left", i)
		}
		got, _ := r.GetRight()
		if got != want {
			t.Fatalf("At(%d) got %d, want %d", i, got, want)
		}
	}
}

func TestAtLeft(t *testing.T) {
	var v vec.Vector[int]
	fill(t, &v, 1, 2)
	if err := v.Reserve(8); err != nil {
		t.Fatal(err)
	}

	// Index 2 is a raw slot inside capacity; it is still out of range.
	for _, i := range []int{-1, 2, 7, 8} {
		r := v.At(i)
		if !r.IsLeft() {
			t.Fatalf("At(%d) expected Left, got Right", i)
		}
		err, _ := r.GetLeft()
		if !errors.Is(err, vec.ErrOutOfRange) {
			t.Fatalf("At(%d) error %v, want ErrOutOfRange", i, err)
		}
		if !strings.Contains(err.Error(), "size 2") {
			t.Fatalf("At(%d) error %q lacks size", i, err)
		}
	}
}

func TestAtReturnsValue(t *testing.T) {
	var v vec.Vector[int]
	fill(t, &v, 5)
	got, _ := v.At(0).GetRight()
	got++
	if *v.Index(0) != 5 {
		t.Fatalf("At exposed the slot: element became %d", *v.Index(0))
	}
	_ = got
}

func TestAllocationErrorDetail(t *testing.T) {
	var v vec.Vector[int64]
	err := v.Reserve(math.MaxInt)
	if !errors.Is(err, vec.ErrAllocation) {
		t.Fatalf("Reserve(MaxInt) error %v, want ErrAllocation", err)
	}
	if err.Error() == vec.ErrAllocation.Error() {
		t.Fatalf("allocation error carries no detail: %q", err)
	}
	if v.Capacity() != 0 || v.Serial() != 0 {
		t.Fatalf("failed Reserve changed v: cap %d, serial %d", v.Capacity(), v.Serial())
	}
}
