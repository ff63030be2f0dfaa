// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/vec"
)

func TestSerialMonotonic(t *testing.T) {
	var v vec.Vector[int]
	if v.Serial() != 0 {
		t.Fatalf("empty serial: got %d, want 0", v.Serial())
	}
	prev := v.Serial()
	for i := range 8 {
		if err := v.PushBack(i); err != nil {
			t.Fatal(err)
		}
		s := v.Serial()
		if s < prev {
			t.Fatalf("serials not increasing: %d < %d", s, prev)
		}
		prev = s
	}
	if err := v.Reserve(64); err != nil {
		t.Fatal(err)
	}
	if v.Serial() <= prev {
		t.Fatalf("reserve kept serial %d, previous %d", v.Serial(), prev)
	}
}

func TestSerialFollowsBlock(t *testing.T) {
	a, b := vec.New[int](), vec.New[int]()
	defer a.Release()
	defer b.Release()
	fill(t, a, 1, 2)
	fill(t, b, 3)
	sa, sb := a.Serial(), b.Serial()
	if sa == sb {
		t.Fatalf("distinct blocks share serial %d", sa)
	}

	a.Swap(b)
	if a.Serial() != sb || b.Serial() != sa {
		t.Fatalf("swap: got %d/%d, want %d/%d", a.Serial(), b.Serial(), sb, sa)
	}

	c := a.Take()
	defer c.Release()
	if c.Serial() != sb || a.Serial() != 0 {
		t.Fatalf("take: got %d/%d, want %d/0", c.Serial(), a.Serial(), sb)
	}

	d, err := c.Clone()
	if err != nil {
		t.Fatal(err)
	}
	defer d.Release()
	if d.Serial() == c.Serial() {
		t.Fatalf("clone shares serial %d", d.Serial())
	}

	before := c.Serial()
	if err := c.Reserve(c.Capacity()); err != nil {
		t.Fatal(err)
	}
	if c.Serial() != before {
		t.Fatalf("no-op reserve changed serial %d -> %d", before, c.Serial())
	}
	c.Clear()
	if err := c.ShrinkToFit(); err != nil {
		t.Fatal(err)
	}
	if c.Serial() != 0 {
		t.Fatalf("released block serial: got %d, want 0", c.Serial())
	}
}

func TestSerialUniqueConcurrent(t *testing.T) {
	const workers, per = 8, 64
	serials := make([][]vec.Serial, workers)
	var wg sync.WaitGroup
	for w := range workers {
		wg.Go(func() {
			for range per {
				var v vec.Vector[int]
				if err := v.Reserve(1); err != nil {
					t.Error(err)
					return
				}
				serials[w] = append(serials[w], v.Serial())
				v.Release()
			}
		})
	}
	wg.Wait()

	seen := make(map[vec.Serial]bool, workers*per)
	for _, ss := range serials {
		for _, s := range ss {
			if s == 0 || seen[s] {
				t.Fatalf("serial %d zero or reused", s)
			}
			seen[s] = true
		}
	}
}
