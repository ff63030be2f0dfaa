// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

// EmplaceBack constructs a new element in place at the end and returns
// its address, valid until the next mutating call. fn receives a raw
// (zeroed) slot; a nil fn default-constructs.
//
// When the vector is full, a block of max(1, 2*Capacity()) slots is
// allocated and the new element is constructed there before any existing
// element is transferred. If construction, allocation or transfer fails,
// the error is returned unchanged and v is left as it was.
func (v *Vector[T]) EmplaceBack(fn func(*T) error) (*T, error) {
	if v.size == v.Capacity() {
		return v.splice(v.size, grow(v.Capacity()), fn)
	}
	p := v.data.slot(v.size)
	if err := construct(v.traits(), p, fn); err != nil {
		return nil, err
	}
	v.size++
	return p, nil
}

// PushBack appends x, taking ownership of it. It fails only when growth
// fails, in which case v is unchanged.
func (v *Vector[T]) PushBack(x T) error {
	_, err := v.EmplaceBack(func(p *T) error {
		*p = x
		return nil
	})
	return err
}

// PushBackCopy appends a copy of *x made by T's copy construction.
// x may point into v.
func (v *Vector[T]) PushBackCopy(x *T) error {
	tr := v.traits()
	if tr.uncopyable {
		uncopyable("PushBackCopy")
	}
	_, err := v.EmplaceBack(func(p *T) error {
		return duplicate(tr, p, x)
	})
	return err
}

// PopBack destroys the last element. The vector must not be empty.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vec: PopBack on empty vector")
	}
	v.size--
	destroy(v.traits(), v.data.slot(v.size))
}

// Emplace constructs a new element at position pos, 0 <= pos <= Size(),
// shifting [pos, Size()) one slot toward the end. It returns pos.
//
// When the vector is full, the new element is built first in a block of
// max(1, 2*Capacity()) slots, then the elements before and after pos are
// transferred around it; the block is adopted only after both transfers
// succeed. Otherwise the element is built in a temporary and the tail is
// shifted in place. Element types whose move can fail are rebuilt into a
// fresh block of the same capacity instead of being shifted.
//
// On failure the error is returned unchanged and v is left as it was,
// except for move-only element types whose move fails and cannot be undone.
func (v *Vector[T]) Emplace(pos int, fn func(*T) error) (int, error) {
	if pos < 0 || pos > v.size {
		panic("vec: Emplace position out of range")
	}
	tr := v.traits()
	var err error
	switch {
	case v.size == v.Capacity():
		_, err = v.splice(pos, grow(v.Capacity()), fn)
	case pos == v.size:
		_, err = v.EmplaceBack(fn)
	case tr.fallibleMove():
		_, err = v.splice(pos, v.Capacity(), fn)
	default:
		err = v.shift(pos, fn)
	}
	return pos, err
}

// Insert inserts x at pos, taking ownership of it. It returns pos.
func (v *Vector[T]) Insert(pos int, x T) (int, error) {
	return v.Emplace(pos, func(p *T) error {
		*p = x
		return nil
	})
}

// InsertCopy inserts a copy of *x at pos. x may point into v.
func (v *Vector[T]) InsertCopy(pos int, x *T) (int, error) {
	tr := v.traits()
	if tr.uncopyable {
		uncopyable("InsertCopy")
	}
	return v.Emplace(pos, func(p *T) error {
		return duplicate(tr, p, x)
	})
}

// Erase removes the element at pos, 0 <= pos < Size(), closing the gap by
// moving the elements after it one slot toward pos. It returns pos, which
// now holds the element that followed the erased one, or End().
//
// Erase can only fail for element types whose move can fail; those are
// rebuilt into a fresh block of the same capacity, and on failure v is
// left as it was.
func (v *Vector[T]) Erase(pos int) (int, error) {
	live := v.live()
	_ = live[pos]
	tr := v.traits()
	if tr.fallibleMove() {
		return pos, v.rebuildWithout(pos)
	}
	destroy(tr, &live[pos])
	for i := pos; i < len(live)-1; i++ {
		relocate(tr, &live[i], &live[i+1])
		vacate(tr, &live[i+1])
	}
	v.size--
	return pos, nil
}

// splice builds a block of n slots holding the live elements with a new
// element constructed at pos, and adopts it. The new element is
// constructed first, then the prefix and suffix are transferred; each
// failure unwinds what was already built, and v keeps its block.
func (v *Vector[T]) splice(pos, n int, fn func(*T) error) (*T, error) {
	tr := v.traits()
	m, err := allocate[T](n)
	if err != nil {
		return nil, err
	}
	p := m.slot(pos)
	if err := construct(tr, p, fn); err != nil {
		return nil, err
	}
	live := v.live()
	head, tail := m.span(0, pos), m.span(pos+1, v.size+1)
	if err := transfer(tr, head, live[:pos]); err != nil {
		destroy(tr, p)
		return nil, err
	}
	if err := transfer(tr, tail, live[pos:]); err != nil {
		untransfer(tr, head, live[:pos])
		destroy(tr, p)
		return nil, err
	}
	retire(tr, live)
	v.data.swap(&m)
	v.size++
	return p, nil
}

// shift inserts at interior position pos without reallocating: the new
// element is built in a temporary, the last element is moved into the
// raw slot past the end, [pos, Size()-1) is shifted backward, and the
// temporary is moved into pos. No slot is read after being overwritten.
// Only used when moves cannot fail.
func (v *Vector[T]) shift(pos int, fn func(*T) error) error {
	tr := v.traits()
	var tmp T
	if err := construct(tr, &tmp, fn); err != nil {
		return err
	}
	s := v.data.span(0, v.size+1)
	last := v.size - 1
	relocate(tr, &s[v.size], &s[last])
	vacate(tr, &s[last])
	for i := last; i > pos; i-- {
		relocate(tr, &s[i], &s[i-1])
		vacate(tr, &s[i-1])
	}
	relocate(tr, &s[pos], &tmp)
	vacate(tr, &tmp)
	v.size++
	return nil
}

// rebuildWithout builds a block of the same capacity holding every live
// element except pos, and adopts it.
func (v *Vector[T]) rebuildWithout(pos int) error {
	tr := v.traits()
	m, err := allocate[T](v.Capacity())
	if err != nil {
		return err
	}
	live := v.live()
	head, tail := m.span(0, pos), m.span(pos, v.size-1)
	if err := transfer(tr, head, live[:pos]); err != nil {
		return err
	}
	if err := transfer(tr, tail, live[pos+1:]); err != nil {
		untransfer(tr, head, live[:pos])
		return err
	}
	destroy(tr, &live[pos])
	retire(tr, live[:pos])
	retire(tr, live[pos+1:])
	v.data.swap(&m)
	v.size--
	return nil
}
