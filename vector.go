// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

// noCopy lets go vet's copylocks check flag value copies of Vector.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Vector is a contiguous, growable sequence of T.
//
// Slots [0, Size()) hold live elements in insertion order; slots
// [Size(), Capacity()) are raw. The zero value is an empty vector ready
// to use. A Vector must not be copied after first use: use Clone, Take,
// Assign or MoveFrom.
//
// Vector is not safe for concurrent use.
type Vector[T any] struct {
	_    noCopy
	data rawMemory[T]
	size int
	tr   *traits
}

// New returns an empty vector with no storage.
func New[T any]() *Vector[T] {
	return &Vector[T]{tr: traitsOf[T]()}
}

// NewSized returns a vector of n default-constructed elements held in a
// block of exactly n slots. If a default construction fails, the elements
// built so far are destroyed and the error is returned.
func NewSized[T any](n int) (*Vector[T], error) {
	v := New[T]()
	m, err := allocate[T](n)
	if err != nil {
		return nil, err
	}
	if err := constructN(v.tr, m.span(0, n)); err != nil {
		return nil, err
	}
	v.data.take(&m)
	v.size = n
	return v, nil
}

func (v *Vector[T]) traits() *traits {
	if v.tr == nil {
		v.tr = traitsOf[T]()
	}
	return v.tr
}

// live returns the live range. Indexing it bounds-checks against Size.
func (v *Vector[T]) live() []T {
	return v.data.buf[:v.size:v.size]
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of slots in the current block.
func (v *Vector[T]) Capacity() int {
	return v.data.capacity()
}

// Empty reports whether Size is zero.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// Serial identifies the current storage block. It changes whenever the
// vector adopts a new block and is 0 while the vector owns none.
func (v *Vector[T]) Serial() Serial {
	return v.data.serial
}

// Index returns the address of element i, valid until the next mutating call.
// i must be in [0, Size()); violating that panics and is never reported
// as an error. See At for checked access.
func (v *Vector[T]) Index(i int) *T {
	return &v.live()[i]
}

// Front returns the address of the first element. The vector must not be empty.
func (v *Vector[T]) Front() *T {
	return &v.live()[0]
}

// Back returns the address of the last element. The vector must not be empty.
func (v *Vector[T]) Back() *T {
	return &v.live()[v.size-1]
}

// Clone returns a deep copy of v in a block of exactly Size() slots.
// Copy construction follows T's Cloner when present.
// On failure no copy is returned and v is unchanged.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	tr := v.traits()
	if tr.uncopyable {
		uncopyable("Clone")
	}
	m, err := allocate[T](v.size)
	if err != nil {
		return nil, err
	}
	if err := copyN(tr, m.span(0, v.size), v.live()); err != nil {
		return nil, err
	}
	c := &Vector[T]{tr: tr, size: v.size}
	c.data.take(&m)
	return c, nil
}

// Take returns a vector owning v's block and elements and leaves v empty,
// without storage. No element is touched.
func (v *Vector[T]) Take() *Vector[T] {
	t := &Vector[T]{tr: v.traits(), size: v.size}
	t.data.take(&v.data)
	v.size = 0
	return t
}

// Release destroys every live element and drops the block.
// The vector is empty afterwards and may be reused.
func (v *Vector[T]) Release() {
	destroyN(v.traits(), v.live())
	v.size = 0
	v.data.deallocate()
}

// Assign replaces the contents of v with copies of other's elements.
//
// If v cannot hold other's elements, a full copy is built first and
// swapped in, so failure leaves v unchanged. Otherwise v's block is
// reused: each element of the common prefix is copied into a temporary,
// the old element is destroyed, and the copy is relocated into its slot;
// the tail is destroyed or copy-constructed. A failed copy leaves v valid,
// with its original size, but possibly holding some of other's values. A
// failed relocation of the copy truncates v before that slot.
func (v *Vector[T]) Assign(other *Vector[T]) error {
	if v == other {
		return nil
	}
	tr := v.traits()
	if tr.uncopyable {
		uncopyable("Assign")
	}
	if v.Capacity() < other.size {
		c, err := other.Clone()
		if err != nil {
			return err
		}
		v.Swap(c)
		c.Release()
		return nil
	}
	common := min(v.size, other.size)
	dst, src := v.data.span(0, common), other.live()
	for i := range dst {
		var tmp T
		if err := duplicate(tr, &tmp, &src[i]); err != nil {
			return err
		}
		destroy(tr, &dst[i])
		if err := relocate(tr, &dst[i], &tmp); err != nil {
			destroy(tr, &tmp)
			destroyN(tr, v.data.span(i+1, v.size))
			v.size = i
			return err
		}
		vacate(tr, &tmp)
	}
	if v.size > other.size {
		destroyN(tr, v.data.span(other.size, v.size))
	} else if err := copyN(tr, v.data.span(v.size, other.size), src[v.size:]); err != nil {
		return err
	}
	v.size = other.size
	return nil
}

// MoveFrom destroys v's elements, drops its block, and takes over other's
// block and elements. other is left empty, without storage.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.Release()
	v.data.take(&other.data)
	v.size = other.size
	other.size = 0
}

// Swap exchanges the contents of v and other in constant time.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.swap(&other.data)
	v.size, other.size = other.size, v.size
}

// Reserve ensures Capacity() >= n. When the block must grow, a block of
// exactly n slots is allocated, the live elements are transferred into it
// following PolicyOf[T], and the old block is dropped.
//
// If allocation or transfer fails, v is left exactly as it was, except
// for move-only element types whose move fails and cannot be undone.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.Capacity() {
		return nil
	}
	return v.reallocate(n)
}

// reallocate moves the live elements into a new block of n >= Size() slots.
func (v *Vector[T]) reallocate(n int) error {
	tr := v.traits()
	m, err := allocate[T](n)
	if err != nil {
		return err
	}
	if err := transfer(tr, m.span(0, v.size), v.live()); err != nil {
		return err
	}
	retire(tr, v.live())
	v.data.swap(&m)
	return nil
}

// Resize changes Size to n. Shrinking destroys [n, Size()). Growing
// reserves exactly n slots when needed and default-constructs the new
// elements; if one fails, those built by this call are destroyed, Size is
// unchanged, and any block growth already done is kept.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic("vec: negative size")
	}
	tr := v.traits()
	switch {
	case n < v.size:
		destroyN(tr, v.data.span(n, v.size))
	case n > v.size:
		if err := v.Reserve(n); err != nil {
			return err
		}
		if err := constructN(tr, v.data.span(v.size, n)); err != nil {
			return err
		}
	}
	v.size = n
	return nil
}

// ShrinkToFit reallocates to a block of exactly Size() slots, or drops the
// block when the vector is empty. Failure leaves v unchanged.
func (v *Vector[T]) ShrinkToFit() error {
	switch {
	case v.Capacity() == v.size:
		return nil
	case v.size == 0:
		v.data.deallocate()
		return nil
	}
	return v.reallocate(v.size)
}

// Clear destroys every live element and keeps the block.
func (v *Vector[T]) Clear() {
	destroyN(v.traits(), v.live())
	v.size = 0
}

// grow returns the capacity after growing from c: max(1, 2c).
func grow(c int) int {
	if c == 0 {
		return 1
	}
	return 2 * c
}
