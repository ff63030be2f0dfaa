// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

import (
	"fmt"
	"unsafe"
)

// maxAllocBytes bounds a single block: 128 TiB on 64-bit platforms,
// 2 GiB on 32-bit ones. Larger requests fail with ErrAllocation instead
// of crashing the runtime.
const maxAllocBytes = 1 << (31 + 16*(^uint(0)>>63))

// allocHook, when set, runs before every non-empty allocation.
// A non-nil error is returned to the caller unchanged.
var allocHook func(n int) error

// rawMemory owns a block of capacity slots of T.
//
// A slot is only storage: whether it holds a live element is known to the
// owning Vector alone. Slots without a live element hold the zero value.
// rawMemory is never copied; ownership moves with swap and take.
type rawMemory[T any] struct {
	buf    []T
	serial Serial
}

// allocate reserves a block of exactly n slots. n == 0 yields the empty
// block, which is legal and owns nothing.
func allocate[T any](n int) (rawMemory[T], error) {
	if n < 0 {
		return rawMemory[T]{}, fmt.Errorf("%w: negative capacity %d", ErrAllocation, n)
	}
	if n == 0 {
		return rawMemory[T]{}, nil
	}
	var zero T
	if size := uint64(unsafe.Sizeof(zero)); size != 0 && uint64(n) > maxAllocBytes/size {
		return rawMemory[T]{}, fmt.Errorf("%w: %d slots of %d bytes", ErrAllocation, n, size)
	}
	if allocHook != nil {
		if err := allocHook(n); err != nil {
			return rawMemory[T]{}, err
		}
	}
	return rawMemory[T]{buf: make([]T, n), serial: nextSerial()}, nil
}

// deallocate drops the block without destroying anything in it.
func (m *rawMemory[T]) deallocate() {
	m.buf = nil
	m.serial = 0
}

func (m *rawMemory[T]) capacity() int {
	return len(m.buf)
}

// slot returns the address of slot i; i < capacity.
func (m *rawMemory[T]) slot(i int) *T {
	return &m.buf[i]
}

// span returns slots [i, j). j may equal capacity, which makes the
// one-past-end position expressible without ever addressing it.
func (m *rawMemory[T]) span(i, j int) []T {
	return m.buf[i:j:j]
}

// swap exchanges blocks in constant time.
func (m *rawMemory[T]) swap(other *rawMemory[T]) {
	m.buf, other.buf = other.buf, m.buf
	m.serial, other.serial = other.serial, m.serial
}

// take moves other's block into m and leaves other empty.
// m must not own a block.
func (m *rawMemory[T]) take(other *rawMemory[T]) {
	*m = *other
	*other = rawMemory[T]{}
}
