// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

// SetAllocHook installs f as the allocation fault hook and returns a
// function restoring the previous one.
func SetAllocHook(f func(n int) error) (restore func()) {
	prev := allocHook
	allocHook = f
	return func() { allocHook = prev }
}

// Grow exposes the growth policy.
func Grow(c int) int {
	return grow(c)
}
