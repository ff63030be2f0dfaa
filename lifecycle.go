// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

// Element lifetime primitives. They operate on slots of a block and never
// touch a Vector's size; callers commit size changes after they succeed.
//
// A slot is in one of three states: raw (zero value), live, or vacated
// (the source of a completed move). vacate and destroy both return the
// slot to raw.

// construct builds an element in the raw slot p. A nil fn means default
// construction: Init when T declares it, the zero value otherwise.
// On failure p is returned to raw.
func construct[T any](tr *traits, p *T, fn func(*T) error) error {
	var err error
	switch {
	case fn != nil:
		err = fn(p)
	case tr.initializer:
		err = any(p).(Initializer).Init()
	}
	if err != nil {
		var zero T
		*p = zero
	}
	return err
}

// destroy ends the life of the live element at p.
func destroy[T any](tr *traits, p *T) {
	if tr.destroyer {
		any(p).(Destroyer).Destroy()
	}
	var zero T
	*p = zero
}

func destroyN[T any](tr *traits, s []T) {
	if tr.destroyer {
		for i := range s {
			any(&s[i]).(Destroyer).Destroy()
		}
	}
	clear(s)
}

// vacate ends the life of a moved-from element. Under plain relocation the
// slot holds a duplicate of the moved element and is only cleared.
func vacate[T any](tr *traits, p *T) {
	if tr.customMove() {
		destroy(tr, p)
		return
	}
	var zero T
	*p = zero
}

func vacateN[T any](tr *traits, s []T) {
	if tr.customMove() {
		destroyN(tr, s)
		return
	}
	clear(s)
}

// relocate move-constructs *src into the raw slot dst. On error src is
// unchanged and dst is raw.
func relocate[T any](tr *traits, dst, src *T) error {
	switch {
	case tr.relocator:
		any(src).(Relocator[T]).RelocateTo(dst)
	case tr.mover:
		if err := any(src).(Mover[T]).MoveTo(dst); err != nil {
			var zero T
			*dst = zero
			return err
		}
	default:
		*dst = *src
	}
	return nil
}

// duplicate copy-constructs *src into the raw slot dst. On error dst is raw.
func duplicate[T any](tr *traits, dst, src *T) error {
	if !tr.cloner {
		*dst = *src
		return nil
	}
	if err := any(src).(Cloner[T]).CloneTo(dst); err != nil {
		var zero T
		*dst = zero
		return err
	}
	return nil
}

// constructN default-constructs every slot of s. On failure the elements
// built so far are destroyed and s is raw again.
func constructN[T any](tr *traits, s []T) error {
	if !tr.initializer {
		return nil
	}
	for i := range s {
		if err := any(&s[i]).(Initializer).Init(); err != nil {
			destroyN(tr, s[:i])
			clear(s[i : i+1])
			return err
		}
	}
	return nil
}

// copyN copy-constructs src into the raw slots dst, len(dst) == len(src).
// On failure dst is raw again and src is untouched.
func copyN[T any](tr *traits, dst, src []T) error {
	if !tr.cloner {
		copy(dst, src)
		return nil
	}
	for i := range src {
		if err := duplicate(tr, &dst[i], &src[i]); err != nil {
			destroyN(tr, dst[:i])
			return err
		}
	}
	return nil
}

// moveN move-constructs src into the raw slots dst. Sources are left
// vacated, not yet cleared. On failure the elements already moved are
// moved back; any that refuse are destroyed and their source slot is
// left raw.
func moveN[T any](tr *traits, dst, src []T) error {
	if !tr.customMove() {
		copy(dst, src)
		return nil
	}
	for i := range src {
		if err := relocate(tr, &dst[i], &src[i]); err != nil {
			restore(tr, src[:i], dst[:i])
			return err
		}
	}
	return nil
}

// restore moves dst back over the vacated sources src.
func restore[T any](tr *traits, src, dst []T) {
	for i := range dst {
		vacate(tr, &src[i])
		if err := relocate(tr, &src[i], &dst[i]); err != nil {
			destroy(tr, &dst[i])
			continue
		}
		vacate(tr, &dst[i])
	}
}

// transfer relocates src into the raw slots dst following the type's
// policy. Under PolicyCopy a failure leaves src exactly as it was.
func transfer[T any](tr *traits, dst, src []T) error {
	if tr.policy == PolicyCopy {
		return copyN(tr, dst, src)
	}
	return moveN(tr, dst, src)
}

// untransfer undoes a successful transfer of src into dst.
func untransfer[T any](tr *traits, dst, src []T) {
	if tr.policy == PolicyCopy {
		destroyN(tr, dst)
		return
	}
	restore(tr, src, dst)
}

// retire ends the old elements once their transfer has been committed.
func retire[T any](tr *traits, src []T) {
	if tr.policy == PolicyCopy {
		destroyN(tr, src)
		return
	}
	vacateN(tr, src)
}
