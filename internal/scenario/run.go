// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scenario

import (
	"errors"
	"fmt"
	"slices"

	"code.hybscloud.com/vec"
	"github.com/rs/zerolog"
)

// ErrPrecondition reports a step whose position or state would violate a
// container precondition. The step is skipped instead of run.
var ErrPrecondition = errors.New("scenario: precondition violated")

// strongOps leave the vector exactly as it was when they fail.
var strongOps = map[string]bool{
	OpPushBack: true, OpPushBackCopy: true, OpEmplaceBack: true,
	OpInsert: true, OpInsertCopy: true, OpEmplace: true, OpErase: true,
	OpReserve: true, OpShrinkToFit: true, OpClone: true,
}

// Record is the observed outcome of one step.
type Record struct {
	Step     int      `json:"step"`
	Op       string   `json:"op"`
	Size     int      `json:"size"`
	Capacity int      `json:"capacity"`
	Serial   uint32   `json:"serial"`
	Values   []int    `json:"values"`
	Probe    Probe    `json:"probe"`
	Error    string   `json:"error,omitempty"`
	Mismatch []string `json:"mismatch,omitempty"`
}

// Report is the outcome of one scenario.
type Report struct {
	Scenario string   `json:"scenario"`
	Element  string   `json:"element"`
	Policy   string   `json:"policy"`
	Records  []Record `json:"records"`
	Failed   bool     `json:"failed"`
}

// cell is the constraint satisfied by the instrumented element types.
type cell[T any] interface {
	*T
	set(v int, p *Probe)
	value() int
}

// Run executes s against a fresh vector of the element kind it names.
// Runs are serialized process-wide.
func Run(s *Scenario, log zerolog.Logger) Report {
	switch s.Element {
	case ElementCopyable:
		return run[Copyable](s, log)
	case ElementMoveOnly:
		return run[MoveOnly](s, log)
	default:
		return run[Plain](s, log)
	}
}

type runner[T any, P cell[T]] struct {
	v     vec.Vector[T]
	probe *Probe
	log   zerolog.Logger
}

func run[T any, P cell[T]](s *Scenario, log zerolog.Logger) Report {
	active.Lock()
	defer active.Unlock()
	r := &runner[T, P]{probe: &Probe{}, log: log.With().Str("scenario", s.Name).Logger()}
	active.probe = r.probe
	defer func() { active.probe = nil }()

	rep := Report{
		Scenario: s.Name,
		Element:  s.Element,
		Policy:   vec.PolicyOf[T]().String(),
	}
	r.log.Info().Str("element", s.Element).Str("policy", rep.Policy).Int("steps", len(s.Steps)).Msg("scenario start")
	for i, st := range s.Steps {
		rec := r.step(i, st)
		if len(rec.Mismatch) > 0 {
			rep.Failed = true
		}
		rep.Records = append(rep.Records, rec)
	}
	r.v.Release()
	ev := r.log.Info()
	if rep.Failed {
		ev = r.log.Error()
	}
	ev.Bool("failed", rep.Failed).Msg("scenario done")
	return rep
}

func (r *runner[T, P]) newElem(x int) T {
	var t T
	P(&t).set(x, r.probe)
	return t
}

func (r *runner[T, P]) build(x int) func(*T) error {
	return func(p *T) error {
		if r.probe.tripConstruct() {
			return ErrInjected
		}
		P(p).set(x, r.probe)
		return nil
	}
}

func (r *runner[T, P]) values() []int {
	out := make([]int, 0, r.v.Size())
	for x := range r.v.Values() {
		out = append(out, P(&x).value())
	}
	return out
}

func (r *runner[T, P]) step(i int, st Step) Record {
	before := *r.probe
	size, capacity, serial, values := r.v.Size(), r.v.Capacity(), r.v.Serial(), r.values()

	if f := st.Fault; f != nil {
		switch f.Kind {
		case FaultConstruct:
			r.probe.ArmConstruct()
		case FaultTransfer:
			r.probe.ArmTransfer(f.After)
		}
	}
	note, err := r.apply(st)
	r.probe.Disarm()

	rec := Record{
		Step:     i,
		Op:       st.Op,
		Size:     r.v.Size(),
		Capacity: r.v.Capacity(),
		Serial:   r.v.Serial(),
		Values:   r.values(),
		Probe:    r.probe.Delta(before),
	}
	if err != nil {
		rec.Error = err.Error()
	}
	if note != "" {
		rec.Mismatch = append(rec.Mismatch, note)
	}
	if rec.Size < 0 || rec.Size > rec.Capacity {
		rec.Mismatch = append(rec.Mismatch, fmt.Sprintf("size %d outside [0, %d]", rec.Size, rec.Capacity))
	}
	if err != nil && strongOps[st.Op] && !errors.Is(err, ErrPrecondition) {
		if rec.Size != size || rec.Capacity != capacity || rec.Serial != serial || !slices.Equal(rec.Values, values) {
			rec.Mismatch = append(rec.Mismatch, "state changed by failed "+st.Op)
		}
	}
	if st.Expect != nil {
		rec.Mismatch = append(rec.Mismatch, r.check(st.Expect, err)...)
	}

	ev := r.log.Debug()
	switch {
	case len(rec.Mismatch) > 0:
		ev = r.log.Error().Strs("mismatch", rec.Mismatch)
	case err != nil:
		ev = r.log.Warn().Err(err)
	}
	ev.Int("step", i).Str("op", st.Op).
		Int("size", rec.Size).Int("capacity", rec.Capacity).Uint32("serial", rec.Serial).
		Int("moves", rec.Probe.Moves).Int("copies", rec.Probe.Copies).
		Msg("step")
	return rec
}

// apply runs one op. note is non-empty when the op observed a contract
// violation of its own, such as a clone aliasing its source.
func (r *runner[T, P]) apply(st Step) (note string, err error) {
	v := &r.v
	switch st.Op {
	case OpPushBack:
		err = v.PushBack(r.newElem(st.Value))
	case OpPushBackCopy:
		x := r.newElem(st.Value)
		err = v.PushBackCopy(&x)
	case OpEmplaceBack:
		_, err = v.EmplaceBack(r.build(st.Value))
	case OpPopBack:
		if v.Empty() {
			return "", fmt.Errorf("%w: pop_back on empty vector", ErrPrecondition)
		}
		v.PopBack()
	case OpInsert, OpInsertCopy, OpEmplace:
		if st.Pos > v.Size() {
			return "", fmt.Errorf("%w: position %d past end %d", ErrPrecondition, st.Pos, v.Size())
		}
		switch st.Op {
		case OpInsert:
			_, err = v.Insert(st.Pos, r.newElem(st.Value))
		case OpInsertCopy:
			x := r.newElem(st.Value)
			_, err = v.InsertCopy(st.Pos, &x)
		default:
			_, err = v.Emplace(st.Pos, r.build(st.Value))
		}
	case OpErase:
		if st.Pos >= v.Size() {
			return "", fmt.Errorf("%w: erase at %d, size %d", ErrPrecondition, st.Pos, v.Size())
		}
		_, err = v.Erase(st.Pos)
	case OpReserve:
		err = v.Reserve(st.N)
	case OpResize:
		err = v.Resize(st.N)
	case OpShrinkToFit:
		err = v.ShrinkToFit()
	case OpClear:
		v.Clear()
	case OpClone:
		return r.clone()
	case OpAssign:
		src := vec.New[T]()
		defer src.Release()
		for _, x := range st.Values {
			if err := src.PushBack(r.newElem(x)); err != nil {
				return "", err
			}
		}
		err = v.Assign(src)
	case OpTake:
		return r.take(), nil
	}
	return "", err
}

// clone copies the vector, then overwrites the copy's first element and
// requires the original to keep its own.
func (r *runner[T, P]) clone() (string, error) {
	c, err := r.v.Clone()
	if err != nil {
		return "", err
	}
	defer c.Release()
	if c.Size() != r.v.Size() {
		return fmt.Sprintf("clone size %d, source %d", c.Size(), r.v.Size()), nil
	}
	if c.Empty() {
		return "", nil
	}
	orig := P(r.v.Index(0)).value()
	P(c.Index(0)).set(orig+1, r.probe)
	if got := P(r.v.Index(0)).value(); got != orig {
		return fmt.Sprintf("clone aliases source: element 0 became %d", got), nil
	}
	return "", nil
}

// take moves the vector out, requires the source to be empty, and moves
// it back so the scenario can continue.
func (r *runner[T, P]) take() string {
	size := r.v.Size()
	t := r.v.Take()
	note := ""
	if r.v.Size() != 0 || r.v.Capacity() != 0 {
		note = fmt.Sprintf("take left source with size %d, capacity %d", r.v.Size(), r.v.Capacity())
	}
	if t.Size() != size {
		note = fmt.Sprintf("take moved %d of %d elements", t.Size(), size)
	}
	r.v.MoveFrom(t)
	return note
}

// check compares the step outcome with its expectation, reading elements
// through the checked accessor.
func (r *runner[T, P]) check(e *Expect, err error) []string {
	var out []string
	if e.Fail != nil && *e.Fail != (err != nil) {
		out = append(out, fmt.Sprintf("fail: got %v, want %v (err=%v)", err != nil, *e.Fail, err))
	}
	if e.Size != nil && *e.Size != r.v.Size() {
		out = append(out, fmt.Sprintf("size: got %d, want %d", r.v.Size(), *e.Size))
	}
	if e.Capacity != nil && *e.Capacity != r.v.Capacity() {
		out = append(out, fmt.Sprintf("capacity: got %d, want %d", r.v.Capacity(), *e.Capacity))
	}
	if e.Values != nil {
		if len(e.Values) != r.v.Size() {
			out = append(out, fmt.Sprintf("values: got %v, want %v", r.values(), e.Values))
			return out
		}
		for i, want := range e.Values {
			at := r.v.At(i)
			if err, bad := at.GetLeft(); bad {
				out = append(out, err.Error())
				continue
			}
			x, _ := at.GetRight()
			if got := P(&x).value(); got != want {
				out = append(out, fmt.Sprintf("values[%d]: got %d, want %d", i, got, want))
			}
		}
	}
	return out
}
