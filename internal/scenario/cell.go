// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scenario

import (
	"errors"
	"sync"
)

// ErrInjected is returned by an element hook when an armed fault fires.
var ErrInjected = errors.New("scenario: injected fault")

// Probe counts element lifetime events and fires armed faults.
// Every element of a run reports into the same Probe.
type Probe struct {
	Moves    int `json:"moves"`
	Copies   int `json:"copies"`
	Destroys int `json:"destroys"`
	Inits    int `json:"inits"`

	transferIn int
	construct  bool
}

// ArmTransfer makes the transfer after the next after successful ones fail.
func (p *Probe) ArmTransfer(after int) {
	p.transferIn = after + 1
}

// ArmConstruct makes the next construction fail.
func (p *Probe) ArmConstruct() {
	p.construct = true
}

// Disarm clears armed faults that did not fire.
func (p *Probe) Disarm() {
	p.transferIn = 0
	p.construct = false
}

func (p *Probe) tripTransfer() bool {
	if p.transferIn == 0 {
		return false
	}
	p.transferIn--
	return p.transferIn == 0
}

func (p *Probe) tripConstruct() bool {
	fired := p.construct
	p.construct = false
	return fired
}

// Delta returns the counts accumulated since before.
func (p *Probe) Delta(before Probe) Probe {
	return Probe{
		Moves:    p.Moves - before.Moves,
		Copies:   p.Copies - before.Copies,
		Destroys: p.Destroys - before.Destroys,
		Inits:    p.Inits - before.Inits,
	}
}

// active is the probe of the running scenario. Default construction gets
// no origin element to take a probe from, so Init reads it from here;
// Run holds the lock for its whole duration.
var active struct {
	sync.Mutex
	probe *Probe
}

func initCell(probe **Probe, value *int) error {
	p := active.probe
	if p.tripConstruct() {
		return ErrInjected
	}
	p.Inits++
	*probe = p
	*value = 0
	return nil
}

// Plain relocates infallibly and copies by cloning: relocation policy move.
type Plain struct {
	Value int
	probe *Probe
}

func (c *Plain) RelocateTo(dst *Plain) {
	c.probe.Moves++
	*dst = *c
}

func (c *Plain) CloneTo(dst *Plain) error {
	if c.probe.tripTransfer() {
		return ErrInjected
	}
	c.probe.Copies++
	*dst = *c
	return nil
}

func (c *Plain) Destroy() {
	if c.probe != nil {
		c.probe.Destroys++
	}
}

func (c *Plain) Init() error { return initCell(&c.probe, &c.Value) }

func (c *Plain) set(v int, p *Probe) { c.Value, c.probe = v, p }
func (c *Plain) value() int          { return c.Value }

// Copyable has a move that can fail and a working copy: relocation policy copy.
type Copyable struct {
	Value int
	probe *Probe
}

func (c *Copyable) MoveTo(dst *Copyable) error {
	if c.probe.tripTransfer() {
		return ErrInjected
	}
	c.probe.Moves++
	*dst = *c
	return nil
}

func (c *Copyable) CloneTo(dst *Copyable) error {
	if c.probe.tripTransfer() {
		return ErrInjected
	}
	c.probe.Copies++
	*dst = *c
	return nil
}

func (c *Copyable) Destroy() {
	if c.probe != nil {
		c.probe.Destroys++
	}
}

func (c *Copyable) Init() error { return initCell(&c.probe, &c.Value) }

func (c *Copyable) set(v int, p *Probe) { c.Value, c.probe = v, p }
func (c *Copyable) value() int          { return c.Value }

// MoveOnly has a move that can fail and no copy: relocation policy move.
type MoveOnly struct {
	Value int
	probe *Probe
}

func (c *MoveOnly) MoveTo(dst *MoveOnly) error {
	if c.probe.tripTransfer() {
		return ErrInjected
	}
	c.probe.Moves++
	*dst = *c
	return nil
}

func (*MoveOnly) Uncopyable() {}

func (c *MoveOnly) Destroy() {
	if c.probe != nil {
		c.probe.Destroys++
	}
}

func (c *MoveOnly) Init() error { return initCell(&c.probe, &c.Value) }

func (c *MoveOnly) set(v int, p *Probe) { c.Value, c.probe = v, p }
func (c *MoveOnly) value() int          { return c.Value }
