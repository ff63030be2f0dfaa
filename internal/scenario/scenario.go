// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package scenario loads YAML replay scenarios and runs them against
// [code.hybscloud.com/vec.Vector] with instrumented element types and
// injected faults.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Element kinds select the instrumented element type.
const (
	ElementPlain    = "plain"
	ElementCopyable = "copyable"
	ElementMoveOnly = "move-only"
)

// Fault kinds.
const (
	FaultConstruct = "construct"
	FaultTransfer  = "transfer"
)

// Op names.
const (
	OpPushBack     = "push_back"
	OpPushBackCopy = "push_back_copy"
	OpEmplaceBack  = "emplace_back"
	OpPopBack      = "pop_back"
	OpInsert       = "insert"
	OpInsertCopy   = "insert_copy"
	OpEmplace      = "emplace"
	OpErase        = "erase"
	OpReserve      = "reserve"
	OpResize       = "resize"
	OpShrinkToFit  = "shrink_to_fit"
	OpClear        = "clear"
	OpClone        = "clone"
	OpAssign       = "assign"
	OpTake         = "take"
)

var knownOps = map[string]bool{
	OpPushBack: true, OpPushBackCopy: true, OpEmplaceBack: true, OpPopBack: true,
	OpInsert: true, OpInsertCopy: true, OpEmplace: true, OpErase: true,
	OpReserve: true, OpResize: true, OpShrinkToFit: true, OpClear: true,
	OpClone: true, OpAssign: true, OpTake: true,
}

// copyOps need copy construction and are rejected for move-only elements.
var copyOps = map[string]bool{
	OpPushBackCopy: true, OpInsertCopy: true, OpClone: true, OpAssign: true,
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("scenario: invalid")

// Scenario is one replay file.
type Scenario struct {
	Name    string `yaml:"name"`
	Element string `yaml:"element"`
	Steps   []Step `yaml:"steps"`
}

// Step is one operation. Value feeds value-taking ops, Pos positional ops,
// N size/capacity ops, and Values the source vector of assign.
type Step struct {
	Op     string  `yaml:"op"`
	Value  int     `yaml:"value"`
	Pos    int     `yaml:"pos"`
	N      int     `yaml:"n"`
	Values []int   `yaml:"values"`
	Fault  *Fault  `yaml:"fault"`
	Expect *Expect `yaml:"expect"`
}

// Fault arms a failure for the duration of one step.
// For transfer faults, After is the number of copies or moves that
// succeed before the failing one.
type Fault struct {
	Kind  string `yaml:"kind"`
	After int    `yaml:"after"`
}

// Expect is checked after the step. Nil fields are not checked.
type Expect struct {
	Size     *int  `yaml:"size"`
	Capacity *int  `yaml:"capacity"`
	Values   []int `yaml:"values"`
	Fail     *bool `yaml:"fail"`
}

// Load reads and validates the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario load failed (%s): %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// Parse decodes and validates a scenario. A missing element kind means plain.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	s.Element = strings.TrimSpace(s.Element)
	if s.Element == "" {
		s.Element = ElementPlain
	}
	if err := Validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks element kind, op names, argument signs and faults.
// Positions are checked against the live size when the step runs.
func Validate(s *Scenario) error {
	switch s.Element {
	case ElementPlain, ElementCopyable, ElementMoveOnly:
	default:
		return fmt.Errorf("%w: unknown element %q", ErrInvalid, s.Element)
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("%w: no steps", ErrInvalid)
	}
	for i, st := range s.Steps {
		if err := validateStep(s.Element, st); err != nil {
			return fmt.Errorf("%w: step[%d] %s", err, i, st.Op)
		}
	}
	return nil
}

func validateStep(element string, st Step) error {
	if !knownOps[st.Op] {
		return fmt.Errorf("%w: unknown op", ErrInvalid)
	}
	if element == ElementMoveOnly && copyOps[st.Op] {
		return fmt.Errorf("%w: copy op on move-only element", ErrInvalid)
	}
	if st.Pos < 0 || st.N < 0 {
		return fmt.Errorf("%w: negative argument", ErrInvalid)
	}
	if f := st.Fault; f != nil {
		switch f.Kind {
		case FaultConstruct, FaultTransfer:
		default:
			return fmt.Errorf("%w: unknown fault %q", ErrInvalid, f.Kind)
		}
		if f.After < 0 {
			return fmt.Errorf("%w: negative fault offset", ErrInvalid)
		}
	}
	return nil
}
