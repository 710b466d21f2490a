// Package scenario runs scripted sequences of vector operations described in YAML.
package scenario

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Op names one vector operation.
type Op string

const (
	OpPushBack Op = "push_back"
	OpPopBack  Op = "pop_back"
	OpInsert   Op = "insert"
	OpErase    Op = "erase"
	OpResize   Op = "resize"
	OpReserve  Op = "reserve"
	OpClear    Op = "clear"
	OpSet      Op = "set"
	OpAt       Op = "at"
)

// ExpectOutOfRange is the only value accepted by Step.ExpectError.
const ExpectOutOfRange = "out_of_range"

// MaxSlots bounds every size and capacity a scenario may request.
const MaxSlots = 1 << 24

var (
	// ErrInvalid is wrapped by every validation error.
	ErrInvalid = errors.New("invalid scenario")
	// ErrPrecondition is wrapped when a step would violate an operation's contract.
	ErrPrecondition = errors.New("precondition violated")
	// ErrExpectation is wrapped when the outcome differs from what the scenario expects.
	ErrExpectation = errors.New("expectation failed")
)

type Scenario struct {
	Name    string  `yaml:"name"`
	Initial []int   `yaml:"initial,omitempty"`
	Reserve *int    `yaml:"reserve,omitempty"`
	Steps   []Step  `yaml:"steps"`
	Expect  *Expect `yaml:"expect,omitempty"`
}

type Step struct {
	Op          Op     `yaml:"op"`
	Index       *int   `yaml:"index,omitempty"`
	Value       *int   `yaml:"value,omitempty"`
	Size        *int   `yaml:"size,omitempty"`
	Capacity    *int   `yaml:"capacity,omitempty"`
	ExpectError string `yaml:"expect_error,omitempty"`
}

// Expect describes the final state. Unset fields are not checked.
type Expect struct {
	Values      []int `yaml:"values,omitempty"`
	Size        *int  `yaml:"size,omitempty"`
	Capacity    *int  `yaml:"capacity,omitempty"`
	MinCapacity *int  `yaml:"min_capacity,omitempty"`
}

// Load reads and validates the scenario at path. A scenario without a name
// is named after the file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read scenario")
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Parse decodes a scenario from YAML and validates it. Unknown fields are rejected.
func Parse(data []byte) (*Scenario, error) {
	s := &Scenario{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode scenario")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that the scenario is well formed. It does not check
// runtime preconditions such as indices, which depend on the vector state.
func (s *Scenario) Validate() error {
	if s.Initial != nil && s.Reserve != nil {
		return errors.Wrap(ErrInvalid, "initial and reserve are mutually exclusive")
	}
	if s.Reserve != nil {
		if err := checkSlots("reserve", *s.Reserve); err != nil {
			return err
		}
	}
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return errors.Wrapf(err, "step %d (%s)", i, step.Op)
		}
	}
	return nil
}

func (st Step) validate() error {
	var need []string
	switch st.Op {
	case OpPushBack:
		need = missing(field{"value", st.Value})
	case OpInsert, OpSet:
		need = missing(field{"index", st.Index}, field{"value", st.Value})
	case OpErase, OpAt:
		need = missing(field{"index", st.Index})
	case OpResize:
		need = missing(field{"size", st.Size})
		if st.Size != nil {
			if err := checkSlots("size", *st.Size); err != nil {
				return err
			}
		}
	case OpReserve:
		need = missing(field{"capacity", st.Capacity})
		if st.Capacity != nil {
			if err := checkSlots("capacity", *st.Capacity); err != nil {
				return err
			}
		}
	case OpPopBack, OpClear:
	case "":
		return errors.Wrap(ErrInvalid, "missing op")
	default:
		return errors.Wrapf(ErrInvalid, "unknown op %q", st.Op)
	}
	if len(need) > 0 {
		return errors.Wrapf(ErrInvalid, "missing %s", strings.Join(need, ", "))
	}
	if st.ExpectError != "" {
		if st.Op != OpAt && st.Op != OpSet {
			return errors.Wrapf(ErrInvalid, "expect_error is only supported for %s and %s", OpAt, OpSet)
		}
		if st.ExpectError != ExpectOutOfRange {
			return errors.Wrapf(ErrInvalid, "unknown expect_error %q", st.ExpectError)
		}
	}
	return nil
}

type field struct {
	name  string
	value *int
}

func missing(fields ...field) []string {
	var out []string
	for _, f := range fields {
		if f.value == nil {
			out = append(out, f.name)
		}
	}
	return out
}

func checkSlots(name string, n int) error {
	switch {
	case n < 0:
		return errors.Wrapf(ErrInvalid, "negative %s %d", name, n)
	case n > MaxSlots:
		return errors.Wrapf(ErrInvalid, "%s %d exceeds %d", name, n, MaxSlots)
	}
	return nil
}
