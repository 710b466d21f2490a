package scenario

import (
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/pavanmanishd/vector"
)

// Result is the outcome of a successful run.
type Result struct {
	Name   string
	Vector *vector.Vector[int]
}

func (r *Result) String() string {
	return fmt.Sprintf("%s: %v size=%d cap=%d", r.Name, r.Vector, r.Vector.Len(), r.Vector.Cap())
}

// Run executes the steps against a fresh vector and checks the expectations.
// Steps that would break a vector precondition fail with ErrPrecondition
// instead of reaching the vector.
func (s *Scenario) Run(logger log.Logger) (*Result, error) {
	logger = log.With(logger, "scenario", s.Name)

	var v *vector.Vector[int]
	switch {
	case s.Initial != nil:
		v = vector.Of(s.Initial...)
	case s.Reserve != nil:
		v = vector.NewWithHint[int](vector.Reserve(*s.Reserve))
	default:
		v = vector.New[int]()
	}

	for i, step := range s.Steps {
		if err := apply(v, step); err != nil {
			return nil, errors.Wrapf(err, "scenario %s: step %d (%s)", s.Name, i, step.Op)
		}
		level.Debug(logger).Log(step.logKeyvals(i, v)...)
	}

	if err := s.Expect.check(v); err != nil {
		return nil, errors.Wrapf(err, "scenario %s", s.Name)
	}

	m := v.Metrics()
	level.Info(logger).Log("msg", "scenario finished", "steps", len(s.Steps), "size", m.Size, "capacity", m.Capacity, "reallocations", m.Reallocations)
	return &Result{Name: s.Name, Vector: v}, nil
}

func (st Step) logKeyvals(i int, v *vector.Vector[int]) []any {
	kvs := []any{"msg", "applied step", "step", i, "op", st.Op}
	if st.Index != nil {
		kvs = append(kvs, "index", *st.Index)
	}
	if st.Value != nil {
		kvs = append(kvs, "value", *st.Value)
	}
	return append(kvs, "size", v.Len(), "capacity", v.Cap())
}

func apply(v *vector.Vector[int], st Step) error {
	switch st.Op {
	case OpPushBack:
		v.PushBack(*st.Value)
	case OpPopBack:
		if v.IsEmpty() {
			return errors.Wrap(ErrPrecondition, "pop_back on empty vector")
		}
		v.PopBack()
	case OpInsert:
		if i := *st.Index; i < v.Begin() || i > v.End() {
			return errors.Wrapf(ErrPrecondition, "insert index %d out of [0, %d]", i, v.Len())
		}
		v.Insert(*st.Index, *st.Value)
	case OpErase:
		if i := *st.Index; i < v.Begin() || i >= v.End() {
			return errors.Wrapf(ErrPrecondition, "erase index %d out of [0, %d)", i, v.Len())
		}
		v.Erase(*st.Index)
	case OpResize:
		v.Resize(*st.Size)
	case OpReserve:
		v.Reserve(*st.Capacity)
	case OpClear:
		v.Clear()
	case OpSet:
		return expectError(v.SetAt(*st.Index, *st.Value), st.ExpectError)
	case OpAt:
		_, err := v.At(*st.Index)
		return expectError(err, st.ExpectError)
	default:
		return errors.Wrapf(ErrInvalid, "unknown op %q", st.Op)
	}
	return nil
}

func expectError(err error, want string) error {
	switch {
	case want == "":
		return err
	case err == nil:
		return errors.Wrapf(ErrExpectation, "want %s error, got none", want)
	case want == ExpectOutOfRange && errors.Is(err, vector.ErrOutOfRange):
		return nil
	default:
		return errors.Wrapf(ErrExpectation, "want %s error, got %v", want, err)
	}
}

func (e *Expect) check(v *vector.Vector[int]) error {
	if e == nil {
		return nil
	}
	if e.Values != nil && !vector.Equal(v, vector.Of(e.Values...)) {
		return errors.Wrapf(ErrExpectation, "values %v, want %v", v, e.Values)
	}
	if e.Size != nil && v.Len() != *e.Size {
		return errors.Wrapf(ErrExpectation, "size %d, want %d", v.Len(), *e.Size)
	}
	if e.Capacity != nil && v.Cap() != *e.Capacity {
		return errors.Wrapf(ErrExpectation, "capacity %d, want %d", v.Cap(), *e.Capacity)
	}
	if e.MinCapacity != nil && v.Cap() < *e.MinCapacity {
		return errors.Wrapf(ErrExpectation, "capacity %d, want at least %d", v.Cap(), *e.MinCapacity)
	}
	return nil
}
