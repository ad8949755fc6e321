package lp

import (
	"math"
	"testing"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// S1 from spec §8: max x+y s.t. x<=5, y<=4 -> (5,4), optimum 9.
func TestSolveMaxSumBounded(t *testing.T) {
	s := New(2)
	s.SetObjective([]float64{1, 1}, Maximize)
	s.AddConstraint([]float64{1, 0}, LE, 5)
	s.AddConstraint([]float64{0, 1}, LE, 4)

	assignment, optimum, ok := s.Solve()
	if !ok {
		t.Fatalf("expected feasible solution")
	}
	if !approxEqual(assignment[0], 5, 1e-6) || !approxEqual(assignment[1], 4, 1e-6) {
		t.Errorf("assignment = %v, want (5,4)", assignment)
	}
	if !approxEqual(optimum, 9, 1e-6) {
		t.Errorf("optimum = %v, want 9", optimum)
	}
}

// S2 from spec §8: min x-y s.t. 5<=x<=6, 7<=y<=11 -> (5,11), optimum -6.
func TestSolveMinSignedRange(t *testing.T) {
	s := New(2)
	s.SetObjective([]float64{1, -1}, Minimize)
	s.AddConstraint([]float64{1, 0}, GE, 5)
	s.AddConstraint([]float64{1, 0}, LE, 6)
	s.AddConstraint([]float64{0, 1}, GE, 7)
	s.AddConstraint([]float64{0, 1}, LE, 11)

	assignment, optimum, ok := s.Solve()
	if !ok {
		t.Fatalf("expected feasible solution")
	}
	if !approxEqual(assignment[0], 5, 1e-6) || !approxEqual(assignment[1], 11, 1e-6) {
		t.Errorf("assignment = %v, want (5,11)", assignment)
	}
	if !approxEqual(optimum, -6, 1e-6) {
		t.Errorf("optimum = %v, want -6", optimum)
	}
}

func TestSolveNegativeVariablesAllowed(t *testing.T) {
	s := New(1)
	s.SetObjective([]float64{1}, Minimize)
	s.AddConstraint([]float64{1}, EQ, -3.5)

	assignment, optimum, ok := s.Solve()
	if !ok {
		t.Fatalf("expected feasible solution")
	}
	if !approxEqual(assignment[0], -3.5, 1e-6) {
		t.Errorf("assignment = %v, want -3.5", assignment)
	}
	if !approxEqual(optimum, -3.5, 1e-6) {
		t.Errorf("optimum = %v, want -3.5", optimum)
	}
}

func TestSolveInfeasible(t *testing.T) {
	s := New(1)
	s.SetObjective([]float64{1}, Maximize)
	s.AddConstraint([]float64{1}, LE, 1)
	s.AddConstraint([]float64{1}, GE, 2)

	_, _, ok := s.Solve()
	if ok {
		t.Errorf("expected infeasible")
	}
}

func TestSolveUnbounded(t *testing.T) {
	s := New(1)
	s.SetObjective([]float64{1}, Maximize)
	s.AddConstraint([]float64{1}, GE, 0)

	_, _, ok := s.Solve()
	if ok {
		t.Errorf("expected unbounded")
	}
}

func TestSolveEqualityPlane(t *testing.T) {
	// x + y + z = 3, minimise z -> unbounded since x,y free to compensate.
	s := New(3)
	s.SetObjective([]float64{0, 0, 1}, Minimize)
	s.AddConstraint([]float64{1, 1, 1}, EQ, 3)
	_, _, ok := s.Solve()
	if ok {
		t.Errorf("expected unbounded (free compensating variables)")
	}
}

func TestNewPanicsOnNonPositiveN(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for n=0")
		}
	}()
	New(0)
}

func TestSetObjectiveDimensionMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for dimension mismatch")
		}
	}()
	s := New(2)
	s.SetObjective([]float64{1}, Maximize)
}

func TestAddConstraintDimensionMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for dimension mismatch")
		}
	}()
	s := New(2)
	s.AddConstraint([]float64{1, 2, 3}, LE, 1)
}
