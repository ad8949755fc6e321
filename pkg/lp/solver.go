// Package lp implements a small dense linear-program solver over
// unbounded real variables. It supports equality, less-than, and
// greater-than constraints with a minimise or maximise objective, and is
// used by pkg/kernel to decide joint/polytope intersection and to drop
// redundant bounding faces.
package lp

import (
	"fmt"
	"math"
)

// Sense is the optimisation direction of the objective.
type Sense int

const (
	Minimize Sense = iota
	Maximize
)

// Relation is the comparison operator of a constraint row.
type Relation int

const (
	LE Relation = iota
	GE
	EQ
)

type rawConstraint struct {
	coeffs []float64
	rel    Relation
	rhs    float64
}

// Solver builds an LP incrementally: construct with New, call
// SetObjective once and AddConstraint any number of times, then Solve.
// A Solver is discarded after use; it holds no state useful across calls.
type Solver struct {
	n           int
	haveObj     bool
	sense       Sense
	objective   []float64
	constraints []rawConstraint
}

// New creates a solver over n unbounded real variables. n must be
// positive; a non-positive n is a programming error.
func New(n int) *Solver {
	if n <= 0 {
		panic(fmt.Sprintf("lp: variable count must be positive, got %d", n))
	}
	return &Solver{n: n}
}

// SetObjective installs the objective row. coeffs must have length n.
func (s *Solver) SetObjective(coeffs []float64, sense Sense) {
	if len(coeffs) != s.n {
		panic(fmt.Sprintf("lp: objective has %d coefficients, want %d", len(coeffs), s.n))
	}
	s.objective = append([]float64(nil), coeffs...)
	s.sense = sense
	s.haveObj = true
}

// AddConstraint appends one constraint row. coeffs must have length n.
func (s *Solver) AddConstraint(coeffs []float64, rel Relation, rhs float64) {
	if len(coeffs) != s.n {
		panic(fmt.Sprintf("lp: constraint has %d coefficients, want %d", len(coeffs), s.n))
	}
	s.constraints = append(s.constraints, rawConstraint{
		coeffs: append([]float64(nil), coeffs...),
		rel:    rel,
		rhs:    rhs,
	})
}

const (
	bigM          = 1e7
	feasTol       = 1e-9
	pivotTol      = 1e-9
	maxIterations = 2000
)

type rowExtra struct {
	slackCol      int // column playing slack (LE, coeff +1) or surplus (GE, coeff -1); -1 if none
	artificialCol int // -1 if none
}

// Solve runs a Big-M simplex and returns the optimal assignment and
// objective value, or false if the LP is infeasible, unbounded, or the
// method breaks down numerically (treated identically per the solver's
// contract: "no useful information").
func (s *Solver) Solve() ([]float64, float64, bool) {
	if !s.haveObj {
		panic("lp: Solve called before SetObjective")
	}

	m := len(s.constraints)
	numSplit := 2 * s.n // x_i = x_i+ - x_i-

	// Normalize every row to rhs >= 0, flipping LE<->GE when negated.
	type normConstraint struct {
		coeffs []float64
		rhs    float64
		rel    Relation
	}
	norm := make([]normConstraint, m)
	for i, c := range s.constraints {
		coeffs := append([]float64(nil), c.coeffs...)
		rhs := c.rhs
		rel := c.rel
		if rhs < 0 {
			for j := range coeffs {
				coeffs[j] = -coeffs[j]
			}
			rhs = -rhs
			switch rel {
			case LE:
				rel = GE
			case GE:
				rel = LE
			}
		}
		norm[i] = normConstraint{coeffs, rhs, rel}
	}

	extras := make([]rowExtra, m)
	numExtraCols := 0
	for i, c := range norm {
		extras[i] = rowExtra{-1, -1}
		switch c.rel {
		case LE:
			extras[i].slackCol = numSplit + numExtraCols
			numExtraCols++
		case GE:
			extras[i].slackCol = numSplit + numExtraCols
			numExtraCols++
			extras[i].artificialCol = numSplit + numExtraCols
			numExtraCols++
		case EQ:
			extras[i].artificialCol = numSplit + numExtraCols
			numExtraCols++
		}
	}
	totalCols := numSplit + numExtraCols

	tab := make([][]float64, m+1)
	for i := range tab {
		tab[i] = make([]float64, totalCols+1)
	}
	basis := make([]int, m)
	artificialCols := make(map[int]bool)

	for i, c := range norm {
		row := tab[i+1]
		for j := 0; j < s.n; j++ {
			row[2*j] = c.coeffs[j]
			row[2*j+1] = -c.coeffs[j]
		}
		row[totalCols] = c.rhs

		switch c.rel {
		case LE:
			row[extras[i].slackCol] = 1
			basis[i] = extras[i].slackCol
		case GE:
			row[extras[i].slackCol] = -1
			row[extras[i].artificialCol] = 1
			basis[i] = extras[i].artificialCol
			artificialCols[extras[i].artificialCol] = true
		case EQ:
			row[extras[i].artificialCol] = 1
			basis[i] = extras[i].artificialCol
			artificialCols[extras[i].artificialCol] = true
		}
	}

	// Internal objective: always maximise. intC[j] is the coefficient of
	// the j-th original variable under that convention.
	intC := make([]float64, s.n)
	for j, c := range s.objective {
		if s.sense == Minimize {
			intC[j] = -c
		} else {
			intC[j] = c
		}
	}

	obj := tab[0]
	for j := 0; j < s.n; j++ {
		obj[2*j] = -intC[j]
		obj[2*j+1] = intC[j]
	}
	for col := range artificialCols {
		obj[col] = bigM
	}

	// Canonicalize: zero out the objective row under each basic column.
	for i := 0; i < m; i++ {
		col := basis[i]
		coeff := obj[col]
		if coeff == 0 {
			continue
		}
		row := tab[i+1]
		for j := 0; j <= totalCols; j++ {
			obj[j] -= coeff * row[j]
		}
	}

	optimal := false
	for iter := 0; iter < maxIterations; iter++ {
		// Entering column: most negative reduced cost (Bland's rule on ties).
		enter := -1
		best := -pivotTol
		for j := 0; j < totalCols; j++ {
			if obj[j] < best {
				best = obj[j]
				enter = j
			}
		}
		if enter == -1 {
			optimal = true
			break
		}

		// Leaving row: minimum ratio test, Bland's rule on ties.
		leave := -1
		bestRatio := math.Inf(1)
		for i := 0; i < m; i++ {
			a := tab[i+1][enter]
			if a <= pivotTol {
				continue
			}
			ratio := tab[i+1][totalCols] / a
			if ratio < bestRatio-feasTol ||
				(ratio < bestRatio+feasTol && (leave == -1 || basis[i] < basis[leave])) {
				bestRatio = ratio
				leave = i
			}
		}
		if leave == -1 {
			return nil, 0, false // unbounded
		}

		// Pivot.
		pivot := tab[leave+1][enter]
		prow := tab[leave+1]
		for j := 0; j <= totalCols; j++ {
			prow[j] /= pivot
		}
		for i := 0; i <= m; i++ {
			if i == leave+1 {
				continue
			}
			row := tab[i]
			factor := row[enter]
			if factor == 0 {
				continue
			}
			for j := 0; j <= totalCols; j++ {
				row[j] -= factor * prow[j]
			}
		}
		basis[leave] = enter
	}
	if !optimal {
		return nil, 0, false // iteration limit reached (e.g. cycling)
	}

	// Infeasible if an artificial variable is still basic at a positive value.
	for i := 0; i < m; i++ {
		if artificialCols[basis[i]] && tab[i+1][totalCols] > feasTol {
			return nil, 0, false
		}
	}

	values := make([]float64, totalCols)
	for i := 0; i < m; i++ {
		values[basis[i]] = tab[i+1][totalCols]
	}

	assignment := make([]float64, s.n)
	var optimum float64
	for j := 0; j < s.n; j++ {
		assignment[j] = values[2*j] - values[2*j+1]
		optimum += s.objective[j] * assignment[j]
	}

	return assignment, optimum, true
}
