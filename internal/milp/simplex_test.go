package milp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolveSimpleLE checks a textbook two-variable LP with only <=
// constraints: maximize x+y (minimize -x-y) s.t. x<=4, y<=3, x+y<=5.
// Optimum is x=2,y=3 or x=4,y=1 etc, any vertex with x+y=5 and the bounds
// satisfied; objective must be -5.
func TestSolveSimpleLE(t *testing.T) {
	model := Model{
		NumVars:   2,
		Objective: []float64{-1, -1},
		Constraints: []Constraint{
			{Terms: []Term{{0, 1}}, Sense: LE, RHS: 4},
			{Terms: []Term{{1, 1}}, Sense: LE, RHS: 3},
			{Terms: []Term{{0, 1}, {1, 1}}, Sense: LE, RHS: 5},
		},
	}
	r := Solve(model, 5*time.Second)
	require.Equal(t, StatusOptimal, r.Status)
	assert.InDelta(t, -5.0, r.Objective, 1e-6)
	assert.InDelta(t, 5.0, r.X[0]+r.X[1], 1e-6)
}

// TestSolveRequiresArtificial exercises a >= constraint and an equality
// constraint together: minimize x+y s.t. x+y>=4, x-y=0. Optimum x=y=2.
func TestSolveRequiresArtificial(t *testing.T) {
	model := Model{
		NumVars:   2,
		Objective: []float64{1, 1},
		Constraints: []Constraint{
			{Terms: []Term{{0, 1}, {1, 1}}, Sense: GE, RHS: 4},
			{Terms: []Term{{0, 1}, {1, -1}}, Sense: EQ, RHS: 0},
		},
	}
	r := Solve(model, 5*time.Second)
	require.Equal(t, StatusOptimal, r.Status)
	assert.InDelta(t, 4.0, r.Objective, 1e-6)
	assert.InDelta(t, 2.0, r.X[0], 1e-6)
	assert.InDelta(t, 2.0, r.X[1], 1e-6)
}

func TestSolveInfeasible(t *testing.T) {
	model := Model{
		NumVars:   1,
		Objective: []float64{1},
		Constraints: []Constraint{
			{Terms: []Term{{0, 1}}, Sense: LE, RHS: 1},
			{Terms: []Term{{0, 1}}, Sense: GE, RHS: 5},
		},
	}
	r := Solve(model, 5*time.Second)
	assert.Equal(t, StatusInfeasible, r.Status)
}
