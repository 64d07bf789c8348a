// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

// SolverLinear implements the linear static solver
//  K u = F with prescribed displacements applied by elimination
type SolverLinear struct {
	a *Analysis
}

// add solver to database
func init() {
	solverallocators["static"] = func(a *Analysis) FEsolver {
		return &SolverLinear{a}
	}
}

// Run solves the linear problem and computes reactions
func (o *SolverLinear) Run(res *Result) (err error) {

	// global system
	K, err := o.a.Asm.Stiffness()
	if err != nil {
		return
	}
	sys, err := o.a.system(K, nil, res)
	if err != nil {
		return
	}
	sys.SaveForReactions()

	// solve
	solver, err := NewLinearSolver(o.a.Cfg.Backend, o.a.Cfg)
	if err != nil {
		return
	}
	b := make([]float64, sys.N)
	copy(b, sys.F)
	A := sys.Eliminate(K, b, sys.Value)
	u := make([]float64, sys.N)
	if err = sys.Solve(solver, A, u, b); err != nil {
		return
	}

	// results
	res.U = u
	res.Reactions = sys.Reactions(u)
	res.Success = true
	return
}
