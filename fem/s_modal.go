// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// RIGID_TOL flags eigenvalues λ ≤ RIGID_TOL max(λ) as rigid-body modes
const RIGID_TOL = 1e-10

// SolverModal implements the modal (natural frequencies) solver
//  K φ = ω² M φ over the free DOFs; prescribed displacements act as homogeneous constraints
type SolverModal struct {
	a *Analysis
}

// add solver to database
func init() {
	solverallocators["modal"] = func(a *Analysis) FEsolver {
		return &SolverModal{a}
	}
}

// Run computes the lowest Nmodes eigenpairs
//  Note: if the backend converges fewer modes than requested, the converged ones are returned,
//        Success and ModesConverged are false and Msg tells how many converged
func (o *SolverModal) Run(res *Result) (err error) {

	// global system
	K, err := o.a.Asm.Stiffness()
	if err != nil {
		return
	}
	M, err := o.a.Asm.Mass()
	if err != nil {
		return
	}
	sys, err := o.a.system(K, M, res)
	if err != nil {
		return
	}
	nfree := len(sys.Free)
	if nfree == 0 {
		return &SingularSystemError{Dof: -1, Msg: "all DOFs are constrained; there are no modes"}
	}

	// reduced matrices
	Kr := denseToTriplet(K.Reduced(sys.Free))
	Mr := denseToTriplet(M.Reduced(sys.Free))

	// solve
	solver, err := NewEigenSolver(o.a.Cfg.EigBackend, o.a.Cfg)
	if err != nil {
		return
	}
	nev := imin(o.a.Cfg.Nmodes, nfree)
	λ, Φ, nconv, err := solver.Solve(Kr, Mr, nev)
	if err != nil {
		if _, ok := err.(*SingularSystemError); ok {
			return
		}
		return &SingularSystemError{Dof: -1, Hint: "mass matrix must be positive definite over the free DOFs", Msg: err.Error()}
	}

	// modes
	λmax := 0.0
	for _, v := range λ {
		λmax = math.Max(λmax, math.Abs(v))
	}
	res.Modes = make([]*Mode, nconv)
	for k := 0; k < nconv; k++ {
		ω := math.Sqrt(math.Max(λ[k], 0))
		mode := &Mode{Eigenvalue: λ[k], Omega: ω, Freq: ω / (2.0 * math.Pi), Phi: make([]float64, sys.N)}
		mode.RigidBody = λ[k] <= RIGID_TOL*λmax
		for i, I := range sys.Free {
			mode.Phi[I] = Φ.At(i, k)
		}
		res.Modes[k] = mode
	}
	res.ModesConverged = nconv == nev
	res.Success = res.ModesConverged
	if !res.ModesConverged {
		res.Msg = io.Sf("only %d of %d modes converged", nconv, nev)
	}
	return
}

// denseToTriplet converts a dense matrix into triplet format
func denseToTriplet(a *mat.Dense) (t *Triplet) {
	m, n := a.Dims()
	t = new(Triplet)
	t.Init(m, n, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if v := a.At(i, j); v != 0 {
				t.Put(i, j, v)
			}
		}
	}
	return
}
