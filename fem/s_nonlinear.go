// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"fmt"
	"math"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

// SolverNonlinear implements the incremental Newton-Raphson solver
//  Loads and prescribed displacements are applied in Nincs equal increments λ = inc/Nincs;
//  within each increment:  Kt δu = λ Fext - fint(u);  u += α δu
type SolverNonlinear struct {
	a *Analysis
}

// add solver to database
func init() {
	solverallocators["nonlinear"] = func(a *Analysis) FEsolver {
		return &SolverNonlinear{a}
	}
}

// Run runs the increments
func (o *SolverNonlinear) Run(res *Result) (err error) {

	// global system
	cfg := o.a.Cfg
	asm := o.a.Asm
	sys, err := o.a.system(nil, nil, res)
	if err != nil {
		return
	}
	solver, err := NewLinearSolver(cfg.Backend, cfg)
	if err != nil {
		return
	}
	zero := func(int) float64 { return 0 }

	// auxiliary
	n := sys.N
	u := make([]float64, n)
	R := make([]float64, n)
	δu := make([]float64, n)
	Fλ := make([]float64, n)
	var fint []float64
	var Kt *SysMatrix
	defer func() {
		res.U = u
	}()

	// message
	if io.Verbose {
		io.Pf("\n%4s%4s%10s%23s%23s%23s\n", "inc", "it", "λ", "resF", "resU", "resE")
	}

	// increments
	for inc := 1; inc <= cfg.Nincs; inc++ {

		// load factor and prescribed values
		λ := float64(inc) / float64(cfg.Nincs)
		for I := range Fλ {
			Fλ[I] = λ * sys.F[I]
		}
		for _, I := range sys.Fixed {
			u[I] = λ * sys.Value(I)
		}

		// iterations
		var resF, resU, resE, resFprev, α float64
		ngrow := 0
		for it := 0; ; it++ {

			// residual
			Kt, fint, err = asm.Tangent(u)
			if err != nil {
				return
			}
			floats.SubTo(R, Fλ, fint)
			for _, I := range sys.Fixed {
				R[I] = 0
			}
			resF = floats.Norm(R, 2) / o.fref(sys, Fλ, fint)

			// convergence
			info := &IterInfo{Inc: inc, It: it, Lam: λ, ResF: resF, ResU: resU, ResE: resE, Alpha: α}
			res.Iters = append(res.Iters, info)
			if io.Verbose {
				io.Pf("%4d%4d%10.4f%23.15e%23.15e%23.15e\n", inc, it, λ, resF, resU, resE)
			}
			if resF < cfg.TolF {
				break
			}
			if it > 0 && (resU < cfg.TolU || resE < cfg.TolE) {
				break
			}

			// divergence
			if it > 0 && resF > resFprev {
				ngrow++
			} else {
				ngrow = 0
			}
			resFprev = resF
			if ngrow >= cfg.DivIts {
				res.Msg = io.Sf("residual grew in %d consecutive iterations at increment %d", ngrow, inc)
				return fmt.Errorf("increment %d of %d: %w", inc, cfg.Nincs, &ConvergenceError{What: "Newton-Raphson", Iters: res.Nit, Residual: resF, Msg: res.Msg})
			}
			if it >= cfg.MaxIt {
				res.Msg = io.Sf("max number of iterations reached at increment %d", inc)
				return fmt.Errorf("increment %d of %d: %w", inc, cfg.Nincs, &ConvergenceError{What: "Newton-Raphson", Iters: res.Nit, Residual: resF, Msg: res.Msg})
			}

			// correction
			b := make([]float64, n)
			copy(b, R)
			A := sys.Eliminate(Kt, b, zero)
			if err = sys.Solve(solver, A, δu, b); err != nil {
				return
			}
			res.Nit++

			// update
			α, err = o.lineSearch(sys, u, δu, Fλ, floats.Norm(R, 2))
			if err != nil {
				return
			}
			floats.AddScaled(u, α, δu)

			// measures of the correction
			nu := floats.Norm(u, 2)
			if nu == 0 {
				nu = 1
			}
			resU = α * floats.Norm(δu, 2) / nu
			resE = math.Abs(α*floats.Dot(δu, R)) / o.eref(sys, u, Fλ, fint)
		}
	}

	// reactions
	res.Reactions = make([]float64, n)
	for _, I := range sys.Cons.Dofs {
		res.Reactions[I] = fint[I] - Fλ[I]
	}
	res.Success = true
	return
}

// eref returns the reference work for the energy criterion:
//  |u·λFext|, else ‖u‖ times the reference force, else 1
func (o *SolverNonlinear) eref(sys *GlobalSystem, u, Fλ, fint []float64) float64 {
	if w := math.Abs(floats.Dot(u, Fλ)); w > 0 {
		return w
	}
	if w := floats.Norm(u, 2) * o.fref(sys, Fλ, fint); w > 0 {
		return w
	}
	return 1
}

// fref returns the reference force for the residual norm:
//  ‖λ Fext‖ at free DOFs, else the norm of the reactions, else 1
func (o *SolverNonlinear) fref(sys *GlobalSystem, Fλ, fint []float64) float64 {
	s := 0.0
	for _, I := range sys.Free {
		s += Fλ[I] * Fλ[I]
	}
	if s > 0 {
		return math.Sqrt(s)
	}
	for _, I := range sys.Cons.Dofs {
		s += fint[I] * fint[I]
	}
	if s > 0 {
		return math.Sqrt(s)
	}
	return 1
}

// lineSearch returns the factor α ∈ {1, ½, ¼, ...} reducing the residual norm r0
//  Note: the first reducing factor is returned; otherwise the best tried one
func (o *SolverNonlinear) lineSearch(sys *GlobalSystem, u, δu, Fλ []float64, r0 float64) (α float64, err error) {
	if !o.a.Cfg.LineSearch {
		return 1, nil
	}
	const ntrials = 6
	trial := make([]float64, len(u))
	R := make([]float64, len(u))
	best, rbest := 1.0, math.Inf(1)
	α = 1.0
	for k := 0; k < ntrials; k++ {
		floats.AddScaledTo(trial, u, α, δu)
		fint, e := o.a.Asm.InternalForces(trial)
		if e != nil {
			return 0, e
		}
		floats.SubTo(R, Fλ, fint)
		for _, I := range sys.Fixed {
			R[I] = 0
		}
		r := floats.Norm(R, 2)
		if r < r0 {
			return α, nil
		}
		if r < rbest {
			best, rbest = α, r
		}
		α /= 2
	}
	return best, nil
}
