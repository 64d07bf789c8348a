// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/io"
)

// DynCoefs holds the coefficients of Newmark's method for one time step
//  a_{n+1} = a1 (u_{n+1} - u_n) - a2 v_n - a3 a_n
//  v_{n+1} = v_n + Δt ((1-γ) a_n + γ a_{n+1})
type DynCoefs struct {
	β, γ, Δt               float64 // input
	a1, a2, a3, a4, a5, a6 float64 // derived
}

// Init computes the coefficients
func (o *DynCoefs) Init(β, γ, Δt float64) {
	o.β, o.γ, o.Δt = β, γ, Δt
	o.a1 = 1.0 / (β * Δt * Δt)
	o.a2 = 1.0 / (β * Δt)
	o.a3 = 1.0/(2.0*β) - 1.0
	o.a4 = γ / (β * Δt)
	o.a5 = γ/β - 1.0
	o.a6 = Δt * (γ/(2.0*β) - 1.0)
}

// SolverNewmark implements the Newmark-β time integration of M a + C v + K u = amp(t) Fext
//  Note: C = αR M + βR K (Rayleigh); K_eff = K + a4 C + a1 M is factorized once
type SolverNewmark struct {
	a *Analysis
}

// add solver to database
func init() {
	solverallocators["dynamic"] = func(a *Analysis) FEsolver {
		return &SolverNewmark{a}
	}
}

// Run runs all time steps
//  Note: History holds the initial state (t = 0) followed by one entry per step;
//        prescribed displacements are constant in time
func (o *SolverNewmark) Run(res *Result) (err error) {

	// matrices
	cfg := o.a.Cfg
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
	amp := o.a.Model.Bcs.Amp
	αR, βR := cfg.RayAlpha, cfg.RayBeta
	var dc DynCoefs
	dc.Init(cfg.Beta, cfg.Gamma, cfg.Dt)

	// initial state: u0 = prescribed values, v0 = 0, M a0 = F(0) - K u0
	n := sys.N
	u := make([]float64, n)
	v := make([]float64, n)
	a := make([]float64, n)
	for _, I := range sys.Fixed {
		u[I] = sys.Value(I)
	}
	if err = o.initialAcceleration(sys, K, u, a, amp.F(0)); err != nil {
		return
	}
	res.History = append(res.History, newStep(0, u, v, a))

	// effective stiffness
	Keff := Combine(1.0+dc.a4*βR, K, dc.a4*αR+dc.a1, M)
	bias := make([]float64, n)
	Keff = sys.Eliminate(Keff, bias, sys.Value)
	if err = sys.CheckPivots(Keff); err != nil {
		return
	}
	solver, err := NewLinearSolver(cfg.Backend, cfg)
	if err != nil {
		return
	}
	if err = solver.Factorize(Keff.ToTriplet()); err != nil {
		return
	}

	// auxiliary
	fixed := make([]bool, n)
	for _, I := range sys.Fixed {
		fixed[I] = true
	}
	b := make([]float64, n)
	x := make([]float64, n)
	y := make([]float64, n)
	Mx := make([]float64, n)
	Kx := make([]float64, n)
	un1 := make([]float64, n)

	// time loop
	t := 0.0
	for step := 1; step <= cfg.Nsteps; step++ {
		t = float64(step) * cfg.Dt

		// effective right-hand side: amp(t) F + M (a1 u + a2 v + a3 a) + C (a4 u + a5 v + a6 a)
		for i := 0; i < n; i++ {
			x[i] = dc.a1*u[i] + dc.a2*v[i] + dc.a3*a[i]
			y[i] = dc.a4*u[i] + dc.a5*v[i] + dc.a6*a[i]
		}
		M.MulVec(Mx, x)
		f := amp.F(t)
		for i := 0; i < n; i++ {
			b[i] = f*sys.F[i] + Mx[i]
		}
		if αR != 0 || βR != 0 {
			M.MulVec(Mx, y)
			K.MulVec(Kx, y)
			for i := 0; i < n; i++ {
				b[i] += αR*Mx[i] + βR*Kx[i]
			}
		}
		for i := 0; i < n; i++ {
			if fixed[i] {
				b[i] = bias[i]
			} else {
				b[i] += bias[i]
			}
		}

		// solve and update
		if err = solver.Solve(un1, b); err != nil {
			return
		}
		for i := 0; i < n; i++ {
			an1 := dc.a1*(un1[i]-u[i]) - dc.a2*v[i] - dc.a3*a[i]
			v[i] += cfg.Dt * ((1.0-dc.γ)*a[i] + dc.γ*an1)
			a[i] = an1
			u[i] = un1[i]
		}
		res.History = append(res.History, newStep(t, u, v, a))
	}

	// results
	res.U = make([]float64, n)
	copy(res.U, u)
	res.Success = true
	if io.Verbose {
		io.Pf("Newmark: β=%g γ=%g Δt=%g nsteps=%d t=%g\n", dc.β, dc.γ, dc.Δt, cfg.Nsteps, t)
	}
	return
}

// initialAcceleration solves M a0 = f0 F - K u0 - C v0 with v0 = 0
func (o *SolverNewmark) initialAcceleration(sys *GlobalSystem, K *SysMatrix, u0, a0 []float64, f0 float64) (err error) {
	M, err := o.a.Asm.Mass()
	if err != nil {
		return
	}
	n := sys.N
	b := make([]float64, n)
	K.MulVec(b, u0)
	for i := 0; i < n; i++ {
		b[i] = f0*sys.F[i] - b[i]
	}
	A := sys.Eliminate(M, b, func(int) float64 { return 0 })
	solver, err := NewLinearSolver(o.a.Cfg.Backend, o.a.Cfg)
	if err != nil {
		return
	}
	return sys.Solve(solver, A, a0, b)
}

// newStep returns a step holding copies of the state vectors
func newStep(t float64, u, v, a []float64) *Step {
	s := &Step{T: t, U: make([]float64, len(u)), V: make([]float64, len(v)), A: make([]float64, len(a))}
	copy(s.U, u)
	copy(s.V, v)
	copy(s.A, a)
	return s
}
