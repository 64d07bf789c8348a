// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/aecs4u/calculix-sub000/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_nonlinear01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nonlinear01. Newton-Raphson on linear models")

	// cantilever beam and solid block
	models := []*inp.Model{
		cantilever(tst, 2, 4, 0.01, 2e-5, 1e-5, 3e-5),
		solidBlock(tst, "C3D8R", 1, 1, 4),
	}
	models[0].Bcs.Cloads = []*inp.Cload{load(5, 2, 1000), load(5, 3, -500), load(5, 4, 200)}
	for k, mdl := range models {
		lin := runModel(tst, mdl, newConfig(tst, "static", nil))
		for _, ls := range []bool{false, true} {
			res := runModel(tst, mdl, newConfig(tst, "nonlinear", func(cfg *inp.AnalysisConfig) {
				cfg.LineSearch = ls
			}))
			io.Pforan("model %d: nit = %d  iters = %d\n", k, res.Nit, len(res.Iters))
			if !res.Success {
				tst.Errorf("model %d: Newton-Raphson should converge\n", k)
			}
			chk.Int(tst, "nit", res.Nit, 1)
			chk.Int(tst, "number of iterations", len(res.Iters), 2)
			umax, _ := lin.MaxDisp()
			chk.Array(tst, "u", 1e-10*umax, res.U, lin.U)
			chk.Array(tst, "reactions", 1e-6, res.Reactions, lin.Reactions)
			if res.Iters[1].ResF >= 1e-6 {
				tst.Errorf("model %d: residual of last iteration is too large: %g\n", k, res.Iters[1].ResF)
			}
		}
	}
}

func Test_nonlinear02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nonlinear02. truss with large displacements")

	// total Lagrangian bar: F = E A (λ² - 1) λ / 2  with stretch λ = (L + u) / L
	L, A, E := 1.0, 1e-3, 1e8
	F := 0.05 * E * A
	for _, nincs := range []int{1, 4} {
		mdl := singleTruss(tst, L, A, E, F)
		res := runModel(tst, mdl, newConfig(tst, "nonlinear", func(cfg *inp.AnalysisConfig) {
			cfg.Nlgeom = true
			cfg.Nincs = nincs
			cfg.TolU = 1e-12
			cfg.TolE = 1e-16
			cfg.TolF = 1e-10
		}))
		u := res.NodeDisp(2)[0]
		λ := (L + u) / L
		Fu := E * A * (λ*λ - 1) * λ / 2
		io.Pforan("nincs = %d  nit = %d  u = %g  linear u = %g\n", nincs, res.Nit, u, F*L/(E*A))
		chk.Float64(tst, "F(u)", 1e-8*F, Fu, F)
		chk.Float64(tst, "reaction", 1e-8*F, res.Reactions[0], -F)
		if res.Nit < 2 {
			tst.Errorf("geometrically nonlinear problem should take more than one iteration\n")
		}
		last := res.Iters[len(res.Iters)-1]
		chk.Int(tst, "last increment", last.Inc, nincs)
		chk.Float64(tst, "last λ", 1e-15, last.Lam, 1)

		// stresses follow the Green strain
		ε := (λ*λ - 1) / 2
		chk.Float64(tst, "ε", 1e-12, res.Stresses[0].Eps[0][0], ε)
	}
}

func Test_nonlinear03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nonlinear03. iteration budget exhausted")

	L, A, E := 1.0, 1e-3, 1e8
	mdl := singleTruss(tst, L, A, E, 0.2*E*A)
	cfg := newConfig(tst, "nonlinear", func(cfg *inp.AnalysisConfig) {
		cfg.Nlgeom = true
		cfg.MaxIt = 1
	})
	a, err := NewAnalysis(mdl, cfg, nil)
	if err != nil {
		tst.Errorf("NewAnalysis failed:\n%v", err)
		return
	}
	res, err := a.Run()
	io.Pforan("err = %v\n", err)
	var cerr *ConvergenceError
	if !errors.As(err, &cerr) {
		tst.Errorf("ConvergenceError expected. got %v\n", err)
		return
	}
	if res == nil {
		tst.Errorf("partial result should be returned\n")
		return
	}
	if res.Success {
		tst.Errorf("Success should be false\n")
	}
	chk.Int(tst, "number of iterations", len(res.Iters), 2)
	chk.Int(tst, "nit", res.Nit, 1)
	if res.U == nil || math.Abs(res.NodeDisp(2)[0]) == 0 {
		tst.Errorf("last displacements should be kept\n")
	}
	if res.Msg == "" {
		tst.Errorf("diagnostic message should be set\n")
	}
	if !strings.Contains(err.Error(), "increment 1 of 1") {
		tst.Errorf("error should name the increment: %v\n", err)
	}
}

func Test_nonlinear04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nonlinear04. prescribed displacements only")

	// stretch the bar by prescribing u at node 2
	L, A, E := 1.0, 1e-3, 1e8
	mdl := singleTruss(tst, L, A, E, 0)
	mdl.Bcs.Cloads = nil
	mdl.Bcs.Disp = append(mdl.Bcs.Disp, fix(2, 1, 1, 0.1))
	res := runModel(tst, mdl, newConfig(tst, "nonlinear", func(cfg *inp.AnalysisConfig) {
		cfg.Nlgeom = true
		cfg.Nincs = 2
	}))
	λ := 1.1
	N := E * A * (λ*λ - 1) * λ / 2
	chk.Float64(tst, "u", 1e-15, res.NodeDisp(2)[0], 0.1)
	chk.Float64(tst, "reaction @ node 1", 1e-9*N, res.Reactions[0], -N)
	chk.Float64(tst, "reaction @ node 2", 1e-9*N, res.Reactions[3], N)
}

func Test_nonlinear05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nonlinear05. convergence measures")

	// one free DOF: fint(u) = A S d / L  and  kt(u) = E A d² / L³ + A S / L
	// with d = L + u and S = E (d² - L²) / (2 L²)
	L, A, E := 1.0, 1e-3, 1e8
	F := 0.05 * E * A
	mdl := singleTruss(tst, L, A, E, F)
	res := runModel(tst, mdl, newConfig(tst, "nonlinear", func(cfg *inp.AnalysisConfig) {
		cfg.Nlgeom = true
		cfg.LineSearch = false
		cfg.TolU = 1e-12
		cfg.TolE = 1e-16
		cfg.TolF = 1e-10
	}))
	fint := func(u float64) (f, k float64) {
		d := L + u
		S := E * (d*d - L*L) / (2 * L * L)
		return A * S * d / L, E*A*d*d/(L*L*L) + A*S/L
	}

	// replicate the iterations: resE = |δu·R| / |u·Fext| and resU = ‖δu‖ / ‖u‖
	u := 0.0
	nchk := len(res.Iters)
	if nchk > 4 {
		nchk = 4
	}
	for it := 1; it < nchk; it++ {
		f, k := fint(u)
		R := F - f
		δu := R / k
		u += δu
		f, _ = fint(u)
		info := res.Iters[it]
		io.Pforan("it = %d  resE = %g  resU = %g\n", it, info.ResE, info.ResU)
		chk.Float64(tst, io.Sf("resE @ %d", it), 1e-9*math.Abs(δu*R)/(u*F), info.ResE, math.Abs(δu*R)/(u*F))
		chk.Float64(tst, io.Sf("resU @ %d", it), 1e-9*math.Abs(δu/u), info.ResU, math.Abs(δu/u))
		chk.Float64(tst, io.Sf("resF @ %d", it), 1e-9, info.ResF, math.Abs(F-f)/F)
	}
	if nchk < 4 {
		tst.Errorf("at least three corrections are expected. got %d iterations\n", len(res.Iters))
	}
}
