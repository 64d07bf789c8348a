// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"
	"math"
	"testing"

	"github.com/aecs4u/calculix-sub000/ana"
	"github.com/aecs4u/calculix-sub000/inp"
	"github.com/aecs4u/calculix-sub000/msolid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// singleTruss returns a 2-node truss along x with node 1 fixed and node 2 restrained laterally
func singleTruss(tst *testing.T, L, A, E, F float64) *inp.Model {
	cells := []*inp.Cell{{Id: 1, Type: "T3D2", Verts: []int{1, 2}, Mat: "steel", Sect: "rod"}}
	sect := &inp.Section{Name: "rod", Kind: "rod", A: A}
	mdl := newModel(tst, newNodes([]float64{0, 0, 0}, []float64{L, 0, 0}), cells, steel(E, 0.3, 7800), sect)
	mdl.Bcs.Disp = []*inp.DispBc{fix(1, 1, 3, 0), fix(2, 2, 3, 0)}
	mdl.Bcs.Cloads = []*inp.Cload{load(2, 1, F)}
	return mdl
}

func Test_static01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static01. axially loaded truss")

	// u = F L / (A E)
	for _, E := range []float64{2.1e11, 2.1e8} {
		L, A, F := 1.0, 0.001, 1000.0
		res := runModel(tst, singleTruss(tst, L, A, E, F), newConfig(tst, "static", nil))
		u := res.NodeDisp(2)[0]
		io.Pforan("E = %g  u = %g\n", E, u)
		chk.Float64(tst, "u", 1e-6*F*L/(A*E), u, F*L/(A*E))
		chk.Int(tst, "ndofs", res.Ndofs, 6)
		chk.Int(tst, "nfree", res.Nfree, 1)
		chk.Int(tst, "ncons", res.Ncons, 5)
		chk.Float64(tst, "reaction", 1e-9*F, res.Reactions[0], -F)
		chk.Float64(tst, "N", 1e-9*F, res.Stresses[0].Forces[0], F)
		chk.Float64(tst, "σ", 1e-9*F/A, res.Stresses[0].Sig[0][0], F/A)
	}
	res := runModel(tst, singleTruss(tst, 1, 0.001, 2.1e8, 1000), newConfig(tst, "static", nil))
	chk.Float64(tst, "u (E=2.1e8)", 1e-6, res.NodeDisp(2)[0], 4.7619e-3)
}

func Test_static02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static02. cantilever beam with tip load")

	// δ = P L³ / (3 E I); global y bends about local axis 2 and global z about local axis 1
	L, P, E := 2.0, 1000.0, 2.1e11
	I11, I22 := 2e-5, 1e-5
	for _, nel := range []int{1, 4} {
		mdl := cantilever(tst, L, nel, 0.01, I11, I22, 3e-5)
		tip := nel + 1
		mdl.Bcs.Cloads = []*inp.Cload{load(tip, 2, P), load(tip, 3, P)}
		res := runModel(tst, mdl, newConfig(tst, "static", nil))
		δy := P * L * L * L / (3 * E * I22)
		δz := P * L * L * L / (3 * E * I11)
		u := res.NodeDisp(tip)
		io.Pforan("nel = %d  δy = %g (%g)  δz = %g (%g)\n", nel, u[1], δy, u[2], δz)
		if relErr(u[1], δy) > 0.01 {
			tst.Errorf("tip deflection along y is not within 1%%: %g != %g\n", u[1], δy)
		}
		if relErr(u[2], δz) > 0.01 {
			tst.Errorf("tip deflection along z is not within 1%%: %g != %g\n", u[2], δz)
		}

		// tip rotations: θ = P L² / (2 E I)
		chk.Float64(tst, "θz", 1e-9, u[5], P*L*L/(2*E*I22))
		chk.Float64(tst, "θy", 1e-9, u[4], -P*L*L/(2*E*I11))

		// reactions at the clamp
		R := res.Reactions
		chk.Float64(tst, "Ry", 1e-8*P, R[1], -P)
		chk.Float64(tst, "Rz", 1e-8*P, R[2], -P)
		chk.Float64(tst, "Mz", 1e-8*P*L, R[5], -P*L)
		chk.Float64(tst, "My", 1e-8*P*L, R[4], P*L)
	}
}

func Test_static03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static03. circular beam under torsion")

	// T / θ = G J / L
	L, T, E, ν, r := 1.5, 500.0, 2.1e11, 0.3, 0.02
	G := E / (2 * (1 + ν))
	J := math.Pi * math.Pow(r, 4) / 2
	cells := []*inp.Cell{{Id: 1, Type: "B31", Verts: []int{1, 2}, Mat: "steel", Sect: "circ"}}
	sect := &inp.Section{Name: "circ", Kind: "circ", R: r}
	mdl := newModel(tst, newNodes([]float64{0, 0, 0}, []float64{0, 0, L}), cells, steel(E, ν, 7800), sect)
	mdl.Bcs.Disp = []*inp.DispBc{fix(1, 1, 6, 0)}
	mdl.Bcs.Cloads = []*inp.Cload{load(2, 6, T)}
	res := runModel(tst, mdl, newConfig(tst, "static", nil))
	θ := res.NodeDisp(2)[5]
	io.Pforan("θ = %g\n", θ)
	chk.Float64(tst, "T/θ", 1e-9*G*J/L, T/θ, G*J/L)
	for i, v := range res.NodeDisp(2)[:5] {
		chk.Float64(tst, io.Sf("u[%d]", i), 1e-15, v, 0)
	}

	// shear stress at the outer fibre: τ = T r / J
	chk.Float64(tst, "τ", 1e-6*T*r/J, res.Stresses[0].Sig[1][3], T*r/J)
}

func Test_static04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static04. uniform strain in solids and shells")

	// u = ε x
	E, ν := 2.1e11, 0.3
	εv := []float64{1e-3, -2e-4, 3e-4, 4e-4, 0, -1e-4}
	disp := func(x []float64) []float64 {
		return []float64{
			εv[0]*x[0] + εv[3]/2*x[1] + εv[5]/2*x[2],
			εv[3]/2*x[0] + εv[1]*x[1] + εv[4]/2*x[2],
			εv[5]/2*x[0] + εv[4]/2*x[1] + εv[2]*x[2],
		}
	}
	λ := E * ν / ((1 + ν) * (1 - 2*ν))
	μ := E / (2 * (1 + ν))
	tr := εv[0] + εv[1] + εv[2]
	σv := []float64{λ*tr + 2*μ*εv[0], λ*tr + 2*μ*εv[1], λ*tr + 2*μ*εv[2], μ * εv[3], μ * εv[4], μ * εv[5]}

	for _, typ := range []string{"C3D8", "C3D8R", "C3D20", "C3D20R", "C3D4", "C3D10"} {
		mdl := sampleModel(tst, typ)
		for _, n := range mdl.Nodes {
			for i, v := range disp(n.X) {
				mdl.Bcs.Disp = append(mdl.Bcs.Disp, fix(n.Id, i+1, i+1, v))
			}
		}
		res := runModel(tst, mdl, newConfig(tst, "static", nil))
		s := res.Stresses[0]
		for k := range s.Sig {
			chk.Array(tst, io.Sf("%s: ε @ ip %d", typ, k), 1e-12, s.Eps[k], εv)
			chk.Array(tst, io.Sf("%s: σ @ ip %d", typ, k), 1e-4*σv[0], s.Sig[k], σv)
		}
		for m, sig := range s.Nodal {
			chk.Array(tst, io.Sf("%s: σ @ node %d", typ, m), 1e-4*σv[0], sig, σv)
		}
		chk.Array(tst, typ+": averaged σ", 1e-4*σv[0], res.Nodal[1], σv)
	}

	// plane stress in shells
	εp := []float64{1e-3, -2e-4, 4e-4}
	c := E / (1 - ν*ν)
	σp := []float64{c * (εp[0] + ν*εp[1]), c * (εp[1] + ν*εp[0]), 0, μ * εp[2], 0, 0}
	for _, typ := range []string{"S4", "S4R"} {
		xs := [][]float64{{0, 0, 0}, {2, 0, 0}, {1.6, 1, 0}, {0.4, 1, 0}}
		cells := []*inp.Cell{{Id: 1, Type: typ, Verts: []int{1, 2, 3, 4}, Mat: "steel", Sect: "plate"}}
		sect := &inp.Section{Name: "plate", Kind: "shell", Thick: 0.01}
		mdl := newModel(tst, newNodes(xs...), cells, steel(E, ν, 7800), sect)
		for _, n := range mdl.Nodes {
			x, y := n.X[0], n.X[1]
			mdl.Bcs.Disp = append(mdl.Bcs.Disp,
				fix(n.Id, 1, 1, εp[0]*x+εp[2]/2*y),
				fix(n.Id, 2, 2, εp[2]/2*x+εp[1]*y),
				fix(n.Id, 3, 3, 0),
			)
		}
		mdl.Bcs.Disp = append(mdl.Bcs.Disp, fix(1, 4, 6, 0))
		res := runModel(tst, mdl, newConfig(tst, "static", nil))
		s := res.Stresses[0]
		chk.Int(tst, typ+": number of stress points", len(s.Sig), 8)
		for k := range s.Sig {
			chk.Array(tst, io.Sf("%s: σ @ point %d", typ, k), 1e-3*σp[0], s.Sig[k], σp)
		}
	}
}

func Test_static05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static05. storage, backends and determinism")

	// cantilever made of a 2 x 2 x 8 block of C3D8 with tip load
	mdl := solidBlock(tst, "C3D8", 2, 2, 8)
	run := func(change func(cfg *inp.AnalysisConfig)) *Result {
		return runModel(tst, mdl, newConfig(tst, "static", change))
	}
	ref := run(func(cfg *inp.AnalysisConfig) { cfg.Matrix = "dense" })

	// serial and parallel runs are identical
	for _, nw := range []int{1, 2, 4, 16} {
		res := run(func(cfg *inp.AnalysisConfig) { cfg.Matrix = "dense"; cfg.Nworkers = nw })
		chk.Array(tst, io.Sf("u (nworkers=%d)", nw), 0, res.U, ref.U)
		chk.Array(tst, io.Sf("reactions (nworkers=%d)", nw), 0, res.Reactions, ref.Reactions)
	}
	again := run(func(cfg *inp.AnalysisConfig) { cfg.Matrix = "dense" })
	chk.Array(tst, "u (second run)", 0, again.U, ref.U)

	// sparse storage and conjugate gradients
	umax, _ := ref.MaxDisp()
	sparse := run(func(cfg *inp.AnalysisConfig) { cfg.Matrix = "sparse"; cfg.Nworkers = 3 })
	chk.Array(tst, "u (sparse)", 1e-10*umax, sparse.U, ref.U)
	auto := run(func(cfg *inp.AnalysisConfig) { cfg.Matrix = "auto"; cfg.Threshold = 10 })
	chk.Array(tst, "u (auto)", 1e-10*umax, auto.U, ref.U)
	cg := run(func(cfg *inp.AnalysisConfig) { cfg.Matrix = "sparse"; cfg.Backend = "cg"; cfg.CgTol = 1e-13 })
	chk.Array(tst, "u (cg)", 1e-6*umax, cg.U, ref.U)

	// equilibrium: reactions balance the applied loads
	sum := []float64{0, 0, 0}
	for I, r := range ref.Reactions {
		sum[I%3] += r
	}
	chk.Array(tst, "ΣR", 1e-6, sum, []float64{0, 0, 1000})
	io.Pforan("umax = %g\n", umax)
}

// solidBlock returns a block of nx × ny × nz unit hexahedra clamped at z = 0 with a total load
// of -1000 along z at the top face
func solidBlock(tst *testing.T, typ string, nx, ny, nz int) *inp.Model {
	id := func(i, j, k int) int { return 1 + i + j*(nx+1) + k*(nx+1)*(ny+1) }
	var xs [][]float64
	for k := 0; k <= nz; k++ {
		for j := 0; j <= ny; j++ {
			for i := 0; i <= nx; i++ {
				xs = append(xs, []float64{float64(i), float64(j), float64(k)})
			}
		}
	}
	var cells []*inp.Cell
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				verts := []int{
					id(i, j, k), id(i+1, j, k), id(i+1, j+1, k), id(i, j+1, k),
					id(i, j, k+1), id(i+1, j, k+1), id(i+1, j+1, k+1), id(i, j+1, k+1),
				}
				cells = append(cells, &inp.Cell{Id: len(cells) + 1, Type: typ, Verts: verts, Mat: "steel"})
			}
		}
	}
	mdl := newModel(tst, newNodes(xs...), cells, steel(1e6, 0.25, 1))
	mdl.Sets.Nodes["base"] = nil
	mdl.Sets.Nodes["top"] = nil
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			mdl.Sets.Nodes["base"] = append(mdl.Sets.Nodes["base"], id(i, j, 0))
			mdl.Sets.Nodes["top"] = append(mdl.Sets.Nodes["top"], id(i, j, nz))
		}
	}
	ntop := float64(len(mdl.Sets.Nodes["top"]))
	mdl.Bcs.Disp = []*inp.DispBc{{Set: "base", Dof0: 1, Dof1: 3}}
	mdl.Bcs.Cloads = []*inp.Cload{{Set: "top", Dof: 3, Value: -1000 / ntop}}
	return mdl
}

func Test_static06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static06. pressure and gravity loads")

	// unit cube: pressure on face x=1 (face 4) and gravity along -z
	for _, typ := range []string{"C3D8", "C3D20"} {
		mdl := sampleModel(tst, typ)
		mdl.Bcs.Dloads = []*inp.Dload{
			{Elem: 7, Kind: "P", Face: 4, Value: 100},
			{Elem: 7, Kind: "GRAV", Value: 9.81, Dir: []float64{0, 0, -1}},
		}
		a, err := NewAnalysis(mdl, nil, nil)
		if err != nil {
			tst.Errorf("NewAnalysis failed:\n%v", err)
			return
		}
		if err = a.Init(); err != nil {
			tst.Errorf("Init failed:\n%v", err)
			return
		}
		sum := []float64{0, 0, 0}
		for I, f := range a.Fext {
			sum[I%3] += f
		}
		area, vol := 1.0*1.5, 2.0*1.0*1.5
		chk.Array(tst, typ+": ΣF", 1e-9, sum, []float64{-100 * area, 0, -7800 * 9.81 * vol})

		// invalid face
		mdl.Bcs.Dloads = []*inp.Dload{{Elem: 7, Kind: "P", Face: 7, Value: 1}}
		a, _ = NewAnalysis(mdl, nil, nil)
		err = a.Init()
		var cerr *ConnectivityError
		if !errors.As(err, &cerr) {
			tst.Errorf("ConnectivityError expected. got %v\n", err)
		}
	}

	// shell under pressure: total load p A along -normal
	mdl := sampleModel(tst, "S4")
	mdl.Bcs.Dloads = []*inp.Dload{{Elem: 7, Kind: "P", Value: 10}}
	a, _ := NewAnalysis(mdl, nil, nil)
	if err := a.Init(); err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	sum := []float64{0, 0, 0}
	for I, f := range a.Fext {
		if I%6 < 3 {
			sum[I%6] += f
		}
	}
	area := 2 * math.Sqrt2
	n := []float64{0, -1 / math.Sqrt2, 1 / math.Sqrt2}
	chk.Array(tst, "S4: ΣF", 1e-9, sum, []float64{-10 * area * n[0], -10 * area * n[1], -10 * area * n[2]})
}

func Test_static07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static07. singular systems and invalid constraints")

	// truss without lateral supports: zero pivot at node 2
	mdl := singleTruss(tst, 1, 1e-3, 2.1e11, 1)
	mdl.Bcs.Disp = []*inp.DispBc{fix(1, 1, 3, 0)}
	checkSingular(tst, "lateral mechanism", mdl, 2, HINT_RIGID_BODY)

	// truss without axial supports: singular factorization
	mdl = singleTruss(tst, 1, 1e-3, 2.1e11, 1)
	mdl.Bcs.Disp = []*inp.DispBc{fix(1, 2, 3, 0), fix(2, 2, 3, 0)}
	checkSingular(tst, "axial mechanism", mdl, -1, HINT_RIGID_BODY)

	// truss node attached to a beam model leaves rotations unused
	xs := [][]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}
	cells := []*inp.Cell{
		{Id: 1, Type: "B31", Verts: []int{1, 2}, Mat: "steel", Sect: "beam"},
		{Id: 2, Type: "T3D2", Verts: []int{2, 3}, Mat: "steel", Sect: "rod"},
	}
	beam := &inp.Section{Name: "beam", Kind: "circ", R: 0.01}
	rod := &inp.Section{Name: "rod", Kind: "rod", A: 1e-4}
	mdl = newModel(tst, newNodes(xs...), cells, steel(2.1e11, 0.3, 7800), beam, rod)
	mdl.Bcs.Disp = []*inp.DispBc{fix(1, 1, 6, 0), fix(3, 1, 3, 0)}
	checkSingular(tst, "unused DOF", mdl, 3, HINT_UNUSED_DOF)

	// constraining the unused rotations solves it
	mdl.Bcs.Disp = append(mdl.Bcs.Disp, fix(3, 4, 6, 0))
	mdl.Bcs.Cloads = []*inp.Cload{load(2, 2, 100)}
	res := runModel(tst, mdl, newConfig(tst, "static", nil))
	chk.Int(tst, "ndofs", res.Ndofs, 18)
	if !res.Success {
		tst.Errorf("mixed model should be solved\n")
	}

	// orphan node
	xs = append(xs, []float64{5, 5, 5})
	mdl = newModel(tst, newNodes(xs...), cells, steel(2.1e11, 0.3, 7800), beam, rod)
	mdl.Bcs.Disp = []*inp.DispBc{fix(1, 1, 6, 0), fix(3, 1, 6, 0)}
	checkSingular(tst, "orphan node", mdl, 4, HINT_ORPHAN)

	// DOF number out of range
	mdl = singleTruss(tst, 1, 1e-3, 2.1e11, 1)
	mdl.Bcs.Disp = append(mdl.Bcs.Disp, fix(2, 4, 4, 0))
	a, _ := NewAnalysis(mdl, nil, nil)
	_, err := a.Run()
	var cerr *ConnectivityError
	if !errors.As(err, &cerr) {
		tst.Errorf("ConnectivityError expected. got %v\n", err)
	}
	io.Pforan("%v\n", err)

	// gaps in node numbering do not make the system singular
	nodes := []*inp.Node{{Id: 1, X: []float64{0, 0, 0}}, {Id: 5, X: []float64{2, 0, 0}}}
	cells = []*inp.Cell{{Id: 1, Type: "T3D2", Verts: []int{1, 5}, Mat: "steel", Sect: "rod"}}
	mdl = newModel(tst, nodes, cells, steel(2.1e11, 0.3, 7800), rod)
	mdl.Bcs.Disp = []*inp.DispBc{fix(1, 1, 3, 0), fix(5, 2, 3, 0)}
	mdl.Bcs.Cloads = []*inp.Cload{load(5, 1, 1000)}
	res = runModel(tst, mdl, newConfig(tst, "static", nil))
	chk.Int(tst, "ndofs", res.Ndofs, 15)
	chk.Int(tst, "nfree", res.Nfree, 1)
	chk.Float64(tst, "u", 1e-15, res.NodeDisp(5)[0], 1000*2/(1e-4*2.1e11))
}

func Test_static08(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static08. B32 cantilever with tip load")

	// δ = P L³ / (3 E I) + P L / (κ G A) is reproduced at the nodes
	L, P, E, A := 2.0, 1000.0, 2.1e11, 0.01
	I11, I22 := 2e-5, 1e-5
	for _, nel := range []int{1, 2} {
		mdl := cantilever3(tst, L, nel, A, I11, I22, 3e-5)
		tip := 2*nel + 1
		mdl.Bcs.Cloads = []*inp.Cload{load(tip, 2, P), load(tip, 3, P)}
		res := runModel(tst, mdl, newConfig(tst, "static", nil))
		var sol1, sol2 ana.Cantilever
		if err := sol1.Init(inp.Prms{{N: "L", V: L}, {N: "E", V: E}, {N: "G", V: E / 2.6}, {N: "A", V: A}, {N: "I", V: I11}}); err != nil {
			tst.Errorf("Init failed:\n%v", err)
			return
		}
		if err := sol2.Init(inp.Prms{{N: "L", V: L}, {N: "E", V: E}, {N: "G", V: E / 2.6}, {N: "A", V: A}, {N: "I", V: I22}}); err != nil {
			tst.Errorf("Init failed:\n%v", err)
			return
		}
		δy := sol2.TipDeflection(P) + sol2.ShearDeflection(P, msolid.KAPPA_SHEAR)
		δz := sol1.TipDeflection(P) + sol1.ShearDeflection(P, msolid.KAPPA_SHEAR)
		u := res.NodeDisp(tip)
		io.Pforan("nel = %d  δy = %g (%g)  δz = %g (%g)\n", nel, u[1], δy, u[2], δz)
		chk.Float64(tst, "δy", 1e-9*δy, u[1], δy)
		chk.Float64(tst, "δz", 1e-9*δz, u[2], δz)
		chk.Float64(tst, "θz", 1e-9, u[5], sol2.TipRotation(P))
		chk.Float64(tst, "θy", 1e-9, u[4], -sol1.TipRotation(P))

		// reactions at the clamp
		R := res.Reactions
		chk.Float64(tst, "Ry", 1e-8*P, R[1], -P)
		chk.Float64(tst, "Rz", 1e-8*P, R[2], -P)
		chk.Float64(tst, "Mz", 1e-8*P*L, R[5], -P*L)
		chk.Float64(tst, "My", 1e-8*P*L, R[4], P*L)

		// section forces at the integration points of the first element
		s := res.Stresses[0]
		chk.Int(tst, "number of points", len(s.X), 2)
		for k := 0; k < 2; k++ {
			x := s.X[k][0]
			f := s.Forces[6*k : 6*k+6]
			chk.Float64(tst, "N", 1e-6*P, f[0], 0)
			chk.Float64(tst, "V1", 1e-6*P, f[1], P)
			chk.Float64(tst, "V2", 1e-6*P, f[2], P)
			chk.Float64(tst, "M1", 1e-6*P*L, f[4], -P*(L-x))
			chk.Float64(tst, "M2", 1e-6*P*L, f[5], P*(L-x))
		}
	}

	// curved elements are not supported
	mdl := newModel(tst, newNodes([]float64{0, 0, 0}, []float64{2, 0, 0}, []float64{1, 0.5, 0}),
		[]*inp.Cell{{Id: 1, Type: "B32", Verts: []int{1, 2, 3}, Mat: "steel", Sect: "beam"}},
		steel(E, 0.3, 7800), &inp.Section{Name: "beam", Kind: "gen", A: A, I11: I11, I22: I22, Jt: 3e-5})
	if _, err := NewElem(mdl.Cells[0], mdl, ElemOpts{}); err == nil {
		tst.Errorf("curved B32 should fail\n")
	}
}

// cantilever3 returns a clamped B32 beam along x with nel elements and a "gen" section
func cantilever3(tst *testing.T, L float64, nel int, A, I11, I22, J float64) *inp.Model {
	var xs [][]float64
	for i := 0; i <= 2*nel; i++ {
		xs = append(xs, []float64{L * float64(i) / float64(2*nel), 0, 0})
	}
	var cells []*inp.Cell
	for i := 0; i < nel; i++ {
		cells = append(cells, &inp.Cell{Id: i + 1, Type: "B32", Verts: []int{2*i + 1, 2*i + 3, 2*i + 2}, Mat: "steel", Sect: "beam"})
	}
	sect := &inp.Section{Name: "beam", Kind: "gen", A: A, I11: I11, I22: I22, Jt: J}
	mdl := newModel(tst, newNodes(xs...), cells, steel(2.1e11, 0.3, 7800), sect)
	mdl.Bcs.Disp = []*inp.DispBc{fix(1, 1, 6, 0)}
	return mdl
}

// checkSingular runs an analysis expecting a SingularSystemError
func checkSingular(tst *testing.T, msg string, mdl *inp.Model, node int, hint string) {
	a, err := NewAnalysis(mdl, nil, nil)
	if err != nil {
		tst.Errorf("%s: NewAnalysis failed:\n%v", msg, err)
		return
	}
	_, err = a.Run()
	io.Pforan("%s: %v\n", msg, err)
	var serr *SingularSystemError
	if !errors.As(err, &serr) {
		tst.Errorf("%s: SingularSystemError expected. got %v\n", msg, err)
		return
	}
	if serr.Hint != hint {
		tst.Errorf("%s: hint should be %q. got %q\n", msg, hint, serr.Hint)
	}
	if node > 0 {
		chk.Int(tst, msg+": node", serr.Node, node)
	}
}
