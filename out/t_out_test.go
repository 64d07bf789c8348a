// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/aecs4u/calculix-sub000/fem"
	"github.com/aecs4u/calculix-sub000/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// beamModel returns a cantilever made of 4 B31 elements along x with a tip load
func beamModel(tst *testing.T) *inp.Model {
	mdl := &inp.Model{
		Mesh: inp.Mesh{
			Nodes: []*inp.Node{
				{Id: 1, X: []float64{0, 0, 0}},
				{Id: 2, X: []float64{0.5, 0, 0}},
				{Id: 3, X: []float64{1, 0, 0}},
				{Id: 4, X: []float64{1.5, 0, 0}},
				{Id: 5, X: []float64{2, 0, 0}},
			},
			Cells: []*inp.Cell{
				{Id: 1, Type: "B31", Verts: []int{1, 2}, Mat: "steel", Sect: "beam"},
				{Id: 2, Type: "B31", Verts: []int{2, 3}, Mat: "steel", Sect: "beam"},
				{Id: 3, Type: "B31", Verts: []int{3, 4}, Mat: "steel", Sect: "beam"},
				{Id: 4, Type: "B31", Verts: []int{4, 5}, Mat: "steel", Sect: "beam"},
			},
		},
		Desc: "cantilever",
		Mats: inp.MatDb{{Name: "steel", Model: "lin-elast", Prms: inp.Prms{
			{N: "E", V: 2.1e11},
			{N: "nu", V: 0.3},
			{N: "rho", V: 7800},
		}}},
		Sects: inp.SectDb{{Name: "beam", Kind: "gen", A: 0.01, I11: 2e-5, I22: 1e-5, Jt: 3e-5}},
		Sets:  inp.Sets{Nodes: map[string][]int{"clamp": {1}, "ends": {1, 5}}},
		Bcs: inp.Bcs{
			Disp:   []*inp.DispBc{{Set: "clamp", Dof0: 1, Dof1: 6}},
			Cloads: []*inp.Cload{{Node: 5, Dof: 2, Value: 1000}},
		},
	}
	if err := mdl.Init(); err != nil {
		tst.Fatalf("model initialisation failed:\n%v", err)
	}
	return mdl
}

// run runs an analysis of a given type
func run(tst *testing.T, mdl *inp.Model, typ string) *fem.Result {
	cfg := new(inp.AnalysisConfig)
	cfg.SetDefault()
	cfg.Type = typ
	cfg.Nmodes = 3
	cfg.Nsteps = 10
	if err := cfg.PostProcess(); err != nil {
		tst.Fatalf("configuration failed:\n%v", err)
	}
	a, err := fem.NewAnalysis(mdl, cfg, nil)
	if err != nil {
		tst.Fatalf("NewAnalysis failed:\n%v", err)
	}
	res, err := a.Run()
	if err != nil {
		tst.Fatalf("Run failed:\n%v", err)
	}
	return res
}

func Test_locators01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("locators01. finding nodes")

	mdl := beamModel(tst)

	pts, err := N{3, 5}.Locate(mdl)
	if err != nil {
		tst.Errorf("N failed:\n%v", err)
		return
	}
	chk.Int(tst, "number of points", len(pts), 2)
	chk.Float64(tst, "distance", 1e-15, pts[1].Dist, 1)

	pts, err = S("ends").Locate(mdl)
	if err != nil {
		tst.Errorf("S failed:\n%v", err)
		return
	}
	chk.Ints(tst, "ends", []int{pts[0].Vid, pts[1].Vid}, []int{1, 5})

	pts, err = At{1.5, 0, 0}.Locate(mdl)
	if err != nil {
		tst.Errorf("At failed:\n%v", err)
		return
	}
	chk.Int(tst, "node at x=1.5", pts[0].Vid, 4)

	pts, err = Along{{2, 0, 0}, {0.9, 0, 0}}.Locate(mdl)
	if err != nil {
		tst.Errorf("Along failed:\n%v", err)
		return
	}
	var ids []int
	for _, p := range pts {
		ids = append(ids, p.Vid)
	}
	chk.Ints(tst, "along", ids, []int{5, 4, 3})

	pts, err = AlongX{0, 0}.Locate(mdl)
	if err != nil {
		tst.Errorf("AlongX failed:\n%v", err)
		return
	}
	chk.Int(tst, "along x", len(pts), 5)

	pts, err = OnZplane{0}.Locate(mdl)
	if err != nil {
		tst.Errorf("OnZplane failed:\n%v", err)
		return
	}
	chk.Int(tst, "on z-plane", len(pts), 5)

	// errors
	if _, err = (N{9}).Locate(mdl); err == nil {
		tst.Errorf("unknown node should fail\n")
	}
	if _, err = S("none").Locate(mdl); err == nil {
		tst.Errorf("unknown set should fail\n")
	}
	if _, err = (At{0.3, 0, 0}).Locate(mdl); err == nil {
		tst.Errorf("missing node should fail\n")
	}
}

func Test_out01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out01. static results at points")

	mdl := beamModel(tst)
	res := run(tst, mdl, "static")
	dat, err := Start(mdl, res)
	if err != nil {
		tst.Errorf("Start failed:\n%v", err)
		return
	}
	if err = dat.Define("A B", N{1, 5}); err != nil {
		tst.Errorf("Define failed:\n%v", err)
		return
	}
	if err = dat.Define("axis", AlongX{0, 0}); err != nil {
		tst.Errorf("Define failed:\n%v", err)
		return
	}

	// tip deflection and reaction at clamp
	δ := 1000 * 8 / (3 * 2.1e11 * 1e-5)
	chk.Float64(tst, "uy @ B", 1e-9*δ, dat.GetRes("uy", "B", -1)[0], δ)
	chk.Float64(tst, "fy @ A", 1e-6, dat.GetRes("fy", "A", -1)[0], -1000)
	chk.Float64(tst, "mz @ A", 1e-6, dat.GetRes("mz", "A", -1)[0], -2000)
	chk.Array(tst, "coords @ B", 1e-15, dat.GetCoords("B"), []float64{2, 0, 0})

	// deflection along the axis
	uy := dat.GetRes("uy", "axis", -1)
	chk.Int(tst, "number of values", len(uy), 5)
	for i := 1; i < len(uy); i++ {
		if uy[i] <= uy[i-1] {
			tst.Errorf("deflection should increase along the axis\n")
		}
	}
	chk.Array(tst, "distances", 1e-15, dat.GetDist("axis"), []float64{0, 0.5, 1, 1.5, 2})
	chk.Ints(tst, "ids", dat.GetIds("axis"), []int{1, 2, 3, 4, 5})

	// report
	rep := Report(mdl, res, ReportOpts{Nodes: true, Stresses: true})
	io.Pf("%s", rep)
	for _, s := range []string{"analysis type        : static", "B31", "max |displacement|", "sum of reactions", "von Mises",
		"boundary conditions  : 1 displacement (6 DOFs), 1 concentrated, 0 distributed"} {
		if !strings.Contains(rep, s) {
			tst.Errorf("report should contain %q\n", s)
		}
	}
}

func Test_out02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out02. modal and dynamic results")

	mdl := beamModel(tst)

	// mode shapes
	res := run(tst, mdl, "modal")
	dat, err := Start(mdl, res)
	if err != nil {
		tst.Errorf("Start failed:\n%v", err)
		return
	}
	if err = dat.Define("tip", N{5}); err != nil {
		tst.Errorf("Define failed:\n%v", err)
		return
	}
	chk.Float64(tst, "φ", 1e-15, dat.GetRes("uy:0", "tip", -1)[0], res.Modes[0].Phi[4*6+1])
	rep := Report(mdl, res, ReportOpts{})
	if !strings.Contains(rep, "eigenvalue") {
		tst.Errorf("report should list eigenvalues\n")
	}

	// time series
	res = run(tst, mdl, "dynamic")
	dat, err = Start(mdl, res)
	if err != nil {
		tst.Errorf("Start failed:\n%v", err)
		return
	}
	chk.Int(tst, "number of times", len(dat.Times), 11)
	if err = dat.Define("tip", N{5}); err != nil {
		tst.Errorf("Define failed:\n%v", err)
		return
	}
	uy := dat.GetRes("uy", "tip", -1)
	chk.Int(tst, "number of values", len(uy), 11)
	chk.Float64(tst, "uy(0)", 1e-15, uy[0], 0)
	chk.Float64(tst, "uy(tf)", 1e-15, uy[10], res.History[10].U[4*6+1])
	chk.Float64(tst, "ay(0)", 1e-15, dat.GetRes("auy", "tip", -1)[0], res.History[0].A[4*6+1])
	rep = Report(mdl, res, ReportOpts{Every: 5})
	if !strings.Contains(rep, "max |u|") {
		tst.Errorf("report should list states\n")
	}
}

func Test_files01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("files01. saving and loading results")

	mdl := beamModel(tst)
	res := run(tst, mdl, "static")
	dir := tst.TempDir()
	for _, fn := range []string{"res.json", "res.yaml"} {
		path := filepath.Join(dir, fn)
		if err := Save(path, res); err != nil {
			tst.Errorf("Save failed:\n%v", err)
			return
		}
		loaded, err := Load(path)
		if err != nil {
			tst.Errorf("Load failed:\n%v", err)
			return
		}
		chk.Array(tst, fn+": u", 1e-15, loaded.U, res.U)
		chk.Array(tst, fn+": reactions", 1e-15, loaded.Reactions, res.Reactions)
		chk.Int(tst, fn+": number of stresses", len(loaded.Stresses), len(res.Stresses))
		chk.Int(tst, fn+": maxdpn", loaded.MaxDpn, 6)
	}
	if err := Save(filepath.Join(dir, "res.txt"), res); err == nil {
		tst.Errorf("unknown extension should fail\n")
	}
}
