// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"testing"

	"github.com/aecs4u/calculix-sub000/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func alloc(m, n int) (a [][]float64) {
	a = make([][]float64, m)
	for i := range a {
		a[i] = make([]float64, n)
	}
	return
}

func Test_linelast01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linelast01. 3D modulus")

	E, ν := 1000.0, 0.25
	prms := inp.Prms{&inp.Prm{N: "E", V: E}, &inp.Prm{N: "nu", V: ν}, &inp.Prm{N: "rho", V: 2}}
	mdl, err := NewSmall("lin-elast", prms)
	if err != nil {
		tst.Errorf("NewSmall failed:\n%v", err)
		return
	}

	o := mdl.(*LinElast)
	chk.Float64(tst, "λ", 1e-12, o.L, 400)
	chk.Float64(tst, "μ", 1e-12, o.G, 400)
	chk.Float64(tst, "K", 1e-12, o.K, 2000.0/3.0)

	D := alloc(6, 6)
	err = mdl.CalcD(D)
	if err != nil {
		tst.Errorf("CalcD failed:\n%v", err)
		return
	}
	io.Pforan("D = %v\n", D)
	chk.Deep2(tst, "D", 1e-12, D, [][]float64{
		{1200, 400, 400, 0, 0, 0},
		{400, 1200, 400, 0, 0, 0},
		{400, 400, 1200, 0, 0, 0},
		{0, 0, 0, 400, 0, 0},
		{0, 0, 0, 0, 400, 0},
		{0, 0, 0, 0, 0, 400},
	})

	// uniaxial stress state recovers E
	s := NewState(6)
	ε := []float64{1e-3, -ν * 1e-3, -ν * 1e-3, 0, 0, 0}
	err = mdl.Update(s, ε)
	if err != nil {
		tst.Errorf("Update failed:\n%v", err)
		return
	}
	chk.Array(tst, "σ", 1e-12, s.Sig, []float64{1, 0, 0, 0, 0, 0})
}

func Test_linelast02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linelast02. plane-stress and plate moduli")

	prms := inp.Prms{&inp.Prm{N: "E", V: 1}, &inp.Prm{N: "nu", V: 0.3}}
	mdl, err := NewSmall("lin-elast", prms)
	if err != nil {
		tst.Errorf("NewSmall failed:\n%v", err)
		return
	}
	ν := 0.3
	c := 1.0 / (1.0 - ν*ν)
	Dps := alloc(3, 3)
	mdl.CalcDps(Dps)
	chk.Deep2(tst, "Dps", 1e-15, Dps, [][]float64{
		{c, c * ν, 0},
		{c * ν, c, 0},
		{0, 0, c * (1 - ν) / 2},
	})

	t := 0.1
	Db, Ds := alloc(3, 3), alloc(2, 2)
	err = mdl.CalcDsh(Db, Ds, t)
	if err != nil {
		tst.Errorf("CalcDsh failed:\n%v", err)
		return
	}
	chk.Float64(tst, "Db00", 1e-15, Db[0][0], c*t*t*t/12)
	chk.Float64(tst, "Ds11", 1e-15, Ds[1][1], 5.0/6.0*t/(2*(1+ν)))
	chk.Float64(tst, "Ds01", 1e-15, Ds[0][1], 0)
}

func Test_linelast03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linelast03. invalid parameters")

	for _, prms := range []inp.Prms{
		{&inp.Prm{N: "nu", V: 0.3}},
		{&inp.Prm{N: "E", V: 1}},
		{&inp.Prm{N: "E", V: -1}, &inp.Prm{N: "nu", V: 0.3}},
		{&inp.Prm{N: "E", V: 1}, &inp.Prm{N: "nu", V: 0.5}},
		{&inp.Prm{N: "E", V: 1}, &inp.Prm{N: "nu", V: 0.3}, &inp.Prm{N: "phi", V: 30}},
	} {
		_, err := NewSmall("lin-elast", prms)
		if err == nil {
			tst.Errorf("NewSmall should have failed with %v\n", prms)
			return
		}
		io.Pforan("%v\n", err)
	}
	_, err := New("dp")
	if err == nil {
		tst.Errorf("New should have failed\n")
	}
}

func Test_invariants01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("invariants01. von Mises, principal values and effective strain")

	// uniaxial
	σ := []float64{100, 0, 0, 0, 0, 0}
	chk.Float64(tst, "σvm uniaxial", 1e-13, VonMises(σ), 100)

	// pure shear
	σ = []float64{0, 0, 0, 50, 0, 0}
	chk.Float64(tst, "σvm shear", 1e-13, VonMises(σ), 50*math.Sqrt(3))
	λ, err := Principal(σ)
	if err != nil {
		tst.Errorf("Principal failed:\n%v", err)
		return
	}
	chk.Array(tst, "λ shear", 1e-13, λ, []float64{50, 0, -50})

	// hydrostatic
	σ = []float64{-30, -30, -30, 0, 0, 0}
	chk.Float64(tst, "σvm hydrostatic", 1e-13, VonMises(σ), 0)
	chk.Float64(tst, "σm", 1e-13, MeanStress(σ), -30)

	// general: sum of principal values equals trace
	σ = []float64{10, -4, 7, 3, -2, 5}
	λ, err = Principal(σ)
	if err != nil {
		tst.Errorf("Principal failed:\n%v", err)
		return
	}
	chk.Float64(tst, "Σλ", 1e-12, λ[0]+λ[1]+λ[2], 13)
	chk.Float64(tst, "Σλ/3", 1e-12, (λ[0]+λ[1]+λ[2])/3, MeanStress(σ))
	if λ[0] < λ[1] || λ[1] < λ[2] {
		tst.Errorf("principal values must be sorted in descending order: %v\n", λ)
	}

	// effective strain of uniaxial incompressible strain
	ε := []float64{0.01, -0.005, -0.005, 0, 0, 0}
	chk.Float64(tst, "εeq", 1e-15, EffectiveStrain(ε), 0.01)
}
