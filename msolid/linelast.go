// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/aecs4u/calculix-sub000/inp"
	"github.com/cpmech/gosl/chk"
)

// shear correction factor for Mindlin-Reissner plates
const KAPPA_SHEAR = 5.0 / 6.0

// LinElast implements isotropic linear elasticity
type LinElast struct {
	E  float64 // Young's modulus
	Nu float64 // Poisson's coefficient
	L  float64 // Lamé's λ
	G  float64 // shear modulus (Lamé's μ)
	K  float64 // bulk modulus
}

// add model to factory
func init() {
	allocators["lin-elast"] = func() Model { return new(LinElast) }
}

// Init initialises model
func (o *LinElast) Init(prms inp.Prms) (err error) {
	var hasE, hasNu bool
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E, hasE = p.V, true
		case "nu":
			o.Nu, hasNu = p.V, true
		case "rho", "alpha", "k", "cp": // used by elements and heat transfer
		default:
			return chk.Err("lin-elast: parameter named %q is incorrect\n", p.N)
		}
	}
	if !hasE {
		return chk.Err("lin-elast: parameter \"E\" is missing")
	}
	if !hasNu {
		return chk.Err("lin-elast: parameter \"nu\" is missing")
	}
	if o.E <= 0 {
		return chk.Err("lin-elast: Young's modulus must be positive. E = %g is invalid", o.E)
	}
	if o.Nu <= -1 || o.Nu >= 0.5 {
		return chk.Err("lin-elast: Poisson's coefficient must be in (-1, 0.5). nu = %g is invalid", o.Nu)
	}
	o.L = o.E * o.Nu / ((1.0 + o.Nu) * (1.0 - 2.0*o.Nu))
	o.G = o.E / (2.0 * (1.0 + o.Nu))
	o.K = o.E / (3.0 * (1.0 - 2.0*o.Nu))
	return
}

// CalcD computes D = dσ/dε (Voigt, engineering shear strains)
func (o LinElast) CalcD(D [][]float64) (err error) {
	if len(D) != 6 {
		return chk.Err("lin-elast: D must be [6][6]. len(D) = %d is invalid", len(D))
	}
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			D[i][j] = 0
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			D[i][j] = o.L
		}
		D[i][i] = o.L + 2.0*o.G
		D[3+i][3+i] = o.G
	}
	return
}

// Update updates stresses for given total strains
//  Note: ε0 in state is subtracted from ε
func (o LinElast) Update(s *State, ε []float64) (err error) {
	if len(s.Sig) != 6 || len(ε) != 6 {
		return chk.Err("lin-elast: stress and strain must have 6 components")
	}
	e := make([]float64, 6)
	for i := 0; i < 6; i++ {
		e[i] = ε[i] - s.Eps0[i]
	}
	tr := e[0] + e[1] + e[2]
	for i := 0; i < 3; i++ {
		s.Sig[i] = o.L*tr + 2.0*o.G*e[i]
		s.Sig[3+i] = o.G * e[3+i]
	}
	return
}

// CalcDps computes the plane-stress modulus
func (o LinElast) CalcDps(D [][]float64) (err error) {
	if len(D) != 3 {
		return chk.Err("lin-elast: plane-stress D must be [3][3]. len(D) = %d is invalid", len(D))
	}
	c := o.E / (1.0 - o.Nu*o.Nu)
	D[0][0], D[0][1], D[0][2] = c, c*o.Nu, 0
	D[1][0], D[1][1], D[1][2] = c*o.Nu, c, 0
	D[2][0], D[2][1], D[2][2] = 0, 0, c*(1.0-o.Nu)/2.0
	return
}

// CalcDsh computes the plate bending (Db = t³/12 Dps) and transverse shear (Ds = κ G t I) moduli
func (o LinElast) CalcDsh(Db, Ds [][]float64, t float64) (err error) {
	if t <= 0 {
		return chk.Err("lin-elast: thickness must be positive. t = %g is invalid", t)
	}
	err = o.CalcDps(Db)
	if err != nil {
		return
	}
	c := t * t * t / 12.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			Db[i][j] *= c
		}
	}
	if len(Ds) != 2 {
		return chk.Err("lin-elast: shear D must be [2][2]. len(Ds) = %d is invalid", len(Ds))
	}
	Ds[0][0], Ds[0][1] = KAPPA_SHEAR*o.G*t, 0
	Ds[1][0], Ds[1][1] = 0, KAPPA_SHEAR*o.G*t
	return
}
