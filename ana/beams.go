// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/aecs4u/calculix-sub000/inp"
	"github.com/cpmech/gosl/chk"
)

// roots of cos(βL) cosh(βL) + 1 = 0 (clamped-free beam)
var cantileverRoots = []float64{1.875104069, 4.694091133, 7.854757438, 10.99554073, 14.13716839}

// Cantilever implements Euler-Bernoulli solutions of a beam clamped at x=0 and free at x=L
//
//      |\
//      |\=====================o  ← P, T
//      |\ <-------- L -------->
//
type Cantilever struct {

	// input
	L   float64 // length
	E   float64 // Young's modulus
	G   float64 // shear modulus
	A   float64 // cross-sectional area
	I   float64 // second moment of area about the bending axis
	J   float64 // torsional constant
	Rho float64 // density
}

// Init initialises this structure
func (o *Cantilever) Init(prms inp.Prms) (err error) {

	// default values
	o.L = 1
	o.E = 2.1e11
	o.G = 2.1e11 / 2.6
	o.A = 0.01
	o.I = 1e-5
	o.J = 2e-5
	o.Rho = 7800

	// parameters
	for _, p := range prms {
		switch p.N {
		case "L":
			o.L = p.V
		case "E":
			o.E = p.V
		case "G":
			o.G = p.V
		case "A":
			o.A = p.V
		case "I":
			o.I = p.V
		case "J":
			o.J = p.V
		case "rho":
			o.Rho = p.V
		}
	}
	if o.L <= 0 || o.E <= 0 || o.A <= 0 || o.I <= 0 {
		return chk.Err("cantilever requires positive L, E, A and I. L=%g, E=%g, A=%g, I=%g are invalid", o.L, o.E, o.A, o.I)
	}
	return
}

// TipDeflection computes the tip deflection under a tip load P: δ = P L³ / (3 E I)
func (o Cantilever) TipDeflection(P float64) float64 {
	return P * o.L * o.L * o.L / (3.0 * o.E * o.I)
}

// ShearDeflection computes the additional tip deflection of a Timoshenko beam under a tip
// load P: δs = P L / (κ G A), with κ the shear correction factor
func (o Cantilever) ShearDeflection(P, κ float64) float64 {
	return P * o.L / (κ * o.G * o.A)
}

// TipRotation computes the tip rotation under a tip load P: θ = P L² / (2 E I)
func (o Cantilever) TipRotation(P float64) float64 {
	return P * o.L * o.L / (2.0 * o.E * o.I)
}

// Deflection computes the deflection at x under a tip load P: w = P x² (3L - x) / (6 E I)
func (o Cantilever) Deflection(P, x float64) float64 {
	return P * x * x * (3.0*o.L - x) / (6.0 * o.E * o.I)
}

// TipTwist computes the tip twist under a torque T: φ = T L / (G J)
func (o Cantilever) TipTwist(T float64) float64 {
	return T * o.L / (o.G * o.J)
}

// AxialDisp computes the tip displacement under an axial load F: u = F L / (E A)
func (o Cantilever) AxialDisp(F float64) float64 {
	return F * o.L / (o.E * o.A)
}

// Omega computes the k-th (0-based) bending natural angular frequency:
//  ω = (βL)² √(E I / (ρ A L⁴))
func (o Cantilever) Omega(k int) float64 {
	if k < 0 || k >= len(cantileverRoots) {
		chk.Panic("bending mode index must be in [0, %d]. k=%d is invalid", len(cantileverRoots)-1, k)
	}
	βL := cantileverRoots[k]
	return βL * βL * math.Sqrt(o.E*o.I/(o.Rho*o.A*math.Pow(o.L, 4)))
}

// AxialOmega computes the k-th (0-based) axial natural angular frequency of the clamped-free bar:
//  ω = (2k+1) π / (2 L) √(E / ρ)
func (o Cantilever) AxialOmega(k int) float64 {
	return float64(2*k+1) * math.Pi / (2.0 * o.L) * math.Sqrt(o.E/o.Rho)
}
