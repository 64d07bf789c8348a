// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/aecs4u/calculix-sub000/inp"
	"github.com/cpmech/gosl/chk"
)

// PressCylin implements Lamé's solution to a linear elastic thick cylinder under internal
// pressure P (plane strain)
//
//               , - - ,
//           , '         ' ,
//         ,                 ,
//        ,      .-'''-.      ,
//       ,      / ↖ ↑ ↗ \      ,
//       ,     |  ← P →  |     ,
//       ,      \ ↙ ↓ ↘ /      ,
//        ,      `-...-'      ,
//         ,                 ,
//           ,            , '
//             ' - , ,  '
type PressCylin struct {
	a float64 // inner radius
	b float64 // outer radius
	E float64 // Young's modulus
	ν float64 // Poisson's coefficient
}

// Init initialises this structure
func (o *PressCylin) Init(prms inp.Prms) (err error) {

	// default values
	o.a = 100    // [mm]
	o.b = 200    // [mm]
	o.E = 210000 // [MPa] Young modulus
	o.ν = 0.3    // [-] Poisson's ratio

	// parameters
	for _, p := range prms {
		switch p.N {
		case "a":
			o.a = p.V
		case "b":
			o.b = p.V
		case "E":
			o.E = p.V
		case "nu":
			o.ν = p.V
		}
	}
	if o.a <= 0 || o.b <= o.a {
		return chk.Err("radii must satisfy 0 < a < b. a=%g, b=%g are invalid", o.a, o.b)
	}
	return
}

// Stresses computes the radial and tangential (hoop) stresses at radius r
//  σr = A - B/r²   σθ = A + B/r²   with A = P a²/(b²-a²), B = P a² b²/(b²-a²)
func (o PressCylin) Stresses(P, r float64) (sr, st float64) {
	a2, b2 := o.a*o.a, o.b*o.b
	A := P * a2 / (b2 - a2)
	B := A * b2
	return A - B/(r*r), A + B/(r*r)
}

// RadialDisp computes the radial displacement at radius r (plane strain)
//  u = (1+ν)/E [(1-2ν) A r + B/r]
func (o PressCylin) RadialDisp(P, r float64) float64 {
	a2, b2 := o.a*o.a, o.b*o.b
	A := P * a2 / (b2 - a2)
	B := A * b2
	return (1.0 + o.ν) / o.E * ((1.0-2.0*o.ν)*A*r + B/r)
}

// AxialStress computes the axial stress required by plane strain: σz = 2 ν A
func (o PressCylin) AxialStress(P float64) float64 {
	a2, b2 := o.a*o.a, o.b*o.b
	return 2.0 * o.ν * P * a2 / (b2 - a2)
}

// Cartesian converts the polar solution at (x, y) into Cartesian stresses {σxx, σyy, σxy}
func (o PressCylin) Cartesian(P, x, y float64) (sx, sy, sxy float64) {
	sr, st := o.Stresses(P, math.Sqrt(x*x+y*y))
	return CartesianStresses(x, y, sr, st, 0)
}
