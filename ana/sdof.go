// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Sdof implements the response of a single-DOF oscillator m ü + c u̇ + k u = F(t) starting at rest
type Sdof struct {
	M float64 // mass
	K float64 // stiffness
	C float64 // viscous damping

	// derived
	Omega float64 // undamped natural angular frequency
	Zeta  float64 // damping ratio
}

// Init initialises this structure
func (o *Sdof) Init(m, k, c float64) (err error) {
	if m <= 0 || k <= 0 || c < 0 {
		return chk.Err("oscillator requires m > 0, k > 0 and c ≥ 0. m=%g, k=%g, c=%g are invalid", m, k, c)
	}
	o.M, o.K, o.C = m, k, c
	o.Omega = math.Sqrt(k / m)
	o.Zeta = c / (2.0 * math.Sqrt(k*m))
	if o.Zeta >= 1 {
		return chk.Err("only underdamped oscillators are implemented. ζ=%g is invalid", o.Zeta)
	}
	return
}

// Period returns the undamped natural period
func (o Sdof) Period() float64 {
	return 2.0 * math.Pi / o.Omega
}

// Step computes the displacement at time t after a step load F applied at t=0:
//  u = ust [1 - e^(-ζωt) (cos ωd t + ζ/√(1-ζ²) sin ωd t)]
func (o Sdof) Step(F, t float64) float64 {
	ust := F / o.K
	ζ := o.Zeta
	q := math.Sqrt(1.0 - ζ*ζ)
	ωd := o.Omega * q
	return ust * (1.0 - math.Exp(-ζ*o.Omega*t)*(math.Cos(ωd*t)+ζ/q*math.Sin(ωd*t)))
}

// StepPeak computes the largest displacement after a step load F: ust (1 + e^(-πζ/√(1-ζ²)))
func (o Sdof) StepPeak(F float64) float64 {
	ζ := o.Zeta
	return F / o.K * (1.0 + math.Exp(-math.Pi*ζ/math.Sqrt(1.0-ζ*ζ)))
}
