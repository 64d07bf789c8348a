// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// AnalysisConfig holds data to select and drive an analysis
type AnalysisConfig struct {

	// analysis
	Type   string `json:"type" yaml:"type"`     // "static", "modal", "nonlinear" or "dynamic"
	Nmodes int    `json:"nmodes" yaml:"nmodes"` // number of requested modes (modal)

	// assembly and backends
	Matrix     string `json:"matrix" yaml:"matrix"`         // global matrix storage: "dense", "sparse" or "auto"
	Threshold  int    `json:"threshold" yaml:"threshold"`   // "auto": use sparse storage when ndofs > Threshold
	Backend    string `json:"backend" yaml:"backend"`       // linear solver backend: "dense" or "cg"
	EigBackend string `json:"eigbackend" yaml:"eigbackend"` // eigen solver backend: "dense" or "subspace"
	Nworkers   int    `json:"nworkers" yaml:"nworkers"`     // number of goroutines computing element matrices; ≤ 1 means serial

	// iterative backends
	CgTol    float64 `json:"cgtol" yaml:"cgtol"`       // conjugate gradients: relative tolerance
	CgMaxIt  int     `json:"cgmaxit" yaml:"cgmaxit"`   // conjugate gradients: max iterations; 0 means 10 × n
	EigTol   float64 `json:"eigtol" yaml:"eigtol"`     // subspace iteration: relative tolerance on eigenvalues
	EigMaxIt int     `json:"eigmaxit" yaml:"eigmaxit"` // subspace iteration: max iterations

	// nonlinear solver
	TolF       float64 `json:"tolf" yaml:"tolf"`             // tolerance on residual force: ‖R‖/‖Fext‖
	TolU       float64 `json:"tolu" yaml:"tolu"`             // tolerance on displacement correction: ‖Δu‖/‖u‖
	TolE       float64 `json:"tole" yaml:"tole"`             // tolerance on energy: |Δu·R|/|u·Fext|
	MaxIt      int     `json:"maxit" yaml:"maxit"`           // max number of iterations per increment
	DivIts     int     `json:"divits" yaml:"divits"`         // number of consecutive growing residuals flagging divergence
	LineSearch bool    `json:"linesearch" yaml:"linesearch"` // use backtracking line search
	Nincs      int     `json:"nincs" yaml:"nincs"`           // number of load increments
	Nlgeom     bool    `json:"nlgeom" yaml:"nlgeom"`         // geometric nonlinearity (elements supporting it)

	// dynamics
	Scheme string  `json:"scheme" yaml:"scheme"` // Newmark scheme: "average", "linear", "fox-goodwin" or "custom"
	Beta   float64 `json:"beta" yaml:"beta"`     // Newmark's β ("custom" scheme)
	Gamma  float64 `json:"gamma" yaml:"gamma"`   // Newmark's γ ("custom" scheme)
	Dt     float64 `json:"dt" yaml:"dt"`         // time step
	Nsteps int     `json:"nsteps" yaml:"nsteps"` // number of time steps

	// damping
	RayAlpha float64 `json:"rayalpha" yaml:"rayalpha"` // Rayleigh: coefficient of M
	RayBeta  float64 `json:"raybeta" yaml:"raybeta"`   // Rayleigh: coefficient of K
	Zeta1    float64 `json:"zeta1" yaml:"zeta1"`       // modal damping ratio at F1
	Zeta2    float64 `json:"zeta2" yaml:"zeta2"`       // modal damping ratio at F2
	F1       float64 `json:"f1" yaml:"f1"`             // first frequency [Hz] for modal damping
	F2       float64 `json:"f2" yaml:"f2"`             // second frequency [Hz] for modal damping
}

// SetDefault sets default values
func (o *AnalysisConfig) SetDefault() {

	// analysis
	o.Type = "static"
	o.Nmodes = 10

	// assembly and backends
	o.Matrix = "auto"
	o.Threshold = 3000
	o.Backend = "dense"
	o.EigBackend = "dense"
	o.Nworkers = 1

	// iterative backends
	o.CgTol = 1e-10
	o.EigTol = 1e-8
	o.EigMaxIt = 100

	// nonlinear solver
	o.TolF = 1e-6
	o.TolU = 1e-8
	o.TolE = 1e-10
	o.MaxIt = 50
	o.DivIts = 3
	o.LineSearch = true
	o.Nincs = 1

	// dynamics
	o.Scheme = "average"
	o.Beta = 0.25
	o.Gamma = 0.5
	o.Dt = 0.01
	o.Nsteps = 100
}

// NewmarkSchemes maps scheme names to (β, γ)
var NewmarkSchemes = map[string][2]float64{
	"average":     {1.0 / 4.0, 1.0 / 2.0},
	"linear":      {1.0 / 6.0, 1.0 / 2.0},
	"fox-goodwin": {1.0 / 12.0, 1.0 / 2.0},
}

// PostProcess checks values and computes derived coefficients
//  Note: Newmark's β and γ are set from Scheme, unless Scheme == "custom";
//        Rayleigh coefficients are computed from modal damping ratios when Zeta1 or Zeta2 are given
func (o *AnalysisConfig) PostProcess() (err error) {

	// analysis
	switch o.Type {
	case "static", "modal", "nonlinear", "dynamic":
	default:
		return chk.Err("analysis type %q is not available", o.Type)
	}
	if o.Type == "modal" && o.Nmodes < 1 {
		return chk.Err("number of modes must be positive. nmodes=%d is invalid", o.Nmodes)
	}
	switch o.Matrix {
	case "dense", "sparse", "auto":
	default:
		return chk.Err("matrix storage %q is not available", o.Matrix)
	}
	if o.Nworkers < 1 {
		o.Nworkers = 1
	}

	// nonlinear solver
	if o.MaxIt < 1 {
		return chk.Err("max number of iterations must be positive. maxit=%d is invalid", o.MaxIt)
	}
	if o.DivIts < 1 {
		o.DivIts = 1
	}
	if o.Nincs < 1 {
		o.Nincs = 1
	}

	// Newmark coefficients
	if o.Scheme != "custom" {
		bg, ok := NewmarkSchemes[o.Scheme]
		if !ok {
			return chk.Err("Newmark scheme %q is not available", o.Scheme)
		}
		o.Beta, o.Gamma = bg[0], bg[1]
	}
	if o.Type == "dynamic" {
		if o.Beta <= 0 || o.Gamma <= 0 {
			return chk.Err("Newmark coefficients must be positive. β=%g, γ=%g are invalid", o.Beta, o.Gamma)
		}
		if o.Dt <= 0 {
			return chk.Err("time step must be positive. dt=%g is invalid", o.Dt)
		}
		if o.Nsteps < 1 {
			return chk.Err("number of time steps must be positive. nsteps=%d is invalid", o.Nsteps)
		}
	}

	// modal damping => Rayleigh
	if o.Zeta1 > 0 || o.Zeta2 > 0 {
		o.RayAlpha, o.RayBeta, err = RayleighFromModal(o.Zeta1, o.F1, o.Zeta2, o.F2)
	}
	return
}

// RayleighFromModal computes α and β of C = α M + β K such that the damping ratios at
// frequencies f1 and f2 [Hz] are ζ1 and ζ2; i.e. ζ(ω) = α/(2ω) + β ω/2
func RayleighFromModal(ζ1, f1, ζ2, f2 float64) (α, β float64, err error) {
	if f1 <= 0 || f2 <= 0 || math.Abs(f2-f1) < 1e-12*math.Max(f1, f2) {
		return 0, 0, chk.Err("modal damping requires two distinct positive frequencies. f1=%g, f2=%g are invalid", f1, f2)
	}
	ω1 := 2.0 * math.Pi * f1
	ω2 := 2.0 * math.Pi * f2
	den := ω2*ω2 - ω1*ω1
	α = 2.0 * ω1 * ω2 * (ζ1*ω2 - ζ2*ω1) / den
	β = 2.0 * (ζ2*ω2 - ζ1*ω1) / den
	return
}
