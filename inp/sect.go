// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Section holds cross-section data of trusses, beams and shells
//  Kinds:
//   "rod"   -- truss; A
//   "circ"  -- solid circle; R or A
//   "pipe"  -- hollow circle; R and Ri
//   "rect"  -- rectangle; B (along local axis 1) and H (along local axis 2)
//   "gen"   -- general; A, I11, I22 and Jt (Jt defaults to I11+I22)
//   "shell" -- shell; Thick
type Section struct {
	Name  string    `json:"name" yaml:"name"`   // name of section
	Kind  string    `json:"kind" yaml:"kind"`   // kind of section
	A     float64   `json:"a" yaml:"a"`         // cross-sectional area
	I11   float64   `json:"i11" yaml:"i11"`     // second moment of area about local axis 1
	I22   float64   `json:"i22" yaml:"i22"`     // second moment of area about local axis 2
	Jt    float64   `json:"jt" yaml:"jt"`       // torsion constant
	R     float64   `json:"r" yaml:"r"`         // radius (outer radius of pipes)
	Ri    float64   `json:"ri" yaml:"ri"`       // inner radius of pipes
	B     float64   `json:"b" yaml:"b"`         // width of rectangle along local axis 1
	H     float64   `json:"h" yaml:"h"`         // height of rectangle along local axis 2
	Thick float64   `json:"thick" yaml:"thick"` // thickness of shells
	Up    []float64 `json:"up" yaml:"up"`       // beams: vector defining local axis 1 (up-vector); shells: unused
}

// SectProps holds derived section properties
type SectProps struct {
	A     float64 // area
	I11   float64 // second moment of area about local axis 1
	I22   float64 // second moment of area about local axis 2
	J     float64 // torsion constant
	Cmax1 float64 // largest distance from axis 1 to a fibre (0 if unknown)
	Cmax2 float64 // largest distance from axis 2 to a fibre (0 if unknown)
	Thick float64 // thickness (shells)
}

// Props computes derived section properties
func (o *Section) Props() (p SectProps, err error) {
	switch o.Kind {
	case "rod":
		p.A = o.A
		if p.A <= 0 {
			return p, chk.Err("section %q: area must be positive. A=%g is invalid", o.Name, o.A)
		}
		return

	case "circ":
		r := o.R
		if r <= 0 && o.A > 0 {
			r = math.Sqrt(o.A / math.Pi)
		}
		if r <= 0 {
			return p, chk.Err("section %q: radius or area must be positive", o.Name)
		}
		r4 := r * r * r * r
		p.A = math.Pi * r * r
		p.I11 = math.Pi * r4 / 4.0
		p.I22 = p.I11
		p.J = math.Pi * r4 / 2.0
		p.Cmax1, p.Cmax2 = r, r

	case "pipe":
		if o.R <= 0 || o.Ri < 0 || o.Ri >= o.R {
			return p, chk.Err("section %q: radii must satisfy 0 <= Ri < R. R=%g, Ri=%g are invalid", o.Name, o.R, o.Ri)
		}
		ro4 := o.R * o.R * o.R * o.R
		ri4 := o.Ri * o.Ri * o.Ri * o.Ri
		p.A = math.Pi * (o.R*o.R - o.Ri*o.Ri)
		p.I11 = math.Pi * (ro4 - ri4) / 4.0
		p.I22 = p.I11
		p.J = 2.0 * p.I11
		p.Cmax1, p.Cmax2 = o.R, o.R

	case "rect":
		if o.B <= 0 || o.H <= 0 {
			return p, chk.Err("section %q: B and H must be positive. B=%g, H=%g are invalid", o.Name, o.B, o.H)
		}
		p.A = o.B * o.H
		p.I11 = o.B * o.H * o.H * o.H / 12.0
		p.I22 = o.H * o.B * o.B * o.B / 12.0
		a := math.Max(o.B, o.H)
		b := math.Min(o.B, o.H)
		p.J = a * b * b * b * (1.0/3.0 - 0.21*(b/a)*(1.0-b*b*b*b/(12.0*a*a*a*a)))
		p.Cmax1, p.Cmax2 = o.H/2.0, o.B/2.0

	case "gen":
		p.A, p.I11, p.I22, p.J = o.A, o.I11, o.I22, o.Jt
		if p.J <= 0 {
			p.J = p.I11 + p.I22
		}
		if p.A <= 0 || p.I11 <= 0 || p.I22 <= 0 {
			return p, chk.Err("section %q: A, I11 and I22 must be positive. A=%g, I11=%g, I22=%g are invalid", o.Name, p.A, p.I11, p.I22)
		}

	case "shell":
		p.Thick = o.Thick
		if p.Thick <= 0 {
			return p, chk.Err("section %q: thickness must be positive. thick=%g is invalid", o.Name, o.Thick)
		}

	default:
		return p, chk.Err("section %q: kind %q is not available", o.Name, o.Kind)
	}
	return
}

// SectDb implements a database of sections
type SectDb []*Section

// Get returns a section
//  Note: returns nil if not found
func (o SectDb) Get(name string) *Section {
	for _, s := range o {
		if s.Name == name {
			return s
		}
	}
	return nil
}
