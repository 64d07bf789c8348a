// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Prm holds a named material parameter
type Prm struct {
	N string  `json:"n" yaml:"n"` // name; e.g. "E", "nu", "rho"
	V float64 `json:"v" yaml:"v"` // value
	U string  `json:"u" yaml:"u"` // unit (informative only)
}

// Prms is a list of parameters
type Prms []*Prm

// Find returns the parameter with name n or nil if not found
func (o Prms) Find(n string) *Prm {
	for _, p := range o {
		if p.N == n {
			return p
		}
	}
	return nil
}

// GetValues returns the values of the named parameters and the name of the first missing one
func (o Prms) GetValues(names ...string) (values []float64, missing string) {
	values = make([]float64, len(names))
	for i, n := range names {
		p := o.Find(n)
		if p == nil {
			return nil, n
		}
		values[i] = p.V
	}
	return
}

// String returns a summary of parameters
func (o Prms) String() string {
	l := make([]string, len(o))
	for i, p := range o {
		l[i] = io.Sf("%s=%g", p.N, p.V)
	}
	return strings.Join(l, " ")
}

// Material holds material data
type Material struct {
	Name  string `json:"name" yaml:"name"`   // name of material
	Model string `json:"model" yaml:"model"` // name of constitutive model; e.g. "lin-elast"
	Desc  string `json:"desc" yaml:"desc"`   // description
	Prms  Prms   `json:"prms" yaml:"prms"`   // parameters: E, nu, rho, alpha, k, cp
}

// Has tells whether all named parameters are present; it returns the first missing name otherwise
func (o *Material) Has(names ...string) (ok bool, missing string) {
	_, missing = o.Prms.GetValues(names...)
	return missing == "", missing
}

// ValidForStructural tells whether the material has the elastic constants
func (o *Material) ValidForStructural() bool {
	ok, _ := o.Has("E", "nu")
	return ok
}

// ShearModulus returns G = E / (2 (1 + ν))
func (o *Material) ShearModulus() (G float64, err error) {
	v, miss := o.Prms.GetValues("E", "nu")
	if miss != "" {
		return 0, chk.Err("material %q: parameter %q is missing", o.Name, miss)
	}
	return v[0] / (2.0 * (1.0 + v[1])), nil
}

// BulkModulus returns K = E / (3 (1 - 2 ν))
func (o *Material) BulkModulus() (K float64, err error) {
	v, miss := o.Prms.GetValues("E", "nu")
	if miss != "" {
		return 0, chk.Err("material %q: parameter %q is missing", o.Name, miss)
	}
	if v[1] >= 0.5 {
		return 0, chk.Err("material %q: bulk modulus is undefined for nu=%g", o.Name, v[1])
	}
	return v[0] / (3.0 * (1.0 - 2.0*v[1])), nil
}

// MatDb implements a database of materials
type MatDb []*Material

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, m := range o {
		if m.Name == name {
			return m
		}
	}
	return nil
}
