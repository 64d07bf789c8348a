// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/aecs4u/calculix-sub000/inp"
	"github.com/cpmech/gosl/chk"
)

// bodyForce returns the body force per unit volume {bx, by, bz} of a distributed load
//  "GRAV"           -- b = ρ Value dir/|dir|
//  "BX", "BY", "BZ" -- b = Value along x, y or z
func bodyForce(dl *inp.Dload, eid int, mdl elastic, matname string) (b []float64, err error) {
	b = make([]float64, 3)
	switch dl.Kind {
	case "GRAV":
		ρ, err := mdl.rho(eid, matname)
		if err != nil {
			return nil, err
		}
		if len(dl.Dir) != 3 {
			return nil, chk.Err("element %d: gravity load requires a direction with 3 components. dir=%v is invalid", eid, dl.Dir)
		}
		n := math.Sqrt(dl.Dir[0]*dl.Dir[0] + dl.Dir[1]*dl.Dir[1] + dl.Dir[2]*dl.Dir[2])
		if n < 1e-15 {
			return nil, chk.Err("element %d: gravity direction must not be zero", eid)
		}
		for i := 0; i < 3; i++ {
			b[i] = ρ * dl.Value * dl.Dir[i] / n
		}
	case "BX":
		b[0] = dl.Value
	case "BY":
		b[1] = dl.Value
	case "BZ":
		b[2] = dl.Value
	default:
		return nil, chk.Err("element %d: distributed load of kind %q is not available for this element", eid, dl.Kind)
	}
	return
}
