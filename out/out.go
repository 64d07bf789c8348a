// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output of analysis results: text reports, result files and queries at points
package out

import (
	"strconv"
	"strings"

	"github.com/aecs4u/calculix-sub000/fem"
	"github.com/aecs4u/calculix-sub000/inp"
	"github.com/aecs4u/calculix-sub000/msolid"
	"github.com/cpmech/gosl/chk"
)

// constants
var (
	TolC = 1e-8 // tolerance to compare x-y-z coordinates
)

// Keys of nodal values
//  u{x,y,z}: translations; r{x,y,z}: rotations; f{x,y,z}, m{x,y,z}: reactions;
//  s{xx,yy,zz,xy,yz,zx}, svm, sm, s{1,2,3}: averaged stresses of solid elements;
//  v and a prefixes (e.g. "vux", "aux"): velocities and accelerations in dynamic analyses;
//  ":k" suffix (e.g. "uy:0"): component of mode shape k
var (
	DispKeys   = []string{"ux", "uy", "uz", "rx", "ry", "rz"}
	ReactKeys  = []string{"fx", "fy", "fz", "mx", "my", "mz"}
	StressKeys = []string{"sxx", "syy", "szz", "sxy", "syz", "szx"}
)

// Point holds the values at a selected node
type Point struct {
	Vid  int                  // node id
	X    []float64            // coordinates
	Dist float64              // distance from the first point of the selection
	Vals map[string][]float64 // key => values; time series in dynamic analyses
}

// Points is a set of points
type Points []*Point

// ResultsMap maps aliases to points
type ResultsMap map[string]Points

// Data holds a model, its analysis results and the selected points
type Data struct {
	Model   *inp.Model  // model
	Res     *fem.Result // results
	Results ResultsMap  // maps labels => points
	Times   []float64   // output times: one entry for static analyses; all states in dynamic ones
}

// Start starts handling of results
func Start(mdl *inp.Model, res *fem.Result) (o *Data, err error) {
	if mdl == nil || res == nil {
		return nil, chk.Err("model and results are required")
	}
	o = &Data{Model: mdl, Res: res, Results: make(ResultsMap)}
	if len(res.History) > 0 {
		for _, s := range res.History {
			o.Times = append(o.Times, s.T)
		}
	} else {
		o.Times = []float64{0}
	}
	return
}

// Define defines aliases
//  alias -- an alias to a group of points or to an individual point; e.g. "A" or "top".
//           If the alias has as many words as points found, each word names one point.
func (o *Data) Define(alias string, loc Locator) (err error) {
	if len(alias) < 1 {
		return chk.Err("alias must have at least one character. %q is invalid", alias)
	}
	pts, err := loc.Locate(o.Model)
	if err != nil {
		return
	}
	if len(pts) < 1 {
		return chk.Err("cannot define entities with alias=%q and locator=%v", alias, loc)
	}
	for _, p := range pts {
		o.load(p)
	}
	lbls := strings.Fields(alias)
	if len(lbls) > 1 && len(lbls) == len(pts) {
		for i, l := range lbls {
			o.Results[l] = Points{pts[i]}
		}
		return
	}
	o.Results[alias] = pts
	return
}

// GetRes gets results as a time or space series corresponding to a given alias
//  idxI -- index of output time; use -1 for the last one.
//          If alias defines a single point, the whole time series is returned and idxI is ignored.
func (o *Data) GetRes(key, alias string, idxI int) []float64 {
	if idxI < 0 {
		idxI = len(o.Times) - 1
	}
	if pts, ok := o.Results[alias]; ok {
		if len(pts) == 1 {
			if v, ok := pts[0].Vals[key]; ok {
				return v
			}
		} else {
			var res []float64
			for _, p := range pts {
				if v, ok := p.Vals[key]; ok {
					res = append(res, v[idxI])
				}
			}
			if len(res) > 0 {
				return res
			}
		}
	}
	chk.Panic("cannot get %q at %q", key, alias)
	return nil
}

// GetIds returns the node ids corresponding to alias
func (o *Data) GetIds(alias string) (vids []int) {
	for _, p := range o.Results[alias] {
		vids = append(vids, p.Vid)
	}
	return
}

// GetCoords returns the coordinates of a single point
func (o *Data) GetCoords(alias string) []float64 {
	if pts, ok := o.Results[alias]; ok {
		if len(pts) == 1 {
			return pts[0].X
		}
	}
	chk.Panic("cannot get coordinates of point with alias %q (make sure this alias corresponds to a single point)", alias)
	return nil
}

// GetDist returns the distances from the first point of a selection
func (o *Data) GetDist(alias string) (dist []float64) {
	for _, p := range o.Results[alias] {
		dist = append(dist, p.Dist)
	}
	return
}

// load collects the nodal values of a point
func (o *Data) load(p *Point) {
	p.Vals = make(map[string][]float64)
	dpn := o.Res.MaxDpn
	base := (p.Vid - 1) * dpn
	push := func(key string, v float64) {
		p.Vals[key] = append(p.Vals[key], v)
	}

	// displacements
	if len(o.Res.History) > 0 {
		for _, s := range o.Res.History {
			for i := 0; i < dpn; i++ {
				push(DispKeys[i], s.U[base+i])
				push("v"+DispKeys[i], s.V[base+i])
				push("a"+DispKeys[i], s.A[base+i])
			}
		}
		return
	}
	if o.Res.U != nil {
		for i := 0; i < dpn; i++ {
			push(DispKeys[i], o.Res.U[base+i])
		}
	}

	// reactions
	if o.Res.Reactions != nil {
		for i := 0; i < dpn; i++ {
			push(ReactKeys[i], o.Res.Reactions[base+i])
		}
	}

	// stresses
	if sig, ok := o.Res.Nodal[p.Vid]; ok {
		for i, key := range StressKeys {
			push(key, sig[i])
		}
		push("svm", msolid.VonMises(sig))
		push("sm", msolid.MeanStress(sig))
		if λ, err := msolid.Principal(sig); err == nil {
			push("s1", λ[0])
			push("s2", λ[1])
			push("s3", λ[2])
		}
	}

	// mode shapes
	for k, mode := range o.Res.Modes {
		for i := 0; i < dpn; i++ {
			push(modeKey(DispKeys[i], k), mode.Phi[base+i])
		}
	}
}

// modeKey returns the key of a mode shape component; e.g. "ux:0" for the first mode
func modeKey(key string, mode int) string {
	return key + ":" + strconv.Itoa(mode)
}

