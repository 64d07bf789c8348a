// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Ipoint holds the natural coordinates and the weight of an integration point: {r, s, t, w}
type Ipoint []float64

// W returns the weight
func (o Ipoint) W() float64 { return o[3] }

// ipsfactory holds integration points; e.g. "hex_8" => 2×2×2 Gauss points
var ipsfactory = make(map[string][]Ipoint)

// GetIps returns the integration points of a geometry type (or class) with nip points
//  Examples: GetIps("hex8", 8), GetIps("qua", 4), GetIps("tet10", 4)
func GetIps(geoType string, nip int) (ips []Ipoint, err error) {
	class := geoType
	if s, ok := factory[geoType]; ok {
		class = s.Class
	}
	key := io.Sf("%s_%d", class, nip)
	ips, ok := ipsfactory[key]
	if !ok {
		return nil, chk.Err("integration points %q are not available. options for %q are: %v", key, class, ipsOptions(class))
	}
	return
}

// gauss1d returns the n-point Gauss-Legendre abscissas and weights
func gauss1d(n int) (r, w []float64) {
	switch n {
	case 1:
		return []float64{0}, []float64{2}
	case 2:
		a := 1.0 / math.Sqrt(3.0)
		return []float64{-a, a}, []float64{1, 1}
	case 3:
		a := math.Sqrt(3.0 / 5.0)
		return []float64{-a, 0, a}, []float64{5.0 / 9.0, 8.0 / 9.0, 5.0 / 9.0}
	case 4:
		a, b := 0.3399810435848563, 0.8611363115940526
		wa, wb := 0.6521451548625461, 0.3478548451374538
		return []float64{-b, -a, a, b}, []float64{wb, wa, wa, wb}
	}
	chk.Panic("gauss1d: n=%d is not available", n)
	return
}

// tensor product rules
func init() {
	for _, n := range []int{1, 2, 3} {
		r, w := gauss1d(n)

		// lines
		lin := make([]Ipoint, 0, n)
		for i := 0; i < n; i++ {
			lin = append(lin, Ipoint{r[i], 0, 0, w[i]})
		}
		ipsfactory[io.Sf("lin_%d", n)] = lin

		// quadrilaterals
		qua := make([]Ipoint, 0, n*n)
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				qua = append(qua, Ipoint{r[i], r[j], 0, w[i] * w[j]})
			}
		}
		ipsfactory[io.Sf("qua_%d", n*n)] = qua

		// hexahedra
		hex := make([]Ipoint, 0, n*n*n)
		for k := 0; k < n; k++ {
			for j := 0; j < n; j++ {
				for i := 0; i < n; i++ {
					hex = append(hex, Ipoint{r[i], r[j], r[k], w[i] * w[j] * w[k]})
				}
			}
		}
		ipsfactory[io.Sf("hex_%d", n*n*n)] = hex
	}

	// triangles
	ipsfactory["tri_1"] = []Ipoint{
		{1.0 / 3.0, 1.0 / 3.0, 0, 1.0 / 2.0},
	}
	ipsfactory["tri_3"] = []Ipoint{
		{1.0 / 6.0, 1.0 / 6.0, 0, 1.0 / 6.0},
		{2.0 / 3.0, 1.0 / 6.0, 0, 1.0 / 6.0},
		{1.0 / 6.0, 2.0 / 3.0, 0, 1.0 / 6.0},
	}

	// tetrahedra
	a := 0.5854101966249685
	b := 0.1381966011250105
	ipsfactory["tet_1"] = []Ipoint{
		{1.0 / 4.0, 1.0 / 4.0, 1.0 / 4.0, 1.0 / 6.0},
	}
	ipsfactory["tet_4"] = []Ipoint{
		{b, b, b, 1.0 / 24.0},
		{a, b, b, 1.0 / 24.0},
		{b, a, b, 1.0 / 24.0},
		{b, b, a, 1.0 / 24.0},
	}

	// collapsed 4×4×4 Gauss rule; exact for polynomials up to degree 5 (e.g. mass of tet10)
	//  r = u,  s = v (1-u),  t = w (1-u) (1-v),  dV = (1-u)² (1-v) du dv dw,  u,v,w ∈ [0,1]
	g, gw := gauss1d(4)
	tet := make([]Ipoint, 0, 64)
	for k := 0; k < 4; k++ {
		for j := 0; j < 4; j++ {
			for i := 0; i < 4; i++ {
				u, v, w := (1+g[i])/2, (1+g[j])/2, (1+g[k])/2
				wt := gw[i] * gw[j] * gw[k] / 8.0
				tet = append(tet, Ipoint{u, v * (1 - u), w * (1 - u) * (1 - v), wt * (1 - u) * (1 - u) * (1 - v)})
			}
		}
	}
	ipsfactory["tet_64"] = tet
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func ipsOptions(class string) (nips []int) {
	for key, ips := range ipsfactory {
		if strings.HasPrefix(key, class+"_") {
			nips = append(nips, len(ips))
		}
	}
	sort.Ints(nips)
	return
}
