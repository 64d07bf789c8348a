// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape structures/routines
package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// ShpFunc is the shape functions callback function
type ShpFunc func(S []float64, dSdR [][]float64, r []float64, derivs bool)

// Shape holds geometry data
type Shape struct {

	// geometry
	Type           string      // name; e.g. "lin2"
	Func           ShpFunc     // shape/derivs function callback function
	FaceFunc       ShpFunc     // face shape/derivs function callback function
	BasicType      string      // geometry of basic element; e.g. "qua8" => "qua4"
	FaceType       string      // geometry of face; e.g. "qua8" => "lin3"
	Class          string      // class of geometry used to select integration points; e.g. "hex"
	Gndim          int         // geometry of shape; e.g. "lin3" => gnd == 1 (even in 3D simulations)
	Nverts         int         // number of vertices in cell; e.g. "qua8" => 8
	FaceNvertsMax  int         // max number of vertices on face
	FaceLocalVerts [][]int     // face local vertices [nfaces][...]
	NatCoords      [][]float64 // natural coordinates [gndim][nverts]

	// scratchpad: volume
	S    []float64   // [nverts] shape functions
	G    [][]float64 // [nverts][gndim] G == dSdx. derivative of shape function
	J    float64     // Jacobian: determinant of dxdr
	DSdR [][]float64 // [nverts][gndim] derivatives of S w.r.t natural coordinates
	DxdR [][]float64 // [gndim][gndim] derivatives of real coordinates w.r.t natural coordinates
	DRdx [][]float64 // [gndim][gndim] dRdx == inverse(dxdR)

	// scratchpad: line
	Jvec3d []float64 // Jacobian: norm of dxdr for line elements (size==3)
	Gvec   []float64 // [nverts] G == dSdx. derivative of shape function

	// scratchpad: face
	Sf     []float64   // [FaceNvertsMax] shape functions values
	Fnvec  []float64   // [gndim] face normal vector multiplied by Jf
	DSfdRf [][]float64 // [FaceNvertsMax][gndim-1] derivatives of Sf w.r.t natural coordinates
	DxfdRf [][]float64 // [gndim][gndim-1] derivatives of real coordinates w.r.t natural coordinates

	// scratchpad: gonum
	jac  *mat.Dense // dxdR
	jaci *mat.Dense // inverse of dxdR
}

// GetCopy returns a new copy of this shape structure
func (o Shape) GetCopy() *Shape {

	// new structure
	var p Shape

	// geometry
	p.Type = o.Type
	p.Func = o.Func
	p.FaceFunc = o.FaceFunc
	p.BasicType = o.BasicType
	p.FaceType = o.FaceType
	p.Class = o.Class
	p.Gndim = o.Gndim
	p.Nverts = o.Nverts
	p.FaceNvertsMax = o.FaceNvertsMax
	p.FaceLocalVerts = intsClone(o.FaceLocalVerts)
	p.NatCoords = matClone(o.NatCoords)

	// scratchpad
	p.init_scratchpad()
	return &p
}

// factory holds all Shapes available
var factory = make(map[string]*Shape)

// register shapes; faces first
func init() {
	for _, s := range []*Shape{
		newLin2(), newLin3(),
		newTri3(), newTri6(),
		newQua4(), newQua8(),
		newHex8(), newHex20(),
		newTet4(), newTet10(),
	} {
		register(s)
	}
}

// Get returns an existent Shape structure
//  Note: 1) returns nil on errors
//        2) use goroutineId > 0 to get a copy
func Get(geoType string, goroutineId int) *Shape {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	if goroutineId > 0 {
		return s.GetCopy()
	}
	return s
}

// GetNverts returns the number of vertices of a geometry type or -1 if not available
func GetNverts(geoType string) int {
	s, ok := factory[geoType]
	if !ok {
		return -1
	}
	return s.Nverts
}

// IpRealCoords returns the real coordinates (y) of an integration point
func (o *Shape) IpRealCoords(x [][]float64, ip Ipoint) (y []float64) {
	ndim := len(x)
	y = make([]float64, ndim)
	o.Func(o.S, o.DSdR, ip, false)
	for i := 0; i < ndim; i++ {
		for m := 0; m < o.Nverts; m++ {
			y[i] += o.S[m] * x[i][m]
		}
	}
	return
}

// CalcAtIp calculates volume data such as S and G at natural coordinate r
//  Input:
//   x[ndim][nverts] -- coordinates matrix of element; only the first gndim rows are
//                      used by 2D and 3D shapes; lines use all rows (ndim ≤ 3)
//   ip              -- integration point
//  Output:
//   S, DSdR, DxdR, DRdx, G, and J
//  Note: J is set even if an error (non-positive determinant) is returned
func (o *Shape) CalcAtIp(x [][]float64, ip Ipoint, derivs bool) (err error) {

	// S and dSdR
	o.Func(o.S, o.DSdR, ip, derivs)
	if !derivs {
		return
	}

	if o.Gndim == 1 {
		// calculate Jvec3d == dxdR
		for i := 0; i < 3; i++ {
			o.Jvec3d[i] = 0.0
			if i >= len(x) {
				continue
			}
			for m := 0; m < o.Nverts; m++ {
				o.Jvec3d[i] += x[i][m] * o.DSdR[m][0] // dxdR := x * dSdR
			}
		}

		// calculate J = norm of Jvec3d
		o.J = math.Sqrt(o.Jvec3d[0]*o.Jvec3d[0] + o.Jvec3d[1]*o.Jvec3d[1] + o.Jvec3d[2]*o.Jvec3d[2])
		if o.J <= 0 {
			return chk.Err("%s: length of line element is zero", o.Type)
		}

		// calculate G
		for m := 0; m < o.Nverts; m++ {
			o.Gvec[m] = o.DSdR[m][0] / o.J
		}
		return
	}

	// dxdR := sum_n x * dSdR   =>  dx_i/dR_j := sum_n x^n_i * dS^n/dR_j
	for i := 0; i < o.Gndim; i++ {
		for j := 0; j < o.Gndim; j++ {
			o.DxdR[i][j] = 0.0
			for n := 0; n < o.Nverts; n++ {
				o.DxdR[i][j] += x[i][n] * o.DSdR[n][j]
			}
			o.jac.Set(i, j, o.DxdR[i][j])
		}
	}

	// dRdx := inv(dxdR)
	o.J = mat.Det(o.jac)
	if o.J <= 0 {
		return chk.Err("%s: determinant of Jacobian is not positive: J=%g", o.Type, o.J)
	}
	err = o.jaci.Inverse(o.jac)
	if err != nil {
		return chk.Err("%s: cannot invert Jacobian matrix:\n%v", o.Type, err)
	}
	for i := 0; i < o.Gndim; i++ {
		for j := 0; j < o.Gndim; j++ {
			o.DRdx[i][j] = o.jaci.At(i, j)
		}
	}

	// G == dSdx := dSdR * dRdx  =>  dS^m/dx_j := sum_i dS^m/dR_i * dR_i/dx_j
	for m := 0; m < o.Nverts; m++ {
		for j := 0; j < o.Gndim; j++ {
			o.G[m][j] = 0.0
			for i := 0; i < o.Gndim; i++ {
				o.G[m][j] += o.DSdR[m][i] * o.DRdx[i][j]
			}
		}
	}
	return
}

// CalcAtFaceIp calculates face data such as Sf and Fnvec
//  Input:
//   x[ndim][nverts] -- coordinates matrix of solid element
//   ipf             -- local/natural coordinates of face
//   idxface         -- local index of face
//  Output:
//   Sf and Fnvec
//  Note: the orientation of Fnvec follows the ordering of the face vertices
func (o *Shape) CalcAtFaceIp(x [][]float64, ipf Ipoint, idxface int) (err error) {

	// skip 1D elements
	if o.Gndim == 1 {
		return
	}
	if idxface < 0 || idxface >= len(o.FaceLocalVerts) {
		return chk.Err("%s: face index %d is out of range [0, %d)", o.Type, idxface, len(o.FaceLocalVerts))
	}

	// Sf and dSfdR
	o.FaceFunc(o.Sf, o.DSfdRf, ipf, true)

	// dxfdRf := sum_n x * dSfdRf   =>  dxf_i/dRf_j := sum_n xf^n_i * dSf^n/dRf_j
	for i := 0; i < o.Gndim; i++ {
		for j := 0; j < o.Gndim-1; j++ {
			o.DxfdRf[i][j] = 0.0
			for k, n := range o.FaceLocalVerts[idxface] {
				o.DxfdRf[i][j] += x[i][n] * o.DSfdRf[k][j]
			}
		}
	}

	// face normal vector
	if o.Gndim == 2 {
		o.Fnvec[0] = o.DxfdRf[1][0]
		o.Fnvec[1] = -o.DxfdRf[0][0]
		return
	}
	o.Fnvec[0] = o.DxfdRf[1][0]*o.DxfdRf[2][1] - o.DxfdRf[2][0]*o.DxfdRf[1][1]
	o.Fnvec[1] = o.DxfdRf[2][0]*o.DxfdRf[0][1] - o.DxfdRf[0][0]*o.DxfdRf[2][1]
	o.Fnvec[2] = o.DxfdRf[0][0]*o.DxfdRf[1][1] - o.DxfdRf[1][0]*o.DxfdRf[0][1]
	return
}

// init_scratchpad initialise volume data (scratchpad)
func (o *Shape) init_scratchpad() {

	// volume data
	o.S = make([]float64, o.Nverts)
	o.DSdR = matAlloc(o.Nverts, o.Gndim)
	o.DxdR = matAlloc(o.Gndim, o.Gndim)
	o.DRdx = matAlloc(o.Gndim, o.Gndim)
	o.G = matAlloc(o.Nverts, o.Gndim)

	// face data
	if o.Gndim > 1 {
		o.Sf = make([]float64, o.FaceNvertsMax)
		o.DSfdRf = matAlloc(o.FaceNvertsMax, o.Gndim-1)
		o.DxfdRf = matAlloc(o.Gndim, o.Gndim-1)
		o.Fnvec = make([]float64, o.Gndim)
		o.jac = mat.NewDense(o.Gndim, o.Gndim, nil)
		o.jaci = mat.NewDense(o.Gndim, o.Gndim, nil)
	}

	// lin data
	if o.Gndim == 1 {
		o.Jvec3d = make([]float64, 3)
		o.Gvec = make([]float64, o.Nverts)
	}
}

// register sets face data and the scratchpad and adds shape to factory
func register(o *Shape) {
	if o.FaceType != "" {
		f := factory[o.FaceType]
		if f == nil {
			chk.Panic("face shape %q of %q must be registered first", o.FaceType, o.Type)
		}
		o.FaceFunc = f.Func
		o.FaceNvertsMax = f.Nverts
	}
	o.init_scratchpad()
	factory[o.Type] = o
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func matAlloc(m, n int) (a [][]float64) {
	a = make([][]float64, m)
	for i := 0; i < m; i++ {
		a[i] = make([]float64, n)
	}
	return
}

func matClone(a [][]float64) (b [][]float64) {
	b = make([][]float64, len(a))
	for i := range a {
		b[i] = make([]float64, len(a[i]))
		copy(b[i], a[i])
	}
	return
}

func intsClone(a [][]int) (b [][]int) {
	b = make([][]int, len(a))
	for i := range a {
		b[i] = make([]int, len(a[i]))
		copy(b[i], a[i])
	}
	return
}
