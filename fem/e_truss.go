// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/aecs4u/calculix-sub000/inp"
	"github.com/aecs4u/calculix-sub000/shp"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Truss represents a structural rod element for axial loads only (T3D2 and T3D3)
//  Note: 3 DOFs per node {ux, uy, uz}; stresses are axial (σxx along the rod axis)
type Truss struct {

	// basic data
	Eid  int         // element id
	Typ  string      // type tag
	Vids []int       // node ids
	X    [][]float64 // matrix of nodal coordinates [3][nnode]
	Nu   int         // total number of unknowns == 3 * nnode

	// parameters and properties
	Mat    string  // material name
	Mdl    elastic // elastic constants
	A      float64 // cross-sectional area
	Nlgeom bool    // geometric nonlinearity (T3D2 only)

	// integration
	Shp *shp.Shape   // shape structure
	Ips []shp.Ipoint // integration points

	// scratchpad
	dir []float64 // [3] unit vector along axis @ ip
}

// register element
func init() {
	for _, typ := range []string{"T3D2", "T3D3"} {
		geo := "lin2"
		if typ == "T3D3" {
			geo = "lin3"
		}
		nverts := shp.GetNverts(geo)
		nlgeom := typ == "T3D2"

		// information allocator
		infogetters[typ] = func() *Info {
			return &Info{Dpn: 3, Nverts: nverts, Geo: geo, Sect: true, Nlgeom: nlgeom}
		}

		// element allocator
		eallocators[typ] = func(dat *ElemData) (Elem, error) {

			// basic data
			var o Truss
			o.Eid = dat.Cell.Id
			o.Typ = dat.Cell.Type
			o.Vids = dat.Cell.Verts
			o.X = dat.X
			o.Nu = 3 * nverts

			// parameters
			o.Mat = dat.Mat.Name
			o.Mdl = getElastic(dat.Mat)
			props, err := dat.Sect.Props()
			if err != nil {
				return nil, chk.Err("element %d:\n%v", o.Eid, err)
			}
			o.A = props.A
			o.Nlgeom = dat.Opts.Nlgeom && nlgeom

			// integration points: exact for the consistent mass
			o.Shp = shp.Get(geo, 1)
			o.Ips, err = shp.GetIps(geo, nverts)
			if err != nil {
				return nil, err
			}
			o.dir = make([]float64, 3)

			// check geometry
			for k, ip := range o.Ips {
				if err = o.Shp.CalcAtIp(o.X, ip, true); err != nil {
					return nil, shapeErr(o.Eid, k, o.Shp, err)
				}
			}
			return &o, nil
		}
	}
}

// implementation ///////////////////////////////////////////////////////////////////////////////////

// Id returns the cell Id
func (o *Truss) Id() int { return o.Eid }

// Verts returns the node ids
func (o *Truss) Verts() []int { return o.Vids }

// NodeCount returns the number of nodes
func (o *Truss) NodeCount() int { return len(o.Vids) }

// DofsPerNode returns the number of DOFs per node
func (o *Truss) DofsPerNode() int { return 3 }

// Stiffness computes the element stiffness matrix
//  K = Σ w EA Bᵀ B J   with  B[3m+i] = dS_m/ds * dir_i
func (o *Truss) Stiffness() (K *mat.Dense, err error) {
	K = mat.NewDense(o.Nu, o.Nu, nil)
	B := make([]float64, o.Nu)
	EA := o.Mdl.E * o.A
	for k, ip := range o.Ips {
		if err = o.ipB(B, k, ip); err != nil {
			return
		}
		coef := EA * o.Shp.J * ip.W()
		for i := 0; i < o.Nu; i++ {
			for j := 0; j < o.Nu; j++ {
				K.Set(i, j, K.At(i, j)+coef*B[i]*B[j])
			}
		}
	}
	return
}

// Mass computes the consistent mass matrix
//  M = Σ w ρ A Sᵀ S J
func (o *Truss) Mass() (M *mat.Dense, err error) {
	ρ, err := o.Mdl.rho(o.Eid, o.Mat)
	if err != nil {
		return
	}
	M = mat.NewDense(o.Nu, o.Nu, nil)
	nn := len(o.Vids)
	for k, ip := range o.Ips {
		if err = o.Shp.CalcAtIp(o.X, ip, true); err != nil {
			return nil, shapeErr(o.Eid, k, o.Shp, err)
		}
		coef := ρ * o.A * o.Shp.J * ip.W()
		for m := 0; m < nn; m++ {
			for n := 0; n < nn; n++ {
				v := coef * o.Shp.S[m] * o.Shp.S[n]
				for i := 0; i < 3; i++ {
					M.Set(3*m+i, 3*n+i, M.At(3*m+i, 3*n+i)+v)
				}
			}
		}
	}
	return
}

// Stresses computes the axial strain and stress at integration points
//  Note: Forces = axial force N at each integration point
func (o *Truss) Stresses(ue []float64) (res *ElemStress, err error) {
	res = &ElemStress{Eid: o.Eid, Type: o.Typ, X: ipCoords(o.Shp, o.X, o.Ips)}
	B := make([]float64, o.Nu)
	for k, ip := range o.Ips {
		if err = o.ipB(B, k, ip); err != nil {
			return
		}
		ε := 0.0
		if o.Nlgeom {
			ε = o.greenStrain(ue)
		} else {
			for i := 0; i < o.Nu; i++ {
				ε += B[i] * ue[i]
			}
		}
		σ := o.Mdl.E * ε
		res.Eps = append(res.Eps, []float64{ε, -o.Mdl.Nu * ε, -o.Mdl.Nu * ε, 0, 0, 0})
		res.Sig = append(res.Sig, []float64{σ, 0, 0, 0, 0, 0})
		res.Vm = append(res.Vm, math.Abs(σ))
		res.Forces = append(res.Forces, σ*o.A)
	}
	return
}

// Tangent computes the tangent matrix and internal forces
//  Nlgeom: total Lagrangian formulation with Green strain and 2nd Piola-Kirchhoff stress
//   E = (d·d - L0²) / (2 L0²)    S = E_mod E    d = X1 - X0 + u1 - u0
//   f1 = -f0 = A S d / L0
//   K = E_mod A / L0³ [d dᵀ] + A S / L0 [I]   (with ± blocks)
func (o *Truss) Tangent(ue []float64) (Kt *mat.Dense, fint []float64, err error) {
	if !o.Nlgeom {
		Kt, err = o.Stiffness()
		if err != nil {
			return
		}
		fint = matVec(Kt, ue)
		return
	}
	d := make([]float64, 3)
	L0 := o.length()
	for i := 0; i < 3; i++ {
		d[i] = o.X[i][1] - o.X[i][0] + ue[3+i] - ue[i]
	}
	S := o.Mdl.E * o.greenStrain(ue)
	fint = make([]float64, o.Nu)
	for i := 0; i < 3; i++ {
		fint[3+i] = o.A * S * d[i] / L0
		fint[i] = -fint[3+i]
	}
	Kt = mat.NewDense(o.Nu, o.Nu, nil)
	a := o.Mdl.E * o.A / (L0 * L0 * L0)
	b := o.A * S / L0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := a * d[i] * d[j]
			if i == j {
				v += b
			}
			Kt.Set(i, j, v)
			Kt.Set(i, 3+j, -v)
			Kt.Set(3+i, j, -v)
			Kt.Set(3+i, 3+j, v)
		}
	}
	return
}

// DistLoad computes nodal loads due to gravity or body forces per unit volume
func (o *Truss) DistLoad(dl *inp.Dload) (fe []float64, err error) {
	b, err := bodyForce(dl, o.Eid, o.Mdl, o.Mat)
	if err != nil {
		return
	}
	fe = make([]float64, o.Nu)
	for k, ip := range o.Ips {
		if err = o.Shp.CalcAtIp(o.X, ip, true); err != nil {
			return nil, shapeErr(o.Eid, k, o.Shp, err)
		}
		coef := o.A * o.Shp.J * ip.W()
		for m := 0; m < len(o.Vids); m++ {
			for i := 0; i < 3; i++ {
				fe[3*m+i] += coef * o.Shp.S[m] * b[i]
			}
		}
	}
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// ipB computes B at integration point
func (o *Truss) ipB(B []float64, k int, ip shp.Ipoint) (err error) {
	if err = o.Shp.CalcAtIp(o.X, ip, true); err != nil {
		return shapeErr(o.Eid, k, o.Shp, err)
	}
	for i := 0; i < 3; i++ {
		o.dir[i] = o.Shp.Jvec3d[i] / o.Shp.J
	}
	for m := 0; m < len(o.Vids); m++ {
		for i := 0; i < 3; i++ {
			B[3*m+i] = o.Shp.Gvec[m] * o.dir[i]
		}
	}
	return
}

// length returns the initial length between end nodes
func (o *Truss) length() float64 {
	dx := o.X[0][1] - o.X[0][0]
	dy := o.X[1][1] - o.X[1][0]
	dz := o.X[2][1] - o.X[2][0]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// greenStrain computes the Green strain of a 2-node truss
func (o *Truss) greenStrain(ue []float64) float64 {
	L0 := o.length()
	dd := 0.0
	for i := 0; i < 3; i++ {
		di := o.X[i][1] - o.X[i][0] + ue[3+i] - ue[i]
		dd += di * di
	}
	return (dd - L0*L0) / (2.0 * L0 * L0)
}
