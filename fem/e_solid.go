// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/aecs4u/calculix-sub000/inp"
	"github.com/aecs4u/calculix-sub000/msolid"
	"github.com/aecs4u/calculix-sub000/shp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// hourglass stabilisation coefficient for C3D8R
const HOURGLASS_EPS = 0.05

// solidTypes holds the geometry and integration orders of each type of solid element
//  nip  -- number of integration points for stiffness and stresses
//  nipm -- number of integration points for the consistent mass
var solidTypes = map[string]struct {
	geo       string
	nip, nipm int
	hourglass bool
}{
	"C3D8":   {"hex8", 8, 8, false},
	"C3D8R":  {"hex8", 1, 8, true},
	"C3D20":  {"hex20", 27, 27, false},
	"C3D20R": {"hex20", 8, 27, false},
	"C3D4":   {"tet4", 1, 4, false},
	"C3D10":  {"tet10", 4, 64, false},
}

// Solid represents a 3D continuum element with 3 DOFs per node {ux, uy, uz}
type Solid struct {

	// basic data
	Eid  int         // element id
	Typ  string      // type tag
	Vids []int       // node ids
	X    [][]float64 // matrix of nodal coordinates [3][nnode]
	Nu   int         // total number of unknowns == 3 * nnode

	// material
	Mat string       // material name
	Mdl msolid.Small // constitutive model
	Ela elastic      // elastic constants
	D   *mat.Dense   // [6][6] constitutive modulus

	// integration
	Shp       *shp.Shape   // shape structure
	Ips       []shp.Ipoint // integration points for stiffness and stresses
	IpsM      []shp.Ipoint // integration points for mass
	Hourglass bool         // apply hourglass stabilisation (one-point hexahedra)

	// extrapolation
	Emat [][]float64 // [nnode][nip] extrapolation matrix from ips to nodes
}

// register element
func init() {
	for typ, dat := range solidTypes {
		geo, nip, nipm, hourglass := dat.geo, dat.nip, dat.nipm, dat.hourglass
		nverts := shp.GetNverts(geo)

		// information allocator
		infogetters[typ] = func() *Info {
			return &Info{Dpn: 3, Nverts: nverts, Geo: geo}
		}

		// element allocator
		eallocators[typ] = func(dat *ElemData) (Elem, error) {

			// basic data
			var o Solid
			o.Eid = dat.Cell.Id
			o.Typ = dat.Cell.Type
			o.Vids = dat.Cell.Verts
			o.X = dat.X
			o.Nu = 3 * nverts

			// material
			var err error
			o.Mat = dat.Mat.Name
			o.Ela = getElastic(dat.Mat)
			o.Mdl, err = newSmallModel(o.Eid, dat.Mat)
			if err != nil {
				return nil, err
			}
			D := alloc(6, 6)
			if err = o.Mdl.CalcD(D); err != nil {
				return nil, &MaterialError{Eid: o.Eid, Mat: o.Mat, Msg: err.Error()}
			}
			o.D = mat.NewDense(6, 6, nil)
			for i := 0; i < 6; i++ {
				o.D.SetRow(i, D[i])
			}

			// integration points
			o.Shp = shp.Get(geo, 1)
			o.Hourglass = hourglass
			if o.Ips, err = shp.GetIps(geo, nip); err != nil {
				return nil, err
			}
			if o.IpsM, err = shp.GetIps(geo, nipm); err != nil {
				return nil, err
			}

			// check geometry at all points used by this element
			for k, ip := range o.IpsM {
				if err = o.Shp.CalcAtIp(o.X, ip, true); err != nil {
					return nil, shapeErr(o.Eid, k, o.Shp, err)
				}
			}
			for k, ip := range o.Ips {
				if err = o.Shp.CalcAtIp(o.X, ip, true); err != nil {
					return nil, shapeErr(o.Eid, k, o.Shp, err)
				}
			}

			// extrapolation matrix
			o.Emat = alloc(nverts, len(o.Ips))
			if err = o.Shp.Extrapolator(o.Emat, o.Ips); err != nil {
				return nil, chk.Err("element %d: cannot compute extrapolation matrix:\n%v", o.Eid, err)
			}
			return &o, nil
		}
	}
}

// implementation ///////////////////////////////////////////////////////////////////////////////////

// Id returns the cell Id
func (o *Solid) Id() int { return o.Eid }

// Verts returns the node ids
func (o *Solid) Verts() []int { return o.Vids }

// NodeCount returns the number of nodes
func (o *Solid) NodeCount() int { return len(o.Vids) }

// DofsPerNode returns the number of DOFs per node
func (o *Solid) DofsPerNode() int { return 3 }

// Stiffness computes the element stiffness matrix
//  K = Σ w Bᵀ D B J  (+ hourglass stabilisation for one-point hexahedra)
func (o *Solid) Stiffness() (K *mat.Dense, err error) {
	K = mat.NewDense(o.Nu, o.Nu, nil)
	B := mat.NewDense(6, o.Nu, nil)
	var BtDB mat.Dense
	for k, ip := range o.Ips {
		if err = o.ipB(B, k, ip); err != nil {
			return
		}
		BtDB.Product(B.T(), o.D, B)
		BtDB.Scale(o.Shp.J*ip.W(), &BtDB)
		K.Add(K, &BtDB)
	}
	if o.Hourglass {
		err = o.addHourglass(K)
	}
	return
}

// Mass computes the consistent mass matrix
//  M = Σ w ρ Sᵀ S J
func (o *Solid) Mass() (M *mat.Dense, err error) {
	ρ, err := o.Ela.rho(o.Eid, o.Mat)
	if err != nil {
		return
	}
	nn := len(o.Vids)
	M = mat.NewDense(o.Nu, o.Nu, nil)
	for k, ip := range o.IpsM {
		if err = o.Shp.CalcAtIp(o.X, ip, true); err != nil {
			return nil, shapeErr(o.Eid, k, o.Shp, err)
		}
		coef := ρ * o.Shp.J * ip.W()
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

// Stresses computes strains and stresses at integration points and extrapolates stresses to nodes
func (o *Solid) Stresses(ue []float64) (res *ElemStress, err error) {
	res = &ElemStress{Eid: o.Eid, Type: o.Typ, X: ipCoords(o.Shp, o.X, o.Ips)}
	B := mat.NewDense(6, o.Nu, nil)
	u := mat.NewVecDense(o.Nu, ue)
	var ε mat.VecDense
	for k, ip := range o.Ips {
		if err = o.ipB(B, k, ip); err != nil {
			return
		}
		ε.MulVec(B, u)
		s := msolid.NewState(6)
		for i := 0; i < 6; i++ {
			s.Eps[i] = ε.AtVec(i)
		}
		if err = o.Mdl.Update(s, s.Eps); err != nil {
			return nil, chk.Err("element %d: ip %d:\n%v", o.Eid, k, err)
		}
		res.Eps = append(res.Eps, s.Eps)
		res.Sig = append(res.Sig, s.Sig)
		res.Vm = append(res.Vm, msolid.VonMises(s.Sig))
	}
	res.Nodal = alloc(len(o.Vids), 6)
	for m := range o.Vids {
		for k := range o.Ips {
			for i := 0; i < 6; i++ {
				res.Nodal[m][i] += o.Emat[m][k] * res.Sig[k][i]
			}
		}
	}
	return
}

// DistLoad computes nodal loads due to face pressure ("P") or body forces ("GRAV", "BX", "BY", "BZ")
//  Note: positive pressure acts against the outward normal of the face
func (o *Solid) DistLoad(dl *inp.Dload) (fe []float64, err error) {
	fe = make([]float64, o.Nu)
	if dl.Kind == "P" {
		idx := dl.Face - 1
		if idx < 0 || idx >= len(o.Shp.FaceLocalVerts) {
			return nil, &ConnectivityError{Eid: o.Eid, Msg: io.Sf("face %d is invalid; %s has faces 1 to %d", dl.Face, o.Typ, len(o.Shp.FaceLocalVerts))}
		}
		nipf := 4
		switch o.Shp.FaceType {
		case "qua8":
			nipf = 9
		case "tri3", "tri6":
			nipf = 3
		}
		ipsf, err := shp.GetIps(o.Shp.FaceType, nipf)
		if err != nil {
			return nil, err
		}
		for _, ipf := range ipsf {
			if err = o.Shp.CalcAtFaceIp(o.X, ipf, idx); err != nil {
				return nil, chk.Err("element %d:\n%v", o.Eid, err)
			}
			for k, n := range o.Shp.FaceLocalVerts[idx] {
				coef := dl.Value * o.Shp.Sf[k] * ipf.W()
				for i := 0; i < 3; i++ {
					fe[3*n+i] += coef * o.Shp.Fnvec[i]
				}
			}
		}
		return fe, nil
	}
	b, err := bodyForce(dl, o.Eid, o.Ela, o.Mat)
	if err != nil {
		return
	}
	for k, ip := range o.IpsM {
		if err = o.Shp.CalcAtIp(o.X, ip, true); err != nil {
			return nil, shapeErr(o.Eid, k, o.Shp, err)
		}
		coef := o.Shp.J * ip.W()
		for m := range o.Vids {
			for i := 0; i < 3; i++ {
				fe[3*m+i] += coef * o.Shp.S[m] * b[i]
			}
		}
	}
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// ipB computes the strain-displacement matrix at integration point
//  ε = {εxx, εyy, εzz, γxy, γyz, γzx} = B u
func (o *Solid) ipB(B *mat.Dense, k int, ip shp.Ipoint) (err error) {
	if err = o.Shp.CalcAtIp(o.X, ip, true); err != nil {
		return shapeErr(o.Eid, k, o.Shp, err)
	}
	G := o.Shp.G
	for m := range o.Vids {
		c := 3 * m
		B.Set(0, c+0, G[m][0])
		B.Set(1, c+1, G[m][1])
		B.Set(2, c+2, G[m][2])
		B.Set(3, c+0, G[m][1])
		B.Set(3, c+1, G[m][0])
		B.Set(4, c+1, G[m][2])
		B.Set(4, c+2, G[m][1])
		B.Set(5, c+0, G[m][2])
		B.Set(5, c+2, G[m][0])
	}
	return
}

// addHourglass adds the Flanagan-Belytschko stiffness stabilisation of one-point hexahedra
//  γα = (hα - (hα·xi) bi) / 8   with  h = {rs, st, tr, rst} @ nodes  and  bi = dS/dxi @ centre
//  Kα[3m+i][3n+i] += κ Σα γα[m] γα[n]   with  κ = 8 ε (λ+2μ) V (Σi bi·bi) / 3
//  Note: γα are orthogonal to rigid-body and linear displacement fields
func (o *Solid) addHourglass(K *mat.Dense) (err error) {
	nn := len(o.Vids)
	if err = o.Shp.CalcAtIp(o.X, shp.Ipoint{0, 0, 0, 8}, true); err != nil {
		return shapeErr(o.Eid, 0, o.Shp, err)
	}
	V := 8.0 * o.Shp.J
	bb := 0.0
	for m := 0; m < nn; m++ {
		for i := 0; i < 3; i++ {
			bb += o.Shp.G[m][i] * o.Shp.G[m][i]
		}
	}
	nc := o.Shp.NatCoords
	γ := alloc(4, nn)
	for m := 0; m < nn; m++ {
		r, s, t := nc[0][m], nc[1][m], nc[2][m]
		γ[0][m], γ[1][m], γ[2][m], γ[3][m] = r*s, s*t, t*r, r*s*t
	}
	for α := 0; α < 4; α++ {
		hx := []float64{0, 0, 0}
		for i := 0; i < 3; i++ {
			for m := 0; m < nn; m++ {
				hx[i] += γ[α][m] * o.X[i][m]
			}
		}
		for m := 0; m < nn; m++ {
			v := γ[α][m]
			for i := 0; i < 3; i++ {
				v -= hx[i] * o.Shp.G[m][i]
			}
			γ[α][m] = v / 8.0
		}
	}
	λ2μ := o.D.At(0, 0)
	κ := 8.0 * HOURGLASS_EPS * λ2μ * V * bb / 3.0
	for m := 0; m < nn; m++ {
		for n := 0; n < nn; n++ {
			v := 0.0
			for α := 0; α < 4; α++ {
				v += γ[α][m] * γ[α][n]
			}
			for i := 0; i < 3; i++ {
				K.Set(3*m+i, 3*n+i, K.At(3*m+i, 3*n+i)+κ*v)
			}
		}
	}
	return
}

// newSmallModel allocates the constitutive model of a material
func newSmallModel(eid int, matdata *inp.Material) (mdl msolid.Small, err error) {
	name := matdata.Model
	if name == "" {
		name = "lin-elast"
	}
	mdl, err = msolid.NewSmall(name, matdata.Prms)
	if err != nil {
		return nil, &MaterialError{Eid: eid, Mat: matdata.Name, Msg: err.Error()}
	}
	return
}
