// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/aecs4u/calculix-sub000/inp"
	"github.com/aecs4u/calculix-sub000/shp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// Elem defines what elements must calculate
//  Note: local DOFs are ordered node by node; i.e. ue[m*DofsPerNode()+i]
type Elem interface {
	Id() int                                    // returns the cell Id
	Verts() []int                               // returns the ordered node ids
	NodeCount() int                             // returns the number of nodes
	DofsPerNode() int                           // returns the number of DOFs per node
	Stiffness() (K *mat.Dense, err error)       // computes the element stiffness matrix in global axes
	Mass() (M *mat.Dense, err error)            // computes the consistent element mass matrix in global axes
	Stresses(ue []float64) (*ElemStress, error) // computes strains and stresses for given element displacements
}

// ElemNonlinear defines elements with a displacement-dependent internal force
type ElemNonlinear interface {
	Elem
	Tangent(ue []float64) (Kt *mat.Dense, fint []float64, err error) // computes tangent matrix and internal forces
}

// ElemLoader defines elements converting distributed loads into nodal loads
type ElemLoader interface {
	Elem
	DistLoad(dl *inp.Dload) (fe []float64, err error) // computes statically equivalent nodal loads
}

// ElemStress holds strains and stresses of one element
//  Note: components follow the Voigt order {xx, yy, zz, xy, yz, zx}; see each element for axes
type ElemStress struct {
	Eid    int         `json:"eid" yaml:"eid"`                           // element id
	Type   string      `json:"type" yaml:"type"`                         // type tag
	X      [][]float64 `json:"x" yaml:"x"`                               // real coordinates of stress points [npts][3]
	Sig    [][]float64 `json:"sig" yaml:"sig"`                           // stresses at stress points [npts][6]
	Eps    [][]float64 `json:"eps" yaml:"eps"`                           // strains at stress points [npts][6]
	Vm     []float64   `json:"vm" yaml:"vm"`                             // von Mises stress at stress points [npts]
	Nodal  [][]float64 `json:"nodal,omitempty" yaml:"nodal,omitempty"`   // stresses extrapolated to nodes [nverts][6]
	Forces []float64   `json:"forces,omitempty" yaml:"forces,omitempty"` // section forces (trusses and beams)
}

// VmMax returns the maximum von Mises stress
func (o *ElemStress) VmMax() (res float64) {
	for _, v := range o.Vm {
		if v > res {
			res = v
		}
	}
	return
}

// ElemOpts holds options for allocating elements
type ElemOpts struct {
	Nlgeom bool // geometric nonlinearity in elements supporting it
}

// ElemData holds all data required to allocate an element
type ElemData struct {
	Cell *inp.Cell     // the cell structure
	X    [][]float64   // matrix of nodal coordinates [3][nverts]
	Mat  *inp.Material // material
	Sect *inp.Section  // cross-section (trusses, beams and shells); nil for solids
	Opts ElemOpts      // options
}

// Info holds information about a type of element
type Info struct {
	Dpn    int    // number of DOFs per node
	Nverts int    // number of nodes
	Geo    string // geometry type of shape functions; e.g. "hex8"
	Sect   bool   // requires a cross-section
	Nlgeom bool   // supports geometric nonlinearity
}

// GetElemInfo returns information about a type of element
func GetElemInfo(cellType string) (info *Info, err error) {
	infogetter, ok := infogetters[cellType]
	if !ok {
		return nil, &UnsupportedElementError{Type: cellType}
	}
	return infogetter(), nil
}

// NewElem returns a new element for a cell of the model
func NewElem(cell *inp.Cell, mdl *inp.Model, opts ElemOpts) (ele Elem, err error) {

	// info and allocator
	infogetter, ok := infogetters[cell.Type]
	if !ok {
		return nil, &UnsupportedElementError{Eid: cell.Id, Type: cell.Type}
	}
	allocator, ok := eallocators[cell.Type]
	if !ok {
		return nil, &UnsupportedElementError{Eid: cell.Id, Type: cell.Type}
	}
	info := infogetter()

	// connectivity
	if len(cell.Verts) != info.Nverts {
		return nil, &ConnectivityError{Eid: cell.Id, Msg: io.Sf("type %q requires %d nodes but %d were given", cell.Type, info.Nverts, len(cell.Verts))}
	}
	seen := make(map[int]bool, len(cell.Verts))
	for _, v := range cell.Verts {
		if seen[v] {
			return nil, &ConnectivityError{Eid: cell.Id, Node: v, Msg: io.Sf("node %d is repeated", v)}
		}
		seen[v] = true
		if _, ok := mdl.NodeMap[v]; !ok {
			return nil, &ConnectivityError{Eid: cell.Id, Node: v, Msg: io.Sf("node %d does not exist", v)}
		}
	}
	x, err := mdl.CellCoords(cell)
	if err != nil {
		return nil, &ConnectivityError{Eid: cell.Id, Msg: err.Error()}
	}

	// material
	matdata := mdl.Mats.Get(cell.Mat)
	if matdata == nil {
		return nil, &MaterialError{Eid: cell.Id, Mat: cell.Mat}
	}
	if ok, missing := matdata.Has("E", "nu"); !ok {
		return nil, &MaterialError{Eid: cell.Id, Mat: cell.Mat, Prm: missing}
	}

	// section
	var sect *inp.Section
	if info.Sect {
		sect = mdl.Sects.Get(cell.Sect)
		if sect == nil {
			return nil, chk.Err("element %d: section %q is not defined", cell.Id, cell.Sect)
		}
	}

	// allocate
	ele, err = allocator(&ElemData{Cell: cell, X: x, Mat: matdata, Sect: sect, Opts: opts})
	if err != nil {
		return nil, err
	}
	return
}

// infogetters holds all available element types; type => infogetter
var infogetters = make(map[string]func() *Info)

// eallocators holds all available element types; type => eallocator
var eallocators = make(map[string]func(dat *ElemData) (Elem, error))

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// elastic holds elastic constants of an element's material
type elastic struct {
	E      float64 // Young's modulus
	Nu     float64 // Poisson's coefficient
	G      float64 // shear modulus
	Rho    float64 // density
	hasRho bool    // density was given
}

// getElastic reads elastic constants from material
func getElastic(matdata *inp.Material) (o elastic) {
	v, _ := matdata.Prms.GetValues("E", "nu")
	o.E, o.Nu = v[0], v[1]
	o.G = o.E / (2.0 * (1.0 + o.Nu))
	if p := matdata.Prms.Find("rho"); p != nil {
		o.Rho, o.hasRho = p.V, true
	}
	return
}

// rho returns the density or a MaterialError if missing
func (o elastic) rho(eid int, matname string) (float64, error) {
	if !o.hasRho {
		return 0, &MaterialError{Eid: eid, Mat: matname, Prm: "rho"}
	}
	return o.Rho, nil
}

// shapeErr converts an error from shape computations at an integration point into a GeometryError
func shapeErr(eid, ip int, sh *shp.Shape, err error) error {
	if sh.J <= 0 {
		return &GeometryError{Eid: eid, Ip: ip, DetJ: sh.J}
	}
	return chk.Err("element %d: shape computation failed at integration point %d:\n%v", eid, ip, err)
}

// ipCoords returns the real coordinates of integration points [nip][3]
func ipCoords(sh *shp.Shape, x [][]float64, ips []shp.Ipoint) (res [][]float64) {
	res = make([][]float64, len(ips))
	for k, ip := range ips {
		y := sh.IpRealCoords(x, ip)
		for len(y) < 3 {
			y = append(y, 0)
		}
		res[k] = y
	}
	return
}

// matVec computes y = a * x
func matVec(a *mat.Dense, x []float64) (y []float64) {
	m, n := a.Dims()
	y = make([]float64, m)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			y[i] += a.At(i, j) * x[j]
		}
	}
	return
}

// alloc allocates a matrix [m][n]
func alloc(m, n int) (a [][]float64) {
	a = make([][]float64, m)
	for i := range a {
		a[i] = make([]float64, n)
	}
	return
}
