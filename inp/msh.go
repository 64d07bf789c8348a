// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Node holds node data
type Node struct {
	Id int       `json:"id" yaml:"id"` // id (1-based)
	X  []float64 `json:"x" yaml:"x"`   // coordinates (size==3 after Init)
}

// Cell holds element data as given by the model; i.e. before a formulation is attached
type Cell struct {
	Id    int    `json:"id" yaml:"id"`       // id (1-based)
	Type  string `json:"type" yaml:"type"`   // type tag; e.g. "C3D8", "B31", "S4R"
	Verts []int  `json:"verts" yaml:"verts"` // ordered node ids
	Mat   string `json:"mat" yaml:"mat"`     // material name
	Sect  string `json:"sect" yaml:"sect"`   // section name (trusses, beams and shells)
}

// Mesh holds nodes and cells
type Mesh struct {

	// input
	Nodes []*Node `json:"nodes" yaml:"nodes"` // nodes
	Cells []*Cell `json:"cells" yaml:"cells"` // cells

	// derived
	NodeMap   map[int]*Node    `json:"-" yaml:"-"` // node id => node
	CellMap   map[int]*Cell    `json:"-" yaml:"-"` // cell id => cell
	MaxNodeId int              `json:"-" yaml:"-"` // largest node id
	Type2ids  map[string][]int `json:"-" yaml:"-"` // cell type => sorted cell ids
	Xmin      []float64        `json:"-" yaml:"-"` // min coordinates
	Xmax      []float64        `json:"-" yaml:"-"` // max coordinates
}

// Init checks input data and computes derived data
func (o *Mesh) Init() (err error) {

	// check
	if len(o.Nodes) < 1 {
		return chk.Err("mesh must have at least one node")
	}
	if len(o.Cells) < 1 {
		return chk.Err("mesh must have at least one cell")
	}

	// nodes
	o.NodeMap = make(map[int]*Node, len(o.Nodes))
	o.MaxNodeId = 0
	o.Xmin = []float64{0, 0, 0}
	o.Xmax = []float64{0, 0, 0}
	for k, n := range o.Nodes {
		if n.Id < 1 {
			return chk.Err("node ids must be positive (1-based). id=%d is invalid", n.Id)
		}
		if _, dup := o.NodeMap[n.Id]; dup {
			return chk.Err("node id=%d is duplicated", n.Id)
		}
		nd := len(n.X)
		if nd < 1 || nd > 3 {
			return chk.Err("node %d: number of coordinates must be 1, 2 or 3. %d is invalid", n.Id, nd)
		}
		for len(n.X) < 3 {
			n.X = append(n.X, 0)
		}
		o.NodeMap[n.Id] = n
		if n.Id > o.MaxNodeId {
			o.MaxNodeId = n.Id
		}
		for i := 0; i < 3; i++ {
			if k == 0 || n.X[i] < o.Xmin[i] {
				o.Xmin[i] = n.X[i]
			}
			if k == 0 || n.X[i] > o.Xmax[i] {
				o.Xmax[i] = n.X[i]
			}
		}
	}

	// cells
	o.CellMap = make(map[int]*Cell, len(o.Cells))
	o.Type2ids = make(map[string][]int)
	for _, c := range o.Cells {
		if c.Id < 1 {
			return chk.Err("cell ids must be positive (1-based). id=%d is invalid", c.Id)
		}
		if _, dup := o.CellMap[c.Id]; dup {
			return chk.Err("cell id=%d is duplicated", c.Id)
		}
		o.CellMap[c.Id] = c
		o.Type2ids[c.Type] = append(o.Type2ids[c.Type], c.Id)
	}
	for _, ids := range o.Type2ids {
		sort.Ints(ids)
	}
	return
}

// CellCoords returns the matrix of coordinates of a cell [3][nverts]
//  Note: returns an error if a vertex is not found
func (o *Mesh) CellCoords(c *Cell) (x [][]float64, err error) {
	x = [][]float64{
		make([]float64, len(c.Verts)),
		make([]float64, len(c.Verts)),
		make([]float64, len(c.Verts)),
	}
	for m, v := range c.Verts {
		n, ok := o.NodeMap[v]
		if !ok {
			return nil, chk.Err("cell %d references unknown node %d", c.Id, v)
		}
		for i := 0; i < 3; i++ {
			x[i][m] = n.X[i]
		}
	}
	return
}

// String returns a JSON representation of *Node
func (o *Node) String() string {
	l := io.Sf("{\"id\":%4d, \"x\":[", o.Id)
	for i, x := range o.X {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%23.15e", x)
	}
	l += "] }"
	return l
}

// String returns a JSON representation of *Cell
func (o *Cell) String() string {
	l := io.Sf("{\"id\":%d, \"type\":%q, \"mat\":%q, \"sect\":%q, \"verts\":[", o.Id, o.Type, o.Mat, o.Sect)
	for i, x := range o.Verts {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%d", x)
	}
	l += "] }"
	return l
}

// String returns a JSON representation of *Mesh
func (o Mesh) String() string {
	l := "{\n  \"nodes\" : [\n"
	for i, x := range o.Nodes {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", x)
	}
	l += "\n  ],\n  \"cells\" : [\n"
	for i, x := range o.Cells {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", x)
	}
	l += "\n  ]\n}"
	return l
}
