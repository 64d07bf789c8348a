// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

// DofTable holds the DOF-allocation table
//  Note: every node reserves MaxDpn global slots:
//        global index = (node_id - 1) * MaxDpn + local_dof    (local_dof is 0-based)
type DofTable struct {
	MaxDpn  int     // max number of DOFs per node over all elements
	Nnodes  int     // number of node slots == max node id
	Ndofs   int     // total number of DOFs == Nnodes * MaxDpn
	Exists  []bool  // [Nnodes] node id is defined in the mesh; ids may have gaps
	NodeDpn []int   // [Nnodes] max number of DOFs per node used by the elements touching each node
	Used    []bool  // [Ndofs] DOF is used by at least one element
	Umaps   [][]int // [nelems] assembly maps (location arrays)
}

// NewDofTable builds the DOF-allocation table
func NewDofTable(elems []Elem, nodeIds []int) (o *DofTable) {
	o = new(DofTable)
	for _, id := range nodeIds {
		if id > o.Nnodes {
			o.Nnodes = id
		}
	}
	o.Exists = make([]bool, o.Nnodes)
	for _, id := range nodeIds {
		o.Exists[id-1] = true
	}
	for _, e := range elems {
		if e.DofsPerNode() > o.MaxDpn {
			o.MaxDpn = e.DofsPerNode()
		}
	}
	o.Ndofs = o.Nnodes * o.MaxDpn
	o.NodeDpn = make([]int, o.Nnodes)
	o.Used = make([]bool, o.Ndofs)
	o.Umaps = make([][]int, len(elems))
	for k, e := range elems {
		dpn := e.DofsPerNode()
		umap := make([]int, 0, dpn*e.NodeCount())
		for _, v := range e.Verts() {
			if dpn > o.NodeDpn[v-1] {
				o.NodeDpn[v-1] = dpn
			}
			for i := 0; i < dpn; i++ {
				I := o.Index(v, i)
				umap = append(umap, I)
				o.Used[I] = true
			}
		}
		o.Umaps[k] = umap
	}
	return
}

// Index returns the global index of a local DOF (0-based) at node
func (o *DofTable) Index(nodeId, ldof int) int {
	return (nodeId-1)*o.MaxDpn + ldof
}

// NodeDof returns the node id and local DOF (0-based) of a global index
func (o *DofTable) NodeDof(I int) (nodeId, ldof int) {
	return I/o.MaxDpn + 1, I % o.MaxDpn
}

// Gather extracts the element displacements from the global vector
func (o *DofTable) Gather(k int, u []float64) (ue []float64) {
	ue = make([]float64, len(o.Umaps[k]))
	for i, I := range o.Umaps[k] {
		ue[i] = u[I]
	}
	return
}

// Unused returns the DOFs of existent nodes not used by any element
func (o *DofTable) Unused() (res []int) {
	for I, used := range o.Used {
		if !used && o.Exists[I/o.MaxDpn] {
			res = append(res, I)
		}
	}
	return
}

// Phantom returns the DOFs reserved for node ids missing from the mesh (gaps in numbering)
func (o *DofTable) Phantom() (res []int) {
	for I := 0; I < o.Ndofs; I++ {
		if !o.Exists[I/o.MaxDpn] {
			res = append(res, I)
		}
	}
	return
}

// Orphan tells whether a node exists but no element touches it
func (o *DofTable) Orphan(nodeId int) bool {
	return o.Exists[nodeId-1] && o.NodeDpn[nodeId-1] == 0
}
