// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

// Stresses computes the stresses of all elements for global displacements u
func (o *Assembler) Stresses(u []float64) (res []*ElemStress, err error) {
	res = make([]*ElemStress, len(o.Elems))
	err = o.compute(func(k int, e Elem) (err error) {
		res[k], err = e.Stresses(o.Dofs.Gather(k, u))
		return
	})
	if err != nil {
		return nil, err
	}
	return
}

// AverageNodal averages the nodal stresses of all elements sharing each node
//  Note: only elements reporting nodal stresses (solids) take part; all in global axes
func AverageNodal(stresses []*ElemStress, elems []Elem) (nodal map[int][]float64) {
	nodal = make(map[int][]float64)
	count := make(map[int]int)
	for k, s := range stresses {
		if s == nil || s.Nodal == nil {
			continue
		}
		for m, v := range elems[k].Verts() {
			if _, ok := nodal[v]; !ok {
				nodal[v] = make([]float64, 6)
			}
			for i := 0; i < 6; i++ {
				nodal[v][i] += s.Nodal[m][i]
			}
			count[v]++
		}
	}
	for v, sig := range nodal {
		for i := 0; i < 6; i++ {
			sig[i] /= float64(count[v])
		}
	}
	return
}
