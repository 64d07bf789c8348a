// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/cpmech/gosl/io"

// hints attached to SingularSystemError
const (
	HINT_UNUSED_DOF = "unconstrained unused DOF at mixed-element node"
	HINT_ORPHAN     = "node is not connected to any element"
	HINT_RIGID_BODY = "missing rigid-body restraint"
)

// ConnectivityError reports a node-count/type mismatch, an unknown node or an invalid DOF number
type ConnectivityError struct {
	Eid  int    // element id (0 if not related to an element)
	Node int    // node id (0 if not related to a node)
	Msg  string // description
}

func (o *ConnectivityError) Error() string {
	switch {
	case o.Eid > 0:
		return io.Sf("connectivity error in element %d: %s", o.Eid, o.Msg)
	case o.Node > 0:
		return io.Sf("connectivity error at node %d: %s", o.Node, o.Msg)
	}
	return io.Sf("connectivity error: %s", o.Msg)
}

// GeometryError reports a non-positive Jacobian determinant (inverted or degenerate element)
type GeometryError struct {
	Eid  int     // element id
	Ip   int     // index of integration point
	DetJ float64 // determinant of Jacobian
}

func (o *GeometryError) Error() string {
	return io.Sf("geometry error in element %d: non-positive Jacobian determinant at integration point %d: det(J)=%g", o.Eid, o.Ip, o.DetJ)
}

// MaterialError reports a missing material or a missing/invalid material property
type MaterialError struct {
	Eid int    // element id
	Mat string // material name
	Prm string // name of missing property; empty if the material itself is missing
	Msg string // extra description
}

func (o *MaterialError) Error() string {
	switch {
	case o.Prm != "":
		return io.Sf("material error in element %d: material %q is missing property %q", o.Eid, o.Mat, o.Prm)
	case o.Msg != "":
		return io.Sf("material error in element %d: material %q: %s", o.Eid, o.Mat, o.Msg)
	}
	return io.Sf("material error in element %d: material %q is not defined", o.Eid, o.Mat)
}

// UnsupportedElementError reports a type tag without formulation
type UnsupportedElementError struct {
	Eid  int    // element id
	Type string // type tag
}

func (o *UnsupportedElementError) Error() string {
	return io.Sf("element %d: type %q is not supported", o.Eid, o.Type)
}

// SingularSystemError reports a non-invertible reduced system
type SingularSystemError struct {
	Dof  int    // global DOF index; -1 if unknown
	Node int    // node id; 0 if unknown
	Ldof int    // local DOF number (1-based); 0 if unknown
	Hint string // likely cause
	Msg  string // extra description
}

func (o *SingularSystemError) Error() string {
	l := "singular system"
	if o.Dof >= 0 && o.Node > 0 {
		l += io.Sf(" at DOF %d (node %d, dof %d)", o.Dof, o.Node, o.Ldof)
	}
	if o.Msg != "" {
		l += ": " + o.Msg
	}
	if o.Hint != "" {
		l += " [hint: " + o.Hint + "]"
	}
	return l
}

// ConvergenceError reports an iterative procedure that exhausted its budget or diverged
type ConvergenceError struct {
	What     string  // procedure; e.g. "Newton-Raphson", "conjugate gradients"
	Iters    int     // number of iterations performed
	Residual float64 // last residual measure
	Msg      string  // extra description
}

func (o *ConvergenceError) Error() string {
	l := io.Sf("%s did not converge after %d iterations (residual=%g)", o.What, o.Iters, o.Residual)
	if o.Msg != "" {
		l += ": " + o.Msg
	}
	return l
}
