// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_state01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state01")

	state0 := NewState(6)
	io.Pforan("state0 = %+v\n", state0)
	chk.Array(tst, "sig", 1.0e-17, state0.Sig, []float64{0, 0, 0, 0, 0, 0})
	chk.Array(tst, "eps0", 1.0e-17, state0.Eps0, []float64{0, 0, 0, 0, 0, 0})

	state0.Sig[0] = 10.0
	state0.Sig[1] = 11.0
	state0.Sig[2] = 12.0
	state0.Sig[3] = 13.0
	state0.Eps[5] = 20.0
	chk.Array(tst, "sig", 1.0e-17, state0.Sig, []float64{10, 11, 12, 13, 0, 0})
	chk.Array(tst, "eps", 1.0e-17, state0.Eps, []float64{0, 0, 0, 0, 0, 20})
}
