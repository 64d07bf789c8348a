// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"sort"
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

func shapeNames() (names []string) {
	for name := range factory {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

func Test_shape01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape01. Kronecker delta, partition of unity and dSdR")

	verb := chk.Verbose
	for _, name := range shapeNames() {
		shape := factory[name]

		io.Pfyel("--------------------------------- %-6s---------------------------------\n", name)

		// check S
		CheckShape(tst, shape, 1e-15, verb)

		// check Sf
		CheckShapeFace(tst, shape, 1e-15, verb)

		// check partition of unity and dSdR at several points
		points := [][]float64{{0, 0, 0}, {0.1, 0.2, 0.3}, {-0.3, 0.25, -0.7}}
		if shape.Class == "tri" || shape.Class == "tet" {
			points = [][]float64{{0.25, 0.25, 0.25}, {0.1, 0.2, 0.3}, {0.6, 0.1, 0.05}}
		}
		for _, r := range points {
			CheckPartition(tst, shape, r, 1e-10, verb)
			CheckDSdR(tst, shape, r, 1e-9, verb)
		}
	}
}

func Test_shape02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape02. Jacobian and dSdx")

	xmat := [][]float64{
		{10, 13, 13, 10},
		{8, 8, 9, 9},
	}
	dx, dy := 3.0, 1.0
	dr, ds := 2.0, 2.0
	r := []float64{0, 0, 0}
	shape := Get("qua4", 1)
	err := shape.CalcAtIp(xmat, r, true)
	if err != nil {
		tst.Errorf("CalcAtIp failed:\n%v", err)
		return
	}
	io.Pforan("J = %v\n", shape.J)
	chk.Float64(tst, "J", 1e-15, shape.J, (dx/dr)*(dy/ds))

	x := []float64{12.0, 8.5}
	CheckDSdx(tst, shape, xmat, x, 1e-6, chk.Verbose)

	// distorted hex8
	xhex := [][]float64{
		{0, 2, 2.2, 0.1, 0, 2, 2.1, 0.2},
		{0, 0, 1.9, 2, 0.1, 0, 2, 2.1},
		{0, 0.1, 0, 0, 1.5, 1.6, 1.5, 1.4},
	}
	hex := Get("hex8", 1)
	CheckDSdx(tst, hex, xhex, []float64{1.1, 0.9, 0.7}, 1e-6, chk.Verbose)
}

func Test_shape03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape03. inverted element")

	// swap top and bottom faces of unit cube
	x := [][]float64{
		{0, 1, 1, 0, 0, 1, 1, 0},
		{0, 0, 1, 1, 0, 0, 1, 1},
		{1, 1, 1, 1, 0, 0, 0, 0},
	}
	hex := Get("hex8", 1)
	err := hex.CalcAtIp(x, []float64{0, 0, 0}, true)
	if err == nil {
		tst.Errorf("CalcAtIp should have failed on inverted element\n")
		return
	}
	io.Pforan("%v\n", err)
	chk.Float64(tst, "J", 1e-15, hex.J, -1.0/8.0)
}

func Test_ips01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ips01. integration points")

	// sum of weights == measure of reference geometry
	measure := map[string]float64{"lin": 2, "qua": 4, "hex": 8, "tri": 0.5, "tet": 1.0 / 6.0}
	for key, ips := range ipsfactory {
		class := key[:3]
		sum := 0.0
		for _, ip := range ips {
			sum += ip.W()
		}
		chk.Float64(tst, key, 1e-14, sum, measure[class])
	}

	// ∫∫∫ r² s² t² dV over [-1,1]³ = (2/3)³ with 2×2×2 points
	ips, err := GetIps("hex8", 8)
	if err != nil {
		tst.Errorf("GetIps failed:\n%v", err)
		return
	}
	res := 0.0
	for _, ip := range ips {
		res += ip[0] * ip[0] * ip[1] * ip[1] * ip[2] * ip[2] * ip.W()
	}
	chk.Float64(tst, "∫r²s²t²", 1e-15, res, 8.0/27.0)

	// ∫ r⁴ dr over [-1,1] = 2/5 with 3 points
	ips, _ = GetIps("lin", 3)
	res = 0.0
	for _, ip := range ips {
		res += math.Pow(ip[0], 4) * ip.W()
	}
	chk.Float64(tst, "∫r⁴", 1e-15, res, 0.4)

	// ∫ r² dV over reference tet = 1/60 with 4 points
	ips, _ = GetIps("tet10", 4)
	res = 0.0
	for _, ip := range ips {
		res += ip[0] * ip[0] * ip.W()
	}
	chk.Float64(tst, "∫r² tet", 1e-15, res, 1.0/60.0)

	_, err = GetIps("hex20", 7)
	if err == nil {
		tst.Errorf("GetIps should have failed\n")
	}
	io.Pforan("%v\n", err)
}

func Test_extrap01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("extrap01. extrapolation from integration points to nodes")

	// linear field is reproduced
	field := func(x []float64) float64 { return 1.0 + 2.0*x[0] - 3.0*x[1] + 0.5*x[2] }
	for _, tc := range []struct {
		geo string
		nip int
	}{{"hex8", 8}, {"hex20", 27}, {"hex20", 8}, {"tet10", 4}, {"qua8", 4}} {
		shape := Get(tc.geo, 1)
		ips, err := GetIps(tc.geo, tc.nip)
		if err != nil {
			tst.Errorf("GetIps failed:\n%v", err)
			return
		}
		E := matAlloc(shape.Nverts, tc.nip)
		err = shape.Extrapolator(E, ips)
		if err != nil {
			tst.Errorf("Extrapolator failed:\n%v", err)
			return
		}
		vip := make([]float64, tc.nip)
		for k, ip := range ips {
			vip[k] = field(ip)
		}
		for m := 0; m < shape.Nverts; m++ {
			r := []float64{0, 0, 0}
			for i := 0; i < shape.Gndim; i++ {
				r[i] = shape.NatCoords[i][m]
			}
			vm := 0.0
			for k := 0; k < tc.nip; k++ {
				vm += E[m][k] * vip[k]
			}
			chk.Float64(tst, io.Sf("%s(%d) @ %d", tc.geo, tc.nip, m), 1e-12, vm, field(r))
		}
	}

	// a single point gives constant values
	shape := Get("hex8", 1)
	ips, _ := GetIps("hex8", 1)
	E := matAlloc(8, 1)
	err := shape.Extrapolator(E, ips)
	if err != nil {
		tst.Errorf("Extrapolator failed:\n%v", err)
		return
	}
	for m := 0; m < 8; m++ {
		chk.Float64(tst, "E", 1e-14, E[m][0], 1)
	}
}

func Test_face01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("face01. face normals and areas")

	x := [][]float64{
		{0, 2, 2, 0, 0, 2, 2, 0},
		{0, 0, 3, 3, 0, 0, 3, 3},
		{0, 0, 0, 0, 4, 4, 4, 4},
	}
	hex := Get("hex8", 1)
	ips, _ := GetIps("qua", 4)
	areas := []float64{6, 6, 8, 12, 8, 12}
	inward := [][]float64{{0, 0, 1}, {0, 0, -1}, {0, 1, 0}, {-1, 0, 0}, {0, -1, 0}, {1, 0, 0}}
	for f := 0; f < 6; f++ {
		n := []float64{0, 0, 0}
		for _, ip := range ips {
			err := hex.CalcAtFaceIp(x, ip, f)
			if err != nil {
				tst.Errorf("CalcAtFaceIp failed:\n%v", err)
				return
			}
			for i := 0; i < 3; i++ {
				n[i] += hex.Fnvec[i] * ip.W()
			}
		}
		for i := 0; i < 3; i++ {
			n[i] /= areas[f]
		}
		chk.Array(tst, io.Sf("face %d", f), 1e-14, n, inward[f])
	}
}

func Test_race01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("race01. copies of shapes in goroutines")

	nchan := 4
	done := make(chan float64, nchan)

	shapes := make([]*Shape, nchan)
	for i := 0; i < nchan; i++ {
		shapes[i] = Get("tri3", i+1)
	}

	for i := 0; i < nchan; i++ {
		go func(shape *Shape, scale float64) {
			shape.CalcAtIp([][]float64{
				{0, scale, 0},
				{0, 0, scale},
			}, []float64{0.5, 0.5, 0}, true)
			done <- shape.J
		}(shapes[i], float64(i+1))
	}

	sum := 0.0
	for i := 0; i < nchan; i++ {
		sum += <-done
	}
	chk.Float64(tst, "ΣJ", 1e-15, sum, 1+4+9+16)
}
