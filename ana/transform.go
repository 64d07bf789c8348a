// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "math"

// PolarStresses rotates the in-plane components of a stress state about the z-axis
//  σ -- Voigt components {σxx, σyy, σzz, σxy, σyz, σzx} at (x, y); only xx, yy and xy are used
//  r, sr, st, srt -- radius and the radial, hoop and shear components
func PolarStresses(x, y float64, σ []float64) (r, sr, st, srt float64) {
	r = math.Sqrt(x*x + y*y)
	c, s := cosSin(x, y)
	cc, ss, cs := c*c, s*s, c*s
	sr = cc*σ[0] + ss*σ[1] + 2.0*cs*σ[3]
	st = ss*σ[0] + cc*σ[1] - 2.0*cs*σ[3]
	srt = cs*(σ[1]-σ[0]) + (cc-ss)*σ[3]
	return
}

// CartesianStresses is the inverse of PolarStresses for the in-plane components
func CartesianStresses(x, y, sr, st, srt float64) (sx, sy, sxy float64) {
	c, s := cosSin(x, y)
	cc, ss, cs := c*c, s*s, c*s
	sx = cc*sr + ss*st - 2.0*cs*srt
	sy = ss*sr + cc*st + 2.0*cs*srt
	sxy = cs*(sr-st) + (cc-ss)*srt
	return
}

// cosSin returns the cosine and sine of the polar angle of (x, y)
func cosSin(x, y float64) (c, s float64) {
	β := math.Atan2(y, x)
	return math.Cos(β), math.Sin(β)
}
