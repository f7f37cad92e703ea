// Copyright 2026 The Mechanical-Testing Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// RawColumns converts a stress-strain curve into the three raw columns of a
// test record, inverting the curve construction performed by the analysis:
//
//    displacement = ε・length      force = σ・A       A = π・d²/4
//
// time is uniformly spaced in [0, tf]. Useful to feed synthetic curves into
// the full pipeline.
func RawColumns(ε, σ []float64, length, diameter, tf float64) (time, disp, force []float64) {
	area := math.Pi * diameter * diameter / 4.0
	n := len(ε)
	time = utl.LinSpace(0, tf, n)
	disp = make([]float64, n)
	force = make([]float64, n)
	for i := 0; i < n; i++ {
		disp[i] = ε[i] * length
		force[i] = σ[i] * area
	}
	return
}
