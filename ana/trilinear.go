// Copyright 2026 The Mechanical-Testing Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/lucasguesserts/mechanical-testing/prm"
)

// TrilinearCurve computes an engineering stress-strain curve made of three
// straight segments: elastic up to (ε1,σ1), hardening up to (ε2,σ2) and
// softening down to (ε3,σ3):
//
//    σ1 ────────●──────●  σ2
//              ╱        ╲
//             ╱          ╲ σ3
//            ╱ E = σ1/ε1
//           0
//
// All key values are hand-computable: the elastic slope is σ1/ε1, the maximum
// load point is (ε2,σ2) and areas under the curve are sums of trapezoids.
type TrilinearCurve struct {

	// input
	Eps1, Sig1 float64 // end of the elastic segment
	Eps2, Sig2 float64 // end of the hardening segment (maximum load)
	Eps3, Sig3 float64 // fracture point

	// derived
	E float64 // elastic slope
}

// Init initialises the curve with parameters "eps1".."eps3" and "sig1".."sig3"
func (o *TrilinearCurve) Init(prms prm.Params) {
	for _, p := range prms {
		switch p.N {
		case "eps1":
			o.Eps1 = p.V
		case "sig1":
			o.Sig1 = p.V
		case "eps2":
			o.Eps2 = p.V
		case "sig2":
			o.Sig2 = p.V
		case "eps3":
			o.Eps3 = p.V
		case "sig3":
			o.Sig3 = p.V
		}
	}
	if o.Eps1 <= 0 || o.Eps2 <= o.Eps1 || o.Eps3 <= o.Eps2 {
		chk.Panic("TrilinearCurve requires 0 < ε1 < ε2 < ε3 (ε1=%g, ε2=%g, ε3=%g)", o.Eps1, o.Eps2, o.Eps3)
	}
	if o.Sig2 < o.Sig1 || o.Sig3 > o.Sig2 {
		chk.Panic("TrilinearCurve requires σ1 ≤ σ2 and σ3 ≤ σ2 (σ1=%g, σ2=%g, σ3=%g)", o.Sig1, o.Sig2, o.Sig3)
	}
	o.E = o.Sig1 / o.Eps1
}

// Sig computes the engineering stress for a given engineering strain
func (o *TrilinearCurve) Sig(ε float64) float64 {
	switch {
	case ε <= o.Eps1:
		return o.E * ε
	case ε <= o.Eps2:
		return o.Sig1 + (o.Sig2-o.Sig1)*(ε-o.Eps1)/(o.Eps2-o.Eps1)
	}
	return o.Sig2 + (o.Sig3-o.Sig2)*(ε-o.Eps2)/(o.Eps3-o.Eps2)
}

// Points computes curve samples with n1, n2 and n3 points per segment. The
// segment ends (kinks) land exactly on samples, so trapezoid areas over the
// samples equal the polyline areas.
func (o *TrilinearCurve) Points(n1, n2, n3 int) (ε, σ []float64) {
	ε = utl.LinSpace(0, o.Eps1, n1)
	ε = append(ε, utl.LinSpace(o.Eps1, o.Eps2, n2)[1:]...)
	ε = append(ε, utl.LinSpace(o.Eps2, o.Eps3, n3)[1:]...)
	σ = make([]float64, len(ε))
	for i := 0; i < len(ε); i++ {
		σ[i] = o.Sig(ε[i])
	}
	return
}
