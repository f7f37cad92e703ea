// Copyright 2026 The Mechanical-Testing Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical stress-strain curves used to verify the
// tensile test analysis
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/lucasguesserts/mechanical-testing/prm"
)

// HollomonCurve computes the engineering stress-strain curve of an ideal
// material with a linear elastic range followed by Hollomon hardening of the
// real (logarithmic) curve:
//
//    ε ≤ εy:   σ(ε) = E・ε
//    ε > εy:   σ(ε) = K・ln(1+ε)ⁿ / (1+ε)     [engineering image of σr = K・εrⁿ]
//
// K follows from continuity at εy. The engineering stress peaks where
// ln(1+ε) = n (Considère), hence:
//
//    εu = eⁿ - 1        σu = K・nⁿ・e⁻ⁿ
//
// which gives closed-form ultimate values for checks. The real curve of any
// sub-range of the hardening branch is exactly σr = K・εrⁿ.
type HollomonCurve struct {

	// input
	E    float64 // elastic modulus
	EpsY float64 // strain at the end of the linear range
	N    float64 // strain hardening exponent
	EpsF float64 // final (fracture) strain

	// derived
	SigY float64 // stress at the end of the linear range
	K    float64 // strength coefficient
	EpsU float64 // engineering strain at maximum load (Considère)
	SigU float64 // engineering ultimate strength
}

// Init initialises the curve with parameters "E", "epsy", "n" and "epsf"
func (o *HollomonCurve) Init(prms prm.Params) {
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "epsy":
			o.EpsY = p.V
		case "n":
			o.N = p.V
		case "epsf":
			o.EpsF = p.V
		}
	}
	if o.E <= 0 || o.EpsY <= 0 || o.N <= 0 || o.N >= 1 {
		chk.Panic("HollomonCurve requires E > 0, εy > 0 and 0 < n < 1 (E=%g, εy=%g, n=%g)", o.E, o.EpsY, o.N)
	}
	o.EpsU = math.Exp(o.N) - 1.0
	if o.EpsY >= o.EpsU {
		chk.Panic("HollomonCurve requires εy < εu = eⁿ-1 (εy=%g, εu=%g)", o.EpsY, o.EpsU)
	}
	if o.EpsF <= o.EpsU {
		chk.Panic("HollomonCurve requires εf > εu so that necking exists (εf=%g, εu=%g)", o.EpsF, o.EpsU)
	}
	o.SigY = o.E * o.EpsY
	o.K = o.SigY * (1.0 + o.EpsY) / math.Pow(math.Log(1.0+o.EpsY), o.N)
	o.SigU = o.K * math.Pow(o.N, o.N) * math.Exp(-o.N)
}

// Sig computes the engineering stress for a given engineering strain
func (o *HollomonCurve) Sig(ε float64) float64 {
	if ε <= o.EpsY {
		return o.E * ε
	}
	return o.K * math.Pow(math.Log(1.0+ε), o.N) / (1.0 + ε)
}

// Points computes np curve samples with strain uniformly spaced in [0, εf]
func (o *HollomonCurve) Points(np int) (ε, σ []float64) {
	ε = utl.LinSpace(0, o.EpsF, np)
	σ = make([]float64, np)
	for i := 0; i < np; i++ {
		σ[i] = o.Sig(ε[i])
	}
	return
}
