// Copyright 2026 The Mechanical-Testing Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensile

import (
	"math"

	"github.com/cpmech/gosl/num"
)

// EngineeringToReal converts an engineering (strain, stress) curve into the
// real one: realStrain = ln(1+strain) and realStress = stress・(1+strain).
// The transform assumes uniform deformation and is therefore meaningful up to
// the onset of necking only.
func EngineeringToReal(strain, stress []float64) (rstrain, rstress []float64) {
	n := len(strain)
	rstrain = make([]float64, n)
	rstress = make([]float64, n)
	for i := 0; i < n; i++ {
		rstrain[i] = math.Log(1.0 + strain[i])
		rstress[i] = stress[i] * (1.0 + strain[i])
	}
	return
}

// Region holds one segment of the engineering stress-strain curve
type Region struct {
	Strain []float64 // engineering strain [m/m]
	Stress []float64 // engineering stress [Pa]
}

// push appends one point to the region
func (o *Region) push(ε, σ float64) {
	o.Strain = append(o.Strain, ε)
	o.Stress = append(o.Stress, σ)
}

// Len returns the number of points in the region
func (o *Region) Len() int {
	return len(o.Strain)
}

// segment partitions the curve into the elastic, plastic and necking regions.
// Boundaries are strict on both sides of the plastic interval; thus samples
// with strain exactly equal to YieldStrain or UltStrain fall in no region.
func (o *Test) segment() {
	o.Elastic = new(Region)
	o.Plastic = new(Region)
	o.Necking = new(Region)
	for i, ε := range o.Strain {
		σ := o.Stress[i]
		switch {
		case ε < o.YieldStrain:
			o.Elastic.push(ε, σ)
		case ε > o.YieldStrain && ε < o.UltStrain:
			o.Plastic.push(ε, σ)
		case ε > o.UltStrain:
			o.Necking.push(ε, σ)
		}
	}
}

// integrate computes the resilience modulus (area under the elastic region)
// and the toughness modulus (area under the whole curve) by the trapezoidal
// rule. Strain must be in ascending order.
func (o *Test) integrate() {
	o.Resilience = num.QuadDiscreteTrapzXY(o.Elastic.Strain, o.Elastic.Stress)
	o.Toughness = num.QuadDiscreteTrapzXY(o.Strain, o.Stress)
}
