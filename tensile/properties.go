// Copyright 2026 The Mechanical-Testing Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensile

import "github.com/cpmech/gosl/io"

// Property is one row of the flat properties table
type Property struct {
	N string  // name
	V float64 // value
	U string  // unit
}

// Properties returns the flat (name, value, unit) table with all derived
// mechanical properties, in a fixed order and fixed SI units
func (o *Test) Properties() []*Property {
	return []*Property{
		&Property{N: "elastic_modulus", V: o.E, U: "Pa"},
		&Property{N: "proportionality_strain", V: o.PropStrain, U: "m/m"},
		&Property{N: "proportionality_strength", V: o.PropStress, U: "Pa"},
		&Property{N: "yield_strain", V: o.YieldStrain, U: "m/m"},
		&Property{N: "yield_strength", V: o.YieldStress, U: "Pa"},
		&Property{N: "ultimate_strain", V: o.UltStrain, U: "m/m"},
		&Property{N: "ultimate_strength", V: o.UltStress, U: "Pa"},
		&Property{N: "resilience_modulus", V: o.Resilience, U: "J/m³"},
		&Property{N: "toughness_modulus", V: o.Toughness, U: "J/m³"},
		&Property{N: "strength_coefficient", V: o.K, U: "Pa"},
		&Property{N: "strain_hardening_exponent", V: o.N, U: "-"},
	}
}

// PropString returns the properties formatted as the JSON parameters block
// used by material files
func (o *Test) PropString(numfmt string) string {
	props := o.Properties()
	l := "      \"prms\" : [\n"
	for i, p := range props {
		l += io.Sf("        {\"n\":%q, \"v\":"+numfmt+", \"u\":%q}", p.N, p.V, p.U)
		if i < len(props)-1 {
			l += ",\n"
		}
	}
	l += "\n      ]"
	return l
}
