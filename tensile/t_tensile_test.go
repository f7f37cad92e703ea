// Copyright 2026 The Mechanical-Testing Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensile

import (
	"math"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/lucasguesserts/mechanical-testing/ana"
	"github.com/lucasguesserts/mechanical-testing/prm"
)

// trispecimen builds the raw columns of a specimen following a trilinear
// curve with kinks on samples; all expected values are hand-computable:
//
//    segments: (0,0) → (0.002, 400e6) → (0.010, 500e6) → (0.020, 450e6)
//    grid:     Δε = 0.0001 (elastic), 0.0005 (hardening), 0.001 (softening)
//    E        = 200e9
//    offset line (n=0.002) crosses the hardening segment at ε* = 4.1333e-3
//    first sample below the line:  ε = 0.0045   σ = 431.25e6
//    ultimate (second kink):       ε = 0.010    σ = 500e6
//    resilience = ½・0.002・400e6 + ½・(400e6+425e6)・0.002 = 1.225e6
//    toughness  = 0.4e6 + ½・(400+500)e6・0.008 + ½・(500+450)e6・0.010 = 8.75e6
func trispecimen() (cu ana.TrilinearCurve, time, disp, force []float64, length, diameter float64) {
	cu.Init([]*prm.P{
		&prm.P{N: "eps1", V: 0.002},
		&prm.P{N: "sig1", V: 400e6},
		&prm.P{N: "eps2", V: 0.010},
		&prm.P{N: "sig2", V: 500e6},
		&prm.P{N: "eps3", V: 0.020},
		&prm.P{N: "sig3", V: 450e6},
	})
	ε, σ := cu.Points(21, 17, 11)
	length = 75.00e-3
	diameter = 10.00e-3
	time, disp, force = ana.RawColumns(ε, σ, length, diameter, 60.0)
	return
}

func Test_tensile01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tensile01. trilinear specimen end-to-end")

	cu, time, disp, force, length, diameter := trispecimen()
	o, err := New("tri01", force, disp, time, length, diameter, []*prm.P{
		&prm.P{N: "K0", V: 1.2e9},
		&prm.P{N: "n0", V: 0.2},
	})
	if err != nil {
		tst.Errorf("analysis failed: %v\n", err)
		return
	}

	// elastic modulus and proportionality limit
	chk.Float64(tst, "E", 1e3, o.E, cu.E)
	if o.PropStrain < 0.0010-1e-9 || o.PropStrain > 0.0025+1e-9 {
		tst.Errorf("proportionality limit must sit at the end of the linear range: ε=%g\n", o.PropStrain)
		return
	}
	chk.Float64(tst, "σ_prop on curve", 1.0, o.PropStress, cu.Sig(o.PropStrain))

	// yield point: first sample below the offset line
	chk.Float64(tst, "ε_yield", 1e-12, o.YieldStrain, 0.0045)
	chk.Float64(tst, "σ_yield", 1.0, o.YieldStress, 431.25e6)

	// ultimate point: second kink
	chk.Float64(tst, "ε_ult", 1e-12, o.UltStrain, 0.010)
	chk.Float64(tst, "σ_ult", 1.0, o.UltStress, 500e6)

	// regions: boundary samples fall in no region
	if o.Elastic.Len() != 25 || o.Plastic.Len() != 10 || o.Necking.Len() != 10 {
		tst.Errorf("wrong region sizes: %d, %d, %d\n", o.Elastic.Len(), o.Plastic.Len(), o.Necking.Len())
		return
	}
	if o.Elastic.Len()+o.Plastic.Len()+o.Necking.Len() != len(o.Strain)-2 {
		tst.Errorf("regions must cover all but the two boundary samples\n")
		return
	}
	chk.Float64(tst, "last elastic ε", 1e-12, o.Elastic.Strain[24], 0.0040)
	chk.Float64(tst, "first plastic ε", 1e-12, o.Plastic.Strain[0], 0.0050)
	chk.Float64(tst, "first necking ε", 1e-12, o.Necking.Strain[0], 0.011)

	// energies
	chk.Float64(tst, "resilience", 1.0, o.Resilience, 1.225e6)
	chk.Float64(tst, "toughness", 1.0, o.Toughness, 8.75e6)

	// hardening law approximates the (linear) plastic branch closely
	if o.K <= 0 || o.N <= 0 {
		tst.Errorf("invalid hardening coefficients: K=%g, n=%g\n", o.K, o.N)
		return
	}
	εr, σr := EngineeringToReal(o.Plastic.Strain, o.Plastic.Stress)
	for i := 0; i < len(εr); i++ {
		σfit := o.K * math.Pow(εr[i], o.N)
		if math.Abs(σfit-σr[i]) > 0.02*σr[i] {
			tst.Errorf("hardening fit too far from data at εr=%g: %g vs %g\n", εr[i], σfit, σr[i])
			return
		}
	}

	// no warnings for a well-posed curve
	if len(o.Warnings) != 0 {
		tst.Errorf("unexpected warnings: %v\n", o.Warnings)
		return
	}

	// properties table
	props := o.Properties()
	if len(props) != 11 {
		tst.Errorf("properties table must have 11 rows; got %d\n", len(props))
		return
	}
	chk.Float64(tst, "table E", 0, props[0].V, o.E)
	if props[0].N != "elastic_modulus" || props[0].U != "Pa" {
		tst.Errorf("wrong first property: %q [%s]\n", props[0].N, props[0].U)
		return
	}
	if props[7].N != "resilience_modulus" || props[7].U != "J/m³" {
		tst.Errorf("wrong resilience row: %q [%s]\n", props[7].N, props[7].U)
		return
	}
	if props[10].N != "strain_hardening_exponent" || props[10].U != "-" {
		tst.Errorf("wrong exponent row: %q [%s]\n", props[10].N, props[10].U)
		return
	}

	// JSON parameter block carries every row with its unit
	blk := o.PropString("%g")
	if !strings.Contains(blk, "\"prms\"") {
		tst.Errorf("parameter block must open a prms list:\n%s\n", blk)
		return
	}
	for _, p := range props {
		if !strings.Contains(blk, io.Sf("{\"n\":%q, \"v\":%g, \"u\":%q}", p.N, p.V, p.U)) {
			tst.Errorf("parameter block is missing row %q:\n%s\n", p.N, blk)
			return
		}
	}
}

func Test_tensile02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tensile02. hardening specimen end-to-end")

	var cu ana.HollomonCurve
	cu.Init([]*prm.P{
		&prm.P{N: "E", V: 200e9},
		&prm.P{N: "epsy", V: 0.004},
		&prm.P{N: "n", V: 0.19},
		&prm.P{N: "epsf", V: 0.30},
	})
	np := 1001
	ε, σ := cu.Points(np)
	length := 75.00e-3
	diameter := 10.00e-3
	time, disp, force := ana.RawColumns(ε, σ, length, diameter, 120.0)

	o, err := New("hol01", force, disp, time, length, diameter, nil)
	if err != nil {
		tst.Errorf("analysis failed: %v\n", err)
		return
	}
	Δ := ε[1] - ε[0]

	// elastic modulus from the noiseless linear range
	chk.Float64(tst, "E", 1e3, o.E, cu.E)

	// proportionality limit within the linear range samples
	if o.PropStrain < ε[nFitMin]-1e-9 || o.PropStrain > ε[nFitMin+4]+1e-9 {
		tst.Errorf("proportionality limit out of the linear range: ε=%g\n", o.PropStrain)
		return
	}

	// key point ordering
	if !(o.PropStrain <= o.YieldStrain && o.YieldStrain <= o.UltStrain) {
		tst.Errorf("key points out of order: %g, %g, %g\n", o.PropStrain, o.YieldStrain, o.UltStrain)
		return
	}

	// ultimate point at the Considère maximum
	chk.Float64(tst, "ε_ult", Δ, o.UltStrain, cu.EpsU)
	chk.Float64(tst, "σ_ult", 1e-3*cu.SigU, o.UltStress, cu.SigU)

	// real curve: strictly increasing where strain is; zero iff zero
	if o.RealStrain[0] != 0 {
		tst.Errorf("realStrain[0] must be zero for zero strain\n")
		return
	}
	for i := 1; i < len(o.RealStrain); i++ {
		if o.RealStrain[i] <= o.RealStrain[i-1] {
			tst.Errorf("realStrain must be strictly increasing at %d\n", i)
			return
		}
	}

	// varying offsets: a later offset must cross at the same point or later
	ε1, _, err := o.OffsetYieldPoint(0.001)
	if err != nil {
		tst.Errorf("offset yield failed: %v\n", err)
		return
	}
	ε2, _, err := o.OffsetYieldPoint(0.002)
	if err != nil {
		tst.Errorf("offset yield failed: %v\n", err)
		return
	}
	ε4, _, err := o.OffsetYieldPoint(0.004)
	if err != nil {
		tst.Errorf("offset yield failed: %v\n", err)
		return
	}
	if ε1 > ε2 || ε2 > ε4 {
		tst.Errorf("offset yield must be monotonic in the offset: %g, %g, %g\n", ε1, ε2, ε4)
		return
	}
	chk.Float64(tst, "offset yield at default offset", 1e-15, ε2, o.YieldStrain)

	// partition drops exactly the yield and ultimate samples
	if o.Elastic.Len()+o.Plastic.Len()+o.Necking.Len() != np-2 {
		tst.Errorf("regions must cover all but the two boundary samples\n")
		return
	}

	// energies
	if o.Resilience <= 0 || o.Resilience > o.Toughness {
		tst.Errorf("resilience/toughness inconsistent: %g, %g\n", o.Resilience, o.Toughness)
		return
	}

	// plastic branch is an exact Hollomon real curve: coefficients recovered
	chk.Float64(tst, "K", 1e-3*cu.K, o.K, cu.K)
	chk.Float64(tst, "n", 1e-4, o.N, cu.N)

	io.Pforan("E     = %v\n", o.E)
	io.Pforan("yield = (%v, %v)\n", o.YieldStrain, o.YieldStress)
	io.Pforan("ult   = (%v, %v)\n", o.UltStrain, o.UltStress)
	io.Pforan("K, n  = %v, %v\n", o.K, o.N)
}

func Test_tensile03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tensile03. ill-posed offset crossing falls back to proportionality")

	// linear range, then a slightly softer (0.9・E) rise, then one collapsed
	// sample: the curve stays above the offset line up to the maximum-load
	// sample, so the only crossing happens past it
	E := 200e9
	n := 201
	ε := make([]float64, n)
	σ := make([]float64, n)
	for i := 0; i < n; i++ {
		ε[i] = float64(i) * 0.0001
		if ε[i] <= 0.015 {
			σ[i] = E * ε[i]
		} else {
			σ[i] = E*0.015 + 0.9*E*(ε[i]-0.015)
		}
	}
	σ[n-1] = 0.5 * σ[n-2]
	length := 50.0e-3
	diameter := 8.0e-3
	time, disp, force := ana.RawColumns(ε, σ, length, diameter, 30.0)

	o, err := New("collapse01", force, disp, time, length, diameter, []*prm.P{
		&prm.P{N: "K0", V: 2e11},
		&prm.P{N: "n0", V: 0.9},
	})
	if err != nil {
		tst.Errorf("analysis failed: %v\n", err)
		return
	}

	// corrected yield equals the proportionality limit
	chk.Float64(tst, "ε_yield = ε_prop", 1e-15, o.YieldStrain, o.PropStrain)
	chk.Float64(tst, "σ_yield = σ_prop", 1e-15, o.YieldStress, o.PropStress)

	// ultimate is the last sample before the collapse
	chk.Float64(tst, "ε_ult", 1e-12, o.UltStrain, ε[n-2])

	// warning tagged with the test name
	if len(o.Warnings) != 1 {
		tst.Errorf("one warning expected; got %v\n", o.Warnings)
		return
	}
	if !strings.Contains(o.Warnings[0], "collapse01") || !strings.Contains(o.Warnings[0], "proportionality") {
		tst.Errorf("warning must name the test and the fallback: %q\n", o.Warnings[0])
		return
	}
}
