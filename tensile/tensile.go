// Copyright 2026 The Mechanical-Testing Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tensile implements the analysis of tensile/compression test
// measurements: from raw (force, displacement, time) records to engineering
// and real stress-strain curves, elastic modulus, proportionality limit,
// offset yield point, ultimate point, elastic/plastic/necking regions,
// resilience and toughness moduli, and Hollomon hardening coefficients
package tensile

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/lucasguesserts/mechanical-testing/prm"
)

// Test holds one tensile test: the raw measurements, the specimen geometry,
// the derived curves and all mechanical properties. A Test is fully computed
// by New and must be treated as read-only afterwards.
type Test struct {

	// input
	Name     string    // identifier used in messages and warnings
	Length   float64   // specimen gauge length [m]
	Diameter float64   // specimen diameter [m]
	Force    []float64 // measured force [N]
	Disp     []float64 // measured displacement [m]
	Time     []float64 // acquisition time [s]

	// input: analysis parameters
	Offset float64 // strain offset defining the yield point [m/m]
	K0     float64 // seed for the strength coefficient [Pa]
	N0     float64 // seed for the strain hardening exponent [-]

	// derived: specimen
	Area float64 // cross-section area [m²]

	// derived: curves
	Strain     []float64 // engineering strain [m/m]
	Stress     []float64 // engineering stress [Pa]
	RealStrain []float64 // real (logarithmic) strain [m/m]
	RealStress []float64 // real (true) stress [Pa]

	// derived: key points
	E           float64 // elastic modulus [Pa]
	PropStrain  float64 // proportionality limit strain [m/m]
	PropStress  float64 // proportionality limit stress [Pa]
	YieldStrain float64 // yield strain [m/m]
	YieldStress float64 // yield strength [Pa]
	UltStrain   float64 // ultimate strain [m/m]
	UltStress   float64 // ultimate strength [Pa]

	// derived: regions
	Elastic *Region // strain < YieldStrain
	Plastic *Region // YieldStrain < strain < UltStrain
	Necking *Region // strain > UltStrain

	// derived: energies
	Resilience float64 // resilience modulus [J/m³]
	Toughness  float64 // toughness modulus [J/m³]

	// derived: hardening (Hollomon)
	K float64 // strength coefficient [Pa]
	N float64 // strain hardening exponent [-]

	// diagnostics
	Warnings []string // non-fatal notes; e.g. yield correction
}

// New computes all curves and mechanical properties of one tensile test.
//  Input:
//   name     -- test identifier used in messages and warnings
//   force    -- measured force [N]
//   disp     -- measured displacement [m]
//   time     -- acquisition time [s]
//   length   -- specimen gauge length [m]
//   diameter -- specimen diameter [m]
//   prms     -- optional analysis parameters:
//               "offset" strain offset of the yield point (default 0.002)
//               "K0"     seed for the strength coefficient (default 124.6e6)
//               "n0"     seed for the hardening exponent (default 0.19)
//  Note: inputs must be in SI units and ordered by ascending strain; a stage
//  failure returns a nil Test (there is no partial result)
func New(name string, force, disp, time []float64, length, diameter float64, prms prm.Params) (o *Test, err error) {

	// input data and defaults
	o = new(Test)
	o.Name = name
	o.Length = length
	o.Diameter = diameter
	o.Force = force
	o.Disp = disp
	o.Time = time
	o.Offset = 0.002
	o.K0 = 124.6e6
	o.N0 = 0.19
	for _, p := range prms {
		switch p.N {
		case "offset":
			o.Offset = p.V
		case "K0":
			o.K0 = p.V
		case "n0":
			o.N0 = p.V
		}
	}
	err = o.checkInput()
	if err != nil {
		return nil, err
	}

	// engineering and real curves
	o.buildCurves()

	// elastic modulus and proportionality limit
	err = o.findElasticLimit()
	if err != nil {
		return nil, err
	}

	// yield and ultimate points
	εy, σy, err := o.OffsetYieldPoint(o.Offset)
	if err != nil {
		return nil, err
	}
	o.findUltimate()
	o.setYield(εy, σy)

	// regions and energies
	o.segment()
	o.integrate()

	// hardening law
	err = o.fitHardening()
	if err != nil {
		return nil, err
	}
	return
}

// checkInput verifies lengths and geometry before any derived stage runs
func (o *Test) checkInput() (err error) {
	n := len(o.Force)
	if n < 1 {
		return chk.Err("test %q: no measurements", o.Name)
	}
	if len(o.Disp) != n || len(o.Time) != n {
		return chk.Err("test %q: force, displacement and time must have the same length: %d, %d, %d", o.Name, n, len(o.Disp), len(o.Time))
	}
	if o.Length <= 0 || o.Diameter <= 0 {
		return chk.Err("test %q: specimen geometry must be positive: length=%g, diameter=%g", o.Name, o.Length, o.Diameter)
	}
	return
}

// buildCurves computes the engineering and real stress-strain curves
func (o *Test) buildCurves() {
	o.Area = math.Pi * o.Diameter * o.Diameter / 4.0
	n := len(o.Force)
	o.Strain = make([]float64, n)
	o.Stress = make([]float64, n)
	for i := 0; i < n; i++ {
		o.Strain[i] = o.Disp[i] / o.Length
		o.Stress[i] = o.Force[i] / o.Area
	}
	o.RealStrain, o.RealStress = EngineeringToReal(o.Strain, o.Stress)
}

// setYield stores the yield point, falling back to the proportionality limit
// when the offset crossing happens beyond the ultimate point
func (o *Test) setYield(εy, σy float64) {
	if εy > o.UltStrain {
		o.YieldStrain = o.PropStrain
		o.YieldStress = o.PropStress
		o.Warnings = append(o.Warnings, io.Sf("test %q: offset yield strain %g beyond ultimate strain %g; proportionality limit used as yield point", o.Name, εy, o.UltStrain))
		return
	}
	o.YieldStrain = εy
	o.YieldStress = σy
}
