// Copyright 2026 The Mechanical-Testing Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensile

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
)

// nFitMin is the smallest prefix length considered by the linear-range search
const nFitMin = 10

// findElasticLimit scans growing prefixes of the curve, fits a straight line
// to each and keeps the one whose slope has the smallest standard deviation.
// The winning slope is the elastic modulus and the sample just past the
// winning prefix is the proportionality limit. Ties keep the shortest prefix.
func (o *Test) findElasticLimit() (err error) {
	n := len(o.Strain)
	if n <= nFitMin {
		return chk.Err("test %q: %d samples are not enough for the linear-range search (more than %d required)", o.Name, n, nFitMin)
	}
	first := true
	var devmin float64
	for l := nFitMin; l < n; l++ {
		_, m, _, σm, _ := num.LinFitSigma(o.Strain[:l], o.Stress[:l])
		if first || σm < devmin {
			devmin = σm
			o.E = m
			o.PropStrain = o.Strain[l]
			o.PropStress = o.Stress[l]
			first = false
		}
	}
	return
}

// OffsetYieldPoint finds the first point of the curve lying below the elastic
// line shifted right by the given strain offset. The default yield point uses
// offset = 0.002; any other offset may be evaluated with this function.
func (o *Test) OffsetYieldPoint(offset float64) (εy, σy float64, err error) {
	for i := 0; i < len(o.Strain); i++ {
		if o.Stress[i]-o.E*(o.Strain[i]-offset) < 0 {
			return o.Strain[i], o.Stress[i], nil
		}
	}
	err = chk.Err("test %q: elastic line with offset %g never crosses the curve", o.Name, offset)
	return
}

// findUltimate locates the global maximum of the engineering stress; the
// first occurrence wins in case of ties
func (o *Test) findUltimate() {
	iu := 0
	for i := 1; i < len(o.Stress); i++ {
		if o.Stress[i] > o.Stress[iu] {
			iu = i
		}
	}
	o.UltStrain = o.Strain[iu]
	o.UltStress = o.Stress[iu]
}
