// Copyright 2026 The Mechanical-Testing Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensile

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// hardening fit constants
const (
	fitMaxIt = 100   // maximum number of Newton iterations
	fitTolΔ  = 1e-10 // relative tolerance on the Newton step
	fitMaxΔn = 0.25  // largest allowed change of the exponent per iteration
)

// fitHardening fits Hollomon's equation to the real curve of the plastic
// region. The seed (K0, n0) comes from the analysis parameters.
func (o *Test) fitHardening() (err error) {
	if o.Plastic.Len() < 2 {
		return chk.Err("test %q: plastic region with %d points cannot anchor the hardening fit", o.Name, o.Plastic.Len())
	}
	εr, σr := EngineeringToReal(o.Plastic.Strain, o.Plastic.Stress)
	o.K, o.N, err = FitHollomon(εr, σr, o.K0, o.N0)
	if err != nil {
		return chk.Err("test %q: %v", o.Name, err)
	}
	return
}

// FitHollomon fits σ = K・εⁿ to a real (logarithmic strain, true stress)
// plastic curve by least squares. The normal equations ∂SSE/∂K = ∂SSE/∂n = 0
// are solved by a damped Newton iteration with analytic Jacobian, starting
// from the seed (K0, n0). Strains must be positive. Non-convergence is an
// error; no fallback values are produced.
func FitHollomon(εr, σr []float64, K0, n0 float64) (K, n float64, err error) {

	// check
	m := len(εr)
	if m < 2 || len(σr) != m {
		return 0, 0, chk.Err("cannot fit hardening law to %d (%d) points", m, len(σr))
	}
	for i := 0; i < m; i++ {
		if εr[i] <= 0 {
			return 0, 0, chk.Err("hardening fit requires positive real strains (εr[%d]=%g)", i, εr[i])
		}
	}

	// normalise stresses so the iteration works on numbers of order one
	σref := σr[0]
	for i := 1; i < m; i++ {
		if σr[i] > σref {
			σref = σr[i]
		}
	}
	if σref <= 0 {
		return 0, 0, chk.Err("hardening fit requires positive stresses (max=%g)", σref)
	}

	// Newton iteration on the stationarity system:
	//   f1 = Σ rᵢ・εᵢⁿ      = 0        rᵢ = σᵢ/σref - k・εᵢⁿ
	//   f2 = Σ rᵢ・εᵢⁿ・lᵢ  = 0        lᵢ = ln(εᵢ)
	k := K0 / σref
	n = n0
	for it := 0; it < fitMaxIt; it++ {

		// residuals and Jacobian
		var f1, f2, J11, J12, J21, J22 float64
		for i := 0; i < m; i++ {
			e := math.Pow(εr[i], n)
			l := math.Log(εr[i])
			s := σr[i] / σref
			r := s - k*e
			f1 += r * e
			f2 += r * e * l
			J11 -= e * e
			J12 += (s - 2.0*k*e) * e * l
			J21 -= e * e * l
			J22 += (s - 2.0*k*e) * e * l * l
		}

		// Newton step
		det := J11*J22 - J12*J21
		if math.Abs(det) < 1e-15 {
			return 0, 0, chk.Err("hardening fit: singular Jacobian at iteration %d (det=%g)", it, det)
		}
		δk := (-f1*J22 + f2*J12) / det
		δn := (f1*J21 - f2*J11) / det

		// damping: bound the exponent step and keep (k, n) positive
		if math.Abs(δn) > fitMaxΔn {
			c := fitMaxΔn / math.Abs(δn)
			δk *= c
			δn *= c
		}
		for j := 0; j < 30; j++ {
			if k+δk > 0 && n+δn > 0 {
				break
			}
			δk /= 2.0
			δn /= 2.0
		}
		k += δk
		n += δn

		// convergence on the step size
		if math.Abs(δk) < fitTolΔ*(1.0+math.Abs(k)) && math.Abs(δn) < fitTolΔ*(1.0+math.Abs(n)) {
			return k * σref, n, nil
		}
	}
	return 0, 0, chk.Err("hardening fit did not converge after %d iterations (k=%g, n=%g)", fitMaxIt, k*σref, n)
}
