// Copyright 2026 The Mechanical-Testing Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"bytes"

	"github.com/cpmech/gosl/io"

	"github.com/lucasguesserts/mechanical-testing/ana"
	"github.com/lucasguesserts/mechanical-testing/prm"
)

// GenData regenerates the sample data files of the data directory from the
// analytical curves. Run with:  go run tools/GenData.go [dirout]
func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// output directory
	dirout := io.ArgToString(0, "data")

	// specimen_a: trilinear curve with hand-computable properties
	{
		var cu ana.TrilinearCurve
		cu.Init([]*prm.P{
			&prm.P{N: "eps1", V: 0.002},
			&prm.P{N: "sig1", V: 400e6},
			&prm.P{N: "eps2", V: 0.010},
			&prm.P{N: "sig2", V: 500e6},
			&prm.P{N: "eps3", V: 0.020},
			&prm.P{N: "sig3", V: 450e6},
		})
		ε, σ := cu.Points(101, 401, 501)
		write(dirout, "specimen_a.csv", ε, σ, 75.00e-3, 10.00e-3, 60.0)
	}

	// specimen_b: near-linear rise with a collapsed last sample; exercises
	// the yield-correction fallback
	{
		n := 201
		ε := make([]float64, n)
		σ := make([]float64, n)
		E := 200e9
		for i := 0; i < n; i++ {
			ε[i] = float64(i) * 0.0001
			if ε[i] <= 0.015 {
				σ[i] = E * ε[i]
			} else {
				σ[i] = E*0.015 + 0.9*E*(ε[i]-0.015)
			}
		}
		σ[n-1] = 0.5 * σ[n-2]
		write(dirout, "specimen_b.csv", ε, σ, 50.00e-3, 8.00e-3, 30.0)
	}
}

// write saves one curve as a raw-columns csv file
func write(dirout, fn string, ε, σ []float64, length, diameter, tf float64) {
	time, disp, force := ana.RawColumns(ε, σ, length, diameter, tf)
	var buf bytes.Buffer
	io.Ff(&buf, "time,displacement,force\n")
	for i := 0; i < len(time); i++ {
		io.Ff(&buf, "%.6e,%.10e,%.10e\n", time[i], disp[i], force[i])
	}
	io.WriteFileVD(dirout, fn, &buf)
}
