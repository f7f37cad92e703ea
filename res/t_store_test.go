// Copyright 2026 The Mechanical-Testing Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package res

import (
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/lucasguesserts/mechanical-testing/ana"
	"github.com/lucasguesserts/mechanical-testing/prm"
	"github.com/lucasguesserts/mechanical-testing/tensile"
)

// newTest analyses one synthetic trilinear specimen
func newTest(tst *testing.T) *tensile.Test {
	var cu ana.TrilinearCurve
	cu.Init([]*prm.P{
		&prm.P{N: "eps1", V: 0.002},
		&prm.P{N: "sig1", V: 400e6},
		&prm.P{N: "eps2", V: 0.010},
		&prm.P{N: "sig2", V: 500e6},
		&prm.P{N: "eps3", V: 0.020},
		&prm.P{N: "sig3", V: 450e6},
	})
	ε, σ := cu.Points(21, 17, 11)
	time, disp, force := ana.RawColumns(ε, σ, 75.00e-3, 10.00e-3, 60.0)
	o, err := tensile.New("restest01", force, disp, time, 75.00e-3, 10.00e-3, []*prm.P{
		&prm.P{N: "K0", V: 1.2e9},
		&prm.P{N: "n0", V: 0.2},
	})
	if err != nil {
		tst.Fatalf("analysis failed: %v\n", err)
	}
	return o
}

func Test_store01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("store01. record and query runs")

	path := "/tmp/mechtest/res/t_catalog.db"
	os.Remove(path)
	st, err := Open(path)
	if err != nil {
		tst.Errorf("cannot open catalog: %v\n", err)
		return
	}
	defer st.Close()

	// record one run
	o := newTest(tst)
	id, err := st.AddRun(o, "restest01.csv")
	if err != nil {
		tst.Errorf("cannot record run: %v\n", err)
		return
	}
	if id == "" {
		tst.Errorf("empty run identifier\n")
		return
	}

	// catalog entry
	runs, err := st.Runs()
	if err != nil {
		tst.Errorf("cannot list runs: %v\n", err)
		return
	}
	if len(runs) != 1 {
		tst.Errorf("one run expected; got %d\n", len(runs))
		return
	}
	r := runs[0]
	if r.ID != id || r.Name != "restest01" || r.DataFile != "restest01.csv" {
		tst.Errorf("wrong catalog entry: %+v\n", r)
		return
	}
	if len(r.Warnings) != 0 {
		tst.Errorf("no warnings expected; got %v\n", r.Warnings)
		return
	}

	// property rows round-trip
	props, err := st.RunProperties(id)
	if err != nil {
		tst.Errorf("cannot query properties: %v\n", err)
		return
	}
	want := o.Properties()
	if len(props) != len(want) {
		tst.Errorf("%d property rows expected; got %d\n", len(want), len(props))
		return
	}
	for i, p := range props {
		if p.N != want[i].N || p.U != want[i].U {
			tst.Errorf("wrong property row %d: %+v\n", i, p)
			return
		}
		chk.Float64(tst, "value "+p.N, 1e-12*(1.0+want[i].V), p.V, want[i].V)
	}

	// second run accumulates
	if _, err = st.AddRun(o, "restest01.csv"); err != nil {
		tst.Errorf("cannot record second run: %v\n", err)
		return
	}
	runs, err = st.Runs()
	if err != nil {
		tst.Errorf("cannot list runs: %v\n", err)
		return
	}
	if len(runs) != 2 {
		tst.Errorf("two runs expected; got %d\n", len(runs))
		return
	}
}
