// Copyright 2026 The Mechanical-Testing Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from batch (.json) and curve
// (.csv) files
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/lucasguesserts/mechanical-testing/prm"
)

// Data holds global batch data
type Data struct {
	DirDat  string `json:"dirdat"`  // directory holding the test data files; resolved relative to the batch file when not absolute
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/mechtest
	Catalog string `json:"catalog"` // results catalog filename; e.g. results.db; empty disables the catalog
}

// TestData holds the definition of one tensile test
type TestData struct {
	Name     string     `json:"name"`     // test identifier
	DataFile string     `json:"datafile"` // csv file with the time, displacement and force columns
	Length   float64    `json:"length"`   // specimen gauge length [m]
	Diameter float64    `json:"diameter"` // specimen diameter [m]
	Prms     prm.Params `json:"prms"`     // analysis parameters; e.g. "offset", "K0", "n0"
}

// Batch holds a set of tensile test definitions read from a JSON batch file
type Batch struct {

	// input
	Data  Data        `json:"data"`  // global data
	Tests []*TestData `json:"tests"` // all test definitions

	// derived
	Dir   string // directory of the batch file
	FnKey string // filename key of the batch file
}

// ReadBatch reads a batch file and checks the test definitions. Defaults:
// dirout = /tmp/mechtest. A relative dirdat is resolved against the batch
// file's directory.
func ReadBatch(fnamepath string) (o *Batch, err error) {

	// read and decode
	b, err := os.ReadFile(fnamepath)
	if err != nil {
		return nil, chk.Err("cannot read batch file %q: %v", fnamepath, err)
	}
	o = new(Batch)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot parse batch file %q: %v", fnamepath, err)
	}

	// derived data and defaults
	o.Dir = filepath.Dir(fnamepath)
	o.FnKey = io.FnKey(filepath.Base(fnamepath))
	if o.Data.DirOut == "" {
		o.Data.DirOut = "/tmp/mechtest"
	}
	if !filepath.IsAbs(o.Data.DirDat) {
		o.Data.DirDat = filepath.Join(o.Dir, o.Data.DirDat)
	}

	// check test definitions
	if len(o.Tests) == 0 {
		return nil, chk.Err("batch file %q has no test definitions", fnamepath)
	}
	names := make(map[string]bool)
	for i, t := range o.Tests {
		if t.Name == "" || t.DataFile == "" {
			return nil, chk.Err("batch file %q: test #%d must have \"name\" and \"datafile\"", fnamepath, i)
		}
		if names[t.Name] {
			return nil, chk.Err("batch file %q: duplicate test name %q", fnamepath, t.Name)
		}
		names[t.Name] = true
		if t.Length <= 0 || t.Diameter <= 0 {
			return nil, chk.Err("batch file %q: test %q must have positive geometry: length=%g, diameter=%g", fnamepath, t.Name, t.Length, t.Diameter)
		}
	}
	return
}

// DataPath returns the path of the data file of one test
func (o *Batch) DataPath(t *TestData) string {
	return filepath.Join(o.Data.DirDat, t.DataFile)
}

// CatalogPath returns the path of the results catalog or "" when disabled
func (o *Batch) CatalogPath() string {
	if o.Data.Catalog == "" {
		return ""
	}
	return filepath.Join(o.Data.DirOut, o.Data.Catalog)
}
