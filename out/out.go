// Copyright 2026 The Mechanical-Testing Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output handling: summary-of-properties tables and
// diagnostic plots
package out

import (
	"bytes"

	"github.com/cpmech/gosl/io"

	"github.com/lucasguesserts/mechanical-testing/tensile"
)

// SummaryString returns the CSV text of one properties table: a header line
// followed by one "property,value,unit" line per property
func SummaryString(props []*tensile.Property) string {
	var buf bytes.Buffer
	io.Ff(&buf, "property,value,unit\n")
	for _, p := range props {
		io.Ff(&buf, "%s,%.8e,%s\n", p.N, p.V, p.U)
	}
	return buf.String()
}

// WriteSummary writes the properties table of one test to
// dirout/<name>_properties.csv and returns the filename
func WriteSummary(dirout, name string, props []*tensile.Property) (fn string) {
	fn = name + "_properties.csv"
	var buf bytes.Buffer
	io.Ff(&buf, "%s", SummaryString(props))
	io.WriteFileD(dirout, fn, &buf)
	return
}
