// Copyright 2026 The Mechanical-Testing Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// ReadCurve reads the raw columns of one tensile test record from a
// comma-separated file with one header line. Columns are keyed by name —
// "time" [s], "displacement" [m] and "force" [N] — in any order; extra
// columns are ignored. All three columns must be present and every data line
// must have one value per header column.
func ReadCurve(fnamepath string) (time, disp, force []float64, err error) {
	b, err := os.ReadFile(fnamepath)
	if err != nil {
		err = chk.Err("cannot read curve file %q: %v", fnamepath, err)
		return
	}
	itime, idisp, iforce := -1, -1, -1
	ncol := 0
	for k, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")

		// header line
		if ncol == 0 {
			ncol = len(fields)
			for j, name := range fields {
				switch strings.TrimSpace(name) {
				case "time":
					itime = j
				case "displacement":
					idisp = j
				case "force":
					iforce = j
				}
			}
			if itime < 0 || idisp < 0 || iforce < 0 {
				err = chk.Err("curve file %q must have \"time\", \"displacement\" and \"force\" columns; header = %q", fnamepath, line)
				return
			}
			continue
		}

		// data line
		if len(fields) != ncol {
			err = chk.Err("curve file %q: line %d has %d values; %d expected", fnamepath, k+1, len(fields), ncol)
			return
		}
		var t, d, f float64
		if t, err = atof(fnamepath, k+1, fields[itime]); err != nil {
			return
		}
		if d, err = atof(fnamepath, k+1, fields[idisp]); err != nil {
			return
		}
		if f, err = atof(fnamepath, k+1, fields[iforce]); err != nil {
			return
		}
		time = append(time, t)
		disp = append(disp, d)
		force = append(force, f)
	}
	if ncol == 0 {
		err = chk.Err("curve file %q is empty", fnamepath)
		return
	}
	if len(time) == 0 {
		err = chk.Err("curve file %q has a header but no data lines", fnamepath)
	}
	return
}

// atof parses one number of a curve file
func atof(fnamepath string, lnum int, s string) (v float64, err error) {
	v, e := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if e != nil {
		return 0, chk.Err("curve file %q: cannot parse number %q at line %d", fnamepath, s, lnum)
	}
	return v, nil
}
