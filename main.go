// Copyright 2026 The Mechanical-Testing Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/fsnotify/fsnotify"

	"github.com/lucasguesserts/mechanical-testing/inp"
	"github.com/lucasguesserts/mechanical-testing/out"
	"github.com/lucasguesserts/mechanical-testing/res"
	"github.com/lucasguesserts/mechanical-testing/tensile"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(1)
		}
	}()

	// read input parameters
	batchfn, _ := io.ArgToFilename(0, "data/batch", ".json", true)
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, false)
	ncpu := io.ArgToInt(3, 4)
	watch := io.ArgToBool(4, false)

	// message
	if verbose {
		io.PfWhite("\nMechanical-Testing -- analysis of tensile test records\n")
		io.Pf("Copyright 2026 The Mechanical-Testing Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"batch file path", "batchfn", batchfn,
			"show messages", "verbose", verbose,
			"draw diagnostic plots", "doplot", doplot,
			"number of workers", "ncpu", ncpu,
			"watch data directory", "watch", watch,
		))
	}

	// batch definitions
	batch, err := inp.ReadBatch(batchfn)
	if err != nil {
		chk.Panic("cannot read batch file:\n%v", err)
	}

	// results catalog
	var store *res.Store
	if path := batch.CatalogPath(); path != "" {
		store, err = res.Open(path)
		if err != nil {
			chk.Panic("cannot open results catalog:\n%v", err)
		}
		defer store.Close()
	}

	// run all tests
	nfail := runAll(batch, store, verbose, doplot, ncpu)
	if verbose {
		io.Pf("\n%d of %d tests succeeded\n", len(batch.Tests)-nfail, len(batch.Tests))
	}

	// watch mode
	if watch {
		watchLoop(batch, store, verbose, doplot)
	}
	if nfail > 0 {
		chk.Panic("%d of %d tests failed", nfail, len(batch.Tests))
	}
}

// runAll analyses every test of the batch on a pool of ncpu workers. The
// workers only read data and compute; summaries, plots and catalog records
// are written sequentially as results arrive. Returns the number of failed
// tests; a failure never aborts the sibling tests.
func runAll(batch *inp.Batch, store *res.Store, verbose, doplot bool, ncpu int) (nfail int) {
	type result struct {
		t   *inp.TestData
		tst *tensile.Test
		err error
	}
	if ncpu < 1 {
		ncpu = 1
	}
	if ncpu > len(batch.Tests) {
		ncpu = len(batch.Tests)
	}
	jobs := make(chan *inp.TestData, len(batch.Tests))
	results := make(chan result, len(batch.Tests))
	for w := 0; w < ncpu; w++ {
		go func() {
			for t := range jobs {
				tst, err := analyse(batch, t)
				results <- result{t, tst, err}
			}
		}()
	}
	for _, t := range batch.Tests {
		jobs <- t
	}
	close(jobs)
	for range batch.Tests {
		r := <-results
		if r.err != nil {
			io.PfRed("test %q failed:\n%v\n", r.t.Name, r.err)
			nfail++
			continue
		}
		if err := finish(batch, r.t, r.tst, store, verbose, doplot); err != nil {
			io.PfRed("test %q failed:\n%v\n", r.t.Name, err)
			nfail++
		}
	}
	return
}

// analyse reads the data file of one test and runs the analysis pipeline
func analyse(batch *inp.Batch, t *inp.TestData) (tst *tensile.Test, err error) {
	tvals, dvals, fvals, err := inp.ReadCurve(batch.DataPath(t))
	if err != nil {
		return
	}
	return tensile.New(t.Name, fvals, dvals, tvals, t.Length, t.Diameter, t.Prms)
}

// finish writes the outputs of one analysed test: warnings to the console,
// the summary table, the diagnostic plots and the catalog record
func finish(batch *inp.Batch, t *inp.TestData, tst *tensile.Test, store *res.Store, verbose, doplot bool) (err error) {
	for _, w := range tst.Warnings {
		io.PfYel("warning: %s\n", w)
	}
	fn := out.WriteSummary(batch.Data.DirOut, tst.Name, tst.Properties())
	if verbose {
		io.Pf("> %-20s E=%11.4e Pa  σy=%11.4e Pa  σu=%11.4e Pa  =>  %s\n",
			tst.Name, tst.E, tst.YieldStress, tst.UltStress, fn)
	}
	if doplot {
		cfg := out.NewConfig(batch.Data.DirOut)
		if err = out.PlotCurve(tst, cfg); err != nil {
			return
		}
		if err = out.PlotReal(tst, cfg); err != nil {
			return
		}
	}
	if store != nil {
		_, err = store.AddRun(tst, t.DataFile)
	}
	return
}

// watchLoop re-runs a test whenever its data file is created or written in
// the data directory. Events are coalesced per filename over a short debounce
// window. Blocks forever.
func watchLoop(batch *inp.Batch, store *res.Store, verbose, doplot bool) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		chk.Panic("cannot start watcher:\n%v", err)
	}
	defer watcher.Close()
	if err = watcher.Add(batch.Data.DirDat); err != nil {
		chk.Panic("cannot watch %q:\n%v", batch.Data.DirDat, err)
	}
	byfile := make(map[string]*inp.TestData)
	for _, t := range batch.Tests {
		byfile[t.DataFile] = t
	}
	if verbose {
		io.Pf("\nwatching %s\n", batch.Data.DirDat)
	}
	const debounce = 250 * time.Millisecond
	timer := time.NewTimer(debounce)
	timer.Stop()
	pending := make(map[string]*inp.TestData)
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			t, registered := byfile[filepath.Base(ev.Name)]
			if !registered {
				continue
			}
			pending[t.Name] = t
			timer.Reset(debounce)
		case err := <-watcher.Errors:
			io.PfRed("watch error: %v\n", err)
		case <-timer.C:
			for _, t := range pending {
				tst, err := analyse(batch, t)
				if err == nil {
					err = finish(batch, t, tst, store, verbose, doplot)
				}
				if err != nil {
					io.PfRed("test %q failed:\n%v\n", t.Name, err)
				}
			}
			pending = make(map[string]*inp.TestData)
		}
	}
}
