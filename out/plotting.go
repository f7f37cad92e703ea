// Copyright 2026 The Mechanical-Testing Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/lucasguesserts/mechanical-testing/tensile"
)

// Config holds explicit plot configuration. All figure settings travel with
// this structure; nothing is configured process-wide.
type Config struct {
	DirOut      string  // output directory
	WidthPt     float64 // figure width [pt]
	Prop        float64 // height/width proportion
	Dpi         int     // figure resolution
	Fsz         float64 // font size of tick labels
	FszLbl      float64 // font size of axis labels
	FszLeg      float64 // font size of legend
	StrainScale float64 // strain scaling for the axes; e.g. 100 for [%]
	StrainUnit  string  // strain unit label after scaling
	StressScale float64 // stress scaling for the axes; e.g. 1e-6 for [MPa]
	StressUnit  string  // stress unit label after scaling
	NpFit       int     // number of samples of the hardening fit overlay
}

// NewConfig returns a plot configuration with default settings and strain in
// [%] and stress in [MPa] on the axes
func NewConfig(dirout string) (o *Config) {
	o = new(Config)
	o.DirOut = dirout
	o.WidthPt = 450
	o.Prop = 0.75
	o.Dpi = 150
	o.Fsz, o.FszLbl, o.FszLeg = 7, 9, 8
	o.StrainScale, o.StrainUnit = 100.0, "%"
	o.StressScale, o.StressUnit = 1e-6, "MPa"
	o.NpFit = 101
	return
}

// line and marker styles
var (
	blue     = color.RGBA{B: 255, A: 255}
	red      = color.RGBA{R: 255, A: 255}
	green    = color.RGBA{G: 160, A: 255}
	magenta  = color.RGBA{R: 255, B: 255, A: 255}
	grey     = color.Gray{Y: 120}
	dashed   = []vg.Length{vg.Points(6), vg.Points(3)}
	dotted   = []vg.Length{vg.Points(1.5), vg.Points(2)}
	noDashes []vg.Length
)

// newPlot starts a figure with this configuration; legend sits bottom right
func (o *Config) newPlot(xlabel, ylabel string) (p *plot.Plot) {
	p = plot.New()
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.X.Label.TextStyle.Font.Size = vg.Points(o.FszLbl)
	p.Y.Label.TextStyle.Font.Size = vg.Points(o.FszLbl)
	p.X.Tick.Label.Font.Size = vg.Points(o.Fsz)
	p.Y.Tick.Label.Font.Size = vg.Points(o.Fsz)
	p.Legend.TextStyle.Font.Size = vg.Points(o.FszLeg)
	p.Legend.Top = false
	p.Legend.Left = false
	p.Add(plotter.NewGrid())
	return
}

// addLine draws one polyline with a legend entry
func (o *Config) addLine(p *plot.Plot, x, y []float64, c color.Color, dashes []vg.Length, label string) (err error) {
	l, err := plotter.NewLine(o.xys(x, y))
	if err != nil {
		return chk.Err("cannot draw line %q: %v", label, err)
	}
	l.Color = c
	l.Width = vg.Points(1.2)
	l.Dashes = dashes
	p.Add(l)
	p.Legend.Add(label, l)
	return
}

// addPoint draws one key point with a legend entry
func (o *Config) addPoint(p *plot.Plot, x, y float64, c color.Color, shape draw.GlyphDrawer, label string) (err error) {
	s, err := plotter.NewScatter(plotter.XYs{{X: o.StrainScale * x, Y: o.StressScale * y}})
	if err != nil {
		return chk.Err("cannot draw point %q: %v", label, err)
	}
	s.GlyphStyle = draw.GlyphStyle{Color: c, Radius: vg.Points(3), Shape: shape}
	p.Add(s)
	p.Legend.Add(label, s)
	return
}

// save renders the figure to dirout/<fnkey>.png with this configuration's
// size and resolution
func (o *Config) save(p *plot.Plot, fnkey string) (err error) {
	if err = os.MkdirAll(o.DirOut, 0777); err != nil {
		return chk.Err("cannot create output directory %q: %v", o.DirOut, err)
	}
	w := vg.Points(o.WidthPt)
	h := vg.Points(o.WidthPt * o.Prop)
	cnv := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(o.Dpi))
	p.Draw(draw.New(cnv))
	path := filepath.Join(o.DirOut, fnkey+".png")
	f, err := os.Create(path)
	if err != nil {
		return chk.Err("cannot create figure file %q: %v", path, err)
	}
	defer f.Close()
	png := vgimg.PngCanvas{Canvas: cnv}
	if _, err = png.WriteTo(f); err != nil {
		return chk.Err("cannot write figure %q: %v", path, err)
	}
	return
}

// xys packs one scaled curve as plotter points
func (o *Config) xys(x, y []float64) plotter.XYs {
	xs := scaled(o.StrainScale, x)
	ys := scaled(o.StressScale, y)
	pts := make(plotter.XYs, len(xs))
	for i := 0; i < len(xs); i++ {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}

// scaled returns a copy of v times s
func scaled(s float64, v []float64) []float64 {
	res := make([]float64, len(v))
	la.VecAdd(res, s, v, 0, v)
	return res
}

// PlotCurve draws the engineering stress-strain curve of one test with the
// elastic line, the offset line and the key points; the figure is saved to
// dirout/<name>_curve.png
func PlotCurve(o *tensile.Test, cfg *Config) (err error) {
	p := cfg.newPlot(io.Sf("strain [%s]", cfg.StrainUnit), io.Sf("stress [%s]", cfg.StressUnit))
	if err = cfg.addLine(p, o.Strain, o.Stress, blue, noDashes, "engineering curve"); err != nil {
		return
	}
	if err = cfg.addLine(p, []float64{0, o.PropStrain}, []float64{0, o.E * o.PropStrain},
		grey, dashed, "elastic line"); err != nil {
		return
	}
	if err = cfg.addLine(p, []float64{o.Offset, o.YieldStrain}, []float64{0, o.E * (o.YieldStrain - o.Offset)},
		grey, dotted, io.Sf("offset line (n=%g)", o.Offset)); err != nil {
		return
	}
	if err = cfg.addPoint(p, o.PropStrain, o.PropStress, green, draw.CircleGlyph{}, "proportionality"); err != nil {
		return
	}
	if err = cfg.addPoint(p, o.YieldStrain, o.YieldStress, red, draw.CircleGlyph{}, "yield"); err != nil {
		return
	}
	if err = cfg.addPoint(p, o.UltStrain, o.UltStress, magenta, draw.BoxGlyph{}, "ultimate"); err != nil {
		return
	}
	return cfg.save(p, o.Name+"_curve")
}

// PlotReal draws the real stress-strain curve of one test with the Hollomon
// fit overlaid on the plastic range; the figure is saved to
// dirout/<name>_real.png
func PlotReal(o *tensile.Test, cfg *Config) (err error) {
	if o.Plastic.Len() < 2 {
		return chk.Err("test %q: plastic region with %d points cannot be plotted", o.Name, o.Plastic.Len())
	}
	εr, _ := tensile.EngineeringToReal(o.Plastic.Strain, o.Plastic.Stress)
	x := utl.LinSpace(εr[0], εr[len(εr)-1], cfg.NpFit)
	y := make([]float64, len(x))
	for i := 0; i < len(x); i++ {
		y[i] = o.K * math.Pow(x[i], o.N)
	}
	p := cfg.newPlot(io.Sf("real strain [%s]", cfg.StrainUnit), io.Sf("real stress [%s]", cfg.StressUnit))
	if err = cfg.addLine(p, o.RealStrain, o.RealStress, blue, noDashes, "real curve"); err != nil {
		return
	}
	if err = cfg.addLine(p, x, y, red, dashed, io.Sf("fit: %.4g strain^%.4f", o.K, o.N)); err != nil {
		return
	}
	return cfg.save(p, o.Name+"_real")
}
