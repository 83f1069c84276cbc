package main

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// tracePlot saves a trace plot of the chain to a file.
func tracePlot(chain []float64, fn string) error {
	p := plot.New()
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "value"

	pts := make(plotter.XYs, len(chain))
	for i, v := range chain {
		pts[i].X = float64(i)
		pts[i].Y = v
	}

	err := plotutil.AddLines(p, "trace", pts)
	if err != nil {
		return err
	}

	return p.Save(8*vg.Inch, 4*vg.Inch, fn)
}
