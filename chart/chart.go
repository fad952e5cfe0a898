// Package chart draws codon usage tables.
package chart

import (
	"errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/diploid-siva/coor/codon"
)

// Size is the default plot size.
var Size = 6 * vg.Inch

// Values returns number of recorded and distinct codons per amino acid
// in the order of u.AminoAcids().
func Values(u codon.Usage) (recorded, distinct plotter.Values) {
	for _, aa := range u.AminoAcids() {
		codons := u[aa]
		seen := make(map[string]bool, len(codons))
		for _, c := range codons {
			seen[c] = true
		}
		recorded = append(recorded, float64(len(codons)))
		distinct = append(distinct, float64(len(seen)))
	}
	return
}

// New creates a bar chart with recorded and distinct codons for every
// amino acid.
func New(u codon.Usage, title string) (*plot.Plot, error) {
	if len(u) == 0 {
		return nil, errors.New("empty codon usage")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "amino acid"
	p.Y.Label.Text = "codons"

	recorded, distinct := Values(u)
	w := vg.Points(8)

	rb, err := plotter.NewBarChart(recorded, w)
	if err != nil {
		return nil, err
	}
	rb.Color = plotutil.Color(0)
	rb.Offset = -w / 2

	db, err := plotter.NewBarChart(distinct, w)
	if err != nil {
		return nil, err
	}
	db.Color = plotutil.Color(1)
	db.Offset = w / 2

	p.Add(rb, db)
	p.Legend.Add("recorded", rb)
	p.Legend.Add("distinct", db)
	p.Legend.Top = true

	aas := u.AminoAcids()
	names := make([]string, len(aas))
	for i, aa := range aas {
		names[i] = string(aa)
	}
	p.NominalX(names...)
	return p, nil
}

// Save draws the chart to a file, format is chosen by the extension
// (png, svg, pdf, ...).
func Save(u codon.Usage, title, fn string) error {
	p, err := New(u, title)
	if err != nil {
		return err
	}
	return p.Save(Size, Size*2/3, fn)
}
