package codon

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// blank pads short codon lists in the table.
const blank = "   "

// WriteTable prints codon usage as a table: one column per amino acid,
// one row per codon occurrence. Shorter columns are padded.
func (u Usage) WriteTable(w io.Writer) error {
	aas := u.AminoAcids()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := make([]string, 0, len(aas)+1)
	header = append(header, "AA")
	for _, aa := range aas {
		header = append(header, string(aa))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	row := make([]string, len(aas)+1)
	for i := 0; i < u.MaxLen(); i++ {
		row[0] = fmt.Sprintf("%2d", i+1)
		for j, aa := range aas {
			if codons := u[aa]; i < len(codons) {
				row[j+1] = codons[i]
			} else {
				row[j+1] = blank
			}
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// Table returns codon usage table as a string.
func (u Usage) Table() string {
	var b strings.Builder
	// strings.Builder never fails
	_ = u.WriteTable(&b)
	return b.String()
}
