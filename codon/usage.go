// Package codon records codon usage of a reference gene and replays it
// to encode other proteins.
package codon

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/diploid-siva/coor/bio"
)

// MismatchError is returned when a protein sequence doesn't correspond
// to a nucleotide sequence.
type MismatchError struct {
	NucleotideLength int
	ProteinLength    int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("protein length %d doesn't match nucleotide length %d (expected %d amino acids)",
		e.ProteinLength, e.NucleotideLength, e.NucleotideLength/3)
}

// Usage maps an amino acid to the codons encoding it in the reference,
// in the order of appearance. Codons are not deduplicated.
type Usage map[byte][]string

// Record builds codon usage from a nucleotide sequence and its
// translation. nseq is expected to be a valid DNA sequence.
func Record(nseq, prot string) (Usage, error) {
	if len(nseq)%3 != 0 || len(prot)*3 != len(nseq) {
		return nil, &MismatchError{NucleotideLength: len(nseq), ProteinLength: len(prot)}
	}
	u := make(Usage)
	for i := 0; i < len(nseq); i += 3 {
		aa := prot[i/3]
		u[aa] = append(u[aa], nseq[i:i+3])
	}
	return u, nil
}

// FromReference translates a reference gene using the genetic code and
// records its codon usage.
func FromReference(nseq string, gcode *bio.GeneticCode) (Usage, error) {
	prot, err := gcode.Translate(nseq)
	if err != nil {
		return nil, err
	}
	return Record(nseq, prot)
}

// AminoAcids returns sorted amino acids present in the usage.
func (u Usage) AminoAcids() []byte {
	aas := make([]byte, 0, len(u))
	for aa := range u {
		aas = append(aas, aa)
	}
	sort.Slice(aas, func(i, j int) bool { return aas[i] < aas[j] })
	return aas
}

// Len returns the total number of codons recorded.
func (u Usage) Len() (n int) {
	for _, codons := range u {
		n += len(codons)
	}
	return
}

// MaxLen returns the length of the longest codon list.
func (u Usage) MaxLen() (n int) {
	for _, codons := range u {
		if len(codons) > n {
			n = len(codons)
		}
	}
	return
}

// Codons returns codons recorded for the amino acid.
func (u Usage) Codons(aa byte) ([]string, bool) {
	codons, ok := u[aa]
	return codons, ok
}

// String returns a compact representation of codon usage.
func (u Usage) String() (s string) {
	s = "<Usage:"
	for _, aa := range u.AminoAcids() {
		s += fmt.Sprintf(" %c: %v,", aa, u[aa])
	}
	s = s[:len(s)-1] + ">"
	return
}

// MarshalJSON encodes usage as an object with one-letter keys.
func (u Usage) MarshalJSON() ([]byte, error) {
	m := make(map[string][]string, len(u))
	for aa, codons := range u {
		m[string(aa)] = codons
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes usage and checks the codons.
func (u *Usage) UnmarshalJSON(b []byte) error {
	var m map[string][]string
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	res := make(Usage, len(m))
	for k, codons := range m {
		if len(k) != 1 {
			return fmt.Errorf("bad amino acid key %q", k)
		}
		if len(codons) == 0 {
			return fmt.Errorf("no codons for amino acid %s", k)
		}
		for _, c := range codons {
			if len(c) != 3 {
				return fmt.Errorf("bad codon %q for amino acid %s", c, k)
			}
			if err := bio.ValidateDNA(c); err != nil {
				return fmt.Errorf("bad codon for amino acid %s: %w", k, err)
			}
		}
		res[k[0]] = codons
	}
	*u = res
	return nil
}
