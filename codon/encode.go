package codon

import (
	"bytes"
	"fmt"

	"github.com/diploid-siva/coor/bio"
)

// UnknownAminoAcidError is returned when the target protein contains
// an amino acid which was never seen in the reference.
type UnknownAminoAcidError struct {
	AminoAcid byte
	// Pos is the first position of the amino acid in the target.
	Pos int
}

func (e *UnknownAminoAcidError) Error() string {
	return fmt.Sprintf("amino acid %q (position %d) not found in codon usage", e.AminoAcid, e.Pos+1)
}

// Validate checks that every amino acid of the protein can be encoded.
func (u Usage) Validate(prot string) error {
	for i := 0; i < len(prot); i++ {
		if len(u[prot[i]]) == 0 {
			return &UnknownAminoAcidError{AminoAcid: prot[i], Pos: i}
		}
	}
	return nil
}

// Encode creates a nucleotide sequence for the protein. The k-th
// occurrence of an amino acid gets the codon k mod n of its n codons
// in the usage. Nothing is returned if any amino acid is missing.
func (u Usage) Encode(prot string) (string, error) {
	if err := u.Validate(prot); err != nil {
		return "", err
	}

	cursor := make(map[byte]int, len(u))
	var buffer bytes.Buffer
	buffer.Grow(len(prot) * 3)
	for i := 0; i < len(prot); i++ {
		aa := prot[i]
		codons := u[aa]
		buffer.WriteString(codons[cursor[aa]%len(codons)])
		cursor[aa]++
	}
	return buffer.String(), nil
}

// EncodeSequences encodes every protein sequence. Each sequence starts
// from the first codon of every amino acid. Nothing is returned if
// any of the sequences cannot be encoded.
func (u Usage) EncodeSequences(prots bio.Sequences) (bio.Sequences, error) {
	res := make(bio.Sequences, 0, len(prots))
	for _, p := range prots {
		nseq, err := u.Encode(p.Sequence)
		if err != nil {
			return nil, fmt.Errorf("sequence %s: %w", p.Name, err)
		}
		res = append(res, bio.Sequence{Name: p.Name, Sequence: nseq})
	}
	return res, nil
}
