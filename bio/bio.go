// Package bio provides functions related to the genetic code and
// nucleotide/protein sequence handling.
package bio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// InvalidSequenceError is returned for a nucleotide sequence which
// contains characters other than A, T, G, C or which length is not
// divisible by three.
type InvalidSequenceError struct {
	// Length is the sequence length.
	Length int
	// Pos is the position of the offending character, or -1 if the
	// sequence length is wrong.
	Pos int
	// Char is the offending character.
	Char byte
}

func (e *InvalidSequenceError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("invalid DNA sequence: length %d is not a multiple of 3", e.Length)
	}
	return fmt.Sprintf("invalid DNA sequence: character %q at position %d is not one of A/T/G/C", e.Char, e.Pos+1)
}

// ValidateDNA checks that sequence only consists of A, T, G and C
// (capital letters) and can be split into codons.
func ValidateDNA(nseq string) error {
	for i := 0; i < len(nseq); i++ {
		switch nseq[i] {
		case 'A', 'T', 'G', 'C':
		default:
			return &InvalidSequenceError{Length: len(nseq), Pos: i, Char: nseq[i]}
		}
	}
	if len(nseq)%3 != 0 {
		return &InvalidSequenceError{Length: len(nseq), Pos: -1}
	}
	return nil
}

// Clean removes all the white space from a sequence and converts it to
// the upper case.
func Clean(seq string) string {
	return strings.ToUpper(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, seq))
}

// Translate translates nucleotide sequence using the standard genetic
// code.
func Translate(nseq string) (string, error) {
	return Standard.Translate(nseq)
}

// Sequence is a type which is intended for storing nucleotide or
// protein sequence with it's name.
type Sequence struct {
	Name     string
	Sequence string
}

// Sequences stores multiple sequences.
type Sequences []Sequence

// ParseFasta parses FASTA sequences from a reader.
func ParseFasta(rd io.Reader) (seqs Sequences, err error) {
	seqs = make(Sequences, 0, 10)
	scanner := bufio.NewScanner(rd)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			seq := Sequence{Name: strings.TrimSpace(line[1:])}
			seqs = append(seqs, seq)
		} else {
			if len(seqs) == 0 {
				return nil, errors.New("sequence w/o prefix")
			}
			seqs[len(seqs)-1].Sequence += Clean(line)
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}
	return
}

// Wrap inputs a string and wraps it so string length is n characters
// or less.
func Wrap(seq string, n int) (s string) {
	var b strings.Builder
	for i := 0; i < len(seq); i += n {
		end := i + n
		if end > len(seq) {
			end = len(seq)
		}
		b.WriteString(seq[i:end])
		b.WriteByte('\n')
	}
	return b.String()
}

// String returns a sequence in FASTA format.
func (seq Sequence) String() (s string) {
	s = ">" + seq.Name + "\n" + Wrap(seq.Sequence, 80)
	return
}

// String returns sequences in FASTA format.
func (seqs Sequences) String() (s string) {
	for _, seq := range seqs {
		s += seq.String()
	}
	return strings.TrimSuffix(s, "\n")
}
