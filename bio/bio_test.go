package bio

import (
	"bytes"
	"errors"
	"testing"
)

func TestTranslate(tst *testing.T) {
	prot, err := Translate("ATGGCTGCCTAA")
	if err != nil {
		tst.Fatal("Error translating:", err)
	}
	if prot != "MAA*" {
		tst.Errorf("wrong translation: %s", prot)
	}
}

func TestTranslateInternalStop(tst *testing.T) {
	prot, err := Translate("ATGTAAGGGTGA")
	if err != nil {
		tst.Fatal("Error translating:", err)
	}
	if prot != "M*G*" {
		tst.Errorf("wrong translation: %s", prot)
	}
}

func TestTranslateLength(tst *testing.T) {
	for _, seq := range []string{"", "ATG", "ATGGCCATTGTAATGGGCCGCTGAAAGGGTGCCCGATAG"} {
		prot, err := Translate(seq)
		if err != nil {
			tst.Error("Error translating", seq, err)
			continue
		}
		if len(prot)*3 != len(seq) {
			tst.Errorf("translation of %s has %d amino acids", seq, len(prot))
		}
	}
}

func TestTranslateInvalid(tst *testing.T) {
	cases := []struct {
		seq string
		pos int
	}{
		{"ATGA", -1},
		{"ATGNNN", 3},
		{"atg", 0},
		{"AUG", 1},
		{"ATG CCC", 3},
	}
	for _, c := range cases {
		prot, err := Translate(c.seq)
		if err == nil {
			tst.Errorf("expected error for %q, got %q", c.seq, prot)
			continue
		}
		var ierr *InvalidSequenceError
		if !errors.As(err, &ierr) {
			tst.Errorf("wrong error type for %q: %v", c.seq, err)
			continue
		}
		if ierr.Pos != c.pos {
			tst.Errorf("wrong error position for %q: %d (expected %d)", c.seq, ierr.Pos, c.pos)
		}
		if prot != "" {
			tst.Errorf("partial translation returned for %q", c.seq)
		}
	}
}

func TestTranslateDeterministic(tst *testing.T) {
	seq := "ATGGCCATTGTAATGGGCCGCTGAAAGGGTGCCCGATAG"
	p1, _ := Translate(seq)
	p2, _ := Translate(seq)
	if p1 != p2 {
		tst.Error("translations differ")
	}
	if p1 != "MAIVMGR*KGAR*" {
		tst.Errorf("wrong translation: %s", p1)
	}
}

func TestGeneticCodes(tst *testing.T) {
	for id, gc := range GeneticCodes {
		if gc.ID != id {
			tst.Errorf("genetic code %d has id %d", id, gc.ID)
		}
		if len(gc.Map) != 64 {
			tst.Errorf("genetic code %d has %d codons", id, len(gc.Map))
		}
		n := 0
		for _, codons := range gc.ReverseMap {
			n += len(codons)
		}
		if n != 64 {
			tst.Errorf("genetic code %d reverse map has %d codons", id, n)
		}
		if !gc.IsStartCodon("ATG") {
			tst.Errorf("ATG is not a start codon in genetic code %d", id)
		}
		if !gc.IsStopCodon("TAA") {
			tst.Errorf("TAA is not a stop codon in genetic code %d", id)
		}
	}
}

func TestVertebrateMito(tst *testing.T) {
	gc := GeneticCodes[2]
	prot, err := gc.Translate("TGAAGAATA")
	if err != nil {
		tst.Fatal(err)
	}
	if prot != "W*M" {
		tst.Errorf("wrong translation: %s", prot)
	}
}

func TestStartCodon(tst *testing.T) {
	if !Standard.IsStartCodon("TTG") {
		tst.Error("TTG should be a start codon")
	}
	if Standard.IsStartCodon("GCT") {
		tst.Error("GCT is not a start codon")
	}
	if Standard.IsStartCodon("AT") || Standard.IsStartCodon("NNN") {
		tst.Error("malformed codon reported as start codon")
	}
}

func TestClean(tst *testing.T) {
	if s := Clean(" atg gcc\n\ttaa \r\n"); s != "ATGGCCTAA" {
		tst.Errorf("wrong clean sequence: %q", s)
	}
}

func TestParseFasta(tst *testing.T) {
	buf := bytes.NewBufferString(">seq1 first\natg gcc\nTAA\n\n>seq2\nMAA\n")
	seqs, err := ParseFasta(buf)
	if err != nil {
		tst.Fatal("Error parsing fasta:", err)
	}
	if len(seqs) != 2 {
		tst.Fatalf("expected 2 sequences, got %d", len(seqs))
	}
	if seqs[0].Name != "seq1 first" || seqs[0].Sequence != "ATGGCCTAA" {
		tst.Errorf("wrong first sequence: %v", seqs[0])
	}
	if seqs[1].Name != "seq2" || seqs[1].Sequence != "MAA" {
		tst.Errorf("wrong second sequence: %v", seqs[1])
	}
}

func TestParseFastaNoPrefix(tst *testing.T) {
	_, err := ParseFasta(bytes.NewBufferString("ATG\n>seq\nATG\n"))
	if err == nil {
		tst.Error("expected error for a sequence w/o prefix")
	}
}

func TestWrap(tst *testing.T) {
	if s := Wrap("ABCDEFG", 3); s != "ABC\nDEF\nG\n" {
		tst.Errorf("wrong wrap: %q", s)
	}
	seqs := Sequences{{Name: "a", Sequence: "ATG"}, {Name: "b", Sequence: "GCC"}}
	if s := seqs.String(); s != ">a\nATG\n>b\nGCC" {
		tst.Errorf("wrong fasta: %q", s)
	}
}
