package bio

import (
	"fmt"
	"strings"
)

// Alphabet is the nucleotide alphabet in the NCBI codon order.
const Alphabet = "TCAG"

// StopSymbol is the amino acid symbol used for stop codons.
const StopSymbol = '*'

// GeneticCode is a single translation table.
type GeneticCode struct {
	ID        int
	Name      string
	ShortName string
	// Ncbieaa lists amino acids for all 64 codons in TCAG order.
	Ncbieaa string
	// Sncbieaa marks start codons with 'M'.
	Sncbieaa string
	// Map is codon (capital letters) to amino acid.
	Map map[string]byte
	// ReverseMap is amino acid to all of its codons.
	ReverseMap map[byte][]string
}

// newGeneticCode creates a genetic code from NCBI strings.
func newGeneticCode(id int, name, shortName, ncbieaa, sncbieaa string) *GeneticCode {
	gc := &GeneticCode{
		ID:         id,
		Name:       name,
		ShortName:  shortName,
		Ncbieaa:    ncbieaa,
		Sncbieaa:   sncbieaa,
		Map:        make(map[string]byte, 64),
		ReverseMap: make(map[byte][]string, 21),
	}
	for i, codon := range Codons() {
		aa := ncbieaa[i]
		gc.Map[codon] = aa
		gc.ReverseMap[aa] = append(gc.ReverseMap[aa], codon)
	}
	return gc
}

// Codons returns all 64 codons in TCAG order.
func Codons() []string {
	codons := make([]string, 0, 64)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				codons = append(codons, string([]byte{Alphabet[i], Alphabet[j], Alphabet[k]}))
			}
		}
	}
	return codons
}

// codonIndex returns position of a codon in the NCBI strings or -1.
func codonIndex(codon string) int {
	if len(codon) != 3 {
		return -1
	}
	idx := 0
	for i := 0; i < 3; i++ {
		n := strings.IndexByte(Alphabet, codon[i])
		if n < 0 {
			return -1
		}
		idx = idx*4 + n
	}
	return idx
}

// String returns a short description of a genetic code.
func (gc *GeneticCode) String() string {
	return fmt.Sprintf("<GC: Name=\"%s\", ShortName=\"%s\", Id=%d>",
		gc.Name, gc.ShortName, gc.ID)
}

// IsStopCodon tests if the string is a stop-codon (DNA alphabet,
// capital letters).
func (gc *GeneticCode) IsStopCodon(codon string) bool {
	return gc.Map[codon] == StopSymbol
}

// IsStartCodon tests if the codon can initiate translation.
func (gc *GeneticCode) IsStartCodon(codon string) bool {
	idx := codonIndex(codon)
	if idx < 0 {
		return false
	}
	return gc.Sncbieaa[idx] == 'M'
}

// Translate translates nucleotide sequence string into the protein
// string. Stop codons are translated into StopSymbol wherever they
// are, the translation does not stop on them.
func (gc *GeneticCode) Translate(nseq string) (string, error) {
	if err := ValidateDNA(nseq); err != nil {
		return "", err
	}

	prot := make([]byte, len(nseq)/3)
	for i := 0; i < len(nseq); i += 3 {
		prot[i/3] = gc.Map[nseq[i:i+3]]
	}
	return string(prot), nil
}

// Standard is the standard genetic code (NCBI id 1).
var Standard = GeneticCodes[1]

// GeneticCodes is a map holding genetic codes by NCBI id.
var GeneticCodes = map[int]*GeneticCode{
	1: newGeneticCode(1,
		"Standard",
		"SGC0",
		"FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"---M------**--*----M---------------M----------------------------"),
	2: newGeneticCode(2,
		"Vertebrate Mitochondrial",
		"SGC1",
		"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNKKSS**VVVVAAAADDEEGGGG",
		"----------**--------------------MMMM----------**---M------------"),
	3: newGeneticCode(3,
		"Yeast Mitochondrial",
		"SGC2",
		"FFLLSSSSYY**CCWWTTTTPPPPHHQQRRRRIIMMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"----------**----------------------MM----------------------------"),
	4: newGeneticCode(4,
		"Mold Mitochondrial; Protozoan Mitochondrial; Coelenterate Mitochondrial; Mycoplasma; Spiroplasma",
		"SGC3",
		"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"--MM------**-------M------------MMMM---------------M------------"),
	5: newGeneticCode(5,
		"Invertebrate Mitochondrial",
		"SGC4",
		"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNKKSSSSVVVVAAAADDEEGGGG",
		"---M------**--------------------MMMM---------------M------------"),
	11: newGeneticCode(11,
		"Bacterial, Archaeal and Plant Plastid",
		"",
		"FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"---M------**--*----M------------MMMM---------------M------------"),
}
