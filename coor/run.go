package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/diploid-siva/coor/bio"
	"github.com/diploid-siva/coor/chart"
	"github.com/diploid-siva/coor/codon"
	"github.com/diploid-siva/coor/store"
)

// config holds all the run settings.
type config struct {
	Reference     string
	ReferenceFile string
	Target        string
	TargetFile    string
	Interactive   bool
	GCode         int

	DB     string
	Load   string
	Save   string
	List   bool
	Delete string

	Output  string
	Plot    string
	NoTable bool
}

// readFasta reads all the sequences from a FASTA file.
func readFasta(fn string) (bio.Sequences, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	seqs, err := bio.ParseFasta(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	if len(seqs) == 0 {
		return nil, fmt.Errorf("%s: no sequences found", fn)
	}
	return seqs, nil
}

// getReference returns the cleaned reference gene.
func getReference(cfg config, sc *bufio.Scanner, w io.Writer) (string, error) {
	var nseq string
	switch {
	case cfg.Reference != "" && cfg.ReferenceFile != "":
		return "", errors.New("specify either reference sequence or reference file")
	case cfg.Reference != "":
		nseq = bio.Clean(cfg.Reference)
	case cfg.ReferenceFile != "":
		seqs, err := readFasta(cfg.ReferenceFile)
		if err != nil {
			return "", err
		}
		if len(seqs) > 1 {
			log.Warningf("%d sequences in %s, using the first one (%s)", len(seqs), cfg.ReferenceFile, seqs[0].Name)
		}
		nseq = seqs[0].Sequence
	case sc != nil:
		return prompt(sc, w, "Enter the DNA sequence of Protein 1 (reference): ", checkReference)
	default:
		return "", errors.New("no reference sequence")
	}
	if err := checkReference(nseq); err != nil {
		return "", fmt.Errorf("reference: %w", err)
	}
	return nseq, nil
}

// getTargets returns cleaned target proteins.
func getTargets(cfg config, u codon.Usage, sc *bufio.Scanner, w io.Writer) (bio.Sequences, error) {
	switch {
	case cfg.Target != "" && cfg.TargetFile != "":
		return nil, errors.New("specify either target sequence or target file")
	case cfg.Target != "":
		return bio.Sequences{{Name: "target", Sequence: bio.Clean(cfg.Target)}}, nil
	case cfg.TargetFile != "":
		return readFasta(cfg.TargetFile)
	case sc != nil:
		prot, err := prompt(sc, w, "Enter the amino acid sequence of Protein 2 (target): ", targetChecker(u))
		if err != nil {
			return nil, err
		}
		return bio.Sequences{{Name: "target", Sequence: prot}}, nil
	}
	return nil, errors.New("no target sequence")
}

// listUsage prints names of all the stored codon usage tables.
func listUsage(cfg config, w io.Writer) error {
	s, err := store.Open(cfg.DB)
	if err != nil {
		return err
	}
	defer s.Close()
	names, err := s.List()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
	return nil
}

// deleteUsage removes a stored codon usage table.
func deleteUsage(cfg config, w io.Writer) error {
	s, err := store.Open(cfg.DB)
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.Delete(cfg.Delete); err != nil {
		return err
	}
	fmt.Fprintf(w, "Deleted codon usage: %s\n", cfg.Delete)
	return nil
}

// saveUsage stores codon usage recorded from the reference.
func saveUsage(cfg config, e *store.Entry) error {
	s, err := store.Open(cfg.DB)
	if err != nil {
		return err
	}
	defer s.Close()
	return s.Save(cfg.Save, e)
}

// getUsage returns codon usage either from the database or recorded
// from the reference.
func getUsage(cfg config, gcode *bio.GeneticCode, sc *bufio.Scanner, w io.Writer, summary *Summary) (codon.Usage, error) {
	if cfg.Load != "" {
		if cfg.Reference != "" || cfg.ReferenceFile != "" {
			return nil, errors.New("reference can't be used together with loading codon usage")
		}
		if cfg.Save != "" {
			return nil, errors.New("codon usage can be either loaded or saved")
		}
		s, err := store.Open(cfg.DB)
		if err != nil {
			return nil, err
		}
		defer s.Close()
		e, err := s.Load(cfg.Load)
		if err != nil {
			return nil, err
		}
		if e.GCode != gcode.ID {
			log.Warningf("Codon usage %q was recorded with genetic code %d", cfg.Load, e.GCode)
		}
		summary.UsageName = cfg.Load
		return e.Usage, nil
	}

	nseq, err := getReference(cfg, sc, w)
	if err != nil {
		return nil, err
	}
	log.Infof("Reference gene: %d nucleotides, %d codons", len(nseq), len(nseq)/3)
	if !gcode.IsStartCodon(nseq[:3]) {
		log.Warningf("Reference doesn't start with a start codon (%s)", nseq[:3])
	}
	if !gcode.IsStopCodon(nseq[len(nseq)-3:]) {
		log.Warningf("Reference doesn't end with a stop codon (%s)", nseq[len(nseq)-3:])
	}

	u, err := codon.FromReference(nseq, gcode)
	if err != nil {
		return nil, err
	}
	log.Debug(u)
	summary.Reference = nseq
	return u, nil
}

// run performs the codon optimization. Summary is nil if nothing was
// encoded (e.g. only listing was requested).
func run(cfg config, in io.Reader, w io.Writer) (*Summary, error) {
	if cfg.List {
		return nil, listUsage(cfg, w)
	}
	if cfg.Delete != "" {
		return nil, deleteUsage(cfg, w)
	}

	gcode, ok := bio.GeneticCodes[cfg.GCode]
	if !ok {
		return nil, fmt.Errorf("couldn't load genetic code with id=%d", cfg.GCode)
	}
	log.Infof("Genetic code: %d, \"%s\"", gcode.ID, gcode.Name)

	var sc *bufio.Scanner
	if cfg.Interactive {
		sc = bufio.NewScanner(in)
	}

	summary := &Summary{GCode: gcode.ID}

	u, err := getUsage(cfg, gcode, sc, w, summary)
	if err != nil {
		return nil, err
	}
	summary.Usage = u

	if !cfg.NoTable {
		fmt.Fprintln(w, "\nCodon Database (Amino Acids vs Codons):")
		if err := u.WriteTable(w); err != nil {
			return nil, err
		}
	}

	prots, err := getTargets(cfg, u, sc, w)
	if err != nil {
		return nil, err
	}
	for _, p := range prots {
		if p.Sequence == "" {
			return nil, fmt.Errorf("target %s: %w", p.Name, errEmpty)
		}
	}
	log.Infof("Encoding %d protein(s)", len(prots))

	nseqs, err := u.EncodeSequences(prots)
	if err != nil {
		return nil, err
	}

	for i, nseq := range nseqs {
		if len(nseqs) > 1 {
			fmt.Fprintf(w, "\nOptimized DNA Sequence (%s):\n", nseq.Name)
		} else {
			fmt.Fprintln(w, "\nOptimized DNA Sequence:")
		}
		fmt.Fprintln(w, nseq.Sequence)
		fmt.Fprintf(w, "Length: %d nucleotides\n", len(nseq.Sequence))
		summary.Results = append(summary.Results, Result{
			Name:     nseq.Name,
			Protein:  prots[i].Sequence,
			Sequence: nseq.Sequence,
			Length:   len(nseq.Sequence),
		})
	}

	if cfg.Output != "" {
		err = os.WriteFile(cfg.Output, []byte(nseqs.String()+"\n"), 0666)
		if err != nil {
			return nil, fmt.Errorf("writing output: %w", err)
		}
		fmt.Fprintf(w, "\nOutput saved to: %s\n", cfg.Output)
	}

	if cfg.Plot != "" {
		if err := chart.Save(u, "Codon usage", cfg.Plot); err != nil {
			return nil, fmt.Errorf("saving plot: %w", err)
		}
		log.Infof("Codon usage chart saved to %s", cfg.Plot)
	}

	// the usage is stored only when the whole run succeeded
	if cfg.Save != "" {
		err = saveUsage(cfg, &store.Entry{Reference: summary.Reference, GCode: gcode.ID, Usage: u})
		if err != nil {
			return nil, err
		}
		summary.UsageName = cfg.Save
	}

	return summary, nil
}
