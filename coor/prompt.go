package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/diploid-siva/coor/bio"
	"github.com/diploid-siva/coor/codon"
)

var errEmpty = errors.New("empty sequence")

// checkReference accepts a cleaned reference gene.
func checkReference(nseq string) error {
	if nseq == "" {
		return errEmpty
	}
	return bio.ValidateDNA(nseq)
}

// targetChecker accepts a cleaned protein which can be encoded with u.
func targetChecker(u codon.Usage) func(string) error {
	return func(prot string) error {
		if prot == "" {
			return errEmpty
		}
		return u.Validate(prot)
	}
}

// prompt asks for a sequence until check accepts it.
func prompt(sc *bufio.Scanner, w io.Writer, msg string, check func(string) error) (string, error) {
	for {
		fmt.Fprint(w, msg)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		seq := bio.Clean(sc.Text())
		if err := check(seq); err != nil {
			fmt.Fprintf(w, "Invalid input: %v. Please try again.\n", err)
			continue
		}
		return seq, nil
	}
}
