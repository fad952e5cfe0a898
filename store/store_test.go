package store

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/diploid-siva/coor/bio"
	"github.com/diploid-siva/coor/codon"
)

func openStore(tst *testing.T) *Store {
	s, err := Open(filepath.Join(tst.TempDir(), "coor.db"))
	if err != nil {
		tst.Fatal("Error opening database:", err)
	}
	tst.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoad(tst *testing.T) {
	s := openStore(tst)
	ref := "ATGGCTGCCTAA"
	u, err := codon.FromReference(ref, bio.Standard)
	if err != nil {
		tst.Fatal(err)
	}
	if err := s.Save("ref1", &Entry{Reference: ref, GCode: 1, Usage: u}); err != nil {
		tst.Fatal("Error saving:", err)
	}
	e, err := s.Load("ref1")
	if err != nil {
		tst.Fatal("Error loading:", err)
	}
	if !reflect.DeepEqual(e.Usage, u) {
		tst.Errorf("loaded usage differs: %v != %v", e.Usage, u)
	}
	if e.Reference != ref || e.GCode != 1 {
		tst.Errorf("wrong entry: %+v", e)
	}
	if e.Saved.IsZero() {
		tst.Error("save time not set")
	}

	nseq, err := e.Usage.Encode("AAA")
	if err != nil || nseq != "GCTGCCGCT" {
		tst.Errorf("loaded usage encodes wrong: %s, %v", nseq, err)
	}
}

func TestLoadMissing(tst *testing.T) {
	s := openStore(tst)
	if _, err := s.Load("nothing"); !errors.Is(err, ErrNotFound) {
		tst.Errorf("expected not found, got %v", err)
	}
	s.Save("a", &Entry{Usage: codon.Usage{'M': {"ATG"}}})
	if _, err := s.Load("nothing"); !errors.Is(err, ErrNotFound) {
		tst.Errorf("expected not found, got %v", err)
	}
}

func TestListDelete(tst *testing.T) {
	s := openStore(tst)
	names, err := s.List()
	if err != nil || len(names) != 0 {
		tst.Errorf("expected empty list, got %v, %v", names, err)
	}
	for _, n := range []string{"b", "a", "c"} {
		if err := s.Save(n, &Entry{Usage: codon.Usage{'M': {"ATG"}}}); err != nil {
			tst.Fatal(err)
		}
	}
	names, err = s.List()
	if err != nil {
		tst.Fatal(err)
	}
	if !reflect.DeepEqual(names, []string{"a", "b", "c"}) {
		tst.Errorf("wrong names: %v", names)
	}
	if err := s.Delete("b"); err != nil {
		tst.Fatal(err)
	}
	if err := s.Delete("b"); !errors.Is(err, ErrNotFound) {
		tst.Errorf("expected not found, got %v", err)
	}
	names, _ = s.List()
	if !reflect.DeepEqual(names, []string{"a", "c"}) {
		tst.Errorf("wrong names after delete: %v", names)
	}
}

func TestSaveEmptyName(tst *testing.T) {
	s := openStore(tst)
	if err := s.Save("", &Entry{Usage: codon.Usage{'M': {"ATG"}}}); err == nil {
		tst.Error("expected error for empty name")
	}
}
