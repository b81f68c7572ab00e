package machine

import (
	"errors"
	"testing"

	"github.com/helixLang/helix/pkg/codon"
)

func seq(texts ...string) []codon.Codon {
	out := make([]codon.Codon, len(texts))
	for i, t := range texts {
		out[i] = codon.MustParse(t)
	}
	return out
}

func TestStrandGetSet(t *testing.T) {
	s := NewStrand(seq("ATG", "AAA", "TGA"))

	c, err := s.Get(1)
	if err != nil || c != codon.MustParse("AAA") {
		t.Fatalf("Get(1) = %s, %v", c, err)
	}

	if err := s.Set(1, codon.MustParse("GGG")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if s.String() != "ATG GGG TGA" {
		t.Errorf("after Set: %s", s)
	}

	for _, i := range []int{-1, 3} {
		if _, err := s.Get(i); !errors.Is(err, ErrAddress) {
			t.Errorf("Get(%d) error = %v, want ErrAddress", i, err)
		}
		if err := s.Set(i, codon.Codon{}); !errors.Is(err, ErrAddress) {
			t.Errorf("Set(%d) error = %v, want ErrAddress", i, err)
		}
	}
}

func TestStrandInsertDelete(t *testing.T) {
	s := NewStrand(seq("ATG", "TGA"))

	if err := s.Insert(1, codon.MustParse("AAA")); err != nil {
		t.Fatal(err)
	}
	if s.String() != "ATG AAA TGA" {
		t.Errorf("after insert: %s", s)
	}

	// i == len appends
	if err := s.Insert(3, codon.MustParse("GGG")); err != nil {
		t.Fatal(err)
	}
	if s.String() != "ATG AAA TGA GGG" {
		t.Errorf("after append: %s", s)
	}

	if err := s.Insert(5, codon.Codon{}); !errors.Is(err, ErrAddress) {
		t.Errorf("Insert past len: %v", err)
	}

	if err := s.Delete(1); err != nil {
		t.Fatal(err)
	}
	if s.String() != "ATG TGA GGG" {
		t.Errorf("after delete: %s", s)
	}
	if err := s.Delete(3); !errors.Is(err, ErrAddress) {
		t.Errorf("Delete past len: %v", err)
	}
	if err := s.Delete(-1); !errors.Is(err, ErrAddress) {
		t.Errorf("Delete(-1): %v", err)
	}
}

func TestStrandCopyRangeSplice(t *testing.T) {
	s := NewStrand(seq("ATG", "AAA", "GGG", "TGA"))

	block, err := s.CopyRange(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if codon.Join(block) != "AAA GGG" {
		t.Errorf("CopyRange = %s", codon.Join(block))
	}

	// the copy is owned; mutating the strand must not change it
	if err := s.Set(1, codon.MustParse("TTT")); err != nil {
		t.Fatal(err)
	}
	if codon.Join(block) != "AAA GGG" {
		t.Errorf("CopyRange aliases the strand: %s", codon.Join(block))
	}

	if _, err := s.CopyRange(3, 2); !errors.Is(err, ErrAddress) {
		t.Errorf("CopyRange overrun: %v", err)
	}
	if _, err := s.CopyRange(-1, 1); !errors.Is(err, ErrAddress) {
		t.Errorf("CopyRange negative: %v", err)
	}

	if err := s.Splice(4, block); err != nil {
		t.Fatal(err)
	}
	if s.String() != "ATG TTT GGG TGA AAA GGG" {
		t.Errorf("after splice: %s", s)
	}
	if err := s.Splice(9, block); !errors.Is(err, ErrAddress) {
		t.Errorf("Splice past len: %v", err)
	}
}

func TestStrandReverse(t *testing.T) {
	s := NewStrand(seq("ATG", "AAA", "CCC", "GGG", "TGA"))

	if err := s.Reverse(1, 3); err != nil {
		t.Fatal(err)
	}
	if s.String() != "ATG GGG CCC AAA TGA" {
		t.Errorf("after reverse: %s", s)
	}

	// involution
	if err := s.Reverse(1, 3); err != nil {
		t.Fatal(err)
	}
	if s.String() != "ATG AAA CCC GGG TGA" {
		t.Errorf("reverse twice: %s", s)
	}

	if err := s.Reverse(3, 3); !errors.Is(err, ErrAddress) {
		t.Errorf("Reverse overrun: %v", err)
	}
}

func TestStrandFind(t *testing.T) {
	s := NewStrand(seq("AAA", "ATG", "ATG", "TGA"))
	if i := s.Find(codon.MustParse("ATG")); i != 1 {
		t.Errorf("Find(ATG) = %d, want 1", i)
	}
	if i := s.Find(codon.MustParse("GGG")); i != -1 {
		t.Errorf("Find(GGG) = %d, want -1", i)
	}
}
