package machine

import (
	"fmt"
	"slices"

	"github.com/helixLang/helix/pkg/codon"
)

// Strand is the mutable codon sequence that is simultaneously program and
// data. It is owned by one VM for the duration of a run; every
// self-modification is routed through these methods, which check bounds
// before touching anything.
type Strand struct {
	codons []codon.Codon
}

// NewStrand copies seq into a fresh strand.
func NewStrand(seq []codon.Codon) *Strand {
	return &Strand{codons: slices.Clone(seq)}
}

// Len returns the current number of codons.
func (s *Strand) Len() int { return len(s.codons) }

// Get returns the codon at position i.
func (s *Strand) Get(i int) (codon.Codon, error) {
	if i < 0 || i >= len(s.codons) {
		return codon.Codon{}, fmt.Errorf("%w: get %d of %d", ErrAddress, i, len(s.codons))
	}
	return s.codons[i], nil
}

// Set overwrites the codon at position i.
func (s *Strand) Set(i int, c codon.Codon) error {
	if i < 0 || i >= len(s.codons) {
		return fmt.Errorf("%w: set %d of %d", ErrAddress, i, len(s.codons))
	}
	s.codons[i] = c
	return nil
}

// Insert places c before position i; i == Len() appends.
func (s *Strand) Insert(i int, c codon.Codon) error {
	if i < 0 || i > len(s.codons) {
		return fmt.Errorf("%w: insert %d of %d", ErrAddress, i, len(s.codons))
	}
	s.codons = slices.Insert(s.codons, i, c)
	return nil
}

// Delete removes the codon at position i.
func (s *Strand) Delete(i int) error {
	if i < 0 || i >= len(s.codons) {
		return fmt.Errorf("%w: delete %d of %d", ErrAddress, i, len(s.codons))
	}
	s.codons = slices.Delete(s.codons, i, i+1)
	return nil
}

// CopyRange returns an owned copy of the n codons starting at start.
func (s *Strand) CopyRange(start, n int) ([]codon.Codon, error) {
	if start < 0 || n < 0 || start+n > len(s.codons) {
		return nil, fmt.Errorf("%w: range [%d,%d) of %d", ErrAddress, start, start+n, len(s.codons))
	}
	return slices.Clone(s.codons[start : start+n]), nil
}

// Splice inserts seq before position at.
func (s *Strand) Splice(at int, seq []codon.Codon) error {
	if at < 0 || at > len(s.codons) {
		return fmt.Errorf("%w: splice %d of %d", ErrAddress, at, len(s.codons))
	}
	s.codons = slices.Insert(s.codons, at, seq...)
	return nil
}

// Reverse flips the block [start, start+n) in place.
func (s *Strand) Reverse(start, n int) error {
	if start < 0 || n < 0 || start+n > len(s.codons) {
		return fmt.Errorf("%w: reverse [%d,%d) of %d", ErrAddress, start, start+n, len(s.codons))
	}
	slices.Reverse(s.codons[start : start+n])
	return nil
}

// Find returns the index of the first occurrence of c, or -1.
func (s *Strand) Find(c codon.Codon) int {
	return slices.Index(s.codons, c)
}

// Codons returns an owned copy of the whole strand.
func (s *Strand) Codons() []codon.Codon {
	return slices.Clone(s.codons)
}

func (s *Strand) String() string {
	return codon.Join(s.codons)
}

// deleteRange removes the block [start, start+n). Callers have already
// validated the range.
func (s *Strand) deleteRange(start, n int) {
	s.codons = slices.Delete(s.codons, start, start+n)
}
