// Package codon defines the codon value type shared by the strand and the
// machine. A codon is an ordered triplet over {A, C, G, T}; it carries an
// unsigned value in [0,63] and a signed value in [-32,31].
package codon

import (
	"fmt"
	"strings"
)

// Nucleotide is one of the four bases. The digit values A=0 C=1 G=2 T=3 make
// a codon a base-4 number with the first base most significant.
type Nucleotide byte

const (
	A Nucleotide = iota
	C
	G
	T
)

var nucChars = [4]byte{'A', 'C', 'G', 'T'}

// Char returns the letter for the base.
func (n Nucleotide) Char() byte { return nucChars[n] }

// Digit returns the base-4 digit value.
func (n Nucleotide) Digit() int { return int(n) }

// Amino reports whether the base carries an amino group (A or C).
// The flag-set instruction keys off this property.
func (n Nucleotide) Amino() bool { return n == A || n == C }

func nucFromChar(b byte) (Nucleotide, bool) {
	switch b {
	case 'A', 'a':
		return A, true
	case 'C', 'c':
		return C, true
	case 'G', 'g':
		return G, true
	case 'T', 't':
		return T, true
	}
	return 0, false
}

// Codon is a plain value; codons are copied, never aliased.
// The zero value is AAA (unsigned 0).
type Codon struct {
	X, Y, Z Nucleotide
}

// Parse builds a codon from its three-letter form, any case.
func Parse(s string) (Codon, error) {
	if len(s) != 3 {
		return Codon{}, fmt.Errorf("codon %q must be exactly 3 nucleotides", s)
	}
	var c Codon
	for i, p := range []*Nucleotide{&c.X, &c.Y, &c.Z} {
		n, ok := nucFromChar(s[i])
		if !ok {
			return Codon{}, fmt.Errorf("codon %q contains %q; only A, C, G, T are nucleotides", s, s[i])
		}
		*p = n
	}
	return c, nil
}

// MustParse is Parse for literals known to be well-formed.
func MustParse(s string) Codon {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Unsigned returns the codon's value in [0,63].
func (c Codon) Unsigned() int {
	return 16*c.X.Digit() + 4*c.Y.Digit() + c.Z.Digit()
}

// Signed returns the codon's value in [-32,31] (two's complement over 6 bits).
func (c Codon) Signed() int {
	u := c.Unsigned()
	if u < 32 {
		return u
	}
	return u - 64
}

// FromUnsigned builds the codon with the given unsigned value.
func FromUnsigned(n int) (Codon, error) {
	if n < 0 || n > 63 {
		return Codon{}, fmt.Errorf("value %d outside unsigned codon range [0,63]", n)
	}
	return Codon{
		X: Nucleotide(n / 16),
		Y: Nucleotide(n % 16 / 4),
		Z: Nucleotide(n % 4),
	}, nil
}

// FromSigned builds the codon with the given signed value.
func FromSigned(n int) (Codon, error) {
	if n < -32 || n > 31 {
		return Codon{}, fmt.Errorf("value %d outside signed codon range [-32,31]", n)
	}
	if n < 0 {
		n += 64
	}
	return FromUnsigned(n)
}

// AddSigned returns the codon whose unsigned value is the receiver's plus s,
// wrapped modulo 64.
func (c Codon) AddSigned(s int) Codon {
	v := (c.Unsigned() + s) % 64
	if v < 0 {
		v += 64
	}
	out, _ := FromUnsigned(v)
	return out
}

func (c Codon) String() string {
	return string([]byte{c.X.Char(), c.Y.Char(), c.Z.Char()})
}

// Join renders a codon sequence as space-separated triplets.
func Join(seq []Codon) string {
	parts := make([]string, len(seq))
	for i, c := range seq {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
