// Package parser turns Helix source text into a codon sequence using
// Participle v2. Only the nucleotide letters A, C, G, T (any case) are
// significant; every other character is comment and is elided by the lexer.
package parser

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/helixLang/helix/pkg/codon"
)

// Source is the top-level node: the flat run of significant nucleotides.
type Source struct {
	Nucleotides []string `@Nucleotide*`
}

// Helix lexer definition: single-nucleotide tokens, everything else comment
var helixLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Nucleotide", Pattern: `[ACGTacgt]`},
	{Name: "Comment", Pattern: `[^ACGTacgt]+`},
})

// Parser is the Helix source parser
var Parser = participle.MustBuild[Source](
	participle.Lexer(helixLexer),
	participle.Elide("Comment"),
)

// Parse parses Helix source code into a codon sequence.
func Parse(source string) ([]codon.Codon, error) {
	src, err := Parser.ParseString("", source)
	if err != nil {
		return nil, err
	}
	return src.Codons()
}

// ParseFile parses a Helix source file.
func ParseFile(filename string) ([]codon.Codon, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	src, err := Parser.ParseString(filename, string(data))
	if err != nil {
		return nil, err
	}
	return src.Codons()
}

// Codons groups the significant nucleotides into triplets. A trailing one or
// two nucleotides cannot form a codon and is a parse error.
func (s *Source) Codons() ([]codon.Codon, error) {
	if rem := len(s.Nucleotides) % 3; rem != 0 {
		return nil, fmt.Errorf("%d nucleotide(s) left over; codons are triplets", rem)
	}
	out := make([]codon.Codon, 0, len(s.Nucleotides)/3)
	for i := 0; i < len(s.Nucleotides); i += 3 {
		c, err := codon.Parse(s.Nucleotides[i] + s.Nucleotides[i+1] + s.Nucleotides[i+2])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
