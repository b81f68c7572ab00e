package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/helixLang/helix/pkg/codon"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"plain", "ATGTGA", "ATG TGA"},
		{"whitespace", "ATG  TGA\n", "ATG TGA"},
		{"lowercase", "atg tga", "ATG TGA"},
		{"mixed case", "AtG tGa", "ATG TGA"},
		{"split triplet", "AT G TG A", "ATG TGA"},
		{"comments", "-- 1: \nATG\n-- 2: \nTGA", "ATG TGA"},
		{"comment only", "-- silly me! 123 --", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := Parse(tt.source)
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}
			if got := codon.Join(seq); got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestParseTrailingNucleotides(t *testing.T) {
	for _, source := range []string{"ATGT", "ATG TG", "A"} {
		if _, err := Parse(source); err == nil {
			t.Errorf("Parse(%q) accepted a partial triplet", source)
		}
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.helix")
	if err := os.WriteFile(path, []byte("ATG AAA AAA GTA TGA\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	seq, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if got := codon.Join(seq); got != "ATG AAA AAA GTA TGA" {
		t.Errorf("ParseFile = %q", got)
	}

	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.helix")); err == nil {
		t.Error("ParseFile on a missing file should fail")
	}
}
