// Package machine implements the Helix virtual machine: the mutable codon
// strand, the opcode decoder, the I/O ports, and the fetch/execute loop.
package machine

import "github.com/helixLang/helix/pkg/codon"

// Kind is the instruction selected by an opcode codon.
type Kind int

const (
	KindUnknown Kind = iota

	// Program control
	KindStart
	KindStop

	// Self-modification
	KindMut
	KindDel
	KindIns
	KindDup
	KindTrp
	KindRev

	// Data and arithmetic
	KindLdi
	KindLdf
	KindLd
	KindSt
	KindAddi
	KindCmp
	KindSetf

	// I/O
	KindOut
	KindIn
)

var kindNames = [...]string{
	"???",
	"START", "STOP",
	"MUT", "DEL", "INS", "DUP", "TRP", "REV",
	"LDI", "LDF", "LD", "ST", "ADDI", "CMP", "SETF",
	"OUT", "IN",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[0]
	}
	return kindNames[k]
}

// OpInfo describes an instruction: how many parameter codons follow the
// opcode and whether those parameters use the signed reading.
type OpInfo struct {
	Kind   Kind
	Arity  int
	Signed bool
}

// opTable maps a codon's unsigned value to its instruction. Codons absent
// from the source table decode to KindUnknown.
var opTable [64]OpInfo

func init() {
	for text, info := range map[string]OpInfo{
		"ATG": {KindStart, 0, false},
		"TGA": {KindStop, 0, false},

		"CAG": {KindMut, 2, false},
		"CTT": {KindDel, 1, false},
		"CTA": {KindIns, 2, false},
		"CCA": {KindDup, 2, false},
		"CCG": {KindTrp, 3, false},
		"CCC": {KindRev, 2, false},

		"AAA": {KindLdi, 1, false},
		"AGT": {KindLdf, 0, false},
		"AAG": {KindLd, 1, true},
		"AAC": {KindSt, 1, true},
		"AAT": {KindAddi, 1, true},
		"ATA": {KindCmp, 1, false},
		"TAT": {KindSetf, 1, false},

		"GTA": {KindOut, 0, false},
		"GAT": {KindIn, 0, false},
	} {
		opTable[codon.MustParse(text).Unsigned()] = info
	}
}

// Decode looks up the instruction an opcode codon selects.
func Decode(c codon.Codon) OpInfo {
	return opTable[c.Unsigned()]
}

// startCodon marks where execution begins.
var startCodon = codon.MustParse("ATG")
