package machine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/helixLang/helix/pkg/codon"
)

// FaultKind classifies the fatal errors a running strand can raise.
// Faults are never caught by the program; they abort the run.
type FaultKind int

const (
	FaultUnknownOpcode FaultKind = iota
	FaultAddress
	FaultIO
	FaultDomain
	FaultBudget
)

func (k FaultKind) String() string {
	switch k {
	case FaultUnknownOpcode:
		return "unknown opcode"
	case FaultAddress:
		return "address fault"
	case FaultIO:
		return "io fault"
	case FaultDomain:
		return "domain fault"
	case FaultBudget:
		return "budget exhausted"
	}
	return "fault"
}

// Fault carries the diagnostic the machine surfaces to the host: where the
// run died, what instruction it was executing, and the parameter snapshot it
// had fetched.
type Fault struct {
	Kind      FaultKind
	IP        int
	Op        codon.Codon
	Params    []codon.Codon
	StrandLen int
	Detail    string
}

func (f *Fault) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at ip=%d op=%s", f.Kind, f.IP, f.Op)
	if len(f.Params) > 0 {
		fmt.Fprintf(&sb, " params=[%s]", codon.Join(f.Params))
	}
	fmt.Fprintf(&sb, " strand=%d", f.StrandLen)
	if f.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(f.Detail)
	}
	return sb.String()
}

// ErrAddress is wrapped by every strand bounds violation.
var ErrAddress = errors.New("codon index out of range")
