package machine

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/helixLang/helix/pkg/codon"
)

// HaltReason distinguishes the normal terminations. All of them are success
// to the host; only faults are failures.
type HaltReason int

const (
	HaltNone HaltReason = iota
	HaltStop
	HaltOutOfBounds
	HaltNoProgram
)

func (r HaltReason) String() string {
	switch r {
	case HaltStop:
		return "stop"
	case HaltOutOfBounds:
		return "out of bounds"
	case HaltNoProgram:
		return "no program"
	}
	return "running"
}

// VM is the Helix virtual machine. It owns the strand, the accumulator and
// flag registers, and the instruction pointer for the duration of a run.
type VM struct {
	Strand *Strand
	IP     int

	// Registers
	Acc  codon.Codon
	Flag bool

	// Execution budget (0 = unlimited)
	Steps    int
	MaxSteps int

	// I/O ports
	Input  InputPort
	Output io.Writer

	// Debug logs one line per executed instruction through Log
	Debug bool
	Log   *slog.Logger

	Halted bool
	Reason HaltReason
}

// New creates a VM with stdout as the output sink and no input port.
func New() *VM {
	return &VM{
		Strand: NewStrand(nil),
		Output: os.Stdout,
		Log:    slog.Default(),
	}
}

// Load installs a fresh strand and resets the machine state.
func (vm *VM) Load(seq []codon.Codon) {
	vm.Strand = NewStrand(seq)
	vm.Reset()
}

// Reset zeroes the registers and repositions the IP after the first start
// codon. A strand with no start codon halts immediately with success.
func (vm *VM) Reset() {
	vm.Acc = codon.Codon{}
	vm.Flag = false
	vm.Steps = 0
	vm.Halted = false
	vm.Reason = HaltNone
	vm.IP = 0

	if i := vm.Strand.Find(startCodon); i >= 0 {
		vm.IP = i + 1
	} else {
		vm.Halted = true
		vm.Reason = HaltNoProgram
	}
}

// Run executes until the machine halts or faults.
func (vm *VM) Run() error {
	for !vm.Halted {
		if err := vm.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step executes one instruction. Parameters are snapshotted before any
// effect is applied, so an instruction that overwrites its own parameters
// still observes the values it fetched; every address an effect needs is
// checked before the first mutation.
func (vm *VM) Step() error {
	if vm.Halted {
		return nil
	}
	if vm.IP >= vm.Strand.Len() {
		vm.Halted = true
		vm.Reason = HaltOutOfBounds
		return nil
	}

	op, _ := vm.Strand.Get(vm.IP)
	info := Decode(op)
	if info.Kind == KindUnknown {
		return vm.fault(FaultUnknownOpcode, op, nil, "codon %s (value %d) is not an instruction", op, op.Unsigned())
	}

	params := make([]codon.Codon, 0, info.Arity)
	for j := 1; j <= info.Arity; j++ {
		p, err := vm.Strand.Get(vm.IP + j)
		if err != nil {
			return vm.fault(FaultAddress, op, params, "parameter %d of %s missing: %v", j, info.Kind, err)
		}
		params = append(params, p)
	}
	nextIP := vm.IP + 1 + info.Arity

	vm.Steps++
	if vm.MaxSteps > 0 && vm.Steps > vm.MaxSteps {
		return vm.fault(FaultBudget, op, params, "instruction budget of %d exceeded", vm.MaxSteps)
	}

	if vm.Debug && vm.Log != nil {
		vm.Log.Debug("step",
			"ip", vm.IP,
			"op", info.Kind.String(),
			"params", codon.Join(params),
			"acc", vm.Acc.String(),
			"flag", vm.Flag,
			"len", vm.Strand.Len(),
		)
	}

	switch info.Kind {
	case KindStart:
		// no-op inside the main loop

	case KindStop:
		vm.Halted = true
		vm.Reason = HaltStop
		return nil

	case KindMut:
		if err := vm.Strand.Set(vm.IP+params[0].Unsigned(), params[1]); err != nil {
			return vm.fault(FaultAddress, op, params, "%v", err)
		}

	case KindDel:
		idx := vm.IP + params[0].Unsigned()
		if err := vm.Strand.Delete(idx); err != nil {
			return vm.fault(FaultAddress, op, params, "%v", err)
		}
		if idx < nextIP {
			nextIP--
		}

	case KindIns:
		at := vm.IP + params[0].Unsigned()
		if err := vm.Strand.Insert(at, params[1]); err != nil {
			return vm.fault(FaultAddress, op, params, "%v", err)
		}
		if at <= nextIP {
			nextIP++
		}

	case KindDup:
		start := vm.IP + params[0].Unsigned()
		n := params[1].Unsigned()
		block, err := vm.Strand.CopyRange(start, n)
		if err != nil {
			return vm.fault(FaultAddress, op, params, "%v", err)
		}
		if err := vm.Strand.Splice(start+n, block); err != nil {
			return vm.fault(FaultAddress, op, params, "%v", err)
		}
		if start+n <= nextIP {
			nextIP += n
		}

	case KindTrp:
		var err error
		nextIP, err = vm.transpose(params, nextIP)
		if err != nil {
			return vm.fault(FaultAddress, op, params, "%v", err)
		}

	case KindRev:
		if err := vm.Strand.Reverse(vm.IP+params[0].Unsigned(), params[1].Unsigned()); err != nil {
			return vm.fault(FaultAddress, op, params, "%v", err)
		}

	case KindLdi:
		vm.Acc = params[0]

	case KindLdf:
		v := 0
		if vm.Flag {
			v = 1
		}
		vm.Acc, _ = codon.FromUnsigned(v)

	case KindLd:
		c, err := vm.Strand.Get(vm.IP + params[0].Signed())
		if err != nil {
			return vm.fault(FaultAddress, op, params, "%v", err)
		}
		vm.Acc = c

	case KindSt:
		if err := vm.Strand.Set(vm.IP+params[0].Signed(), vm.Acc); err != nil {
			return vm.fault(FaultAddress, op, params, "%v", err)
		}

	case KindAddi:
		vm.Acc = vm.Acc.AddSigned(params[0].Signed())

	case KindCmp:
		vm.Flag = vm.Acc == params[0]

	case KindSetf:
		vm.Flag = params[0].X.Amino()

	case KindOut:
		ch, ok := vm.Acc.Char()
		if !ok {
			return vm.fault(FaultDomain, op, params, "accumulator value %d has no character", vm.Acc.Unsigned())
		}
		if _, err := vm.Output.Write([]byte{ch}); err != nil {
			return vm.fault(FaultIO, op, params, "output: %v", err)
		}

	case KindIn:
		if vm.Input == nil {
			return vm.fault(FaultIO, op, params, "no input port connected")
		}
		v, err := vm.Input.ReadValue()
		if err != nil {
			return vm.fault(FaultIO, op, params, "input: %v", err)
		}
		if v < 0 || v > 63 {
			return vm.fault(FaultIO, op, params, "input value %d outside [0,63]", v)
		}
		vm.Acc, _ = codon.FromUnsigned(v)
	}

	vm.IP = nextIP
	return nil
}

// transpose cuts the block [s, s+n) and reinserts it before the destination.
// A destination that originally pointed past the cut slides back by n. Both
// ranges are validated before the strand is touched, and nextIP is adjusted
// as a compound delete-then-insert.
func (vm *VM) transpose(params []codon.Codon, nextIP int) (int, error) {
	s := vm.IP + params[0].Unsigned()
	n := params[1].Unsigned()
	d := vm.IP + params[2].Unsigned()

	block, err := vm.Strand.CopyRange(s, n)
	if err != nil {
		return nextIP, err
	}
	dst := d
	if d > s {
		dst = d - n
	}
	if dst < 0 || dst > vm.Strand.Len()-n {
		return nextIP, fmt.Errorf("%w: transpose destination %d of %d", ErrAddress, dst, vm.Strand.Len()-n)
	}

	vm.Strand.deleteRange(s, n)
	if s < nextIP {
		removed := nextIP - s
		if removed > n {
			removed = n
		}
		nextIP -= removed
	}

	// deleteRange validated by CopyRange, dst validated above
	_ = vm.Strand.Splice(dst, block)
	if dst <= nextIP {
		nextIP += n
	}
	return nextIP, nil
}

func (vm *VM) fault(kind FaultKind, op codon.Codon, params []codon.Codon, format string, args ...any) error {
	vm.Halted = true
	return &Fault{
		Kind:      kind,
		IP:        vm.IP,
		Op:        op,
		Params:    params,
		StrandLen: vm.Strand.Len(),
		Detail:    fmt.Sprintf(format, args...),
	}
}
