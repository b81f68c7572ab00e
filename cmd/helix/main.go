// helix runs Helix programs: self-modifying codon strands.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	slogmulti "github.com/samber/slog-multi"

	"github.com/helixLang/helix/pkg/machine"
	"github.com/helixLang/helix/pkg/parser"
	"github.com/helixLang/helix/pkg/runfile"
)

func main() {
	disasm := flag.Bool("disasm", false, "Print a strand listing instead of running")
	trace := flag.Bool("trace", false, "Log every executed instruction")
	budget := flag.Int("budget", 0, "Instruction budget (0 = unlimited)")
	inValues := flag.String("in", "", "Comma-separated input values instead of stdin")
	configPath := flag.String("config", "", "Path to a helix.toml runfile")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: helix [flags] program.helix")
		flag.PrintDefaults()
		os.Exit(2)
	}
	program := flag.Arg(0)

	cfg, err := resolveConfig(program, *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if *budget != 0 {
		cfg.budget = *budget
	}
	if *trace {
		cfg.trace = true
	}
	if *inValues != "" {
		values, err := parseValues(*inValues)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Bad -in values: %v\n", err)
			os.Exit(1)
		}
		cfg.inputValues = values
	}

	logger := newLogger(cfg.logPath, cfg.trace)

	seq, err := parser.ParseFile(program)
	if err != nil {
		logger.Error("parse failed", "program", program, "error", err)
		os.Exit(1)
	}

	vm := machine.New()
	vm.Load(seq)

	if *disasm {
		fmt.Print(machine.Disassemble(vm.Strand))
		return
	}

	vm.MaxSteps = cfg.budget
	vm.Debug = cfg.trace
	vm.Log = logger
	vm.Output = os.Stdout
	if cfg.inputValues != nil {
		vm.Input = machine.NewValueInput(cfg.inputValues...)
	} else {
		vm.Input = machine.NewReaderInput(os.Stdin)
	}

	if err := vm.Run(); err != nil {
		logger.Error("run aborted", "program", program, "error", err)
		os.Exit(1)
	}
	logger.Debug("halted", "reason", vm.Reason.String(), "steps", vm.Steps, "len", vm.Strand.Len())
}

type config struct {
	budget      int
	trace       bool
	logPath     string
	inputValues []int
}

// resolveConfig loads the runfile: an explicit -config path, or a helix.toml
// found next to the program.
func resolveConfig(program, explicit string) (config, error) {
	var cfg config
	var rf *runfile.Runfile
	var err error
	if explicit != "" {
		rf, err = runfile.Load(explicit)
	} else {
		rf, err = runfile.Find(program)
	}
	if err != nil {
		return cfg, err
	}
	if rf != nil {
		cfg.budget = rf.Run.Budget
		cfg.trace = rf.Run.Trace
		cfg.logPath = rf.LogPath()
		if len(rf.Input.Values) > 0 {
			cfg.inputValues = rf.Input.Values
		}
	}
	return cfg, nil
}

// newLogger fans diagnostics out to stderr and, when configured, a log file.
func newLogger(logPath string, trace bool) *slog.Logger {
	level := slog.LevelInfo
	if trace {
		level = slog.LevelDebug
	}

	var handlers []slog.Handler
	handlers = append(handlers, slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Log file error: %v\n", err)
		} else {
			handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{
				Level: level,
			}))
		}
	}

	return slog.New(slogmulti.Fanout(handlers...))
}

func parseValues(s string) ([]int, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
	values := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("value %q: %v", p, err)
		}
		values = append(values, v)
	}
	return values, nil
}
