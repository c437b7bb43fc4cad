// This file is part of cc2650emu.
//
// cc2650emu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cc2650emu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cc2650emu.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/m3sim/cc2650emu/cdl"
	"github.com/m3sim/cc2650emu/core/clocktree"
	"github.com/m3sim/cc2650emu/core/decode"
	"github.com/m3sim/cc2650emu/core/engine"
	"github.com/m3sim/cc2650emu/dbgmem"
	"github.com/m3sim/cc2650emu/environment"
	"github.com/m3sim/cc2650emu/interactive"
	"github.com/m3sim/cc2650emu/modalflag"
	"github.com/m3sim/cc2650emu/random"
	"github.com/m3sim/cc2650emu/simerr"
	"github.com/m3sim/cc2650emu/symbols"
	"github.com/m3sim/cc2650emu/testbundle"
	"gopkg.in/yaml.v3"
)

// wallClock satisfies random.CycleSource for the CLI's environment, which
// is constructed before any engine exists to bind to: it seeds the
// random source from the current time instead of a cycle count.
type wallClock struct{}

func (wallClock) Cycle() uint64 { return uint64(time.Now().UnixNano()) }

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])

	format := md.AddString("format", "text", "report format: text or yaml")
	cdlLogPath := md.AddString("cdl-log", "", "append newline-delimited JSON CDL records to this path")
	graphPath := md.AddString("graph", "", "write the clock tree as a Graphviz .dot file and exit")
	interactivePrompt := md.AddBool("interactive", false, "pause for a keypress after each failing case")
	benchCycles := md.AddInt("bench-cycles", 1000000, "cycles to step during the bench mode's measured phase")
	cyclesTimeout := md.AddInt("cycles-timeout", 10000000, "cycles to run a case before declaring it timed out")
	checkedSymbols := md.AddString("checked-symbols", "", "comma-separated mem_dump symbol names to verify (default: all)")

	md.AddSubModes("test", "bench")

	res, err := md.Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "* %s\n", err)
		os.Exit(1)
	}
	if res == modalflag.ParseHelp {
		return
	}

	if *graphPath != "" {
		if err := writeGraph(*graphPath); err != nil {
			fmt.Fprintf(os.Stderr, "* graph: %s\n", err)
			os.Exit(1)
		}
		return
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, wallClock{}, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "* %s\n", err)
		os.Exit(1)
	}

	switch md.Mode() {
	case "bench":
		err = bench(md, env, *format, *benchCycles)
	default:
		err = runTests(md, env, *format, *cdlLogPath, *interactivePrompt, *cyclesTimeout, *checkedSymbols)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* %s: %s\n", md.Mode(), err)
		os.Exit(1)
	}
}

// caseReport is a single test case's outcome, rendered as either a plain
// text line or a YAML document depending on -format.
type caseReport struct {
	N       int    `yaml:"case"`
	Config  string `yaml:"configuration"`
	Bytes   int    `yaml:"flash_bytes"`
	Verdict string `yaml:"verdict"`
}

// runTests verifies every case in a test bundle (§6.1/§6.2/§8.3): its
// flash image's SHA-256 against the dump record (and its assembly
// source's, when present), then runs the case against a real engine and
// compares the checked mem_dump entries against what's actually sitting
// in memory afterwards. Exit code is non-zero iff any case fails: a
// load or digest error, a run that times out, or a checked symbol
// mismatch.
func runTests(md *modalflag.Modes, env *environment.Environment, format, cdlLogPath string, pauseOnFailure bool, cyclesTimeout int, checkedSymbols string) error {
	args := md.RemainingArgs()
	if err := validateRemaining(args, 1, "bundle path required"); err != nil {
		return err
	}

	checked := parseCheckedSymbols(checkedSymbols)

	src, err := testbundle.Open(args[0])
	if err != nil {
		return err
	}
	defer src.Close()

	n := testbundle.Count(src)
	if n == 0 {
		return fmt.Errorf("no test cases found in %s", args[0])
	}

	var prompter *interactive.Prompter
	if pauseOnFailure {
		prompter, _ = interactive.NewPrompter()
	}

	reports := make([]caseReport, 0, n)
	failures := 0

	for i := 0; i < n; i++ {
		c, caseErr := testbundle.LoadCase(src, i)
		if caseErr == nil {
			caseErr = runCase(env, c, uint64(cyclesTimeout), checked)
		}

		r := caseReport{N: i, Verdict: "pass"}
		if caseErr != nil {
			r.Verdict = caseErr.Error()
			failures++
		} else {
			r.Config = c.Dump.ConfigurationName
			r.Bytes = len(c.Flash)
		}
		reports = append(reports, r)

		if caseErr != nil {
			env.Log.Logf(env, "testrunner", "case %d failed: %s", i, caseErr)
			if prompter != nil {
				fmt.Fprintf(os.Stdout, "case %d failed, press any key to continue...\n", i)
				_ = prompter.WaitKeypress()
			}
		}
	}

	if err := writeReport(os.Stdout, format, reports); err != nil {
		return err
	}

	if cdlLogPath != "" {
		if err := writeCDLLog(cdlLogPath, env.CDL); err != nil {
			return err
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d case(s) failed", failures, n)
	}
	return nil
}

// runCase runs one loaded case's flash image against a fresh engine from
// its main address to its exit address, then verifies the checked
// mem_dump entries. It stops short of interpreting actual instruction
// semantics (no opcode table backs core/execute, see DESIGN.md's
// core/decode entry): advance walks the instruction stream purely by
// decoded width, so any case whose control flow isn't a straight line
// will report simerr.TimedOut rather than a false pass, same as a case
// that never reaches its exit address for any other reason.
func runCase(env *environment.Environment, c testbundle.Case, cyclesTimeout uint64, checked map[string]bool) error {
	bus := testbundle.NewFlashBus(c.Flash)

	e := engine.NewWithEnvironment(env)
	e.CurrentInstructionAddr = c.Dump.EmulatorMainAddr

	advance := func() (bool, error) {
		addr := e.CurrentInstructionAddr
		first, err := bus.ReadHalfword(addr)
		if err != nil {
			return false, simerr.TimedOutf("case %d: instruction stream ran off mapped flash at %#08x before reaching exit address %#08x (%d cycles executed)", c.N, addr, c.Dump.EmulatorExitAddr, e.Cycles)
		}

		inst := decode.Decode(first, 0)
		next := addr + uint32(inst.Width)*2
		e.CurrentInstructionAddr = next
		return next == c.Dump.EmulatorExitAddr, nil
	}

	if err := e.RunUntil(c.Dump.EmulatorExitAddr, cyclesTimeout, advance); err != nil {
		return err
	}

	sym := symbols.NewTable()
	sym.LoadBundleSymbols(c.Dump.Symbols)
	insp := dbgmem.Inspector{Bus: bus, Sym: sym}

	return verifyMemDump(insp, c, checked)
}

// verifyMemDump compares every mem_dump entry named in checked (or every
// entry, if checked is empty) against insp, returning the first mismatch
// as a simerr.MismatchedOutput.
func verifyMemDump(insp dbgmem.Inspector, c testbundle.Case, checked map[string]bool) error {
	for _, entry := range c.Dump.MemDump {
		if len(checked) > 0 && !checked[entry.SymbolName] {
			continue
		}

		for i, want := range entry.Content {
			addr := entry.Addr + uint32(i)
			ai, err := insp.Peek(addr)
			if err != nil {
				return simerr.MismatchedOutputf("case %d: symbol %s at %#08x: %s", c.N, entry.SymbolName, addr, err)
			}
			if ai.Data != want {
				return simerr.MismatchedOutputf("case %d: symbol %s at %#08x: expected %#02x, got %#02x", c.N, entry.SymbolName, addr, want, ai.Data)
			}
		}
	}
	return nil
}

// parseCheckedSymbols splits a comma-separated -checked-symbols value
// into a set, trimming surrounding whitespace from each name. An empty
// value yields an empty (nil) set, meaning "check everything".
func parseCheckedSymbols(s string) map[string]bool {
	if s == "" {
		return nil
	}
	set := make(map[string]bool)
	for _, name := range strings.Split(s, ",") {
		set[strings.TrimSpace(name)] = true
	}
	return set
}

// bench loads a single case (the untimed init phase: flash load and its
// digest checks) then steps the engine's clock-independent tick/tock loop
// for benchCycles cycles as the timed measured phase, reporting elapsed
// wall time. It stops short of fetching and decoding the case's actual
// instruction stream because no concrete Thumb-2 opcode table is wired
// to core/fetch (the spec leaves per-opcode semantics to whatever build
// supplies the decode table core/decode's primitives serve) - StepCycle
// itself has no such dependency, so the measured phase is real cycle
// stepping, just not of this case's program.
func bench(md *modalflag.Modes, env *environment.Environment, format string, benchCycles int) error {
	args := md.RemainingArgs()
	if err := validateRemaining(args, 2, "bundle path and case number required"); err != nil {
		return err
	}

	var n int
	if _, err := fmt.Sscanf(args[1], "%d", &n); err != nil {
		return fmt.Errorf("invalid case number %q", args[1])
	}

	src, err := testbundle.Open(args[0])
	if err != nil {
		return err
	}
	defer src.Close()

	c, err := testbundle.LoadCase(src, n)
	if err != nil {
		return err
	}

	e := engine.NewWithEnvironment(env)
	start := time.Now()
	for i := 0; i < benchCycles; i++ {
		if err := e.StepCycle(); err != nil {
			return err
		}
	}
	elapsed := time.Since(start)

	r := caseReport{
		N:       c.N,
		Config:  c.Dump.ConfigurationName,
		Bytes:   len(c.Flash),
		Verdict: fmt.Sprintf("loaded, stepped %d cycles in %s", benchCycles, elapsed),
	}
	return writeReport(os.Stdout, format, []caseReport{r})
}

func writeReport(out io.Writer, format string, reports []caseReport) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(reports)
	default:
		for _, r := range reports {
			fmt.Fprintf(out, "case %d (%s): %s, %d bytes\n", r.N, r.Config, r.Verdict, r.Bytes)
		}
		fmt.Fprintf(out, "%d case(s) reported\n", len(reports))
		return nil
	}
}

func writeCDLLog(path string, log *cdl.Logger) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return cdl.NewWriter(f).Drain(log)
}

// writeGraph dumps an illustrative clock tree - Oscillator feeding an AHB
// divider feeding a peripheral gate - to path, for documentation of the
// tree's shape rather than any one test case's actual configuration (no
// bundle is loaded for -graph).
func writeGraph(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	tr := clocktree.NewTree("osc")
	tr.Add("osc", &clocktree.Oscillator{}, "")
	tr.Add("ahb", clocktree.NewDivider(2), "osc")
	tr.Add("periph", clocktree.NewGate(), "ahb")

	clocktree.WriteGraph(f, tr)
	return nil
}

func validateRemaining(args []string, want int, msg string) error {
	if len(args) < want {
		return fmt.Errorf("%s", msg)
	}
	return nil
}

var _ random.CycleSource = wallClock{}
