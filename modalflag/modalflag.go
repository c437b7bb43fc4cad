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

// Package modalflag wraps the standard flag package to support a single
// binary that dispatches between a handful of named modes (here: "test"
// and "bench"), each of which may itself accept its own flags and, if
// nested, its own sub-modes. It exists so that the root command behaves
// like a normal flag.FlagSet from the caller's point of view while still
// being able to say "the next positional argument picks which mode runs".
package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// ParseResult tells the caller what Parse() decided and what it should do
// next.
type ParseResult int

const (
	// ParseContinue means flags (and, if any, a mode) were consumed
	// successfully and the caller should proceed.
	ParseContinue ParseResult = iota

	// ParseHelp means help text was printed to Output and the caller
	// should stop without error.
	ParseHelp
)

// Modes wraps a flag.FlagSet with optional sub-mode dispatch.
type Modes struct {
	// Output receives help text. Required.
	Output io.Writer

	args     []string
	flagset  *flag.FlagSet
	subModes []string
	mode     string
	pathSeg  string
	remain   []string
}

// NewArgs resets the argument list to be parsed. Must be called before
// AddBool/AddSubModes/Parse.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.flagset = flag.NewFlagSet("", flag.ContinueOnError)
	md.flagset.SetOutput(io.Discard)
	md.subModes = nil
	md.mode = ""
	md.pathSeg = ""
	md.remain = nil
}

// AddBool registers a boolean flag, exactly as (*flag.FlagSet).Bool does.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	if md.flagset == nil {
		md.NewArgs(nil)
	}
	return md.flagset.Bool(name, value, usage)
}

// AddString registers a string flag.
func (md *Modes) AddString(name string, value string, usage string) *string {
	if md.flagset == nil {
		md.NewArgs(nil)
	}
	return md.flagset.String(name, value, usage)
}

// AddInt registers an int flag.
func (md *Modes) AddInt(name string, value int, usage string) *int {
	if md.flagset == nil {
		md.NewArgs(nil)
	}
	return md.flagset.Int(name, value, usage)
}

// AddSubModes declares the available sub-modes for this level. The first
// entry is the default, chosen when no positional argument selects one.
func (md *Modes) AddSubModes(modes ...string) {
	md.subModes = modes
}

// Parse processes flags, then (if sub-modes were declared) consumes the
// first remaining positional argument as the chosen mode, falling back to
// the default. "-help" prints usage and returns ParseHelp.
func (md *Modes) Parse() (ParseResult, error) {
	if md.flagset == nil {
		md.NewArgs(nil)
	}

	help := false
	md.flagset.BoolVar(&help, "help", false, "")

	if err := md.flagset.Parse(md.args); err != nil {
		return ParseContinue, err
	}

	if help {
		md.printHelp()
		return ParseHelp, nil
	}

	md.remain = md.flagset.Args()

	if len(md.subModes) > 0 {
		if len(md.remain) > 0 {
			candidate := md.remain[0]
			found := false
			for _, m := range md.subModes {
				if strings.EqualFold(m, candidate) {
					md.mode = m
					found = true
					md.remain = md.remain[1:]
					break
				}
			}
			if !found {
				return ParseContinue, fmt.Errorf("modalflag: unknown mode %q", candidate)
			}
		} else {
			md.mode = md.subModes[0]
		}
		md.pathSeg = md.mode
	}

	return ParseContinue, nil
}

func (md *Modes) printHelp() {
	var flagLines []string
	md.flagset.VisitAll(func(f *flag.Flag) {
		if f.Name == "help" {
			return
		}
		def := ""
		if f.DefValue != "" {
			def = fmt.Sprintf(" (default %s)", f.DefValue)
		}
		flagLines = append(flagLines, fmt.Sprintf("  -%s\n    \t%s%s\n", f.Name, f.Usage, def))
	})

	if len(flagLines) == 0 && len(md.subModes) == 0 {
		fmt.Fprintf(md.Output, "No help available\n")
		return
	}

	fmt.Fprintf(md.Output, "Usage:\n")

	for _, l := range flagLines {
		fmt.Fprint(md.Output, l)
	}

	if len(md.subModes) > 0 {
		if len(flagLines) > 0 {
			fmt.Fprintf(md.Output, "\n")
		}
		fmt.Fprintf(md.Output, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(md.Output, "    default: %s\n", md.subModes[0])
	}
}

// Mode returns the sub-mode selected by the most recent Parse(), or the
// empty string if no sub-modes were declared.
func (md *Modes) Mode() string {
	return md.mode
}

// Path returns the dot-separated path of modes selected so far. At a
// single nesting level this is the same as Mode().
func (md *Modes) Path() string {
	return md.pathSeg
}

// RemainingArgs returns the positional arguments left over after flag and
// mode parsing.
func (md *Modes) RemainingArgs() []string {
	return md.remain
}
