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

package environment

import (
	"github.com/m3sim/cc2650emu/cdl"
	"github.com/m3sim/cc2650emu/logger"
	"github.com/m3sim/cc2650emu/prefs"
	"github.com/m3sim/cc2650emu/random"
)

// Label distinguishes one running emulation from another, e.g. when a
// scenario test drives several engines side by side.
type Label string

// MainEmulation is the label used for the single emulation run from the
// command line, as opposed to one driven by a scenario test harness.
const MainEmulation = Label("main")

// Environment is the scheduler-owned context object threaded through the
// core engine and its subsystems (§9: "global state... represented as a
// scheduler-owned context object"). It is created once per emulation and
// passed by reference.
type Environment struct {
	// Label distinguishes between different types of run (main emulation,
	// scenario test, etc.)
	Label Label

	// Prefs is nil for emulations that don't persist configuration; most
	// scenario tests construct an Environment directly rather than going
	// through NewEnvironment.
	Prefs *prefs.Disk

	// Random is the source of any UNPREDICTABLE values the engine needs.
	Random *random.Random

	// Log is the central ring-buffered event log shared by every
	// component, per logger's own doc comment: an explicit value owned
	// by the environment rather than a package-level global.
	Log *logger.Logger

	// CDL is the cycle debug log sink; components append a cdl.Record
	// whenever they cross an event worth capturing for offline analysis.
	CDL *cdl.Logger

	// LoggingSuppressed, when true, makes the environment implement
	// logger.Permission as "deny" - used by throwaway emulations (a
	// speculative probe, say) that shouldn't pollute the shared log.
	LoggingSuppressed bool
}

// AllowLogging implements logger.Permission.
func (env *Environment) AllowLogging() bool {
	return !env.LoggingSuppressed
}

// NewEnvironment creates an Environment backed by source for its
// randomness. If prefsPath is non-empty, the prefs file there is opened
// (and created on first Save).
func NewEnvironment(label Label, source random.CycleSource, prefsPath string) (*Environment, error) {
	env := &Environment{
		Label:  label,
		Random: random.NewRandom(source),
		Log:    logger.NewLogger(512),
		CDL:    cdl.NewLogger(4096),
	}

	if prefsPath != "" {
		dsk, err := prefs.NewDisk(prefsPath)
		if err != nil {
			return nil, err
		}
		env.Prefs = dsk
	}

	return env, nil
}

// Normalise puts the environment into a known default state, used by
// scenario tests so that the same bundle produces identical behaviour on
// every run regardless of wall-clock timing.
func (env *Environment) Normalise() {
	env.Random.ZeroSeed = true
}

// IsEmulation checks the emulation label and returns true if it matches.
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}
