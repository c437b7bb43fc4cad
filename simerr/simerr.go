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

// Package simerr defines the error taxonomy a test run or benchmark can
// fail with, on top of the curated package's pattern/category mechanism.
package simerr

import "github.com/m3sim/cc2650emu/curated"

// The four broad categories a run can fail with, as reported to the CLI
// and in the exit status.
const (
	// TimedOut means the emulator executed the configured number of
	// cycles without reaching the expected stop address.
	TimedOut curated.Category = "timed out"

	// InvalidInput means the bundle, archive or command line was
	// malformed: bad hash, unknown memory format, corrupt archive.
	InvalidInput curated.Category = "invalid input"

	// MismatchedOutput means the run completed but a checked symbol's
	// memory region did not match the expected dump.
	MismatchedOutput curated.Category = "mismatched output"

	// InternalError is anything that isn't the fault of the bundle or the
	// command line: a bug in the emulator itself.
	InternalError curated.Category = "internal error"
)

// TimedOutf builds a TimedOut error reporting the number of cycles executed.
func TimedOutf(pattern string, values ...interface{}) error {
	return curated.Categorised(TimedOut, pattern, values...)
}

// InvalidInputf builds an InvalidInput error.
func InvalidInputf(pattern string, values ...interface{}) error {
	return curated.Categorised(InvalidInput, pattern, values...)
}

// MismatchedOutputf builds a MismatchedOutput error.
func MismatchedOutputf(pattern string, values ...interface{}) error {
	return curated.Categorised(MismatchedOutput, pattern, values...)
}

// InternalErrorf builds an InternalError error.
func InternalErrorf(pattern string, values ...interface{}) error {
	return curated.Categorised(InternalError, pattern, values...)
}

// Is reports whether err was created with the given category.
func Is(err error, category curated.Category) bool {
	c, ok := curated.CategoryOf(err)
	return ok && c == category
}
