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

package testbundle

// Case is a single numbered test case from a bundle: the flash image that
// gets loaded, the decoded dump record it's verified against, and (if the
// bundle holds an "N.asm" entry) the assembly source the flash was built
// from.
type Case struct {
	N     int
	Flash []byte
	Dump  Dump
	Asm   []byte
}

// LoadCase reads and decodes test case n from src, verifying the flash
// image's digest and, when src holds an "N.asm" entry, the assembly
// source's digest. An "<archive>.asm" file beside the bundle is not read.
func LoadCase(src Source, n int) (Case, error) {
	flash, err := src.Open(caseName(n, "flash"))
	if err != nil {
		return Case{}, err
	}

	rawDump, err := src.Open(caseName(n, "dump"))
	if err != nil {
		return Case{}, err
	}

	dump, err := decodeDump(rawDump)
	if err != nil {
		return Case{}, err
	}

	if err := VerifyFlash(flash, dump); err != nil {
		return Case{}, err
	}

	c := Case{N: n, Flash: flash, Dump: dump}

	asmName := caseName(n, "asm")
	if src.Has(asmName) {
		asm, err := src.Open(asmName)
		if err != nil {
			return Case{}, err
		}
		if err := VerifyAsm(asm, dump); err != nil {
			return Case{}, err
		}
		c.Asm = asm
	}

	return c, nil
}

// Count returns the number of test cases found in src, by probing for
// consecutive "N.flash" entries starting at 0.
func Count(src Source) int {
	n := 0
	for src.Has(caseName(n, "flash")) {
		n++
	}
	return n
}
