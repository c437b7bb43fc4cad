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

import (
	"bytes"
	"crypto/sha256"

	"github.com/m3sim/cc2650emu/simerr"
)

// verifyDigest reports an InvalidInput error if
// sha256(content) does not equal want.
func verifyDigest(what string, content, want []byte) error {
	got := sha256.Sum256(content)
	if !bytes.Equal(got[:], want) {
		return simerr.InvalidInputf("%s: sha256 mismatch: got %x, want %x", what, got[:], want)
	}
	return nil
}

// normaliseLineEndings converts CR/LF pairs to bare LF, matching the
// normalisation applied before hashing the accompanying assembly source.
func normaliseLineEndings(b []byte) []byte {
	return bytes.ReplaceAll(b, []byte("\r\n"), []byte("\n"))
}

// VerifyFlash checks the flash image's digest against the dump record.
func VerifyFlash(flash []byte, d Dump) error {
	return verifyDigest("flash image", flash, d.FlashSHA256)
}

// VerifyAsm checks the accompanying assembly source's digest against the
// dump record, after CR/LF normalisation.
func VerifyAsm(asm []byte, d Dump) error {
	return verifyDigest("assembly source", normaliseLineEndings(asm), d.AsmSHA256)
}
