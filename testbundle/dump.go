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
	"fmt"

	"github.com/m3sim/cc2650emu/simerr"
	"github.com/vmihailenco/msgpack/v5"
)

// MemDumpEntry is a single expected memory region in a dump record.
type MemDumpEntry struct {
	SymbolName string `msgpack:"symbol_name"`
	Addr       uint32 `msgpack:"addr"`
	Content    []byte `msgpack:"content"`
}

// Dump is the decoded form of an "N.dump" MessagePack record.
type Dump struct {
	EmulatorMainAddr     uint32 `msgpack:"emulator_main_addr"`
	EmulatorCDLStartAddr uint32 `msgpack:"emulator_cdl_start_addr"`
	EmulatorExitAddr     uint32 `msgpack:"emulator_exit_addr"`

	FlashSHA256 []byte `msgpack:"flash_sha256"`
	AsmSHA256   []byte `msgpack:"asm_sha256"`

	ConfigurationName string `msgpack:"configuration_name"`

	// milliseconds since the Unix epoch
	GenerationTime uint64 `msgpack:"generation_time"`

	MemDump []MemDumpEntry    `msgpack:"mem_dump"`
	Symbols map[string]uint32 `msgpack:"symbols"`
}

// decodeDump unmarshals a dump record, validating the fixed-length digest
// fields along the way.
func decodeDump(b []byte) (Dump, error) {
	var d Dump
	if err := msgpack.Unmarshal(b, &d); err != nil {
		return Dump{}, simerr.InvalidInputf("decoding dump record: %w", err)
	}

	if len(d.FlashSHA256) != 32 {
		return Dump{}, simerr.InvalidInputf("dump record: flash_sha256 must be 32 bytes, got %d", len(d.FlashSHA256))
	}
	if len(d.AsmSHA256) != 32 {
		return Dump{}, simerr.InvalidInputf("dump record: asm_sha256 must be 32 bytes, got %d", len(d.AsmSHA256))
	}

	return d, nil
}

func caseName(n int, ext string) string {
	return fmt.Sprintf("%d.%s", n, ext)
}
