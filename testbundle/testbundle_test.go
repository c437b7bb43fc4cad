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

package testbundle_test

import (
	"archive/zip"
	"crypto/sha256"
	"os"
	"path/filepath"
	"testing"

	"github.com/m3sim/cc2650emu/simerr"
	"github.com/m3sim/cc2650emu/test"
	"github.com/m3sim/cc2650emu/testbundle"
	"github.com/vmihailenco/msgpack/v5"
)

func writeDump(t *testing.T, flash []byte) []byte {
	t.Helper()

	sum := sha256.Sum256(flash)
	d := testbundle.Dump{
		EmulatorMainAddr: 0x100,
		FlashSHA256:      sum[:],
		AsmSHA256:        make([]byte, 32),
		Symbols:          map[string]uint32{"main": 0x100},
	}

	b, err := msgpack.Marshal(&d)
	if err != nil {
		t.Fatalf("marshalling test dump: %s", err)
	}
	return b
}

func TestDirectorySource(t *testing.T) {
	dir := t.TempDir()

	flash := []byte{0xde, 0xad, 0xbe, 0xef}
	if err := os.WriteFile(filepath.Join(dir, "0.flash"), flash, 0o644); err != nil {
		t.Fatalf("writing flash: %s", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "0.dump"), writeDump(t, flash), 0o644); err != nil {
		t.Fatalf("writing dump: %s", err)
	}

	src, err := testbundle.Open(dir)
	test.ExpectSuccess(t, err)
	defer src.Close()

	test.Equate(t, testbundle.Count(src), 1)

	c, err := testbundle.LoadCase(src, 0)
	test.ExpectSuccess(t, err)
	test.Equate(t, c.Dump.EmulatorMainAddr, uint32(0x100))
	test.Equate(t, c.Dump.Symbols["main"], uint32(0x100))
}

func TestTamperedFlashFailsIntegrity(t *testing.T) {
	dir := t.TempDir()

	flash := []byte{0x01, 0x02, 0x03, 0x04}
	dump := writeDump(t, flash)

	// tamper with the flash image after computing the expected digest
	tampered := append([]byte(nil), flash...)
	tampered[0] ^= 0xff

	if err := os.WriteFile(filepath.Join(dir, "0.flash"), tampered, 0o644); err != nil {
		t.Fatalf("writing flash: %s", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "0.dump"), dump, 0o644); err != nil {
		t.Fatalf("writing dump: %s", err)
	}

	src, err := testbundle.Open(dir)
	test.ExpectSuccess(t, err)
	defer src.Close()

	_, err = testbundle.LoadCase(src, 0)
	test.ExpectFailure(t, err == nil)
	test.ExpectSuccess(t, simerr.Is(err, simerr.InvalidInput))
}

func TestZipSource(t *testing.T) {
	dir := t.TempDir()
	archivePath := filepath.Join(dir, "bundle.zip")

	f, err := os.Create(archivePath)
	if err != nil {
		t.Fatalf("creating archive: %s", err)
	}

	flash := []byte{0xaa, 0xbb}
	dump := writeDump(t, flash)

	zw := zip.NewWriter(f)
	for name, content := range map[string][]byte{"0.flash": flash, "0.dump": dump} {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating zip entry: %s", err)
		}
		if _, err := w.Write(content); err != nil {
			t.Fatalf("writing zip entry: %s", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip writer: %s", err)
	}
	f.Close()

	src, err := testbundle.Open(archivePath)
	test.ExpectSuccess(t, err)
	defer src.Close()

	c, err := testbundle.LoadCase(src, 0)
	test.ExpectSuccess(t, err)
	test.Equate(t, c.Flash, flash)
}

func TestUnrecognisedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bundle.rar")
	if err := os.WriteFile(path, []byte{}, 0o644); err != nil {
		t.Fatalf("writing file: %s", err)
	}

	_, err := testbundle.Open(path)
	test.ExpectFailure(t, err == nil)
	test.ExpectSuccess(t, simerr.Is(err, simerr.InvalidInput))
}
