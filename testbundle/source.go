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
	"archive/tar"
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/m3sim/cc2650emu/simerr"
)

// Source abstracts over the three supported bundle containers: a plain
// directory, a .zip, or a .tzst (zstd-compressed tar). Names passed to Open
// and Has are bundle-relative, using forward slashes.
type Source interface {
	// Open returns the content of the named entry.
	Open(name string) ([]byte, error)

	// Has reports whether the named entry exists, without reading it.
	Has(name string) bool

	// Close releases any resources (open file handles) held by the source.
	Close() error
}

// Open inspects path and returns the appropriate Source: a directory if
// path is a directory, a zipSource if it ends in ".zip", and a tzstSource
// if it ends in ".tzst". Any other extension is rejected.
func Open(path string) (Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, simerr.InvalidInputf("opening test bundle: %w", err)
	}

	if info.IsDir() {
		return dirSource(path), nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip":
		return openZipSource(path)
	case ".tzst":
		return openTzstSource(path)
	}

	return nil, simerr.InvalidInputf("unrecognised test bundle extension: %s", path)
}

// dirSource is a bundle rooted at a plain directory.
type dirSource string

func (d dirSource) Open(name string) ([]byte, error) {
	b, err := os.ReadFile(filepath.Join(string(d), filepath.FromSlash(name)))
	if err != nil {
		return nil, simerr.InvalidInputf("reading %s from bundle: %w", name, err)
	}
	return b, nil
}

func (d dirSource) Has(name string) bool {
	_, err := os.Stat(filepath.Join(string(d), filepath.FromSlash(name)))
	return err == nil
}

func (d dirSource) Close() error {
	return nil
}

// zipSource is a bundle read from a .zip archive.
type zipSource struct {
	zf *zip.ReadCloser
}

func openZipSource(path string) (Source, error) {
	zf, err := zip.OpenReader(path)
	if err != nil {
		return nil, simerr.InvalidInputf("opening zip bundle: %w", err)
	}
	return &zipSource{zf: zf}, nil
}

func (z *zipSource) find(name string) *zip.File {
	for _, f := range z.zf.File {
		if f.Name == name || filepath.Base(f.Name) == name {
			return f
		}
	}
	return nil
}

func (z *zipSource) Open(name string) ([]byte, error) {
	f := z.find(name)
	if f == nil {
		return nil, simerr.InvalidInputf("%s not found in zip bundle", name)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, simerr.InvalidInputf("opening %s in zip bundle: %w", name, err)
	}
	defer rc.Close()

	b, err := io.ReadAll(rc)
	if err != nil {
		return nil, simerr.InvalidInputf("reading %s from zip bundle: %w", name, err)
	}
	return b, nil
}

func (z *zipSource) Has(name string) bool {
	return z.find(name) != nil
}

func (z *zipSource) Close() error {
	return z.zf.Close()
}

// tzstSource is a bundle read from a zstd-compressed tar archive. The whole
// archive is decoded into memory up front since test bundles are small and
// every entry is read at least once during verification.
type tzstSource struct {
	entries map[string][]byte
}

func openTzstSource(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, simerr.InvalidInputf("opening tzst bundle: %w", err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, simerr.InvalidInputf("initialising zstd decoder: %w", err)
	}
	defer dec.Close()

	tr := tar.NewReader(dec)

	entries := make(map[string][]byte)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, simerr.InvalidInputf("reading tzst bundle: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}

		var buf bytes.Buffer
		if _, err := io.Copy(&buf, tr); err != nil {
			return nil, simerr.InvalidInputf("reading %s from tzst bundle: %w", hdr.Name, err)
		}
		entries[filepath.Base(hdr.Name)] = buf.Bytes()
	}

	return &tzstSource{entries: entries}, nil
}

func (t *tzstSource) Open(name string) ([]byte, error) {
	b, ok := t.entries[filepath.Base(name)]
	if !ok {
		return nil, simerr.InvalidInputf("%s not found in tzst bundle", name)
	}
	return b, nil
}

func (t *tzstSource) Has(name string) bool {
	_, ok := t.entries[filepath.Base(name)]
	return ok
}

func (t *tzstSource) Close() error {
	return nil
}
