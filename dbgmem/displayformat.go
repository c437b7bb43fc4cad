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

package dbgmem

import (
	"fmt"
	"strconv"
)

// DisplayFormat selects how a chunk of memory is rendered by FormatChunk,
// and correspondingly parsed back by ParseChunk.
type DisplayFormat int

const (
	ByteHex DisplayFormat = iota
	ByteDec
	WordHex
	WordDec
)

// unitWidth returns the element size in bytes for f: 1 for the byte
// formats, 2 for the word formats.
func (f DisplayFormat) unitWidth() int {
	switch f {
	case WordHex, WordDec:
		return 2
	default:
		return 1
	}
}

// FormatChunk renders data as a sequence of space-separated numbers in the
// given format. A trailing odd byte under a word format is rendered as if
// zero-padded in the high byte.
func FormatChunk(data []byte, f DisplayFormat) string {
	width := f.unitWidth()

	var out string
	for i := 0; i < len(data); i += width {
		var v uint64
		if width == 1 {
			v = uint64(data[i])
		} else if i+1 < len(data) {
			v = uint64(data[i]) | uint64(data[i+1])<<8
		} else {
			v = uint64(data[i])
		}

		var s string
		switch f {
		case ByteHex:
			s = fmt.Sprintf("%02x", v)
		case ByteDec:
			s = fmt.Sprintf("%d", v)
		case WordHex:
			s = fmt.Sprintf("%04x", v)
		case WordDec:
			s = fmt.Sprintf("%d", v)
		}

		if out != "" {
			out += " "
		}
		out += s
	}
	return out
}

// ParseChunk is the inverse of FormatChunk: it parses a space-separated
// sequence of numbers in the given format back into bytes, little-endian
// for the word formats. Re-formatting the result reproduces s exactly
// (modulo the trailing zero-pad FormatChunk applies to a partial word),
// satisfying the round-trip law of §8.2.
func ParseChunk(s string, f DisplayFormat) ([]byte, error) {
	width := f.unitWidth()
	base := 16
	if f == ByteDec || f == WordDec {
		base = 10
	}

	var out []byte
	var field string
	flush := func() error {
		if field == "" {
			return nil
		}
		v, err := strconv.ParseUint(field, base, 32)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", displayFormatName(f), field, err)
		}
		if width == 1 {
			out = append(out, byte(v))
		} else {
			out = append(out, byte(v), byte(v>>8))
		}
		field = ""
		return nil
	}

	for _, r := range s {
		if r == ' ' || r == '\t' {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		field += string(r)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return out, nil
}

func displayFormatName(f DisplayFormat) string {
	switch f {
	case ByteHex:
		return "byte-hex"
	case ByteDec:
		return "byte-dec"
	case WordHex:
		return "word-hex"
	case WordDec:
		return "word-dec"
	default:
		return "unknown"
	}
}
