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

package cdl

import (
	"encoding/json"
	"io"
)

// Writer appends newline-delimited JSON records to an underlying writer,
// for the -cdl-log CLI option. It does no buffering of its own beyond
// what encoding/json's Encoder does, so records are visible to a tailing
// reader as soon as they're appended.
type Writer struct {
	enc *json.Encoder
}

// NewWriter wraps w in a Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{enc: json.NewEncoder(w)}
}

// Write encodes r as one JSON object followed by a newline.
func (w *Writer) Write(r Record) error {
	return w.enc.Encode(r)
}

// Drain writes every record currently retained by l, oldest first. It
// does not clear l.
func (w *Writer) Drain(l *Logger) error {
	for _, r := range l.Records() {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	return nil
}
