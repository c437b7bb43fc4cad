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

// Package interactive puts the controlling terminal into cbreak mode so
// the test runner's -interactive flag can pause on a single keypress
// rather than requiring a full line of input.
package interactive

import (
	"os"
	"syscall"

	"github.com/pkg/term/termios"
)

// Prompter switches stdin between its normal (canonical) mode and cbreak
// mode, where a single keypress is available to read without the user
// pressing return.
type Prompter struct {
	in        *os.File
	canonical syscall.Termios
	cbreak    syscall.Termios
	ready     bool
}

// NewPrompter captures stdin's current terminal attributes. It returns
// an error if stdin isn't a terminal (e.g. when input has been
// redirected from a file), in which case WaitKeypress should be skipped.
func NewPrompter() (*Prompter, error) {
	p := &Prompter{in: os.Stdin}
	if err := termios.Tcgetattr(p.in.Fd(), &p.canonical); err != nil {
		return nil, err
	}
	p.cbreak = p.canonical
	termios.Cfmakecbreak(&p.cbreak)
	p.ready = true
	return p, nil
}

// WaitKeypress puts the terminal into cbreak mode, blocks for exactly
// one byte of input, then restores canonical mode.
func (p *Prompter) WaitKeypress() error {
	if !p.ready {
		return nil
	}
	if err := termios.Tcsetattr(p.in.Fd(), termios.TCIFLUSH, &p.cbreak); err != nil {
		return err
	}
	defer termios.Tcsetattr(p.in.Fd(), termios.TCIFLUSH, &p.canonical)

	var buf [1]byte
	_, err := p.in.Read(buf[:])
	return err
}
