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

// Package paths resolves the location of the small set of files the
// emulator reads or writes outside of a test bundle itself: the
// preferences dotfile and the default cycle-debug-log output directory.
package paths

import "path/filepath"

// resourceDir is the directory, relative to the process's working
// directory (or the user's home, once wired up by the caller), under which
// all of the emulator's own files live.
const resourceDir = ".cc2650emu"

// ResourcePath builds a path under the resource directory from a variable
// number of path elements, skipping empty ones so that callers don't need
// to special-case an absent sub-path or file name.
func ResourcePath(elements ...string) (string, error) {
	parts := make([]string, 0, len(elements)+1)
	parts = append(parts, resourceDir)
	for _, e := range elements {
		if e == "" {
			continue
		}
		parts = append(parts, e)
	}
	return filepath.Join(parts...), nil
}
