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

// Package resources locates the directory the emulator keeps its prefs
// file, scenario recordings, and cycle debug logs in.
package resources

import "path/filepath"

// baseDir is the directory name created under the user's configuration
// location, analogous to a dotfile.
const baseDir = ".cc2650emu"

// JoinPath joins parts onto the base resource directory. Empty parts are
// ignored, matching filepath.Join's own handling of empty elements.
func JoinPath(parts ...string) (string, error) {
	all := append([]string{baseDir}, parts...)
	return filepath.Join(all...), nil
}
