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

package prefs

import (
	"sort"
	"strings"
)

// clPair is one key::value entry of a command line prefs group.
type clPair struct {
	key   string
	value string
}

// clStack holds groups of command line preference overrides pushed by
// nested invocations (e.g. a scenario file that itself names overrides for
// the run it sets up). Each group is normalised and sorted by key on push.
var clStack [][]clPair

// PushCommandLineStack parses a "key::value; key::value" string and pushes
// the valid entries as a new group. Malformed entries (missing "::", empty
// key) are dropped silently.
func PushCommandLineStack(s string) {
	var pairs []clPair
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, "::", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(kv[0])
		if key == "" {
			continue
		}
		pairs = append(pairs, clPair{key: key, value: strings.TrimSpace(kv[1])})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })
	clStack = append(clStack, pairs)
}

// PopCommandLineStack removes and formats the top group, or "" if the stack
// is empty.
func PopCommandLineStack() string {
	if len(clStack) == 0 {
		return ""
	}
	top := clStack[len(clStack)-1]
	clStack = clStack[:len(clStack)-1]
	return formatCommandLineGroup(top)
}

func formatCommandLineGroup(pairs []clPair) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p.key + "::" + p.value
	}
	return strings.Join(parts, "; ")
}

// GetCommandLinePref looks up key in the top group without popping it.
func GetCommandLinePref(key string) (bool, string) {
	if len(clStack) == 0 {
		return false, ""
	}
	for _, p := range clStack[len(clStack)-1] {
		if p.key == key {
			return true, p.value
		}
	}
	return false, ""
}
