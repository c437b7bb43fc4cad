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

package clocktree

import (
	"io"

	"github.com/bradleyjkemp/memviz"
)

// Tree names every node in a clock tree and records which parent each
// one ticks from, so the tree can be rendered for diagnosis (§4.6's
// hierarchy of Oscillator/Gate/Divider/Switch nodes isn't otherwise
// self-describing once stored as a flat engine.Clock slice).
type Tree struct {
	Nodes   map[string]Node
	Parents map[string]string
	Root    string
}

// NewTree returns an empty Tree rooted at root.
func NewTree(root string) *Tree {
	return &Tree{
		Nodes:   make(map[string]Node),
		Parents: make(map[string]string),
		Root:    root,
	}
}

// Add records a node under name, ticking from parent. parent is ignored
// for the root node.
func (t *Tree) Add(name string, n Node, parent string) {
	t.Nodes[name] = n
	if name != t.Root {
		t.Parents[name] = parent
	}
}

// WriteGraph dumps the tree's node and edge structure as a Graphviz dot
// graph, for visual inspection of how power-mode and skip propagation
// flows through a concrete configuration.
func WriteGraph(w io.Writer, t *Tree) {
	memviz.Map(w, t)
}
