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

// Package prefs persists a small set of named values (cycle timeout, memory
// display format, checked-symbols mask) to a flat key::value file between
// invocations of the emulator.
package prefs

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// WarningBoilerPlate is written as the first line of every prefs file.
const WarningBoilerPlate = "// this file is machine generated. changes made by hand may be overwritten."

// Value is the type exchanged between a Preference and the code that owns
// the underlying state. Concrete types accept bool/int/float64/string for
// runtime assignment and string when restoring from disk.
type Value interface{}

// Preference is anything that can be stored in a Disk.
type Preference interface {
	Set(v Value) error
	String() string
}

// Bool is a Preference wrapping a bool. Set accepts a bool directly or a
// string, parsed leniently: an unparseable string is not an error, it just
// leaves the value false.
type Bool struct {
	value bool
}

func (b *Bool) Set(v Value) error {
	switch x := v.(type) {
	case bool:
		b.value = x
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(x))
		if err != nil {
			b.value = false
			return nil
		}
		b.value = parsed
	default:
		return fmt.Errorf("prefs: unsupported value type %T for Bool", v)
	}
	return nil
}

func (b *Bool) String() string {
	return strconv.FormatBool(b.value)
}

// Get returns the current value.
func (b *Bool) Get() bool {
	return b.value
}

// String is a Preference wrapping a string, with an optional maximum length.
type String struct {
	value  string
	maxLen int
}

func (s *String) Set(v Value) error {
	str, ok := v.(string)
	if !ok {
		return fmt.Errorf("prefs: unsupported value type %T for String", v)
	}
	s.value = str
	s.crop()
	return nil
}

func (s *String) crop() {
	if s.maxLen > 0 && len(s.value) > s.maxLen {
		s.value = s.value[:s.maxLen]
	}
}

// SetMaxLen sets the maximum length for the string, cropping the current
// value if necessary. A limit of zero removes the restriction, but does not
// restore any characters already cropped away.
func (s *String) SetMaxLen(n int) {
	s.maxLen = n
	s.crop()
}

func (s *String) String() string {
	return s.value
}

// Int is a Preference wrapping an int.
type Int struct {
	value int
}

func (i *Int) Set(v Value) error {
	switch x := v.(type) {
	case int:
		i.value = x
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return fmt.Errorf("prefs: invalid int value %q", x)
		}
		i.value = n
	default:
		return fmt.Errorf("prefs: unsupported value type %T for Int", v)
	}
	return nil
}

func (i *Int) String() string {
	return strconv.Itoa(i.value)
}

// Get returns the current value.
func (i *Int) Get() int {
	return i.value
}

// Float is a Preference wrapping a float64. Unlike Bool and Int it does not
// accept a string value; the field is always set programmatically.
type Float struct {
	value float64
}

func (f *Float) Set(v Value) error {
	x, ok := v.(float64)
	if !ok {
		return fmt.Errorf("prefs: unsupported value type %T for Float", v)
	}
	f.value = x
	return nil
}

func (f *Float) String() string {
	return strconv.FormatFloat(f.value, 'g', -1, 64)
}

// Get returns the current value.
func (f *Float) Get() float64 {
	return f.value
}

// Generic adapts an arbitrary get/set pair to the Preference interface, for
// values that don't fit Bool/String/Int/Float (e.g. a composite value
// formatted as "w,h").
type Generic struct {
	set func(Value) error
	get func() Value
}

// NewGeneric returns a Generic Preference backed by the given accessors.
func NewGeneric(set func(Value) error, get func() Value) *Generic {
	return &Generic{set: set, get: get}
}

func (g *Generic) Set(v Value) error {
	return g.set(v)
}

func (g *Generic) String() string {
	return fmt.Sprintf("%v", g.get())
}

// Disk is a flat key::value prefs file. Values not bound to a live
// Preference by Add are preserved verbatim across Save, so that unrelated
// packages sharing one prefs file don't clobber each other's entries.
type Disk struct {
	path string

	prefs map[string]Preference
	raw   map[string]string
}

// NewDisk opens (without requiring it to exist yet) the prefs file at path.
func NewDisk(path string) (*Disk, error) {
	d := &Disk{
		path:  path,
		prefs: make(map[string]Preference),
		raw:   make(map[string]string),
	}
	if err := d.load(); err != nil {
		return nil, err
	}
	return d, nil
}

// Add registers a Preference under key. If the file already held a value
// for key, it is applied immediately.
func (d *Disk) Add(key string, p Preference) error {
	d.prefs[key] = p
	if v, ok := d.raw[key]; ok {
		delete(d.raw, key)
		return p.Set(v)
	}
	return nil
}

func (d *Disk) load() error {
	data, err := os.ReadFile(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for i, line := range strings.Split(string(data), "\n") {
		if i == 0 {
			continue // warning boilerplate
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		kv := strings.SplitN(line, "::", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(kv[0])
		val := strings.TrimSpace(kv[1])
		if p, ok := d.prefs[key]; ok {
			if err := p.Set(val); err != nil {
				return err
			}
		} else {
			d.raw[key] = val
		}
	}
	return nil
}

// Load re-reads the prefs file, applying any values found for registered
// keys and remembering the rest.
func (d *Disk) Load() error {
	return d.load()
}

// Save writes every registered Preference, plus any unrecognised entries
// carried over from the file, sorted by key.
func (d *Disk) Save() error {
	combined := make(map[string]string, len(d.prefs)+len(d.raw))
	for k, v := range d.raw {
		combined[k] = v
	}
	for k, p := range d.prefs {
		combined[k] = p.String()
	}

	keys := make([]string, 0, len(combined))
	for k := range combined {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(WarningBoilerPlate)
	b.WriteString("\n")
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(" :: ")
		b.WriteString(combined[k])
		b.WriteString("\n")
	}

	return os.WriteFile(d.path, []byte(b.String()), 0644)
}
