/*
 * layout.go, part of csg.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

//Package layout contains the fixed atom placements used to draw each geometry tag,
//and reads/writes them as XYZ files.
package layout

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"github.com/rmera/csg"
	v3 "github.com/rmera/csg/v3"
	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetData []byte

//ErrNoLayout is returned for geometry tags that have no preset.
var ErrNoLayout = errors.New("no layout available")

//presets is built once from the embedded document and never modified.
var presets = mustLoad(presetData)

func mustLoad(data []byte) map[string][]float64 {
	p, err := loadPresets(data)
	if err != nil {
		panic("layout: broken preset table: " + err.Error())
	}
	return p
}

//loadPresets parses a YAML document mapping tags to lists of [x, y, z] rows.
func loadPresets(data []byte) (map[string][]float64, error) {
	raw := make(map[string][][]float64)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	ret := make(map[string][]float64, len(raw))
	for tag, rows := range raw {
		T, err := csg.ParseTag(tag)
		if err != nil {
			return nil, err
		}
		if len(rows) != T.B {
			return nil, fmt.Errorf("%s has %d positions, want %d", tag, len(rows), T.B)
		}
		flat := make([]float64, 0, 3*len(rows))
		for i, r := range rows {
			if len(r) != 3 {
				return nil, fmt.Errorf("%s: position %d has %d coordinates", tag, i, len(r))
			}
			flat = append(flat, r...)
		}
		ret[tag] = flat
	}
	return ret, nil
}

//Tags returns the geometry tags with a preset, sorted.
func Tags() []string {
	ret := make([]string, 0, len(presets))
	for t := range presets {
		ret = append(ret, t)
	}
	sort.Strings(ret)
	return ret
}

//Lookup returns a new matrix with the positions of the atoms bonded to the
//central atom, for the given tag. The central atom is at the origin.
//For unknown tags the error satisfies errors.Is(err, ErrNoLayout).
func Lookup(tag string) (*v3.Matrix, error) {
	p, ok := presets[tag]
	if !ok {
		return nil, fmt.Errorf("layout.Lookup: %w for %q", ErrNoLayout, tag)
	}
	return v3.NewMatrix(append([]float64(nil), p...))
}

//Structure is a set of labeled atoms ready to be drawn or written.
//The first atom is the central one, at the origin.
type Structure struct {
	Tag     string
	Symbols []string
	Coords  *v3.Matrix
}

//Len returns the number of atoms in the structure.
func (S *Structure) Len() int {
	return len(S.Symbols)
}

//Place puts the atoms of a classified compound on the preset for its tag.
//The bonded positions get, in order, the atoms of the non-central element that
//sets the tag's B count, then the other non-central atoms in formula order. If
//positions remain, they are filled with the first of those elements again; extra
//atoms are left out.
func Place(G *csg.Geometry) (*Structure, error) {
	tag := G.Tag.String()
	bonded, err := Lookup(tag)
	if err != nil {
		return nil, err
	}
	labels := ligandLabels(G.Stats, G.Bonded())
	n := bonded.NVecs()
	S := &Structure{Tag: tag, Symbols: make([]string, n+1), Coords: v3.Zeros(n + 1)}
	S.Symbols[0] = G.Stats.Central.Symbol
	for i := 0; i < n; i++ {
		if i < len(labels) {
			S.Symbols[i+1] = labels[i]
		} else {
			S.Symbols[i+1] = labels[0]
		}
		S.Coords.SetVec(i+1, bonded.Vec(i))
	}
	return S, nil
}

//ligandLabels expands the non-central atoms into one symbol per atom, starting
//with the element whose subscript is b.
func ligandLabels(C *csg.CompoundStats, b int) []string {
	first := 0
	for i, a := range C.Ligands {
		if a.Count == b {
			first = i
			break
		}
	}
	order := []csg.Atom{C.Ligands[first]}
	for i, a := range C.Ligands {
		if i != first {
			order = append(order, a)
		}
	}
	var ret []string
	for _, a := range order {
		for j := 0; j < a.Count; j++ {
			ret = append(ret, a.Symbol)
		}
	}
	return ret
}
