/*
 * atomicdata.go, part of csg.
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

package csg

import "image/color"

//The reduced periodic table: only the 8 main groups are present, and each
//element belongs to exactly one of them. Transition metals are absent,
//so they will be reported as unrecognized.

//groupMembers lists the symbols of each main group, in table order.
var groupMembers = map[int][]string{
	1:  {"H", "Li", "Na", "K", "Rb", "Cs", "Fr"},
	2:  {"Be", "Mg", "Ca", "Sr", "Ba", "Ra"},
	13: {"B", "Al", "Ga", "In", "Tl"},
	14: {"C", "Si", "Ge", "Sn", "Pb"},
	15: {"N", "P", "As", "Sb", "Bi"},
	16: {"O", "S", "Se", "Te", "Po"},
	17: {"F", "Cl", "Br", "I", "At"},
	18: {"He", "Ne", "Ar", "Kr", "Xe", "Rn"},
}

//Groups contains the main group numbers in increasing order.
var Groups = []int{1, 2, 13, 14, 15, 16, 17, 18}

var groupValency = map[int]int{
	1:  1,
	2:  2,
	13: 3,
	14: 4,
	15: 3,
	16: 2,
	17: 1,
	18: 0,
}

var groupValenceElectrons = map[int]int{
	1:  1,
	2:  2,
	13: 3,
	14: 4,
	15: 5,
	16: 6,
	17: 7,
	18: 8,
}

//Both have their single shell full with 2 electrons, but H only brings one.
var valenceElectronExceptions = map[string]int{
	"H":  1,
	"He": 2,
}

//oxidationStates are the oxidation states each element is allowed to adopt,
//in the order they are tried. Only common states of main-group elements are here.
var oxidationStates = map[string][]int{
	"H":  {-1, 1},
	"He": {0},
	"Li": {1},
	"Be": {2},
	"B":  {3},
	"C":  {-4, 2, 4},
	"N":  {-2, 4, 3},
	"O":  {-2, 2},
	"F":  {-1, 1, 3},
	"Ne": {0},
	"Na": {1},
	"Mg": {2},
	"Al": {3},
	"Si": {4},
	"P":  {3, 5},
	"S":  {-2, 4, 6},
	"Cl": {-1, 3},
	"Ar": {0},
	"K":  {1},
	"Ca": {2},
	"Br": {-1, 1, 3, 5, 7},
	"I":  {-1, 1, 3, 5, 7},
	"Xe": {2, 4, 6, 8},
}

var atomicNumber = map[string]int{
	"H": 1, "Li": 3, "Na": 11, "K": 19, "Rb": 37, "Cs": 55, "Fr": 87,
	"Be": 4, "Mg": 12, "Ca": 20, "Sr": 38, "Ba": 56, "Ra": 88,
	"B": 5, "Al": 13, "Ga": 31, "In": 49, "Tl": 81,
	"C": 6, "Si": 14, "Ge": 32, "Sn": 50, "Pb": 82,
	"N": 7, "P": 15, "As": 33, "Sb": 51, "Bi": 83,
	"O": 8, "S": 16, "Se": 34, "Te": 52, "Po": 84,
	"F": 9, "Cl": 17, "Br": 35, "I": 53, "At": 85,
	"He": 2, "Ne": 10, "Ar": 18, "Kr": 36, "Xe": 54, "Rn": 86,
}

//CPK-like colors, for drawing only.
var symbolColor = map[string]color.RGBA{
	"H":  {R: 255, G: 255, B: 255, A: 255},
	"He": {R: 217, G: 255, B: 255, A: 255},
	"Li": {R: 204, G: 128, B: 255, A: 255},
	"Be": {R: 194, G: 255, B: 0, A: 255},
	"B":  {R: 255, G: 181, B: 181, A: 255},
	"C":  {R: 80, G: 80, B: 80, A: 255},
	"N":  {R: 48, G: 80, B: 248, A: 255},
	"O":  {R: 255, G: 13, B: 13, A: 255},
	"F":  {R: 144, G: 224, B: 80, A: 255},
	"Ne": {R: 179, G: 227, B: 245, A: 255},
	"Na": {R: 171, G: 92, B: 242, A: 255},
	"Mg": {R: 138, G: 255, B: 0, A: 255},
	"Al": {R: 191, G: 166, B: 166, A: 255},
	"Si": {R: 240, G: 200, B: 160, A: 255},
	"P":  {R: 255, G: 128, B: 0, A: 255},
	"S":  {R: 255, G: 255, B: 48, A: 255},
	"Cl": {R: 31, G: 240, B: 31, A: 255},
	"Ar": {R: 128, G: 209, B: 227, A: 255},
	"K":  {R: 143, G: 64, B: 212, A: 255},
	"Ca": {R: 61, G: 255, B: 0, A: 255},
	"Br": {R: 166, G: 41, B: 41, A: 255},
	"Kr": {R: 92, G: 184, B: 209, A: 255},
	"I":  {R: 148, G: 0, B: 148, A: 255},
	"Xe": {R: 66, G: 158, B: 176, A: 255},
}

var defaultColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}

//the inverse of groupMembers, built once.
var symbolGroup = func() map[string]int {
	ret := make(map[string]int, len(atomicNumber))
	for g, members := range groupMembers {
		for _, s := range members {
			ret[s] = g
		}
	}
	return ret
}()

//Group returns the main group the element belongs to, and
//false if the symbol is not in the reduced periodic table.
func Group(symbol string) (int, bool) {
	g, ok := symbolGroup[symbol]
	return g, ok
}

//GroupElements returns a copy of the symbols in group n, in table order,
//or nil if n is not a main group.
func GroupElements(n int) []string {
	m, ok := groupMembers[n]
	if !ok {
		return nil
	}
	return append([]string(nil), m...)
}

//Valency returns the valency of the group to which the element belongs.
func Valency(symbol string) (int, bool) {
	g, ok := symbolGroup[symbol]
	if !ok {
		return 0, false
	}
	return groupValency[g], true
}

//ValenceElectrons returns the number of valence electrons of an atom of the element.
func ValenceElectrons(symbol string) (int, bool) {
	if n, ok := valenceElectronExceptions[symbol]; ok {
		return n, true
	}
	g, ok := symbolGroup[symbol]
	if !ok {
		return 0, false
	}
	return groupValenceElectrons[g], true
}

//OxidationStates returns a copy of the oxidation states allowed for the element.
//The bool is false for elements the charge balance does not know about.
func OxidationStates(symbol string) ([]int, bool) {
	s, ok := oxidationStates[symbol]
	if !ok {
		return nil, false
	}
	return append([]int(nil), s...), true
}

//AtomicNumber returns the atomic number of the element, or 0 if unknown.
func AtomicNumber(symbol string) int {
	return atomicNumber[symbol]
}

//MarkerColor returns the color used to draw atoms of the element.
//Elements without a color get grey.
func MarkerColor(symbol string) color.RGBA {
	if c, ok := symbolColor[symbol]; ok {
		return c
	}
	return defaultColor
}
