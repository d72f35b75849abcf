/*
 * geometry.go, part of csg.
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

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

//Tag is the AXnLm classification of a geometry: A central atoms (always 1),
//B bonded atoms and L lone pairs on the central atom.
type Tag struct {
	A, B, L int
}

//String serializes the tag. A count of 1 is written as the bare letter,
//counts of 0 (or less) are left out, anything else goes as a suffix. So
//{1,2,0} is "AB2" and {1,4,2} is "AB4L2".
func (T Tag) String() string {
	var b strings.Builder
	for _, c := range []struct {
		letter string
		n      int
	}{{"A", T.A}, {"B", T.B}, {"L", T.L}} {
		if c.n <= 0 {
			continue
		}
		b.WriteString(c.letter)
		if c.n > 1 {
			b.WriteString(strconv.Itoa(c.n))
		}
	}
	return b.String()
}

//A tag has a bare A; suffixes are 2-9 or numbers with no leading zero, as Tag.String
//writes them.
var tagRegexp = regexp.MustCompile(`^A(?:(B)([2-9]|[1-9]\d+)?)?(?:(L)([2-9]|[1-9]\d+)?)?$`)

//ParseTag reads a tag written by Tag.String. Other spellings of the same
//counts, such as "A1B2" or "AB0", are rejected.
func ParseTag(s string) (Tag, error) {
	m := tagRegexp.FindStringSubmatch(s)
	if m == nil {
		return Tag{}, fmt.Errorf("ParseTag: %q is not a geometry tag", s)
	}
	count := func(letter, digits string) int {
		if letter == "" {
			return 0
		}
		if digits == "" {
			return 1
		}
		n, _ := strconv.Atoi(digits)
		return n
	}
	return Tag{A: 1, B: count(m[1], m[2]), L: count(m[3], m[4])}, nil
}

//Geometry is the result of classifying a compound.
type Geometry struct {
	Stats     *CompoundStats
	LonePairs float64 //not rounded, it can be fractional or negative for odd inputs.
	Tag       Tag
}

//Degenerate returns true if the lone pair count is negative or not an integer,
//which has no physical meaning. The tag is still produced in that case, but
//it should not be trusted.
func (G *Geometry) Degenerate() bool {
	return G.LonePairs < 0 || G.LonePairs != math.Trunc(G.LonePairs)
}

//Check returns a *DegenerateGeometryError if the geometry is degenerate, nil otherwise.
func (G *Geometry) Check() error {
	if !G.Degenerate() {
		return nil
	}
	return &DegenerateGeometryError{Formula: G.Stats.Formula.String(), LonePairs: G.LonePairs, deco: []string{"Check"}}
}

//Bonded returns the number of atoms the geometry places around the central one.
func (G *Geometry) Bonded() int {
	return G.Tag.B
}

//LonePairs computes the lone pairs on the central atom: its valence electrons
//minus the electrons used in bonds (valency times subscript of each non-central atom),
//halved. The division is not truncated.
func LonePairs(C *CompoundStats) float64 {
	bonding := 0
	for _, a := range C.Ligands {
		bonding += a.Valency * a.Count
	}
	return float64(C.Central.ValenceElectrons-bonding) / 2
}

//Classify obtains the lone pairs and geometry tag for a compound.
//B is the subscript of the first non-central atom with a subscript larger than 1
//(or 1 if there is none) and L is the lone-pair count truncated toward zero.
func Classify(C *CompoundStats) *Geometry {
	lp := LonePairs(C)
	T := Tag{A: 1, B: 1, L: int(math.Trunc(lp))}
	for _, a := range C.Ligands {
		if a.Count > 1 {
			T.B = a.Count
			break
		}
	}
	return &Geometry{Stats: C, LonePairs: lp, Tag: T}
}

//ClassifyGeometry parses, validates and classifies a formula. A formula that
//does not parse or does not validate gives an error for which
//errors.Is(err, ErrInvalidFormula) is true, and nothing is classified.
func ClassifyGeometry(text string) (*Geometry, error) {
	F, err := ParseFormula(text)
	if err != nil {
		return nil, errDecorate(err, "ClassifyGeometry")
	}
	if _, err := Validate(F); err != nil {
		return nil, errDecorate(err, "ClassifyGeometry")
	}
	C, err := Resolve(F)
	if err != nil {
		return nil, errDecorate(err, "ClassifyGeometry")
	}
	return Classify(C), nil
}
