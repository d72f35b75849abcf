/*
 * central.go, part of csg.
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

import "fmt"

//SelectionRule tells which of the central atom selection rules decided.
type SelectionRule int

const (
	//SmallestSubscript: only one element had the smallest subscript.
	SmallestSubscript SelectionRule = iota
	//ValenceTieBreak: among the elements with a subscript of 1, the one with most valence electrons.
	ValenceTieBreak
	//FormulaOrder: nothing else worked, the first element in the formula.
	FormulaOrder
)

func (R SelectionRule) String() string {
	switch R {
	case SmallestSubscript:
		return "smallest subscript"
	case ValenceTieBreak:
		return "valence electron tie-break"
	case FormulaOrder:
		return "formula order"
	}
	return fmt.Sprintf("SelectionRule(%d)", int(R))
}

//Atom contains the valence data of one element in a compound.
type Atom struct {
	Symbol           string
	Count            int
	Valency          int
	ValenceElectrons int
}

func newAtom(t Term) Atom {
	val, _ := Valency(t.Symbol)
	ve, _ := ValenceElectrons(t.Symbol)
	return Atom{Symbol: t.Symbol, Count: t.Count, Valency: val, ValenceElectrons: ve}
}

//CompoundStats contains the central atom of a compound and the atoms bonded to it.
type CompoundStats struct {
	Formula *Formula
	Central Atom
	Ligands []Atom //non-central atoms, in formula order
	Rule    SelectionRule
}

//Resolve picks the central atom of a validated formula:
//the element with the strictly smallest subscript, or, in 3-element formulas,
//the subscript-1 element with most valence electrons, or else the first element.
//All other elements are bonded to the central one.
//It returns an error only if the formula would not pass Validate's arity and element checks.
func Resolve(F *Formula) (*CompoundStats, error) {
	if F.Len() < MinElements || F.Len() > MaxElements {
		return nil, &ValidationError{Formula: F.String(), Reason: ErrArity, deco: []string{"Resolve"}}
	}
	for _, t := range F.terms {
		if _, ok := symbolGroup[t.Symbol]; !ok {
			return nil, &ValidationError{Formula: F.String(), Reason: ErrUnrecognizedElement, Symbol: t.Symbol, deco: []string{"Resolve"}}
		}
	}
	central, rule := selectCentral(F)
	C := &CompoundStats{Formula: F, Central: newAtom(F.terms[central]), Rule: rule}
	C.Ligands = make([]Atom, 0, F.Len()-1)
	for i, t := range F.terms {
		if i != central {
			C.Ligands = append(C.Ligands, newAtom(t))
		}
	}
	return C, nil
}

//selectCentral returns the index of the central atom and the rule used to pick it.
func selectCentral(F *Formula) (int, SelectionRule) {
	min := F.terms[0].Count
	for _, t := range F.terms[1:] {
		if t.Count < min {
			min = t.Count
		}
	}
	minindex := -1
	nmin := 0
	for i, t := range F.terms {
		if t.Count == min {
			nmin++
			minindex = i
		}
	}
	if nmin == 1 {
		return minindex, SmallestSubscript
	}
	if F.Len() == 3 {
		best := -1
		maxve := 0
		for i, t := range F.terms {
			if t.Count != 1 {
				continue
			}
			ve, _ := ValenceElectrons(t.Symbol)
			if ve > maxve {
				maxve = ve
				best = i
			}
		}
		if best >= 0 {
			return best, ValenceTieBreak
		}
	}
	return 0, FormulaOrder
}
