/*
 * validate.go, part of csg.
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

//Number of distinct elements a compound can have.
const (
	MinElements = 2
	MaxElements = 3
)

//Validate checks that a formula is a plausible compound: it must have 2 or 3
//elements, all of them known, and there must be a choice of oxidation states for the
//elements that makes the formula unit neutral. On success, it returns the first such
//choice found, one oxidation state per element, in formula order.
//The error, if any, is a *ValidationError.
func Validate(F *Formula) ([]int, error) {
	verr := func(reason error, symbol string) error {
		return &ValidationError{Formula: F.String(), Reason: reason, Symbol: symbol, deco: []string{"Validate"}}
	}
	if F.Len() < MinElements || F.Len() > MaxElements {
		return nil, verr(ErrArity, "")
	}
	charges := make([][]int, F.Len())
	states := make([][]int, F.Len())
	for i, t := range F.terms {
		s, ok := OxidationStates(t.Symbol)
		if _, ingroup := Group(t.Symbol); !ok || !ingroup {
			return nil, verr(ErrUnrecognizedElement, t.Symbol)
		}
		states[i] = s
		charges[i] = make([]int, len(s))
		for j, state := range s {
			charges[i][j] = t.Count * state
		}
	}
	combo := balance(charges)
	if combo == nil {
		return nil, verr(ErrChargeImbalance, "")
	}
	ret := make([]int, len(combo))
	for i, j := range combo {
		ret[i] = states[i][j]
	}
	return ret, nil
}

//balance goes through the cross product of the candidate charges of each element
//and returns the indexes of the first combination that adds to zero, or nil
//if there is none. The first element varies slowest.
//There are at most a few hundred combinations, so there is no need to be smart.
func balance(charges [][]int) []int {
	idx := make([]int, len(charges))
	for {
		sum := 0
		for i, j := range idx {
			sum += charges[i][j]
		}
		if sum == 0 {
			return idx
		}
		//advance the odometer from the last element.
		k := len(idx) - 1
		for ; k >= 0; k-- {
			idx[k]++
			if idx[k] < len(charges[k]) {
				break
			}
			idx[k] = 0
		}
		if k < 0 {
			return nil
		}
	}
}

//IsValid returns true if text parses to a formula that passes Validate.
//It is cheap enough to call on every keystroke.
func IsValid(text string) bool {
	F, err := ParseFormula(text)
	if err != nil {
		return false
	}
	_, err = Validate(F)
	return err == nil
}
