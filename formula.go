/*
 * formula.go, part of csg.
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
	"strconv"
	"strings"
)

//MaxSubscript is the largest number of atoms of one element a formula can have.
const MaxSubscript = 1000000

//Term is one element of a formula, with its subscript
type Term struct {
	Symbol string
	Count  int
}

//Formula is an ordered set of elements with their subscripts. The order is that
//of first appearance in the text the formula was parsed from. A Formula is
//not modified after it is created.
type Formula struct {
	terms []Term
}

//Len returns the number of distinct elements in the formula.
func (F *Formula) Len() int {
	return len(F.terms)
}

//Term returns the ith term of the formula. It panics if i is out of range.
func (F *Formula) Term(i int) Term {
	return F.terms[i]
}

//Terms returns a copy of the terms of the formula.
func (F *Formula) Terms() []Term {
	return append([]Term(nil), F.terms...)
}

//Symbols returns the element symbols in formula order.
func (F *Formula) Symbols() []string {
	ret := make([]string, len(F.terms))
	for i, t := range F.terms {
		ret[i] = t.Symbol
	}
	return ret
}

//Count returns the subscript for symbol, and false if the element is not in the formula.
func (F *Formula) Count(symbol string) (int, bool) {
	i := F.index(symbol)
	if i < 0 {
		return 0, false
	}
	return F.terms[i].Count, true
}

//Equal returns true if both formulas have the same terms in the same order.
func (F *Formula) Equal(G *Formula) bool {
	if F.Len() != G.Len() {
		return false
	}
	for i, t := range F.terms {
		if G.terms[i] != t {
			return false
		}
	}
	return true
}

//String returns the formula in canonical form, that is, without subscripts of 1.
func (F *Formula) String() string {
	var b strings.Builder
	for _, t := range F.terms {
		b.WriteString(t.Symbol)
		if t.Count != 1 {
			b.WriteString(strconv.Itoa(t.Count))
		}
	}
	return b.String()
}

func (F *Formula) index(symbol string) int {
	for i, t := range F.terms {
		if t.Symbol == symbol {
			return i
		}
	}
	return -1
}

//set writes the count for symbol. An element seen before keeps its
//first position and gets its count overwritten, not summed.
func (F *Formula) set(symbol string, count int) {
	if i := F.index(symbol); i >= 0 {
		F.terms[i].Count = count
		return
	}
	F.terms = append(F.terms, Term{symbol, count})
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

//ParseFormula tokenizes a formula such as "H2O" or "NaCl". The text must be one or more
//element symbols, each optionally followed by a subscript, with no separators,
//parentheses or charges. Surrounding blanks are ignored. Only the syntax is checked
//here, not the number of elements or whether they exist.
func ParseFormula(text string) (*Formula, error) {
	text = strings.TrimSpace(text)
	perr := func(msg string, pos int) error {
		return &ParseError{Formula: text, Pos: pos, message: msg, deco: []string{"ParseFormula"}}
	}
	if text == "" {
		return nil, perr("empty formula", -1)
	}
	F := new(Formula)
	symbol := ""
	count := 0
	digits := 0 //digits seen for the current symbol
	flush := func(pos int) error {
		if digits == 0 {
			count = 1
		} else if count == 0 {
			return perr("subscript can't be zero", pos)
		}
		F.set(symbol, count)
		return nil
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case isUpper(c):
			if symbol != "" {
				if err := flush(i - 1); err != nil {
					return nil, err
				}
			}
			symbol = string(c)
			count = 0
			digits = 0
		case isLower(c):
			if symbol == "" {
				return nil, perr("formula must start with an element symbol", i)
			}
			if digits > 0 || len(symbol) > 1 {
				return nil, perr("misplaced lowercase letter", i)
			}
			symbol += string(c)
		case isDigit(c):
			if symbol == "" {
				return nil, perr("subscript with no element", i)
			}
			count = count*10 + int(c-'0')
			digits++
			if count > MaxSubscript {
				return nil, perr("subscript too large", i)
			}
		default:
			return nil, perr("unexpected character "+strconv.QuoteRune(rune(c)), i)
		}
	}
	if err := flush(len(text) - 1); err != nil {
		return nil, err
	}
	return F, nil
}

//NewFormula builds a formula from terms, checking that symbols look like element symbols
//and subscripts are positive. Repeated symbols behave as in ParseFormula.
func NewFormula(terms ...Term) (*Formula, error) {
	F := new(Formula)
	for _, t := range terms {
		s := t.Symbol
		if len(s) == 0 || len(s) > 2 || !isUpper(s[0]) || (len(s) == 2 && !isLower(s[1])) {
			return nil, &ParseError{Formula: s, Pos: -1, message: "not an element symbol", deco: []string{"NewFormula"}}
		}
		if t.Count < 1 || t.Count > MaxSubscript {
			return nil, &ParseError{Formula: s, Pos: -1, message: "subscript out of range: " + strconv.Itoa(t.Count), deco: []string{"NewFormula"}}
		}
		F.set(t.Symbol, t.Count)
	}
	return F, nil
}
