/*
 * json.go, part of csg.
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

package chemjson

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/rmera/csg"
	"github.com/rmera/csg/layout"
)

//An easily JSON-serializable error type,
type Error struct {
	deco     []string
	IsError  bool   //If this is false (no error) all the other fields will be at their zero-values.
	Stage    string //"options", "parse", "validate", "layout" or "postprocess"
	Reason   string //for validation errors: "arity", "element" or "charge"
	Function string //which go function gave the error
	Message  string //the error itself
}

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

//Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - ")) // Yo, dawg, I heard you like errors, so I got an error while serializing your error so you can... you know the drill.
	}
	return ret
}

//NewError takes an error and the function where it happened and creates a json-marshal-able error.
//The stage is deduced from the error, unless where is given.
func NewError(where, function string, err error) *Error {
	jerr := &Error{IsError: true, Stage: where, Function: function, Message: err.Error()}
	switch {
	case errors.Is(err, csg.ErrSyntax):
		jerr.Stage = "parse"
	case errors.Is(err, csg.ErrArity):
		jerr.Stage, jerr.Reason = "validate", "arity"
	case errors.Is(err, csg.ErrUnrecognizedElement):
		jerr.Stage, jerr.Reason = "validate", "element"
	case errors.Is(err, csg.ErrChargeImbalance):
		jerr.Stage, jerr.Reason = "validate", "charge"
	case errors.Is(err, csg.ErrDegenerateGeometry):
		jerr.Stage, jerr.Reason = "classify", "degenerate"
	case errors.Is(err, layout.ErrNoLayout):
		jerr.Stage = "layout"
	}
	if jerr.Stage == "" {
		jerr.Stage = "process"
	}
	return jerr
}

//Term is one element of a formula.
type Term struct {
	Symbol string
	Count  int
}

//Result is everything csg can tell about a formula, ready to serialize.
//Fields that could not be obtained are left at their zero values and
//Error explains why.
type Result struct {
	Formula         string
	Elements        []Term      `json:",omitempty"`
	Valid           bool
	OxidationStates []int       `json:",omitempty"`
	Central         string      `json:",omitempty"`
	Rule            string      `json:",omitempty"`
	Ligands         []string    `json:",omitempty"`
	LonePairs       float64
	Tag             string      `json:",omitempty"`
	Degenerate      bool
	Layout          bool        //Is there a preset for the tag?
	Symbols         []string    `json:",omitempty"` //only if coordinates were requested
	Coords          [][]float64 `json:",omitempty"`
	Error           *Error      `json:",omitempty"`
}

//NewResult runs text through the whole csg pipeline. If coords is true and there is
//a layout for the geometry, the placed atoms are included. If strict is true, a
//degenerate geometry makes the result invalid, with the classification fields still filled.
func NewResult(text string, coords, strict bool) *Result {
	const funcname = "NewResult"
	R := &Result{Formula: strings.TrimSpace(text)}
	F, err := csg.ParseFormula(text)
	if err != nil {
		R.Error = NewError("", "csg.ParseFormula", err)
		R.Error.Decorate(funcname)
		return R
	}
	for _, t := range F.Terms() {
		R.Elements = append(R.Elements, Term{t.Symbol, t.Count})
	}
	states, err := csg.Validate(F)
	if err != nil {
		R.Error = NewError("", "csg.Validate", err)
		R.Error.Decorate(funcname)
		return R
	}
	R.Valid = true
	R.OxidationStates = states
	C, err := csg.Resolve(F)
	if err != nil {
		R.Error = NewError("", "csg.Resolve", err)
		R.Error.Decorate(funcname)
		return R
	}
	G := csg.Classify(C)
	R.Central = C.Central.Symbol
	R.Rule = C.Rule.String()
	for _, l := range C.Ligands {
		R.Ligands = append(R.Ligands, l.Symbol)
	}
	R.LonePairs = G.LonePairs
	R.Tag = G.Tag.String()
	R.Degenerate = G.Degenerate()
	if strict {
		if err := G.Check(); err != nil {
			R.Valid = false
			R.Error = NewError("classify", "Geometry.Check", err)
			R.Error.Decorate(funcname)
			return R
		}
	}
	S, err := layout.Place(G)
	if err != nil {
		//not an error for the result, the geometry is fine, there is just no picture.
		return R
	}
	R.Layout = true
	if coords {
		R.Symbols = S.Symbols
		for i := 0; i < S.Len(); i++ {
			v := S.Coords.Vec(i)
			R.Coords = append(R.Coords, v[:])
		}
	}
	return R
}

//Send Marshals the result and writes to out, returns an error or nil
func (R *Result) Send(out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(R); err != nil {
		return NewError("postprocess", "Result.Send", err)
	}
	return nil
}

//Options passed from the calling external program
type Options struct {
	Formulas []string
	Coords   bool //include the placed atoms in the results
	Strict   bool //reject degenerate geometries
}

//DecodeOptions Decodes or unmarshals json options into an Options structure
func DecodeOptions(stdin *bufio.Reader) (*Options, *Error) {
	line, err := stdin.ReadBytes('\n')
	if err != nil && (err != io.EOF || len(line) == 0) {
		return nil, NewError("options", "DecodeOptions", err)
	}
	ret := new(Options)
	err = json.Unmarshal(line, ret)
	if err != nil {
		return nil, NewError("options", "DecodeOptions", err)
	}
	return ret, nil
}

//Serve reads one line of options from in, and writes one JSON result per requested
//formula to out, in order. Degenerate geometries are rejected if strict is true
//or the options ask for it.
func Serve(in io.Reader, out io.Writer, strict bool) *Error {
	opt, jerr := DecodeOptions(bufio.NewReader(in))
	if jerr != nil {
		return jerr
	}
	for _, f := range opt.Formulas {
		if jerr := NewResult(f, opt.Coords, strict || opt.Strict).Send(out); jerr != nil {
			jerr.Decorate("Serve")
			return jerr
		}
	}
	return nil
}
