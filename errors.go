/*
 * errors.go, part of csg.
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
	"errors"
	"fmt"
	"strings"
)

//Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
//error, without changing it's type or wrapping it around something else.
//The decoration slice should contain a list of functions in the calling stack, plus, for each function, any relevant information, or nothing.
//If information is to be added to an element of the slice, it should be in this format: "FunctionName: Extra info"
type Error interface {
	Error() string
	Decorate(string) []string
}

//Sentinel values, to be used with errors.Is. Every ParseError and ValidationError
//is also an ErrInvalidFormula, which is all a front-end needs to know.
var (
	ErrSyntax              = errors.New("malformed chemical formula")
	ErrInvalidFormula      = errors.New("invalid compound")
	ErrArity               = errors.New("a compound must have 2 or 3 elements")
	ErrUnrecognizedElement = errors.New("not a valid chemical")
	ErrChargeImbalance     = errors.New("net charge never balances to zero")
	ErrDegenerateGeometry  = errors.New("lone pair count has no physical meaning")
)

//ParseError is returned when a formula does not follow the element-subscript grammar.
type ParseError struct {
	Formula string
	Pos     int //byte offset of the offending character, -1 if it doesn't apply
	message string
	deco    []string
}

func (err *ParseError) Error() string {
	if err.Pos < 0 {
		return fmt.Sprintf("formula %q: %s", err.Formula, err.message)
	}
	return fmt.Sprintf("formula %q: %s (position %d)", err.Formula, err.message, err.Pos)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *ParseError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func (err *ParseError) Unwrap() error { return ErrSyntax }

func (err *ParseError) Is(target error) bool { return target == ErrInvalidFormula }

//ValidationError is returned when a well-formed formula is not a plausible compound.
//Reason is one of ErrArity, ErrUnrecognizedElement or ErrChargeImbalance.
type ValidationError struct {
	Formula string
	Reason  error
	Symbol  string //the unrecognized element, if that was the problem.
	deco    []string
}

func (err *ValidationError) Error() string {
	if err.Symbol != "" {
		return fmt.Sprintf("formula %q: %s: unknown element %s", err.Formula, err.Reason, err.Symbol)
	}
	return fmt.Sprintf("formula %q: %s", err.Formula, err.Reason)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *ValidationError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func (err *ValidationError) Unwrap() []error { return []error{err.Reason, ErrInvalidFormula} }

//DegenerateGeometryError reports a lone pair count that is negative or fractional.
//The geometry is still computed; this error is only produced on request (see Geometry.Check).
type DegenerateGeometryError struct {
	Formula   string
	LonePairs float64
	deco      []string
}

func (err *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("formula %q: %s (%g lone pairs)", err.Formula, ErrDegenerateGeometry, err.LonePairs)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *DegenerateGeometryError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func (err *DegenerateGeometryError) Unwrap() error { return ErrDegenerateGeometry }

//errDecorate adds the caller's name to err, if err implements Error,
//and returns it.
func errDecorate(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.Decorate(caller)
	}
	return err
}

//Trace returns the chain of functions recorded in err, joined by " <- ",
//or an empty string if err doesn't implement Error.
func Trace(err error) string {
	var e Error
	if !errors.As(err, &e) {
		return ""
	}
	return strings.Join(e.Decorate(""), " <- ")
}
