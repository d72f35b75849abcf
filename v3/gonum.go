/*
 * gonum.go, part of csg.
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

//All the *Vec functions operate on row vectors, i.e. on the cartesian coordinates of
//one point in 3D space.

package v3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const cols int = 3

//Matrix is a set of vectors in 3D space, one per row.
type Matrix struct {
	*mat.Dense
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
//data is used as the backing slice, it is not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	l := len(data)
	if l == 0 {
		return nil, Error{"Given empty data", []string{"NewMatrix"}}
	}
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}}
	}
	return &Matrix{mat.NewDense(l/cols, cols, data)}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	return &Matrix{mat.NewDense(vecs, cols, nil)}
}

//NVecs returns the number of vectors (rows) in the matrix.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != cols {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//VecView returns a view of the ith vector. Changes in the view are reflected in F.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, cols).(*mat.Dense)
	return &Matrix{r}
}

//Vec returns a copy of the ith vector as an array.
func (F *Matrix) Vec(i int) [3]float64 {
	var ret [3]float64
	mat.Row(ret[:], i, F.Dense)
	return ret
}

//SetVec sets the ith vector of F to v.
func (F *Matrix) SetVec(i int, v [3]float64) {
	F.SetRow(i, v[:])
}

//Norms returns a slice with the euclidean norm of each vector in F.
func (F *Matrix) Norms() []float64 {
	n := F.NVecs()
	ret := make([]float64, n)
	for i := 0; i < n; i++ {
		ret[i] = mat.Norm(F.VecView(i), 2)
	}
	return ret
}

//Normalize scales every non-zero vector of A to unit length and puts the result in F.
//Vectors with norm below appzero are left as they are.
func (F *Matrix) Normalize(A *Matrix) {
	if F != A {
		F.Copy(A)
	}
	for i, n := range F.Norms() {
		if n <= appzero {
			continue
		}
		v := F.VecView(i)
		v.Scale(1/n, v)
	}
}

//Rotate multiplies A by the 3x3 rotation matrix R (each vector is a row, so the
//product is A*R^T) and puts the result in F.
func (F *Matrix) Rotate(A *Matrix, R mat.Matrix) {
	if r, c := R.Dims(); r != cols || c != cols {
		panic(ErrShape)
	}
	if F == A {
		tmp := mat.DenseCopyOf(A.Dense)
		F.Dense.Mul(tmp, R.T())
		return
	}
	F.Dense.Mul(A.Dense, R.T())
}

//ViewRotation returns the rotation that a camera at the given azimuth (around Z) and
//elevation (around X) applies to a set of coordinates. Angles are in radians.
func ViewRotation(azimuth, elevation float64) *mat.Dense {
	ca, sa := math.Cos(azimuth), math.Sin(azimuth)
	ce, se := math.Cos(elevation), math.Sin(elevation)
	Rz := mat.NewDense(3, 3, []float64{
		ca, -sa, 0,
		sa, ca, 0,
		0, 0, 1,
	})
	Rx := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, ce, -se,
		0, se, ce,
	})
	R := mat.NewDense(3, 3, nil)
	R.Mul(Rx, Rz)
	return R
}

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//Error is the general structure for errors in this package.
type Error struct {
	message string
	deco    []string
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix = PanicMsg("csg/v3: A Matrix should have 3 columns")
	ErrShape        = PanicMsg("csg/v3: Dimension mismatch")
)
