/*
 * xyz.go, part of csg.
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

package layout

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	v3 "github.com/rmera/csg/v3"
)

//WriteXYZ writes S to out as a single XYZ frame, with comment in the second line.
func WriteXYZ(out io.Writer, S *Structure, comment string) error {
	if S == nil || S.Coords == nil || S.Coords.NVecs() != len(S.Symbols) {
		return fmt.Errorf("WriteXYZ: given an incomplete structure")
	}
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "%d\n%s\n", S.Len(), strings.ReplaceAll(comment, "\n", " "))
	for i, s := range S.Symbols {
		c := S.Coords.Vec(i)
		fmt.Fprintf(w, "%-2s %12.6f %12.6f %12.6f\n", s, c[0], c[1], c[2])
	}
	return w.Flush()
}

//ReadXYZ reads the first frame of an XYZ file. The comment line is used as the tag
//if it is a single word.
func ReadXYZ(in io.Reader) (*Structure, error) {
	r := bufio.NewScanner(in)
	next := func() (string, bool) {
		if !r.Scan() {
			return "", false
		}
		return r.Text(), true
	}
	line, ok := next()
	if !ok {
		return nil, fmt.Errorf("ReadXYZ: empty input: %v", r.Err())
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || natoms < 1 {
		return nil, fmt.Errorf("ReadXYZ: bad atom count %q", line)
	}
	comment, _ := next()
	//the header is not trusted for allocations, the rows are counted as they come.
	S := new(Structure)
	var flat []float64
	if f := strings.Fields(comment); len(f) == 1 {
		S.Tag = f[0]
	}
	for i := 0; i < natoms; i++ {
		line, ok = next()
		if !ok {
			return nil, fmt.Errorf("ReadXYZ: expected %d atoms, found %d", natoms, i)
		}
		f := strings.Fields(line)
		if len(f) < 4 {
			return nil, fmt.Errorf("ReadXYZ: malformed line %q", line)
		}
		for j := 1; j <= 3; j++ {
			c, err := strconv.ParseFloat(f[j], 64)
			if err != nil {
				return nil, fmt.Errorf("ReadXYZ: malformed line %q: %w", line, err)
			}
			flat = append(flat, c)
		}
		S.Symbols = append(S.Symbols, f[0])
	}
	if S.Coords, err = v3.NewMatrix(flat); err != nil {
		return nil, fmt.Errorf("ReadXYZ: %w", err)
	}
	return S, nil
}

//XYZFileWrite writes S to the file name. Names ending in .gz are gzip-compressed and
//names ending in .zst are compressed with zstd.
func XYZFileWrite(name string, S *Structure, comment string) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	var w io.WriteCloser
	switch {
	case strings.HasSuffix(name, ".gz"):
		w = gzip.NewWriter(f)
	case strings.HasSuffix(name, ".zst"):
		w, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return err
		}
	default:
		return WriteXYZ(f, S, comment)
	}
	if err = WriteXYZ(w, S, comment); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

//XYZFileRead reads the first frame of the file name, decompressing as XYZFileWrite would have compressed.
func XYZFileRead(name string) (*Structure, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	switch {
	case strings.HasSuffix(name, ".gz"):
		r, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return ReadXYZ(r)
	case strings.HasSuffix(name, ".zst"):
		r, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return ReadXYZ(r)
	}
	return ReadXYZ(f)
}
