/*
 * batch.go, part of csg.
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

//Package batch classifies many formulas at once.
package batch

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/rmera/csg"
	"golang.org/x/sync/errgroup"
)

//Outcome is the result of classifying one formula. Exactly one of
//Geometry and Err is nil.
type Outcome struct {
	Formula  string
	Geometry *csg.Geometry
	Err      error
}

//Classify classifies every formula using up to workers goroutines. The outcomes
//are in the same order as formulas. A formula that fails doesn't stop the others;
//its error goes in its Outcome. The only error returned is the context's, if it
//is cancelled before all the work is done; outcomes not reached then carry it too.
func Classify(ctx context.Context, formulas []string, workers int) ([]Outcome, error) {
	if workers < 1 {
		workers = 1
	}
	ret := make([]Outcome, len(formulas))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, f := range formulas {
		i, f := i, f
		ret[i].Formula = f
		if err := ctx.Err(); err != nil {
			ret[i].Err = err
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				ret[i].Err = err
				return nil
			}
			ret[i].Geometry, ret[i].Err = csg.ClassifyGeometry(f)
			return nil
		})
	}
	g.Wait()
	return ret, ctx.Err()
}

//ReadFormulas reads one formula per line from r. Blank lines and lines
//starting with # are skipped.
func ReadFormulas(r io.Reader) ([]string, error) {
	var ret []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ret = append(ret, line)
	}
	return ret, sc.Err()
}
