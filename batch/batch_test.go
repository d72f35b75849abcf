/*
 * batch_test.go, part of csg.
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

package batch

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rmera/csg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	formulas := []string{"H2O", "XyZ9", "NH3", "CO2", "NaCl2", "SF6"}
	out, err := Classify(context.Background(), formulas, 3)
	require.NoError(t, err)
	require.Len(t, out, len(formulas))
	want := []string{"AB2L2", "", "AB3L", "AB2", "", "AB6"}
	for i, o := range out {
		assert.Equal(t, formulas[i], o.Formula)
		if want[i] == "" {
			assert.Nil(t, o.Geometry, o.Formula)
			assert.ErrorIs(t, o.Err, csg.ErrInvalidFormula, o.Formula)
			continue
		}
		require.NoError(t, o.Err, o.Formula)
		assert.Equal(t, want[i], o.Geometry.Tag.String(), o.Formula)
	}
}

func TestClassifyMany(t *testing.T) {
	formulas := make([]string, 500)
	for i := range formulas {
		formulas[i] = []string{"XeF4", "BF3", "PCl5"}[i%3]
	}
	out, err := Classify(context.Background(), formulas, 0)
	require.NoError(t, err)
	for i, o := range out {
		require.NoError(t, o.Err)
		assert.Equal(t, []string{"AB4L2", "AB3", "AB5"}[i%3], o.Geometry.Tag.String())
	}
}

func TestClassifyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out, err := Classify(ctx, []string{"H2O", "CO2"}, 2)
	assert.True(t, errors.Is(err, context.Canceled))
	for _, o := range out {
		assert.ErrorIs(t, o.Err, context.Canceled)
		assert.Nil(t, o.Geometry)
	}
}

func TestReadFormulas(t *testing.T) {
	in := "# simple ones\nH2O\n\n  NH3  \n#CO2\nSF6\n"
	f, err := ReadFormulas(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"H2O", "NH3", "SF6"}, f)
}
