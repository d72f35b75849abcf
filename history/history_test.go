/*
 * history_test.go, part of csg.
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

package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	S, err := Open(context.Background(), filepath.Join(t.TempDir(), ".db", "csg_db.db"))
	require.NoError(t, err)
	t.Cleanup(func() { S.Close() })
	return S
}

func TestAddList(t *testing.T) {
	ctx := context.Background()
	S := openTemp(t)
	require.NoError(t, S.Add(ctx, "H2O", Formula))
	require.NoError(t, S.Add(ctx, "/help", Builtin))
	require.NoError(t, S.Add(ctx, "NH3", Formula))

	all, err := S.List(ctx, All)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(1), all[0].Number)
	assert.Equal(t, "H2O", all[0].Command)
	assert.Equal(t, Builtin, all[1].Kind)
	assert.Equal(t, S.Session(), all[2].Session)
	assert.False(t, all[2].Time.IsZero())

	formulas, err := S.List(ctx, Formula)
	require.NoError(t, err)
	require.Len(t, formulas, 2)
	assert.Equal(t, "NH3", formulas[1].Command)

	assert.Error(t, S.Add(ctx, "x", Kind("other")))
}

func TestFormulas(t *testing.T) {
	ctx := context.Background()
	S := openTemp(t)
	for _, f := range []string{"H2O", "CO2", "H2O", "NH3"} {
		require.NoError(t, S.Add(ctx, f, Formula))
	}
	require.NoError(t, S.Add(ctx, "/quit", Builtin))
	recent, err := S.Formulas(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"NH3", "H2O", "CO2"}, recent)
	recent, err = S.Formulas(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"NH3"}, recent)
}

func TestAddFormula(t *testing.T) {
	ctx := context.Background()
	S := openTemp(t)
	added, err := S.AddFormula(ctx, "H2O")
	require.NoError(t, err)
	assert.True(t, added)
	require.NoError(t, S.Add(ctx, "/help", Builtin))
	added, err = S.AddFormula(ctx, "H2O")
	require.NoError(t, err)
	assert.False(t, added)
	added, err = S.AddFormula(ctx, "CO2")
	require.NoError(t, err)
	assert.True(t, added)
	//a built-in with the same text doesn't count.
	require.NoError(t, S.Add(ctx, "SF6", Builtin))
	added, err = S.AddFormula(ctx, "SF6")
	require.NoError(t, err)
	assert.True(t, added)

	formulas, err := S.List(ctx, Formula)
	require.NoError(t, err)
	require.Len(t, formulas, 3)
	assert.Equal(t, "H2O", formulas[0].Command)
	assert.Equal(t, "CO2", formulas[1].Command)

	require.NoError(t, S.Close())
	_, err = S.AddFormula(ctx, "NH3")
	assert.ErrorIs(t, err, ErrClosed)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	S := openTemp(t)
	require.NoError(t, S.Add(ctx, "H2O", Formula))
	require.NoError(t, S.Add(ctx, "CO2", Formula))
	require.NoError(t, S.Clear(ctx))
	all, err := S.List(ctx, All)
	require.NoError(t, err)
	assert.Empty(t, all)
	require.NoError(t, S.Add(ctx, "SF6", Formula))
	all, err = S.List(ctx, All)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, int64(1), all[0].Number, "numbering restarts after Clear")
}

func TestPersistence(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "hist.db")
	S, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, S.Add(ctx, "XeF4", Formula))
	first := S.Session()
	require.NoError(t, S.Close())
	require.NoError(t, S.Close())
	assert.ErrorIs(t, S.Add(ctx, "H2O", Formula), ErrClosed)

	S, err = Open(ctx, path)
	require.NoError(t, err)
	defer S.Close()
	assert.NotEqual(t, first, S.Session())
	all, err := S.List(ctx, All)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, first, all[0].Session)
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	S, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	defer S.Close()
	require.NoError(t, S.Add(ctx, "BF3", Formula))
	all, err := S.List(ctx, Formula)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("builtin")
	require.NoError(t, err)
	assert.Equal(t, Builtin, k)
	_, err = ParseKind("")
	assert.Error(t, err)
}
