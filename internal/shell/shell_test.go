/*
 * shell_test.go, part of csg.
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

package shell

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rmera/csg"
	"github.com/rmera/csg/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func run(t *testing.T, input string, setup func(S *Shell)) string {
	t.Helper()
	var out bytes.Buffer
	S := New(strings.NewReader(input), &out)
	if setup != nil {
		setup(S)
	}
	require.NoError(t, S.Run(context.Background()))
	return out.String()
}

func TestFormulas(t *testing.T) {
	out := run(t, "H2O\n\nNH3\nH2\nCO2\n", nil)
	assert.Contains(t, out, "Lone Pairs : 2     \nGeometry   : AB2L2 \n")
	assert.Contains(t, out, "Geometry   : AB3L  \n")
	assert.Contains(t, out, "Geometry   : AB2   \n")
	assert.Equal(t, 1, strings.Count(out, "Enter a valid compound with 2 or 3 elements."))
	assert.True(t, strings.HasSuffix(out, ">> Exiting...\n"))
	assert.Equal(t, 6, strings.Count(out, prompt))
}

func TestBuiltins(t *testing.T) {
	out := run(t, "/help\n/help /history\n/help /nope\n/frobnicate\n/quit\nH2O\n", nil)
	assert.Contains(t, out, "Valid commands:")
	assert.Contains(t, out, "Usage: /history [subcommand]")
	assert.Contains(t, out, "Invalid builtin command: '/nope'")
	assert.Contains(t, out, "Invalid command: '/frobnicate'\nTry '/help' for more information.\n")
	assert.True(t, strings.HasSuffix(out, "Exiting...\n"))
	//nothing after /quit is read.
	assert.NotContains(t, out, "Geometry")
	out = run(t, "/history\n", nil)
	assert.Contains(t, out, "History is disabled.")
}

func TestHistory(t *testing.T) {
	ctx := context.Background()
	store, err := history.Open(ctx, ":memory:")
	require.NoError(t, err)
	defer store.Close()
	out := run(t, "H2O\n/help\nXyZ9\nH2O\nNO2\n/history select formula\n/history select\n/history select other\n", func(S *Shell) { S.History = store })
	assert.Contains(t, out, "Please specify a command type to select.")
	assert.Contains(t, out, "Invalid command type: 'other'")
	assert.Regexp(t, `\s+1  H2O\s+formula`, out)
	assert.Regexp(t, `\s+3  NO2\s+formula`, out)
	assert.NotContains(t, out, "XyZ9  ")
	assert.NotRegexp(t, `\s+2  /help`, out)

	//invalid formulas and repeats are not recorded, built-ins always are.
	recs, err := store.List(ctx, history.All)
	require.NoError(t, err)
	require.Len(t, recs, 6)
	assert.Equal(t, history.Builtin, recs[1].Kind)
	assert.Equal(t, "NO2", recs[2].Command)
	assert.Equal(t, "/history select other", recs[5].Command)
	formulas, err := store.List(ctx, history.Formula)
	require.NoError(t, err)
	assert.Len(t, formulas, 2)

	//strict mode doesn't record what it rejects.
	run(t, "SO2\nKO2\nNO2\n", func(S *Shell) { S.History = store; S.Strict = true })
	formulas, err = store.List(ctx, history.Formula)
	require.NoError(t, err)
	require.Len(t, formulas, 3)
	assert.Equal(t, "SO2", formulas[2].Command)

	out = run(t, "/history clear\n/exit\n", func(S *Shell) { S.History = store })
	assert.Contains(t, out, "Done!")
	recs, err = store.List(ctx, history.All)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "/history clear", recs[0].Command)
	assert.EqualValues(t, 1, recs[0].Number)
}

func TestDegenerate(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	out := run(t, "NO2\n", func(S *Shell) { S.Log = zap.New(core) })
	assert.Contains(t, out, "Lone Pairs : 0.5")
	assert.Equal(t, 1, logs.FilterMessage("degenerate geometry").Len())

	out = run(t, "NO2\n", func(S *Shell) { S.Strict = true })
	assert.Contains(t, out, "Enter a valid compound")
	assert.NotContains(t, out, "Geometry")
}

func TestRender(t *testing.T) {
	var got []string
	run(t, "SF6\nXeF4\nKO2\n", func(S *Shell) {
		S.Render = func(G *csg.Geometry) error {
			got = append(got, G.Stats.Formula.String())
			return nil
		}
	})
	assert.Equal(t, []string{"SF6", "XeF4"}, got)
}
