/*
 * main_test.go, part of csg.
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

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/csg/chemjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//execute runs the command line with args, with a history in a temporary directory.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CSG_HISTORY_PATH", filepath.Join(t.TempDir(), "db", "history.db"))
	t.Setenv("CSG_LOG_LEVEL", "error")
	A := new(app)
	defer A.close()
	root := newRootCmd(A)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestClassifyCommand(t *testing.T) {
	out, err := execute(t, "", "classify", "XeF4")
	require.NoError(t, err)
	assert.Contains(t, out, "Central    : Xe")
	assert.Contains(t, out, "Geometry   : AB4L2")

	_, err = execute(t, "", "classify", "NaCl2")
	assert.ErrorIs(t, err, errInvalid)

	out, err = execute(t, "", "classify", "--json", "--coords", "H2O")
	require.NoError(t, err)
	var R chemjson.Result
	require.NoError(t, json.Unmarshal([]byte(out), &R))
	assert.Equal(t, "AB2L2", R.Tag)
	assert.Equal(t, []string{"O", "H", "H"}, R.Symbols)
	assert.Len(t, R.Coords, 3)
}

func TestValidateCommand(t *testing.T) {
	out, err := execute(t, "", "validate", "NaCl")
	require.NoError(t, err)
	assert.Contains(t, out, "NaCl: valid")
	_, err = execute(t, "", "validate", "NaHCO3")
	assert.ErrorIs(t, err, errInvalid)
	_, err = execute(t, "", "parse", "H2o")
	assert.ErrorIs(t, err, errInvalid)
	out, err = execute(t, "", "parse", "C12H22O11")
	require.NoError(t, err)
	assert.Contains(t, out, "C12H22O11 (C, H, O)\n")
	assert.Contains(t, out, "  H   22\n")
}

func TestStrict(t *testing.T) {
	_, err := execute(t, "", "classify", "NO2")
	require.NoError(t, err)
	t.Setenv("CSG_GEOMETRY_STRICT", "true")
	out, err := execute(t, "", "classify", "NO2")
	assert.ErrorIs(t, err, errInvalid)
	assert.Contains(t, out, "lone pair count has no physical meaning")

	out, err = execute(t, "", "classify", "--json", "NO2")
	assert.ErrorIs(t, err, errInvalid)
	var R chemjson.Result
	require.NoError(t, json.Unmarshal([]byte(out), &R))
	assert.False(t, R.Valid)
	require.NotNil(t, R.Error)
	assert.Equal(t, "degenerate", R.Error.Reason)

	out, err = execute(t, "NO2\nH2O\n", "batch", "--json", "-")
	require.NoError(t, err)
	dec := json.NewDecoder(strings.NewReader(out))
	var no2, h2o chemjson.Result
	require.NoError(t, dec.Decode(&no2))
	require.NoError(t, dec.Decode(&h2o))
	assert.False(t, no2.Valid)
	require.NotNil(t, no2.Error)
	assert.Equal(t, "degenerate", no2.Error.Reason)
	assert.True(t, h2o.Valid)
	assert.Nil(t, h2o.Error)

	out, err = execute(t, `{"Formulas": ["NO2"]}`, "json")
	require.NoError(t, err)
	R = chemjson.Result{}
	require.NoError(t, json.Unmarshal([]byte(out), &R))
	assert.False(t, R.Valid)
}

func TestBatchCommand(t *testing.T) {
	out, err := execute(t, "H2O\n#comment\nNH3\nXyZ9\n", "batch", "-", "--workers", "2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "H2O "))
	assert.Contains(t, lines[0], "AB2L2")
	assert.Contains(t, lines[1], "AB3L")
	assert.True(t, strings.HasPrefix(lines[2], "XyZ9 "))
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	pic := filepath.Join(dir, "sf6.png")
	xyz := filepath.Join(dir, "sf6.xyz.gz")
	_, err := execute(t, "", "render", "SF6", "-o", pic, "--xyz", xyz, "--theme", "dark")
	require.NoError(t, err)
	for _, f := range []string{pic, xyz} {
		st, err := os.Stat(f)
		require.NoError(t, err)
		assert.Positive(t, st.Size())
	}
	_, err = execute(t, "", "render", "SF6")
	assert.Error(t, err)
}

func TestShellAndHistory(t *testing.T) {
	t.Setenv("CSG_HISTORY_PATH", filepath.Join(t.TempDir(), "h.db"))
	run := func(stdin string, args ...string) string {
		A := new(app)
		defer A.close()
		root := newRootCmd(A)
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetIn(strings.NewReader(stdin))
		root.SetArgs(args)
		require.NoError(t, root.ExecuteContext(context.Background()))
		return out.String()
	}
	out := run("SO2\n/help\n", "shell")
	assert.Contains(t, out, "Geometry   : AB2L")
	assert.Contains(t, out, "Exiting...")

	out = run("", "history", "--type", "formula")
	assert.Contains(t, out, "SO2")
	assert.NotContains(t, out, "/help")

	run("", "history", "--clear")
	out = run("", "history")
	assert.NotContains(t, out, "SO2")

	//a formula is recorded once, and only if it classifies.
	run("", "classify", "H2O")
	run("", "classify", "--json", "H2O")
	run("", "classify", "CO2")
	out = run("", "history", "--type", "formula")
	assert.Equal(t, 1, strings.Count(out, "H2O"))
	assert.Contains(t, out, "CO2")
}

func TestJSONCommand(t *testing.T) {
	out, err := execute(t, `{"Formulas": ["BF3", "XyZ9"]}`, "json")
	require.NoError(t, err)
	dec := json.NewDecoder(strings.NewReader(out))
	var a, b chemjson.Result
	require.NoError(t, dec.Decode(&a))
	require.NoError(t, dec.Decode(&b))
	assert.Equal(t, "AB3", a.Tag)
	assert.False(t, b.Valid)
	require.NotNil(t, b.Error)
}
