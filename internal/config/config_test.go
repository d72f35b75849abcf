/*
 * config_test.go, part of csg.
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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, ".db/csg_db.db", cfg.History.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "light", cfg.Plot.Theme)
	assert.Equal(t, 5.0, cfg.Plot.Width)
	assert.False(t, cfg.Geometry.Strict)
	assert.Equal(t, 4, cfg.Batch.Workers)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "csg.yaml")
	data := `
history:
  path: /tmp/other.db
log:
  level: debug
plot:
  theme: dark
geometry:
  strict: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.db", cfg.History.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "dark", cfg.Plot.Theme)
	assert.True(t, cfg.Geometry.Strict)
	//untouched settings keep their defaults.
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 4, cfg.Batch.Workers)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("CSG_BATCH_WORKERS", "9")
	t.Setenv("CSG_HISTORY_ENABLED", "false")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Batch.Workers)
	assert.False(t, cfg.History.Enabled)
}

func TestInvalid(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("plot:\n  theme: purple\nbatch:\n  workers: 0\n"), 0o644))
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plot.theme")
	assert.Contains(t, err.Error(), "batch.workers")

	cfg := Default()
	cfg.Log.Level = "loud"
	assert.Error(t, cfg.Validate())
	cfg = Default()
	cfg.History.Path = ""
	assert.Error(t, cfg.Validate())
	cfg.History.Enabled = false
	assert.NoError(t, cfg.Validate())
}
