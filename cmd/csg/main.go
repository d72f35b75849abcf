/*
 * main.go, part of csg.
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

//csg is the command line interface to the csg engine: it classifies
//chemical formulas by VSEPR geometry, draws them and keeps a history.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/rmera/csg/history"
	"github.com/rmera/csg/internal/config"
	"github.com/rmera/csg/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "v0.2.0"

//errInvalid makes the program exit with status 1 without printing
//anything else; the command already reported the problem.
var errInvalid = errors.New("invalid formula")

//app holds what the commands share. It is filled by the root command's
//PersistentPreRunE, after the flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg   *config.Config
	log   *zap.Logger
	store *history.Store
}

func (A *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(A.configPath)
	if err != nil {
		return err
	}
	if A.logLevel != "" {
		cfg.Log.Level = A.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	A.cfg = cfg
	A.log, err = logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	A.log.Debug("configuration loaded", zap.String("file", A.configPath), zap.Any("config", cfg))
	return nil
}

//history opens the history store the first time it is needed. It
//returns nil, nil if the history is disabled.
func (A *app) history(ctx context.Context) (*history.Store, error) {
	if !A.cfg.History.Enabled {
		return nil, nil
	}
	if A.store != nil {
		return A.store, nil
	}
	s, err := history.Open(ctx, A.cfg.History.Path)
	if err != nil {
		return nil, err
	}
	A.log.Debug("history opened", zap.String("path", s.Path()), zap.String("session", s.Session()))
	A.store = s
	return s, nil
}

//record adds a classified formula to the history, if there is one and the formula
//is not in it yet. Failures are only logged.
func (A *app) record(ctx context.Context, formula string) {
	s, err := A.history(ctx)
	if err != nil {
		A.log.Warn("history unavailable", zap.Error(err))
		return
	}
	if s == nil {
		return
	}
	if _, err := s.AddFormula(ctx, formula); err != nil {
		A.log.Warn("could not record formula", zap.String("formula", formula), zap.Error(err))
	}
}

func (A *app) close() {
	if A.store != nil {
		if err := A.store.Close(); err != nil {
			A.log.Warn("closing history", zap.Error(err))
		}
	}
	if A.log != nil {
		_ = A.log.Sync()
	}
}

func newRootCmd(A *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "csg",
		Short: "Chemical Structure Generator",
		Long: `csg predicts the VSEPR geometry of simple compounds.

Given a formula with 2 or 3 elements it:
  - checks that the elements are supported and the charges can balance
  - picks the central atom and counts its lone pairs
  - gives the AB(n)L(m) geometry tag
  - draws the molecule, or writes its coordinates in XYZ format`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: A.setup,
	}
	root.PersistentFlags().StringVar(&A.configPath, "config", "", "configuration file (YAML)")
	root.PersistentFlags().StringVar(&A.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(parseCmd(A))
	root.AddCommand(validateCmd(A))
	root.AddCommand(classifyCmd(A))
	root.AddCommand(renderCmd(A))
	root.AddCommand(batchCmd(A))
	root.AddCommand(historyCmd(A))
	root.AddCommand(shellCmd(A))
	root.AddCommand(jsonCmd(A))
	root.AddCommand(versionCmd())
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	A := new(app)
	root := newRootCmd(A)
	err := root.ExecuteContext(ctx)
	A.close()
	stop()
	if err != nil {
		if !errors.Is(err, errInvalid) {
			fmt.Fprintln(os.Stderr, "csg:", err)
		}
		os.Exit(1)
	}
}
