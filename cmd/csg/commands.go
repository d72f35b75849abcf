/*
 * commands.go, part of csg.
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
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rmera/csg"
	"github.com/rmera/csg/batch"
	"github.com/rmera/csg/chemjson"
	"github.com/rmera/csg/chemplot"
	"github.com/rmera/csg/history"
	"github.com/rmera/csg/internal/shell"
	"github.com/rmera/csg/layout"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
)

func parseCmd(A *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse FORMULA",
		Short: "Show the elements and subscripts of a formula",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			F, err := csg.ParseFormula(args[0])
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), err)
				return errInvalid
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", F, strings.Join(F.Symbols(), ", "))
			for _, t := range F.Terms() {
				fmt.Fprintf(out, "  %-3s %d\n", t.Symbol, t.Count)
			}
			return nil
		},
	}
}

func validateCmd(A *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FORMULA",
		Short: "Check that a formula can be classified",
		Long: `Check that a formula has 2 or 3 elements, that all of them are supported,
and that some combination of their oxidation states balances the charges.
The exit status is 1 if the formula is not valid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			F, err := csg.ParseFormula(args[0])
			if err == nil {
				var states []int
				if states, err = csg.Validate(F); err == nil {
					fmt.Fprintf(out, "%s: valid, oxidation states %v\n", F, states)
					return nil
				}
			}
			A.log.Debug("invalid formula", zap.String("formula", args[0]), zap.String("trace", csg.Trace(err)))
			fmt.Fprintf(out, "%s: invalid: %v\n", strings.TrimSpace(args[0]), err)
			return errInvalid
		},
	}
}

//classify runs the engine on text, honoring geometry.strict, and logs
//degenerate results.
func (A *app) classify(text string) (*csg.Geometry, error) {
	G, err := csg.ClassifyGeometry(text)
	if err != nil {
		return nil, err
	}
	if G.Degenerate() {
		if A.cfg.Geometry.Strict {
			return nil, G.Check()
		}
		A.log.Warn("degenerate geometry", zap.String("formula", text), zap.Float64("lone_pairs", G.LonePairs))
	}
	return G, nil
}

func printGeometry(out io.Writer, G *csg.Geometry) {
	C := G.Stats
	fmt.Fprintf(out, "%-10s : %s\n", "Formula", C.Formula)
	fmt.Fprintf(out, "%-10s : %s (%s)\n", "Central", C.Central.Symbol, C.Rule)
	fmt.Fprintf(out, "%-10s : %s\n", "Lone Pairs", strconv.FormatFloat(G.LonePairs, 'f', -1, 64))
	fmt.Fprintf(out, "%-10s : %s\n", "Geometry", G.Tag)
}

func classifyCmd(A *app) *cobra.Command {
	var asJSON, coords bool
	cmd := &cobra.Command{
		Use:   "classify FORMULA",
		Short: "Give the central atom, lone pairs and geometry of a compound",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			text := strings.TrimSpace(args[0])
			if asJSON {
				R := chemjson.NewResult(text, coords, A.cfg.Geometry.Strict)
				if jerr := R.Send(out); jerr != nil {
					return jerr
				}
				if R.Error != nil {
					return errInvalid
				}
				A.record(cmd.Context(), text)
				return nil
			}
			G, err := A.classify(text)
			if err != nil {
				fmt.Fprintln(out, err)
				return errInvalid
			}
			A.record(cmd.Context(), text)
			printGeometry(out, G)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&coords, "coords", false, "include the atom positions in the JSON result")
	return cmd
}

//plotOptions translates the configuration into renderer options.
func (A *app) plotOptions(theme string) chemplot.Options {
	p := A.cfg.Plot
	if theme == "" {
		theme = p.Theme
	}
	return chemplot.Options{
		Theme:     chemplot.Theme(theme),
		Azimuth:   p.Azimuth * math.Pi / 180,
		Elevation: p.Elevation * math.Pi / 180,
		Width:     vg.Length(p.Width) * vg.Inch,
		Height:    vg.Length(p.Height) * vg.Inch,
	}
}

//draw places the atoms of G and writes a picture to pic and/or the
//coordinates to xyz. Empty names are skipped.
func (A *app) draw(G *csg.Geometry, pic, xyz, theme string) error {
	S, err := layout.Place(G)
	if err != nil {
		return err
	}
	name := G.Stats.Formula.String()
	if pic != "" {
		opt := A.plotOptions(theme)
		opt.Title = name
		if err := chemplot.Render(S, pic, opt); err != nil {
			return err
		}
		A.log.Info("picture written", zap.String("formula", name), zap.String("file", pic))
	}
	if xyz != "" {
		if err := layout.XYZFileWrite(xyz, S, G.Tag.String()); err != nil {
			return err
		}
		A.log.Info("coordinates written", zap.String("formula", name), zap.String("file", xyz))
	}
	return nil
}

func renderCmd(A *app) *cobra.Command {
	var output, xyz, theme string
	cmd := &cobra.Command{
		Use:   "render FORMULA",
		Short: "Draw the molecule of a compound",
		Long: `Draw the molecule of a compound as a picture. The format is taken from the
extension of the output file (png, svg, pdf, jpg...). With --xyz, the coordinates
are also written in XYZ format, compressed if the name ends in .gz or .zst.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" && xyz == "" {
				return fmt.Errorf("nothing to do: give --output and/or --xyz")
			}
			if theme != "" && theme != string(chemplot.Light) && theme != string(chemplot.Dark) {
				return fmt.Errorf("unknown theme %q", theme)
			}
			text := strings.TrimSpace(args[0])
			G, err := A.classify(text)
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), err)
				return errInvalid
			}
			A.record(cmd.Context(), text)
			printGeometry(cmd.OutOrStdout(), G)
			return A.draw(G, output, xyz, theme)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "picture file")
	cmd.Flags().StringVar(&xyz, "xyz", "", "XYZ coordinates file")
	cmd.Flags().StringVar(&theme, "theme", "", "light or dark (default from configuration)")
	return cmd
}

func batchCmd(A *app) *cobra.Command {
	var asJSON bool
	var workers int
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Classify every formula in a file, one per line ('-' for standard input)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			formulas, err := batch.ReadFormulas(in)
			if err != nil {
				return err
			}
			if workers < 1 {
				workers = A.cfg.Batch.Workers
			}
			A.log.Debug("batch", zap.Int("formulas", len(formulas)), zap.Int("workers", workers))
			outcomes, err := batch.Classify(cmd.Context(), formulas, workers)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			failed := 0
			for _, o := range outcomes {
				if o.Err == nil && A.cfg.Geometry.Strict {
					o.Err = o.Geometry.Check()
				}
				if o.Err != nil {
					failed++
				} else if o.Geometry.Degenerate() {
					A.log.Warn("degenerate geometry", zap.String("formula", o.Formula), zap.Float64("lone_pairs", o.Geometry.LonePairs))
				}
				if asJSON {
					//The classification is cheap; NewResult gives the complete record.
					if jerr := chemjson.NewResult(o.Formula, false, A.cfg.Geometry.Strict).Send(out); jerr != nil {
						return jerr
					}
					continue
				}
				if o.Err != nil {
					fmt.Fprintf(out, "%-12s  %-8s  %v\n", o.Formula, "-", o.Err)
					continue
				}
				fmt.Fprintf(out, "%-12s  %-8s  %s\n", o.Formula, o.Geometry.Tag, strconv.FormatFloat(o.Geometry.LonePairs, 'f', -1, 64))
			}
			A.log.Info("batch done", zap.Int("formulas", len(outcomes)), zap.Int("failed", failed))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print one JSON result per line")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent workers (default from configuration)")
	return cmd
}

func historyCmd(A *app) *cobra.Command {
	var kind string
	var clear bool
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear the command history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := A.history(ctx)
			if err != nil {
				return err
			}
			if s == nil {
				return fmt.Errorf("history is disabled")
			}
			if clear {
				return s.Clear(ctx)
			}
			k := history.All
			if kind != "" {
				if k, err = history.ParseKind(kind); err != nil {
					return err
				}
			}
			recs, err := s.List(ctx, k)
			if err != nil {
				return err
			}
			shell.PrintHistory(cmd.OutOrStdout(), recs)
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "type", "", "show only commands of this type: formula or builtin")
	cmd.Flags().BoolVar(&clear, "clear", false, "delete the history")
	return cmd
}

func shellCmd(A *app) *cobra.Command {
	var renderDir string
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive prompt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			S := shell.New(cmd.InOrStdin(), cmd.OutOrStdout())
			S.Log = A.log
			S.Strict = A.cfg.Geometry.Strict
			store, err := A.history(ctx)
			if err != nil {
				A.log.Warn("running without history", zap.Error(err))
			}
			S.History = store
			if renderDir != "" {
				if err := os.MkdirAll(renderDir, 0755); err != nil {
					return err
				}
				S.Render = func(G *csg.Geometry) error {
					return A.draw(G, filepath.Join(renderDir, G.Stats.Formula.String()+".png"), "", "")
				}
			}
			S.Banner(version)
			return S.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&renderDir, "render-dir", "", "draw every classified compound as a PNG in this directory")
	return cmd
}

func jsonCmd(A *app) *cobra.Command {
	return &cobra.Command{
		Use:   "json",
		Short: "Read one line of JSON options from standard input and write JSON results",
		Long: `Read one line of JSON from standard input, like
  {"Formulas": ["H2O", "SF6"], "Coords": true}
and write one JSON result per formula to standard output. Errors are
written as JSON to standard error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jerr := chemjson.Serve(cmd.InOrStdin(), cmd.OutOrStdout(), A.cfg.Geometry.Strict); jerr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", jerr.Marshal())
				return errInvalid
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "csg", version)
			return nil
		},
	}
}
