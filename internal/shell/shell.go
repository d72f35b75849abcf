/*
 * shell.go, part of csg.
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

//Package shell implements the interactive prompt of csg.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rmera/csg"
	"github.com/rmera/csg/history"
	"go.uber.org/zap"
)

const prompt = ">> "

const tick = "✓"

//errQuit is returned by a built-in that ends the session.
var errQuit = errors.New("quit")

//Shell reads formulas and built-in commands, one per line, and prints
//the lone pairs and geometry of each valid formula.
type Shell struct {
	in  *bufio.Scanner
	out io.Writer
	//History, if not nil, gets every command entered, and serves /history.
	History *history.Store
	Log     *zap.Logger
	//Strict makes degenerate geometries be reported as invalid instead
	//of being printed with a warning.
	Strict bool
	//Render, if not nil, is called with every geometry printed. Its errors are
	//logged but do not end the session.
	Render func(G *csg.Geometry) error
}

//New returns a shell reading from in and writing to out, with no history
//and a no-op logger.
func New(in io.Reader, out io.Writer) *Shell {
	return &Shell{in: bufio.NewScanner(in), out: out, Log: zap.NewNop()}
}

//Banner prints the greeting shown when the shell starts.
func (S *Shell) Banner(version string) {
	fmt.Fprintf(S.out, "CSG: Chemical Structure Generator %s\n", version)
	fmt.Fprintln(S.out, "Type '/help' for help on command usage.")
	fmt.Fprintln(S.out)
}

//Run runs the read-eval-print loop until the input ends, a quit command
//is entered or ctx is cancelled. Only errors of the I/O or of the history store are returned.
func (S *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(S.out, prompt)
		if !S.in.Scan() {
			fmt.Fprintln(S.out, "Exiting...")
			return S.in.Err()
		}
		line := strings.TrimSpace(S.in.Text())
		if line == "" {
			continue
		}
		err := S.Eval(ctx, line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

//Eval processes one non-empty line. Built-ins other than quit are recorded after
//they run, so /history doesn't list itself. Formulas are recorded only if they
//can be classified and are not in the history yet.
func (S *Shell) Eval(ctx context.Context, line string) error {
	if strings.HasPrefix(line, "/") {
		if err := S.builtin(ctx, strings.Fields(line)); err != nil {
			return err
		}
		if S.History != nil {
			return S.History.Add(ctx, line, history.Builtin)
		}
		return nil
	}
	if !S.formula(line) || S.History == nil {
		return nil
	}
	_, err := S.History.AddFormula(ctx, line)
	return err
}

//formula prints the classification of line, and returns false if it has none.
func (S *Shell) formula(line string) bool {
	G, err := csg.ClassifyGeometry(line)
	if err == nil && S.Strict {
		err = G.Check()
	}
	if err != nil {
		S.Log.Debug("rejected formula", zap.String("formula", line), zap.String("trace", csg.Trace(err)), zap.Error(err))
		fmt.Fprintln(S.out, "Enter a valid compound with 2 or 3 elements.")
		return false
	}
	if G.Degenerate() {
		S.Log.Warn("degenerate geometry", zap.String("formula", line), zap.Float64("lone_pairs", G.LonePairs))
	}
	fmt.Fprintf(S.out, "%-10s : %-6s\n", "Lone Pairs", strconv.FormatFloat(G.LonePairs, 'f', -1, 64))
	fmt.Fprintf(S.out, "%-10s : %-6s\n", "Geometry", G.Tag)
	if S.Render != nil {
		if err := S.Render(G); err != nil {
			S.Log.Error("could not render", zap.String("formula", line), zap.Error(err))
		}
	}
	return true
}

func (S *Shell) builtin(ctx context.Context, argv []string) error {
	args := argv[1:]
	switch argv[0] {
	case "/history", "/hist":
		return S.history(ctx, args)
	case "/help":
		S.help(args)
	case "/quit", "/exit":
		fmt.Fprintln(S.out, "Exiting...")
		return errQuit
	default:
		fmt.Fprintf(S.out, "Invalid command: '%s'\n", argv[0])
		fmt.Fprintln(S.out, "Try '/help' for more information.")
	}
	return nil
}

func (S *Shell) history(ctx context.Context, args []string) error {
	if S.History == nil {
		fmt.Fprintln(S.out, "History is disabled.")
		return nil
	}
	kind := history.All
	if len(args) > 0 {
		switch args[0] {
		case "clear":
			fmt.Fprintln(S.out, "[-] Clearing history...")
			if err := S.History.Clear(ctx); err != nil {
				return err
			}
			fmt.Fprintf(S.out, "[%s] Done!\n", tick)
			return nil
		case "select":
			if len(args) != 2 {
				fmt.Fprintln(S.out, "Please specify a command type to select.")
				return nil
			}
			k, err := history.ParseKind(args[1])
			if err != nil || k == history.All {
				fmt.Fprintf(S.out, "Invalid command type: '%s'\n", args[1])
				return nil
			}
			kind = k
		default:
			fmt.Fprintf(S.out, "Invalid subcommand for '/history': %s\n", args[0])
		}
	}
	recs, err := S.History.List(ctx, kind)
	if err != nil {
		return err
	}
	PrintHistory(S.out, recs)
	return nil
}

//PrintHistory writes history records as a table.
func PrintHistory(out io.Writer, recs []history.Record) {
	fmt.Fprintf(out, "%6s  %-30s  %-12s\n", "No.", "Command", "Type")
	for _, r := range recs {
		fmt.Fprintf(out, "%6d  %-30s  %-12s\n", r.Number, r.Command, r.Kind)
	}
}

func (S *Shell) help(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(S.out, "Valid commands:")
		fmt.Fprintf(S.out, "\t%-20s%-20s\n", "/history, /hist", "Print command history")
		fmt.Fprintf(S.out, "\t%-20s%-20s\n", "/exit, /quit", "Exit CSG")
		fmt.Fprintf(S.out, "\t%-20s%-20s\n", "/help", "Display this help message")
		return
	}
	for _, arg := range args {
		text, ok := usage[arg]
		if !ok {
			fmt.Fprintf(S.out, "Invalid builtin command: '%s'\n", arg)
			fmt.Fprintln(S.out, "Try '/help' for more information")
			return
		}
		fmt.Fprintln(S.out, text)
	}
}

var usage = map[string]string{
	"/help": `Usage: /help [name]
       Display command help, or (optionally) show usage info for
       a specific builtin command.

Examples
	/help
	/help /history`,
	"/history": historyUsage,
	"/hist":    historyUsage,
	"/exit":    exitUsage,
	"/quit":    exitUsage,
}

const historyUsage = `Usage: /history [subcommand]
       Show command history. If 'sub-command' is specified, execute it.

Subcommands:
       clear                 : Clear history
       select [command type] : Display history of specified command type only

Examples
	/history
	/history clear
	/history select builtin`

const exitUsage = `Usage: /exit
       Exit CSG.`
