/*
 * root.go, part of goChem.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 * goChem is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package main

import (
	"fmt"
	"log/slog"

	chem "github.com/rmera/tsscan"
	"github.com/rmera/tsscan/internal/logging"
	"github.com/rmera/tsscan/reac"
	"github.com/rmera/tsscan/zmat"
	"github.com/spf13/cobra"
)

const version = "0.3.0"

//flags shared by all the commands.
type globals struct {
	verbose     int
	options     string
	unit        string
	barrierless bool
}

func newRootCmd() *cobra.Command {
	g := new(globals)
	root := &cobra.Command{
		Use:   "tsscan",
		Short: "Coordinate scans for transition state searches",
		Long: `tsscan builds the z-matrix of a transition state guess and the
coordinate scan (scanned coordinates, frozen coordinates and grids) for
an elementary reaction. Reactions are read from JSON or YAML files and
geometries from XYZ files, optionally zstd-compressed (.xyz.zst).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.CountVarP(&g.verbose, "verbose", "v", "verbose output (repeat for debug)")
	pf.StringVar(&g.options, "options", "", "YAML options file")
	pf.StringVar(&g.unit, "unit", "", "length unit: bohr or angstrom (overrides the options file)")
	pf.BoolVar(&g.barrierless, "barrierless", false, "radical-radical grids for additions and abstractions")
	root.AddCommand(newZmatCmd(g), newScanCmd(g), newPlotCmd(g), newVersionCmd())
	return root
}

//opts returns the options for a command, from the options file, if given,
//and the flags.
func (g *globals) opts(cmd *cobra.Command) (*reac.Options, error) {
	O := reac.DefaultOptions()
	var err error
	if g.options != "" {
		if O, err = reac.LoadOptions(g.options); err != nil {
			return nil, err
		}
	}
	if g.unit != "" {
		O.Unit(g.unit)
		if u := O.Unit(); u != "bohr" && u != "angstrom" && u != "a" {
			return nil, cmdError("unknown length unit %q", g.unit)
		}
	}
	if cmd.Flags().Changed("barrierless") {
		O.Barrierless(g.barrierless)
	}
	O.Logger(logging.New(cmd.ErrOrStderr(), logging.Level(g.verbose)))
	return O, nil
}

//job is a reaction with its TS geometry, ready to process.
type job struct {
	rxn *reac.Reaction
	geo *chem.Geom
	O   *reac.Options
	log *slog.Logger
}

func (g *globals) load(cmd *cobra.Command, args []string) (*job, error) {
	O, err := g.opts(cmd)
	if err != nil {
		return nil, err
	}
	rxn, err := reac.ReactionFileRead(args[0])
	if err != nil {
		return nil, err
	}
	geo, err := chem.XYZFileRead(args[1])
	if err != nil {
		return nil, err
	}
	O.Logger().Info("input read", "class", rxn.Class.String(), "atoms", geo.Len())
	return &job{rxn: rxn, geo: geo, O: O, log: O.Logger()}, nil
}

//zmatrix builds the TS z-matrix.
func (j *job) zmatrix() (*zmat.ZMatrix, []int, chem.DummyKeyMap, error) {
	zma, keys, dkm, err := reac.TSZMatrix(j.rxn, j.geo, j.O)
	if err != nil {
		j.log.Error("building the TS z-matrix", "error", err)
		return nil, nil, nil, err
	}
	return zma, keys, dkm, nil
}

//scan builds the TS z-matrix and the scan for it.
func (j *job) scan() (*zmat.ZMatrix, *reac.ScanSpec, error) {
	zma, keys, dkm, err := j.zmatrix()
	if err != nil {
		return nil, nil, err
	}
	zrxn, err := reac.RelabelForZMatrix(j.rxn, keys, dkm)
	if err != nil {
		return nil, nil, err
	}
	spec, err := reac.BuildScanInfo(zrxn, zma, j.O)
	if err != nil {
		j.log.Error("building the scan", "error", err)
		return nil, nil, err
	}
	return zma, spec, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of tsscan",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tsscan version %s\n", version)
		},
	}
}
