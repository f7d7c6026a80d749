/*
 * commands.go, part of goChem.
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
	"encoding/json"
	"fmt"
	"io"
	"strings"

	chem "github.com/rmera/tsscan"
	"github.com/rmera/tsscan/chemplot"
	"github.com/rmera/tsscan/reac"
	"github.com/rmera/tsscan/zmat"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func cmdError(format string, args ...interface{}) error {
	return fmt.Errorf("tsscan: "+format, args...)
}

func newZmatCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "zmat REACTION GEOMETRY",
		Short: "Print the z-matrix of the TS geometry",
		Long: `Builds the z-matrix of the TS geometry, adding dummy atoms over the linear
atoms, and prints it together with the atom of the geometry in each row.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := g.load(cmd, args)
			if err != nil {
				return err
			}
			zma, keys, dkm, err := j.zmatrix()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprint(w, zma.String())
			fmt.Fprintf(w, "\nrows: %s\n", joinInts(keys))
			writeDummies(w, dkm)
			return nil
		},
	}
}

func newScanCmd(g *globals) *cobra.Command {
	var format string
	var withZmat bool
	cmd := &cobra.Command{
		Use:   "scan REACTION GEOMETRY",
		Short: "Print the coordinate scan for the reaction",
		Long: `Builds the TS z-matrix and prints the coordinates to scan, the coordinates
to keep frozen with their current values, and the grid of each scanned coordinate.
Coordinate names refer to the rows of the TS z-matrix.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := g.load(cmd, args)
			if err != nil {
				return err
			}
			zma, spec, err := j.scan()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if withZmat {
				fmt.Fprintln(w, zma.String())
			}
			return writeSpec(w, spec, format, j.O.Unit())
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or yaml")
	cmd.Flags().BoolVar(&withZmat, "zmat", false, "print the TS z-matrix first")
	return cmd
}

func newPlotCmd(g *globals) *cobra.Command {
	var out string
	var steps bool
	cmd := &cobra.Command{
		Use:   "plot REACTION GEOMETRY",
		Short: "Plot the scan grids",
		Long:  `Plots the grid of each scanned coordinate, or the size of its steps, to an image file.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := g.load(cmd, args)
			if err != nil {
				return err
			}
			_, spec, err := j.scan()
			if err != nil {
				return err
			}
			title := j.rxn.Class.String()
			if steps {
				err = chemplot.StepPlot(spec, title, j.O.Unit(), out)
			} else {
				err = chemplot.GridPlot(spec, title, j.O.Unit(), out)
			}
			if err != nil {
				return err
			}
			j.log.Info("plot written", "file", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "grid.png", "image file (png, svg or pdf)")
	cmd.Flags().BoolVar(&steps, "steps", false, "plot the step between consecutive points")
	return cmd
}

func writeSpec(w io.Writer, spec *reac.ScanSpec, format, unit string) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(spec)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(spec); err != nil {
			return err
		}
		return enc.Close()
	case "text":
	default:
		return cmdError("unknown output format %q", format)
	}
	for i, g := range spec.Grids {
		name := spec.Names[0]
		if !spec.Barrierless {
			name = spec.Names[i]
		}
		vals := make([]string, len(g))
		for k, v := range g {
			vals[k] = fmt.Sprintf("%.4f", v)
		}
		fmt.Fprintf(w, "scan %s (%s): %s\n", name, unit, strings.Join(vals, " "))
	}
	names := make([]string, 0, len(spec.Constraints))
	for n := range spec.Constraints {
		names = append(names, n)
	}
	for _, n := range zmat.SortedNames(names) {
		v := spec.Constraints[n]
		if !strings.HasPrefix(n, "R") {
			v *= chem.Rad2Deg
		}
		fmt.Fprintf(w, "frozen %s = %.6f\n", n, v)
	}
	fmt.Fprintf(w, "update guess: %t\n", spec.UpdateGuess)
	return nil
}

func writeDummies(w io.Writer, dkm chem.DummyKeyMap) {
	if len(dkm) == 0 {
		return
	}
	parents := dkm.ParentKeys()
	pairs := make([]string, len(parents))
	for i, p := range parents {
		pairs[i] = fmt.Sprintf("%d->%d", p, dkm[p])
	}
	fmt.Fprintf(w, "dummies: %s\n", strings.Join(pairs, " "))
}

func joinInts(s []int) string {
	ret := make([]string, len(s))
	for i, v := range s {
		ret[i] = fmt.Sprint(v)
	}
	return strings.Join(ret, " ")
}
