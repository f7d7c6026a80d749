/*
 * options.go, part of goChem.
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

package reac

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	chem "github.com/rmera/tsscan"
	"gopkg.in/yaml.v3"
)

var defaultPoints = map[ReactionClass][]int{
	HydrogenMigration:   {18},
	BetaScission:        {14},
	RingFormScission:    {7},
	Elimination:         {8, 4},
	HydrogenAbstraction: {8},
	Addition:            {14},
	Insertion:           {16},
	Substitution:        {14},
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

//Options contains the parameters for building TS z-matrices and scans.
//The zero value is usable, and gives the same results as DefaultOptions.
type Options struct {
	npoints     map[ReactionClass][]int
	unit        string
	linearTol   float64
	dummyDist   float64
	barrierless bool
	logger      *slog.Logger
}

//DefaultOptions returns the default options: the usual number of grid
//points for each class, lengths in Bohr, a 5 degree tolerance for linear atoms,
//dummy atoms 1 A away from their parents, and no logging.
func DefaultOptions() *Options {
	r := new(Options)
	r.npoints = make(map[ReactionClass][]int, len(defaultPoints))
	for c, p := range defaultPoints {
		r.npoints[c] = append([]int(nil), p...)
	}
	r.unit = "bohr"
	r.linearTol = 5
	r.dummyDist = 1.0
	r.logger = discard
	return r
}

//NPoints returns the number of grid points for each scan coordinate of the
//class, and sets them to new values, if given.
func (O *Options) NPoints(class ReactionClass, n ...[]int) []int {
	if len(n) > 0 && len(n[0]) > 0 {
		p := make([]int, len(n[0]))
		copy(p, n[0])
		if O.npoints == nil {
			O.npoints = make(map[ReactionClass][]int, len(defaultPoints))
		}
		O.npoints[class] = p
	}
	if p, ok := O.npoints[class]; ok {
		return p
	}
	return append([]int(nil), defaultPoints[class]...)
}

//npointsAt returns the i-th point count of the class, or the default one if not set.
func (O *Options) npointsAt(class ReactionClass, i int) int {
	p := O.npoints[class]
	if i < len(p) && p[i] > 0 {
		return p[i]
	}
	if d := defaultPoints[class]; i < len(d) {
		return d[i]
	}
	return 0
}

//Unit returns the length unit for the z-matrices and grids,
//and sets it to a new value ("bohr" or "angstrom"), if given.
func (O *Options) Unit(unit ...string) string {
	if len(unit) > 0 && unit[0] != "" {
		O.unit = strings.ToLower(unit[0])
	}
	if O.unit == "" {
		return "bohr"
	}
	return O.unit
}

//LengthFactor returns the factor that converts A to the length unit in use.
func (O *Options) LengthFactor() float64 {
	switch O.Unit() {
	case "angstrom", "a":
		return 1
	}
	return chem.A2Bohr
}

//LinearTolerance returns the tolerance, in degrees, for an angle to be considered
//linear, and sets it to a new value, if given.
func (O *Options) LinearTolerance(tol ...float64) float64 {
	if len(tol) > 0 && tol[0] > 0 {
		O.linearTol = tol[0]
	}
	if O.linearTol <= 0 {
		return 5
	}
	return O.linearTol
}

//DummyDistance returns the distance, in A, between a dummy atom and its parent,
//and sets it to a new value, if given.
func (O *Options) DummyDistance(d ...float64) float64 {
	if len(d) > 0 && d[0] > 0 {
		O.dummyDist = d[0]
	}
	if O.dummyDist <= 0 {
		return 1.0
	}
	return O.dummyDist
}

//Barrierless returns whether the reactions are treated as barrierless
//(radical-radical) ones, and sets the value, if given. It only affects
//additions and hydrogen abstractions.
func (O *Options) Barrierless(b ...bool) bool {
	if len(b) > 0 {
		O.barrierless = b[0]
	}
	return O.barrierless
}

//Logger returns the logger in use, and sets it to a new one, if given.
func (O *Options) Logger(l ...*slog.Logger) *slog.Logger {
	if len(l) > 0 && l[0] != nil {
		O.logger = l[0]
	}
	if O.logger == nil {
		return discard
	}
	return O.logger
}

func (O *Options) validate() error {
	switch O.Unit() {
	case "bohr", "angstrom", "a":
	default:
		return fmt.Errorf("reac: unknown length unit %q", O.Unit())
	}
	for c, p := range O.npoints {
		for _, v := range p {
			if v < 1 {
				return fmt.Errorf("reac: %d grid points requested for %s", v, c)
			}
		}
	}
	return nil
}

//optionsFile is the layout of an options YAML file.
type optionsFile struct {
	Unit            string           `yaml:"unit"`
	LinearTolerance float64          `yaml:"linear_tolerance"`
	DummyDistance   float64          `yaml:"dummy_distance"`
	Barrierless     bool             `yaml:"barrierless"`
	Points          map[string][]int `yaml:"points"`
}

//LoadOptions reads options from a YAML file. Values not present in the file keep
//their defaults. Unknown fields are rejected.
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reac: reading options file: %w", err)
	}
	var of optionsFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&of); err != nil && err != io.EOF {
		return nil, fmt.Errorf("reac: parsing options file %s: %w", path, err)
	}
	O := DefaultOptions()
	O.Unit(of.Unit)
	O.LinearTolerance(of.LinearTolerance)
	O.DummyDistance(of.DummyDistance)
	O.Barrierless(of.Barrierless)
	for name, p := range of.Points {
		c, err := ParseReactionClass(name)
		if err != nil {
			return nil, errDecorate(err, "LoadOptions")
		}
		O.NPoints(c, p)
	}
	if err := O.validate(); err != nil {
		return nil, err
	}
	return O, nil
}
