/*
 * options_test.go, part of goChem.
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
	"testing"

	chem "github.com/rmera/tsscan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(Te *testing.T) {
	O := DefaultOptions()
	assert.Equal(Te, "bohr", O.Unit())
	assert.Equal(Te, chem.A2Bohr, O.LengthFactor())
	assert.Equal(Te, 5.0, O.LinearTolerance())
	assert.Equal(Te, 1.0, O.DummyDistance())
	assert.False(Te, O.Barrierless())
	assert.NotNil(Te, O.Logger())
	for _, c := range Classes {
		assert.NotEmpty(Te, O.NPoints(c), c.String())
	}
	//changing one instance leaves the defaults alone
	O.NPoints(Elimination, []int{2, 2})
	assert.Equal(Te, []int{8, 4}, DefaultOptions().NPoints(Elimination))
	//invalid values are ignored
	O.LinearTolerance(-1)
	O.Unit("")
	assert.Equal(Te, 5.0, O.LinearTolerance())
	assert.Equal(Te, "bohr", O.Unit())
}

func TestZeroOptions(Te *testing.T) {
	O := new(Options)
	assert.Equal(Te, "bohr", O.Unit())
	assert.Equal(Te, chem.A2Bohr, O.LengthFactor())
	assert.Equal(Te, 5.0, O.LinearTolerance())
	assert.Equal(Te, 1.0, O.DummyDistance())
	assert.Equal(Te, []int{8, 4}, O.NPoints(Elimination))
	require.NotNil(Te, O.Logger())
	O.Logger().Debug("not written")

	want, err := Grid(HydrogenMigration, 1.09, true, DefaultOptions())
	require.NoError(Te, err)
	got, err := Grid(HydrogenMigration, 1.09, true, O)
	require.NoError(Te, err)
	assert.Equal(Te, want, got)

	O.NPoints(BetaScission, []int{3})
	assert.Equal(Te, []int{3}, O.NPoints(BetaScission))
	assert.Equal(Te, []int{14}, O.NPoints(Addition))
	_, _, _, err = TSZMatrix(testReactions(Te)[HydrogenMigration], zigzag(Te, []string{"C", "C", "C", "H"}), new(Options))
	assert.NoError(Te, err)
}

func TestLoadOptions(Te *testing.T) {
	O, err := LoadOptions("testdata/options.yaml")
	require.NoError(Te, err)
	assert.Equal(Te, "angstrom", O.Unit())
	assert.Equal(Te, 1.0, O.LengthFactor())
	assert.Equal(Te, 3.0, O.LinearTolerance())
	assert.Equal(Te, 1.2, O.DummyDistance())
	assert.True(Te, O.Barrierless())
	assert.Equal(Te, []int{12}, O.NPoints(HydrogenMigration))
	assert.Equal(Te, []int{6, 3}, O.NPoints(Elimination))
	assert.Equal(Te, []int{10}, O.NPoints(BetaScission))
	assert.Equal(Te, []int{14}, O.NPoints(Addition))

	g, err := Grid(BetaScission, 1.54, true, O)
	require.NoError(Te, err)
	assert.Len(Te, g[0], 10)
}

func TestLoadOptionsErrors(Te *testing.T) {
	_, err := LoadOptions("testdata/options_unknown.yaml")
	assert.Error(Te, err)
	_, err = LoadOptions("testdata/options_badunit.yaml")
	assert.Error(Te, err)
	_, err = LoadOptions("testdata/nothere.yaml")
	assert.Error(Te, err)
}
