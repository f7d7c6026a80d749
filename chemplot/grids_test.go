/*
 * grids_test.go, part of goChem.
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

package chemplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/tsscan/reac"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridPlot(Te *testing.T) {
	O := reac.DefaultOptions()
	O.Unit("angstrom")
	g, err := reac.Grid(reac.Elimination, 1.45, true, O)
	require.NoError(Te, err)
	spec := &reac.ScanSpec{Names: []string{"R2", "R3"}, Grids: g}
	dir := Te.TempDir()
	for _, name := range []string{"grid.png", "grid.svg"} {
		path := filepath.Join(dir, name)
		require.NoError(Te, GridPlot(spec, "Elimination", "A", path))
		info, err := os.Stat(path)
		require.NoError(Te, err)
		assert.NotZero(Te, info.Size())
	}
	path := filepath.Join(dir, "steps.png")
	require.NoError(Te, StepPlot(spec, "Elimination", "A", path))
	_, err = os.Stat(path)
	assert.NoError(Te, err)
}

func TestGridSeries(Te *testing.T) {
	spec := &reac.ScanSpec{Names: []string{"R4"}, Grids: [][]float64{{3, 2.5, 2}, {1.9, 1.8}}, Barrierless: true}
	s, err := gridSeries(spec)
	require.NoError(Te, err)
	require.Len(Te, s, 2)
	assert.Equal(Te, "R4, segment 2", s[1].label)
	assert.Equal(Te, 3.0, s[1].xy[0].X)
	assert.Equal(Te, 1.9, s[1].xy[0].Y)

	st, err := stepSeries(spec)
	require.NoError(Te, err)
	assert.InDelta(Te, 0.5, st[0].xy[0].Y, 1e-12)

	_, err = gridSeries(&reac.ScanSpec{})
	assert.Error(Te, err)
	_, err = gridSeries(&reac.ScanSpec{Names: []string{"R1"}, Grids: [][]float64{{1}, {2}}})
	assert.Error(Te, err)
	_, err = stepSeries(&reac.ScanSpec{Names: []string{"R1"}, Grids: [][]float64{{1}}})
	assert.Error(Te, err)
}

func TestColors(Te *testing.T) {
	r, g, b := iHVS2RGB(0, 1, 1)
	assert.Equal(Te, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})
	r, g, b = iHVS2RGB(120, 1, 0)
	assert.Equal(Te, [3]uint8{255, 255, 255}, [3]uint8{r, g, b})
	r1, g1, b1 := colors(0, 2)
	r2, g2, b2 := colors(1, 2)
	assert.NotEqual(Te, [3]uint8{r1, g1, b1}, [3]uint8{r2, g2, b2})
	_, err := getShape(4)
	assert.Error(Te, err)
}
