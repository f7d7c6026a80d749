/*
 * logger_test.go, part of goChem.
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

package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(Te *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Level(0))
	l.Info("hidden")
	l.Warn("shown", "error", errors.New("boom"))
	assert.NotContains(Te, buf.String(), "hidden")
	assert.Contains(Te, buf.String(), "err=boom")
	assert.Equal(Te, slog.LevelDebug, Level(3))
	assert.Equal(Te, slog.LevelInfo, Level(1))
}
