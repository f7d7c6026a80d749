/*
 * doc.go, part of goChem.
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

/*Package chem is the geometry layer of tsscan. It provides the facilities needed to build
internal coordinate systems for transition states from cartesian geometries.


	**Capabilities**


    Geometries (Geom): element symbols plus a v3.Matrix of cartesian coordinates, in A.
	Atoms are identified by their position in the geometry.

    Reads/writes XYZ files. Files ending in .zst are compressed/decompressed
	with zstd on the fly.

    Element data: masses, covalent radii, valences and a table of reference
	bond lengths for pairs of elements.

    Connectivity from interatomic distances and covalent radii, with a limit on the
	number of bonds for each element.

    Distances, angles and dihedrals between atoms.

    Detection of linear (or nearly linear) atoms, and insertion of dummy atoms ("X")
	over them, so they can be used as anchors in z-matrices.

Reactions, TS graphs, z-matrices and coordinate scans are implemented in the
tsgraph, zmat and reac sub-packages.*/
package chem
