/*
 * doc.go, part of csg.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package csg is the rule engine of the Chemical Structure Generator. From a binary (or ternary)
formula such as "H2O" it decides whether the compound is plausible and predicts its shape
under a simplified VSEPR model.

	**csg Capabilities**

    Tokenizes formulas into an ordered element-subscript set (ParseFormula).

    Checks plausibility: 2 or 3 known main-group elements, and a choice of
	oxidation states that gives a neutral formula unit (Validate, IsValid).

    Chooses a central atom and gathers valence data for every atom (Resolve).

    Counts lone pairs on the central atom and produces an AXnLm tag such as
	"AB2L2" (Classify, ClassifyGeometry).

The tables behind all this (main groups, valencies, valence electrons, oxidation states)
are read-only and shared, so every function in the package can be called concurrently.

The subpackages layout, chemplot and chemjson turn a tag into coordinates, a picture and JSON,
respectively. history keeps the commands given to the csg program.

*/
package csg
