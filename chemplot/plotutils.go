/*
 * plotutils.go, part of csg.
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

package chemplot

import (
	"image/color"
)

//Some internal convenience functions.

//Theme selects the colors of the picture.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

//background returns the background color for the theme. Unknown themes are light.
func (T Theme) background() color.RGBA {
	if T == Dark {
		return color.RGBA{R: 0x17, G: 0x17, B: 0x17, A: 255}
	}
	return color.RGBA{R: 0xE9, G: 0xE9, B: 0xE9, A: 255}
}

func (T Theme) foreground() color.RGBA {
	if T == Dark {
		return color.RGBA{R: 0xE9, G: 0xE9, B: 0xE9, A: 255}
	}
	return color.RGBA{R: 0x17, G: 0x17, B: 0x17, A: 255}
}

//bondStyle is the color and width (in points) of a bond of the given order.
func (T Theme) bondStyle(order int) (color.RGBA, float64) {
	royalblue := color.RGBA{R: 65, G: 105, B: 225, A: 190}
	green := color.RGBA{G: 128, A: 190}
	navy := color.RGBA{B: 128, A: 190}
	blue := color.RGBA{B: 255, A: 190}
	red := color.RGBA{R: 255, A: 190}
	switch order {
	case 2:
		if T == Dark {
			return green, 2.5
		}
		return navy, 2.5
	case 3:
		if T == Dark {
			return blue, 3.5
		}
		return red, 3.5
	}
	if T == Dark {
		return royalblue, 1
	}
	return green, 1
}

var bondNames = map[int]string{1: "single", 2: "double", 3: "triple"}

//isInString returns true if test is in container, false otherwise.
func isInString(container []string, test string) bool {
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}

//isInInt is the same as isInString, but with ints.
func isInInt(container []int, test int) bool {
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}
