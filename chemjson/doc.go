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
//Package chemjson implements serialization and unserialization of
//csg results. Its planned use is the communication of csg
//with other, independent programs (a GUI, a web front-end) which can be written in
//languages other than Go, as long as those languages implement a
//way of serializing and unserializing JSON data.
//chemjson also implements the transmission of options, so an external
//program can send formulas to csg and later collect the results,
//for instance, via UNIX pipes.
package chemjson
