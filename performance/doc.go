// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

// Package performance is used to measure the speed of the emulation. The
// Check() function runs the emulation without any presentation for a fixed
// amount of time and reports the number of frames produced.
//
// The run can be profiled with the Go profiling tools. The Profile type
// specifies which profiles are to be taken. Profile files are written to the
// current working directory and can be examined with "go tool pprof" or "go
// tool trace".
//
// The MemvizDump() function writes a graphviz description of the emulation's
// data structures.
package performance
