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

// Package cartridgeloader is used to load the data that is to be inserted
// into the emulated console.
//
// The Load() function handles loading of data from different sources.
// Currently local files and data over HTTP are supported:
//
//	cl, err := cartridgeloader.NewLoader("roms/tetris.gb")
//	if err != nil {
//		return err
//	}
//	err = cl.Load()
//
// The package also looks after the files that accompany a cartridge. Battery
// backed RAM is stored alongside a local cartridge file with the ".sav"
// extension and an optional boot ROM can be loaded with LoadBootROM().
package cartridgeloader
