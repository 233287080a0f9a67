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

//go:build statsview
// +build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/gopherboy/gopherboy/logger"
)

// Address of the statistics server.
const Address = "localhost:12660"

const path = "/debug/statsview"

// URL returns the page that the statistics server draws its charts on.
func URL() string {
	return fmt.Sprintf("http://%s%s", Address, path)
}

// Launch a new goroutine running the statistics server. The server runs for
// the lifetime of the emulator.
func Launch(output io.Writer) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		mgr := statsview.New()
		logger.Logf(logger.Allow, "statsview", "serving on %s", Address)
		mgr.Start()
	}()

	fmt.Fprintf(output, "* emulator statistics available at %s\n", URL())
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
