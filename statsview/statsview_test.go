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

package statsview_test

import (
	"strings"
	"testing"

	"github.com/gopherboy/gopherboy/statsview"
	"github.com/gopherboy/gopherboy/test"
)

func TestAvailability(t *testing.T) {
	test.ExpectEquality(t, statsview.Available(), statsview.Address != "")

	if !statsview.Available() {
		test.ExpectEquality(t, statsview.URL(), "")

		// launching an unavailable server is silent
		out := &test.CompareWriter{}
		statsview.Launch(out)
		test.ExpectSuccess(t, out.Compare(""))
		return
	}

	test.ExpectSuccess(t, strings.HasPrefix(statsview.URL(), "http://"+statsview.Address+"/"))
}
