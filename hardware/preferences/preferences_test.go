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

package preferences_test

import (
	"testing"

	"github.com/gopherboy/gopherboy/hardware/preferences"
	"github.com/gopherboy/gopherboy/test"
)

func TestDefaultsAndHooks(t *testing.T) {
	t.Chdir(t.TempDir())

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.SampleRate.Get().(int), 44100)
	test.ExpectEquality(t, p.Scale.Get().(int), 4)
	test.ExpectEquality(t, p.Palette.String(), "DMG")
	test.ExpectEquality(t, p.Battery.Get().(bool), true)

	test.ExpectFailure(t, p.Scale.Set(0))
	test.ExpectFailure(t, p.SampleRate.Set(100))
	test.ExpectEquality(t, p.Scale.Get().(int), 4)

	test.ExpectSuccess(t, p.Scale.Set(2))
	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Scale.Get().(int), 2)

	q.SetDefaults()
	test.ExpectEquality(t, q.Scale.Get().(int), 4)
}
