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

package prefs_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopherboy/gopherboy/prefs"
	"github.com/gopherboy/gopherboy/test"
)

func cmpFile(t *testing.T, path string, expected string) {
	t.Helper()
	data, err := os.ReadFile(path)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected))
}

func TestBool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bool")

	dsk, err := prefs.NewDisk(path)
	test.DemandSuccess(t, err)

	var v, w prefs.Bool
	test.DemandSuccess(t, dsk.Add("test", &v))
	test.DemandSuccess(t, dsk.Add("testB", &w))
	test.ExpectFailure(t, dsk.Add("test", &w))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("TRUE"))
	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, path, "test :: true\ntestB :: true\n")

	test.ExpectSuccess(t, w.Set("nonsense"))
	test.ExpectEquality(t, w.Get().(bool), false)
	test.ExpectFailure(t, w.Set(10))
}

func TestIntAndFloat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numbers")

	dsk, err := prefs.NewDisk(path)
	test.DemandSuccess(t, err)

	var i prefs.Int
	var f prefs.Float
	test.DemandSuccess(t, dsk.Add("audio.samplerate", &i))
	test.DemandSuccess(t, dsk.Add("display.gamma", &f))

	test.ExpectSuccess(t, i.Set(44100))
	test.ExpectSuccess(t, f.Set("1.5"))
	test.ExpectFailure(t, i.Set("many"))
	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, path, "audio.samplerate :: 44100\ndisplay.gamma :: 1.500\n")

	// reload into fresh values
	dsk2, err := prefs.NewDisk(path)
	test.DemandSuccess(t, err)
	var i2 prefs.Int
	test.DemandSuccess(t, dsk2.Add("audio.samplerate", &i2))
	test.DemandSuccess(t, dsk2.Load(false))
	test.ExpectEquality(t, i2.Get().(int), 44100)
}

func TestSaveMerges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "merge")

	dskA, err := prefs.NewDisk(path)
	test.DemandSuccess(t, err)
	var a prefs.String
	test.DemandSuccess(t, dskA.Add("a", &a))
	test.ExpectSuccess(t, a.Set("alpha"))
	test.DemandSuccess(t, dskA.Save())

	dskB, err := prefs.NewDisk(path)
	test.DemandSuccess(t, err)
	var b prefs.String
	test.DemandSuccess(t, dskB.Add("b", &b))
	test.ExpectSuccess(t, b.Set("beta"))
	test.DemandSuccess(t, dskB.Save())

	cmpFile(t, path, "a :: alpha\nb :: beta\n")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int
	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 0 {
			return errors.New("negative")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(4))
	test.ExpectEquality(t, post, 4)
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 4)
}

func TestCommandLineStack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cmdline")

	dsk, err := prefs.NewDisk(path)
	test.DemandSuccess(t, err)
	var scale prefs.Int
	test.DemandSuccess(t, dsk.Add("display.scale", &scale))
	test.ExpectSuccess(t, scale.Set(2))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("display.scale::5; unknown::foo")
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, scale.Get().(int), 5)

	// the used entry has been consumed
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unknown::foo")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}

func TestString(t *testing.T) {
	var s prefs.String
	test.ExpectEquality(t, s.String(), "")
	s.SetMaxLen(4)
	test.ExpectSuccess(t, s.Set("gopherboy"))
	test.ExpectEquality(t, s.String(), "goph")
	test.ExpectSuccess(t, s.Reset())
	test.ExpectEquality(t, s.String(), "")
}
