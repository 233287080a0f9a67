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

package test

import (
	"fmt"
	"math"
	"testing"
)

// tag prefix for failure messages.
func id(tags ...any) string {
	if len(tags) == 0 {
		return ""
	}
	return fmt.Sprintf("%v: ", fmt.Sprint(tags...))
}

// succeeded returns true if v represents success for its type. Unsupported
// types cause the test to fail immediately.
func succeeded(t *testing.T, v any) bool {
	t.Helper()

	switch v := v.(type) {
	case nil:
		return true
	case bool:
		return v
	case error:
		return v == nil
	}

	t.Fatalf("unsupported type (%T) for success/failure testing", v)
	return false
}

// ExpectSuccess tests v for the success value of its type:
//
//	bool -> true
//	error -> nil
//	nil -> always a success
func ExpectSuccess(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	if !succeeded(t, v) {
		t.Errorf("%ssuccess expected for type %T (%v)", id(tags...), v, v)
		return false
	}
	return true
}

// ExpectFailure tests v for the failure value of its type. The opposite of
// ExpectSuccess().
func ExpectFailure(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	if succeeded(t, v) {
		t.Errorf("%sfailure expected for type %T", id(tags...), v)
		return false
	}
	return true
}

// ExpectEquality tests that value is equal to expectedValue.
func ExpectEquality[T comparable](t *testing.T, value T, expectedValue T, tags ...any) bool {
	t.Helper()
	if value != expectedValue {
		t.Errorf("%sequality test of type %T failed: '%v' does not equal '%v'", id(tags...), value, value, expectedValue)
		return false
	}
	return true
}

// ExpectInequality tests that value is not equal to unexpectedValue.
func ExpectInequality[T comparable](t *testing.T, value T, unexpectedValue T, tags ...any) bool {
	t.Helper()
	if value == unexpectedValue {
		t.Errorf("%sinequality test of type %T failed: '%v' equals '%v'", id(tags...), value, value, unexpectedValue)
		return false
	}
	return true
}

// number types accepted by ExpectApproximate.
type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ExpectApproximate tests that value is within tolerance of expectedValue.
// The tolerance is a fraction of expectedValue, so a tolerance of 0.1 allows
// a difference of ten percent.
func ExpectApproximate[T number](t *testing.T, value T, expectedValue T, tolerance float64, tags ...any) bool {
	t.Helper()
	v := float64(value)
	e := float64(expectedValue)
	if math.Abs(v-e) > math.Abs(e*tolerance) {
		t.Errorf("%sapproximation test of type %T failed: '%v' is not within %.3f of '%v'", id(tags...), value, value, tolerance, expectedValue)
		return false
	}
	return true
}
