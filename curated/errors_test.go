// This file is part of Joyport.
//
// Joyport is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Joyport is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Joyport.  If not, see <https://www.gnu.org/licenses/>.

package curated_test

import (
	"testing"

	"github.com/merrilees/joyport/curated"
	"github.com/merrilees/joyport/test"
)

const (
	testPatternA = "outer error: %v"
	testPatternB = "inner error: %s"
)

func TestMessage(t *testing.T) {
	e := curated.Errorf(testPatternB, "foo")
	test.Equate(t, e.Error(), "inner error: foo")

	// wrapping an error inside an error with the same leading message part
	// causes the duplicate part to be dropped
	f := curated.Errorf("inner error: %v", e)
	test.Equate(t, f.Error(), "inner error: foo")
}

func TestIsHas(t *testing.T) {
	e := curated.Errorf(testPatternB, "foo")
	w := curated.Errorf(testPatternA, e)

	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPatternB))
	test.ExpectFailure(t, curated.Is(w, testPatternB))

	test.ExpectSuccess(t, curated.Has(w, testPatternA))
	test.ExpectSuccess(t, curated.Has(w, testPatternB))
	test.ExpectFailure(t, curated.Has(e, testPatternA))

	// non-curated errors are never matched
	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.Has(nil, testPatternA))
}
