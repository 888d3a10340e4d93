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

package logger_test

import (
	"testing"

	"github.com/merrilees/joyport/logger"
	"github.com/merrilees/joyport/test"
)

func TestCentral(t *testing.T) {
	logger.Clear()

	tw := &test.Writer{}
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare(""))

	logger.Log("test", "this is a test")
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\n"))
}

func TestRepeats(t *testing.T) {
	logger.Clear()

	logger.Log("test", "same entry")
	logger.Log("test", "same entry")
	logger.Log("test", "same entry")

	tw := &test.Writer{}
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: same entry (repeat x3)\n"))
}

func TestTail(t *testing.T) {
	logger.Clear()

	logger.Log("test", "one")
	logger.Log("test", "two")
	logger.Log("test", "three")

	tw := &test.Writer{}
	logger.Tail(tw, 2)
	test.ExpectSuccess(t, tw.Compare("test: two\ntest: three\n"))

	// asking for more entries than exist is not an error
	tw = &test.Writer{}
	logger.Tail(tw, 100)
	test.ExpectSuccess(t, tw.Compare("test: one\ntest: two\ntest: three\n"))
}
