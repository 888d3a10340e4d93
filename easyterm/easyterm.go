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

// easyterm is a wrapper for "github.com/pkg/term/termios". it wraps the
// termios methods in functions with friendlier names, for the benefit of
// the interactive poll loop which needs the controlling terminal in
// cbreak mode so that single keypresses can be seen without a newline.
package easyterm

import (
	"fmt"
	"os"
	"syscall"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal is the main container for posix terminals. usually embedded
// in other struct types
type Terminal struct {
	input *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// Initialise the fields in the Terminal struct. the attributes of the
// input file at this point are remembered and restored by CleanUp()
func (pt *Terminal) Initialise(inputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("easyterm Terminal requires an input file")
	}
	pt.input = inputFile

	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}

	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	return nil
}

// CleanUp returns the terminal to the mode it was in at Initialise()
func (pt *Terminal) CleanUp() {
	pt.CanonicalMode()
}

// CanonicalMode puts terminal into normal, everyday canonical mode
func (pt *Terminal) CanonicalMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// CBreakMode puts terminal into cbreak mode
func (pt *Terminal) CBreakMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr)
}

// ReadKey returns the next pending keypress without waiting for one.
// the boolean return value is false if no key is pending. the terminal
// should be in cbreak mode or the read will see nothing until a newline
func (pt *Terminal) ReadKey() (byte, bool) {
	if err := syscall.SetNonblock(int(pt.input.Fd()), true); err != nil {
		return 0, false
	}
	defer syscall.SetNonblock(int(pt.input.Fd()), false)

	b := make([]byte, 1)
	n, err := syscall.Read(int(pt.input.Fd()), b)
	if err != nil || n != 1 {
		return 0, false
	}
	return b[0], true
}
