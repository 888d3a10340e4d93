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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/merrilees/joyport/driver"
	evdevdrv "github.com/merrilees/joyport/driver/evdev"
	sdldrv "github.com/merrilees/joyport/driver/sdl"
	"github.com/merrilees/joyport/easyterm"
	"github.com/merrilees/joyport/joystick"
	"github.com/merrilees/joyport/joystick/vjm"
	"github.com/merrilees/joyport/logger"
	"github.com/merrilees/joyport/modalflag"
	"github.com/merrilees/joyport/monitor"
	"github.com/merrilees/joyport/ports"
	"github.com/merrilees/joyport/resources"
	"github.com/merrilees/joyport/statsview"
	"github.com/merrilees/joyport/version"
)

func main() {
	os.Exit(launch())
}

func launch() int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("LIST", "INSPECT", "LOAD", "SAVE", "POLL", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "LIST":
		err = list(md)

	case "INSPECT":
		err = inspect(md)

	case "LOAD":
		err = load(md)

	case "SAVE":
		err = save(md)

	case "POLL":
		err = poll(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// the flags common to every mode that touches real devices.
type commonFlags struct {
	driver *string
	log    *bool
	stats  *bool
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	return commonFlags{
		driver: md.AddString("driver", "sdl", "joystick driver: sdl, evdev"),
		log:    md.AddBool("log", false, "echo debugging log to stdout"),
		stats:  md.AddBool("statsview", false, "run stats server"),
	}
}

// apply the common flags. registers the chosen driver.
func (cf commonFlags) apply() error {
	if *cf.log {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if *cf.stats {
		statsview.Launch(os.Stdout)
	}

	switch strings.ToLower(*cf.driver) {
	case "sdl":
		return sdldrv.Register()
	case "evdev":
		return evdevdrv.Register()
	}

	return fmt.Errorf("unknown driver: %s", *cf.driver)
}

func list(md *modalflag.Modes) error {
	md.NewMode()
	cf := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if err := cf.apply(); err != nil {
		return err
	}

	dv, err := driver.Devices(nil)
	if err != nil {
		return err
	}
	defer dv.Close()

	if len(dv.List()) == 0 {
		fmt.Fprintln(md.Output, "no devices found")
		return nil
	}

	for _, d := range dv.List() {
		fmt.Fprintln(md.Output, d.String())
	}

	return nil
}

func inspect(md *modalflag.Modes) error {
	md.NewMode()
	cf := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if err := cf.apply(); err != nil {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("device node required for %s mode", md)
	}

	dv, err := driver.Devices(nil)
	if err != nil {
		return err
	}
	defer dv.Close()

	d := dv.Get(md.GetArg(0))
	if d == nil {
		return fmt.Errorf("no such device: %s", md.GetArg(0))
	}

	printDevice(md, d)
	return nil
}

func printDevice(md *modalflag.Modes, d *joystick.Device) {
	fmt.Fprintln(md.Output, d.String())
	fmt.Fprintf(md.Output, "  guid: %s  vendor: %04x  product: %04x  version: %04x\n",
		d.GUID, d.Vendor, d.Product, d.Version)

	for i := range d.Axes {
		a := &d.Axes[i]
		kind := "analogue"
		if a.Digital {
			kind = "digital"
		}
		fmt.Fprintf(md.Output, "  axis %s: [%d, %d] %s\n", a.Name, a.Min, a.Max, kind)
		fmt.Fprintf(md.Output, "    negative: %s\n", a.Neg.String())
		fmt.Fprintf(md.Output, "    positive: %s\n", a.Pos.String())
	}

	for i := range d.Buttons {
		b := &d.Buttons[i]
		fmt.Fprintf(md.Output, "  button %s: %s\n", b.Name, b.Map.String())
	}

	for i := range d.Hats {
		h := &d.Hats[i]
		fmt.Fprintf(md.Output, "  hat %s:\n", h.Name)
		fmt.Fprintf(md.Output, "    up: %s  down: %s  left: %s  right: %s\n",
			h.Up.String(), h.Down.String(), h.Left.String(), h.Right.String())
	}
}

func load(md *modalflag.Modes) error {
	md.NewMode()
	cf := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if err := cf.apply(); err != nil {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("device node and mapping file required for %s mode", md)
	}

	dv, err := driver.Devices(nil)
	if err != nil {
		return err
	}
	defer dv.Close()

	d := dv.Get(md.GetArg(0))
	if d == nil {
		return fmt.Errorf("no such device: %s", md.GetArg(0))
	}

	path, err := mappingPath(md.GetArg(1))
	if err != nil {
		return err
	}

	fl, err := vjm.Load(path)
	if err != nil {
		return err
	}
	if err := fl.Apply(d); err != nil {
		return err
	}

	printDevice(md, d)
	return nil
}

func save(md *modalflag.Modes) error {
	md.NewMode()
	cf := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if err := cf.apply(); err != nil {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("device node and mapping file required for %s mode", md)
	}

	dv, err := driver.Devices(nil)
	if err != nil {
		return err
	}
	defer dv.Close()

	d := dv.Get(md.GetArg(0))
	if d == nil {
		return fmt.Errorf("no such device: %s", md.GetArg(0))
	}

	path, err := mappingPath(md.GetArg(1))
	if err != nil {
		return err
	}

	if err := vjm.Save(path, d); err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "mapping for %s saved to %s\n", d.Node, path)
	return nil
}

// mappingPath resolves a mapping file argument. a bare filename is
// looked for in the "mappings" resource directory; anything with a
// directory component is used as-is.
func mappingPath(arg string) (string, error) {
	if filepath.Dir(arg) != "." {
		return arg, nil
	}
	return resources.JoinPath("mappings", arg)
}

// echoEvents prints dispatched events. used as the session handler in
// poll mode.
type echoEvents struct{}

func (e *echoEvents) HandleEvent(id ports.PortID, ev ports.Event, d ports.EventData) error {
	fmt.Printf("%s: %s: %v\n", id, ev, d)
	return nil
}

func poll(md *modalflag.Modes) error {
	md.NewMode()
	cf := addCommonFlags(md)
	mapping := md.AddString("mapping", "", "apply mapping file before polling")
	wsAddr := md.AddString("monitor", "", "publish events over websocket on address")
	interval := md.AddDuration("interval", 10*time.Millisecond, "polling interval")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if err := cf.apply(); err != nil {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("device node required for %s mode", md)
	}

	var handler ports.HandleInput = &echoEvents{}

	if *wsAddr != "" {
		m, err := monitor.NewMonitor(handler, *wsAddr)
		if err != nil {
			return err
		}
		defer m.Shutdown()
		handler = m
	}

	dv, err := driver.Devices(handler)
	if err != nil {
		return err
	}
	defer dv.Close()

	d := dv.Get(md.GetArg(0))
	if d == nil {
		return fmt.Errorf("no such device: %s", md.GetArg(0))
	}
	if !d.Usable() {
		return fmt.Errorf("device has no usable inputs: %s", d.Node)
	}
	d.Port = ports.Port1

	if *mapping != "" {
		path, err := mappingPath(*mapping)
		if err != nil {
			return err
		}
		fl, err := vjm.Load(path)
		if err != nil {
			return err
		}
		if err := fl.Apply(d); err != nil {
			return err
		}
	}

	// single keypresses without waiting for a newline
	term := &easyterm.Terminal{}
	if err := term.Initialise(os.Stdin); err != nil {
		return err
	}
	defer term.CleanUp()
	term.CBreakMode()

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Reset(os.Interrupt)

	fmt.Fprintf(md.Output, "polling %s. press q to quit\n", d.Node)

	tck := time.NewTicker(*interval)
	defer tck.Stop()

	drv := driver.Registered()
	for {
		select {
		case <-intChan:
			fmt.Println("\r")
			return nil

		case <-tck.C:
			if err := drv.Poll(dv, d); err != nil {
				return err
			}
			if k, ok := term.ReadKey(); ok && (k == 'q' || k == 'Q') {
				return nil
			}
		}
	}
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, version.Version)
	return nil
}
