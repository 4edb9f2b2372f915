// Package hal probes the firmware for hardware and activates the matching
// drivers.
package hal

import (
	"gopherboot/device"
	"gopherboot/device/video/console"
	"gopherboot/kernel/hal/uefi"
	"gopherboot/kernel/kfmt"
)

// managedDevices contains the devices discovered by the HAL.
type managedDevices struct {
	activeConsole *console.FbConsole

	// activeDrivers tracks all initialized device drivers.
	activeDrivers []device.Driver
}

var devices managedDevices

// ActiveConsole returns the currently active framebuffer console, or nil
// when hardware detection did not find one.
func ActiveConsole() *console.FbConsole {
	return devices.activeConsole
}

// DetectHardware probes the firmware for hardware devices and initializes
// the appropriate drivers.
func DetectHardware(sysTable *uefi.SystemTable) {
	probe(sysTable, console.ProbeFuncs)
}

// probe executes each probe function and initializes every driver that
// reports present hardware.
func probe(sysTable *uefi.SystemTable, probeFns []device.ProbeFn) {
	w := kfmt.PrefixWriter{Sink: kfmt.GetOutputSink(), Prefix: []byte("[hal] ")}

	for _, probeFn := range probeFns {
		drv := probeFn(sysTable)
		if drv == nil {
			continue
		}

		major, minor, patch := drv.DriverVersion()
		kfmt.Fprintf(&w, "%s(%d.%d.%d): ", drv.DriverName(), major, minor, patch)

		if err := drv.DriverInit(&w); err != nil {
			kfmt.Fprintf(&w, "init failed: %s\n", err.Message)
			continue
		}

		onDriverInit(drv)
		devices.activeDrivers = append(devices.activeDrivers, drv)
	}
}

// onDriverInit is invoked for each successfully initialized driver. The
// first console that comes up becomes the kfmt output sink, which also
// drains any output buffered before the screen was available.
func onDriverInit(drv device.Driver) {
	cons, ok := drv.(*console.FbConsole)
	if !ok || devices.activeConsole != nil {
		return
	}

	devices.activeConsole = cons
	kfmt.SetOutputSink(cons)
}
