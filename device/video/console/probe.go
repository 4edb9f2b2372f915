package console

import (
	"gopherboot/device"
	"gopherboot/device/video/fb"
	"gopherboot/kernel/hal/uefi"
	"gopherboot/kernel/kfmt"
)

var (
	locateGraphicsOutputFn = uefi.LocateGraphicsOutput

	// ProbeFuncs is the list of console probe functions consumed by the
	// hal package during hardware detection.
	ProbeFuncs = []device.ProbeFn{probeForFbConsole}
)

// probeForFbConsole locates the firmware graphics output protocol and wraps
// the reported frame buffer in a console driver. It returns nil when the
// protocol is absent or the active mode is unusable; the failure reason is
// reported through kfmt so it survives into whatever sink comes up later.
func probeForFbConsole(sysTable *uefi.SystemTable) device.Driver {
	gop, err := locateGraphicsOutputFn(sysTable)
	if err != nil {
		kfmt.Printf("[console] %s\n", err.Message)
		return nil
	}

	vram, err := fb.NewVRAM(gop)
	if err != nil {
		kfmt.Printf("[console] %s\n", err.Message)
		return nil
	}

	return NewFbConsole(vram)
}
