// Package kmain contains the boot flow that runs once the firmware loader
// hands over control.
package kmain

import (
	"gopherboot/device/video/console"
	"gopherboot/device/video/fb"
	"gopherboot/kernel/cpu"
	"gopherboot/kernel/hal"
	"gopherboot/kernel/hal/uefi"
	"gopherboot/kernel/kfmt"
	"gopherboot/kernel/mem"
)

// memoryMap is declared at package level so its 32 KiB buffer lives in the
// image's data segment instead of the boot stack.
var memoryMap uefi.MemoryMapHolder

// Kmain is invoked exactly once by the firmware loader with the opaque image
// handle and a pointer to the firmware system table. It locates the frame
// buffer, draws the boot scene, reports the physical memory map and then
// parks the CPU. It never returns: fatal init errors are routed through
// kfmt.Panic, and the success path ends in an idle loop.
func Kmain(imageHandle uefi.Handle, sysTable *uefi.SystemTable) {
	kfmt.Printf("[kmain] image handle 0x%x\n", uintptr(imageHandle))

	hal.DetectHardware(sysTable)

	cons := hal.ActiveConsole()
	if cons == nil {
		// Without a frame buffer nothing can be drawn; report through
		// whatever sink is configured and halt permanently.
		kfmt.Panic(uefi.ErrProtocolNotFound)
	}

	drawScene(cons)
	reportMemoryMap(cons, sysTable)

	for {
		cpu.Halt()
	}
}

// drawScene exercises every drawing primitive on the boot canvas: filled
// rectangles, single points, a grid with rays from its center, and text
// rendered both directly and through the console cursor.
func drawScene(cons *console.FbConsole) {
	canvas := cons.Bitmap()

	fb.FillRect(canvas, 32, 32, 32, 32, fb.RGB(0, 0, 255))
	fb.FillRect(canvas, 64, 64, 64, 64, fb.RGB(0, 255, 0))
	fb.FillRect(canvas, 128, 128, 128, 128, fb.RGB(255, 0, 0))

	for i := 0; i < 256; i++ {
		fb.DrawPoint(canvas, i, i, fb.RGB(1, 1, 1))
	}

	const (
		gridStep = 32
		gridSize = gridStep * 8
	)

	for i := 0; i <= gridSize; i += gridStep {
		fb.DrawLine(canvas, 0, i, gridSize, i, fb.RGB(255, 0, 0))
		fb.DrawLine(canvas, i, 0, i, gridSize, fb.RGB(255, 0, 0))
	}

	cx, cy := gridSize/2, gridSize/2
	for i := 0; i <= gridSize; i += gridStep {
		fb.DrawLine(canvas, cx, cy, 0, i, fb.RGB(255, 255, 0))
		fb.DrawLine(canvas, cx, cy, i, 0, fb.RGB(0, 255, 255))
		fb.DrawLine(canvas, cx, cy, gridSize, i, fb.RGB(255, 0, 255))
		fb.DrawLine(canvas, cx, cy, i, gridSize, fb.RGB(255, 255, 255))
	}

	for i, ch := range "ABCDEF" {
		console.DrawGlyph(canvas, 256+i*16, i*16, fb.RGB(255, 255, 0), ch)
	}
	console.DrawString(canvas, 256, 256, fb.RGB(255, 255, 255), "Hello, world!")

	cons.MoveCursor(0, 2)
	for i := 0; i < 4; i++ {
		kfmt.Fprintf(cons, "i = %d\n", i)
	}
}

// reportMemoryMap queries the firmware memory map and prints the
// conventional memory regions together with the total amount of
// conventional memory.
func reportMemoryMap(cons *console.FbConsole, sysTable *uefi.SystemTable) {
	status := sysTable.BootServices.GetMemoryMap(&memoryMap)
	if !status.OK() {
		kfmt.Printf("[kmain] getMemoryMap: %s (0x%x)\n", status.String(), uintptr(status))
		kfmt.Panic(uefi.ErrFirmwareCall)
	}

	kfmt.Fprintf(cons, "%16s %8s  type\n", "start", "pages")
	memoryMap.VisitDescriptors(func(desc *uefi.MemoryDescriptor) bool {
		if desc.Type != uefi.MemConventional {
			return true
		}
		kfmt.Fprintf(cons, "%16x %8d  %s\n",
			desc.PhysicalStart, desc.PageCount, desc.Type.String())
		return true
	})

	total := mem.FromPages(memoryMap.TotalPages(uefi.MemConventional))
	kfmt.Fprintf(cons, "Total Memory Size: %d MiB\n", uint64(total/mem.Mb))
}
