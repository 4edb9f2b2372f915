package console

import (
	"testing"
	"unsafe"

	"gopherboot/kernel"
	"gopherboot/kernel/hal/uefi"
)

func TestProbeForFbConsole(t *testing.T) {
	prevLocate := locateGraphicsOutputFn
	defer func() { locateGraphicsOutputFn = prevLocate }()

	backing := make([]uint32, 64*16)
	modeInfo := uefi.GraphicsModeInfo{
		HorizontalResolution: 64,
		VerticalResolution:   16,
		PixelsPerScanLine:    64,
	}
	mode := uefi.GraphicsOutputMode{
		Info:            &modeInfo,
		FrameBufferBase: uintptr(unsafe.Pointer(&backing[0])),
	}
	gop := uefi.GraphicsOutput{Mode: &mode}

	locateGraphicsOutputFn = func(_ *uefi.SystemTable) (*uefi.GraphicsOutput, *kernel.Error) {
		return &gop, nil
	}

	drv := probeForFbConsole(nil)
	cons, ok := drv.(*FbConsole)
	if !ok {
		t.Fatalf("expected a console driver; got %v", drv)
	}
	if w, h := cons.Bitmap().Width(), cons.Bitmap().Height(); w != 64 || h != 16 {
		t.Fatalf("expected the console to wrap the 64x16 frame buffer; got %dx%d", w, h)
	}
}

func TestProbeForFbConsoleFailures(t *testing.T) {
	prevLocate := locateGraphicsOutputFn
	defer func() { locateGraphicsOutputFn = prevLocate }()

	// Missing protocol.
	locateGraphicsOutputFn = func(_ *uefi.SystemTable) (*uefi.GraphicsOutput, *kernel.Error) {
		return nil, uefi.ErrProtocolNotFound
	}
	if drv := probeForFbConsole(nil); drv != nil {
		t.Fatalf("expected no driver without the graphics protocol; got %v", drv)
	}

	// Protocol present but the active mode cannot back a frame buffer.
	modeInfo := uefi.GraphicsModeInfo{HorizontalResolution: 64, VerticalResolution: 16, PixelsPerScanLine: 64}
	mode := uefi.GraphicsOutputMode{Info: &modeInfo} // FrameBufferBase left zero
	gop := uefi.GraphicsOutput{Mode: &mode}
	locateGraphicsOutputFn = func(_ *uefi.SystemTable) (*uefi.GraphicsOutput, *kernel.Error) {
		return &gop, nil
	}
	if drv := probeForFbConsole(nil); drv != nil {
		t.Fatalf("expected no driver for an unusable graphics mode; got %v", drv)
	}
}
