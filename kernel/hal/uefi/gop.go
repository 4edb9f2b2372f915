package uefi

import (
	"unsafe"

	"gopherboot/kernel"
	"gopherboot/kernel/kfmt"
)

// GraphicsOutput mirrors the graphics output protocol record. The query,
// set-mode and blt entries are never called by this project and are folded
// into a reserved block; only the mode pointer is consumed.
type GraphicsOutput struct {
	_    [3]uint64
	Mode *GraphicsOutputMode
}

// GraphicsOutputMode mirrors the mode sub-record exposed by the graphics
// output protocol. FrameBufferBase is the physical address of the linear
// frame buffer for the active mode.
type GraphicsOutputMode struct {
	MaxMode         uint32
	Mode            uint32
	Info            *GraphicsModeInfo
	SizeOfInfo      uint64
	FrameBufferBase uintptr
	FrameBufferSize uintptr
}

// GraphicsModeInfo mirrors the mode information record. The pixel format and
// bit mask fields between the resolution pair and the scan line width are not
// consumed (the frame buffer is treated as 32-bit RGB) and are declared as
// padding of the documented width.
type GraphicsModeInfo struct {
	Version              uint32
	HorizontalResolution uint32
	VerticalResolution   uint32
	_                    [5]uint32
	PixelsPerScanLine    uint32
}

const (
	_ = uint(unsafe.Offsetof(GraphicsOutput{}.Mode) - 24)
	_ = uint(24 - unsafe.Offsetof(GraphicsOutput{}.Mode))

	_ = uint(unsafe.Offsetof(GraphicsOutputMode{}.Info) - 8)
	_ = uint(8 - unsafe.Offsetof(GraphicsOutputMode{}.Info))

	_ = uint(unsafe.Offsetof(GraphicsOutputMode{}.FrameBufferBase) - 24)
	_ = uint(24 - unsafe.Offsetof(GraphicsOutputMode{}.FrameBufferBase))

	_ = uint(unsafe.Offsetof(GraphicsModeInfo{}.HorizontalResolution) - 4)
	_ = uint(4 - unsafe.Offsetof(GraphicsModeInfo{}.HorizontalResolution))

	_ = uint(unsafe.Offsetof(GraphicsModeInfo{}.PixelsPerScanLine) - 32)
	_ = uint(32 - unsafe.Offsetof(GraphicsModeInfo{}.PixelsPerScanLine))

	_ = uint(unsafe.Sizeof(GraphicsModeInfo{}) - 36)
	_ = uint(36 - unsafe.Sizeof(GraphicsModeInfo{}))
)

// LocateGraphicsOutput looks up the graphics output protocol through the
// supplied system table. A platform without the protocol yields
// ErrProtocolNotFound; any other non-success status is reported together
// with its raw value and yields ErrFirmwareCall. The returned record and its
// nested mode pointers have been null-checked and are safe to dereference.
func LocateGraphicsOutput(sysTable *SystemTable) (*GraphicsOutput, *kernel.Error) {
	if sysTable == nil || sysTable.BootServices == nil {
		return nil, ErrFirmwareCall
	}

	var iface unsafe.Pointer
	status := sysTable.BootServices.LocateProtocol(&GraphicsOutputProtocolGUID, &iface)
	switch {
	case status == StatusNotFound:
		return nil, ErrProtocolNotFound
	case !status.OK():
		kfmt.Printf("[uefi] locateProtocol: %s (0x%x)\n", status.String(), uintptr(status))
		return nil, ErrFirmwareCall
	case iface == nil:
		return nil, ErrProtocolNotFound
	}

	gop := (*GraphicsOutput)(iface)
	if gop.Mode == nil || gop.Mode.Info == nil {
		return nil, ErrFirmwareCall
	}

	return gop, nil
}
