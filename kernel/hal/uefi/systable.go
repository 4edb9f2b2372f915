package uefi

import "unsafe"

// SystemTable mirrors the EFI system table header. Only the boot services
// pointer is consumed; every field before it is declared as opaque padding so
// the pointer lands on its documented byte offset.
type SystemTable struct {
	_            [12]uint64
	BootServices *BootServices
}

// BootServices mirrors the EFI boot services table. The entries this project
// does not call are folded into reserved blocks; the two used entries are
// kept as raw firmware code pointers and are only ever invoked through the
// MS x64 call trampoline.
type BootServices struct {
	_              [7]uint64
	getMemoryMap   uintptr
	_              [32]uint64
	locateProtocol uintptr
}

// Fixed ABI offsets from the UEFI specification. If one of these assertions
// fails to compile, a reserved block above is the wrong size.
const (
	_ = uint(unsafe.Offsetof(SystemTable{}.BootServices) - 96)
	_ = uint(96 - unsafe.Offsetof(SystemTable{}.BootServices))

	_ = uint(unsafe.Offsetof(BootServices{}.getMemoryMap) - 56)
	_ = uint(56 - unsafe.Offsetof(BootServices{}.getMemoryMap))

	_ = uint(unsafe.Offsetof(BootServices{}.locateProtocol) - 320)
	_ = uint(320 - unsafe.Offsetof(BootServices{}.locateProtocol))
)

// The call trampolines are routed through function vars so tests can stand in
// for firmware.
var (
	efiCall3Fn = efiCall3
	efiCall5Fn = efiCall5
)

// LocateProtocol invokes the boot service that looks up a protocol interface
// by GUID. The registration argument is unused by this project and passed as
// zero. On success, iface holds a pointer to the protocol-specific record.
func (bs *BootServices) LocateProtocol(guid *GUID, iface *unsafe.Pointer) Status {
	return Status(efiCall3Fn(
		bs.locateProtocol,
		uintptr(unsafe.Pointer(guid)),
		0,
		uintptr(unsafe.Pointer(iface)),
	))
}

// GetMemoryMap queries the physical memory map into m. The holder's buffer
// size is handed to firmware as the in/out size argument; on success m holds
// a packed descriptor sequence at the firmware-chosen stride together with
// the map key and descriptor version.
func (bs *BootServices) GetMemoryMap(m *MemoryMapHolder) Status {
	m.MapSize = uintptr(len(m.buffer))
	return Status(efiCall5Fn(
		bs.getMemoryMap,
		uintptr(unsafe.Pointer(&m.MapSize)),
		uintptr(unsafe.Pointer(&m.buffer[0])),
		uintptr(unsafe.Pointer(&m.MapKey)),
		uintptr(unsafe.Pointer(&m.DescriptorSize)),
		uintptr(unsafe.Pointer(&m.DescriptorVersion)),
	))
}
