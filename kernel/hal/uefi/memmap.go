package uefi

import "unsafe"

// memoryMapBufferSize defines the fixed capacity handed to GetMemoryMap.
// 32 KiB fits the descriptor count of any firmware encountered so far with
// ample headroom; a larger map surfaces as StatusBufferTooSmall.
const memoryMapBufferSize = 0x8000

// MemoryType classifies a physical memory region as reported by firmware.
type MemoryType uint32

// The memory region types from the UEFI specification.
const (
	MemReserved MemoryType = iota
	MemLoaderCode
	MemLoaderData
	MemBootServicesCode
	MemBootServicesData
	MemRuntimeServicesCode
	MemRuntimeServicesData
	MemConventional
	MemUnusable
	MemACPIReclaim
	MemACPINvs
	MemMappedIO
	MemMappedIOPortSpace
	MemPalCode
	MemPersistent
)

// String implements fmt.Stringer for MemoryType.
func (t MemoryType) String() string {
	switch t {
	case MemReserved:
		return "reserved"
	case MemLoaderCode:
		return "loader code"
	case MemLoaderData:
		return "loader data"
	case MemBootServicesCode:
		return "boot services code"
	case MemBootServicesData:
		return "boot services data"
	case MemRuntimeServicesCode:
		return "runtime services code"
	case MemRuntimeServicesData:
		return "runtime services data"
	case MemConventional:
		return "conventional"
	case MemUnusable:
		return "unusable"
	case MemACPIReclaim:
		return "ACPI (reclaimable)"
	case MemACPINvs:
		return "ACPI NVS"
	case MemMappedIO:
		return "memory mapped I/O"
	case MemMappedIOPortSpace:
		return "memory mapped I/O port space"
	case MemPalCode:
		return "PAL code"
	case MemPersistent:
		return "persistent"
	default:
		return "unknown"
	}
}

// MemoryDescriptor describes one contiguous physical memory region. The
// field layout matches the UEFI descriptor record; firmware may append
// fields after Attribute, which is why the map is always walked at the
// firmware-reported stride rather than this struct's size.
type MemoryDescriptor struct {
	Type          MemoryType
	_             uint32
	PhysicalStart uint64
	VirtualStart  uint64
	PageCount     uint64
	Attribute     uint64
}

const (
	_ = uint(unsafe.Offsetof(MemoryDescriptor{}.PhysicalStart) - 8)
	_ = uint(8 - unsafe.Offsetof(MemoryDescriptor{}.PhysicalStart))

	_ = uint(unsafe.Offsetof(MemoryDescriptor{}.PageCount) - 24)
	_ = uint(24 - unsafe.Offsetof(MemoryDescriptor{}.PageCount))

	_ = uint(unsafe.Offsetof(MemoryDescriptor{}.Attribute) - 32)
	_ = uint(32 - unsafe.Offsetof(MemoryDescriptor{}.Attribute))
)

// MemoryMapHolder owns the buffer that a memory map query fills in, together
// with the size, key, stride and version values reported back by firmware.
// The zero value is ready for use; a holder is refilled in place by each
// query and its descriptors are read-only views into the buffer.
type MemoryMapHolder struct {
	buffer            [memoryMapBufferSize]byte
	MapSize           uintptr
	MapKey            uintptr
	DescriptorSize    uintptr
	DescriptorVersion uint32
}

// DescriptorVisitor is invoked by VisitDescriptors for each descriptor in
// the map. Returning false aborts the walk.
type DescriptorVisitor func(*MemoryDescriptor) bool

// VisitDescriptors walks the filled buffer and invokes visitor for each
// complete descriptor it contains. The walk advances by the firmware-reported
// DescriptorSize, which may exceed the declared struct size on firmware that
// implements a newer revision of the descriptor record. An empty or
// undersized buffer results in no visits.
func (m *MemoryMapHolder) VisitDescriptors(visitor DescriptorVisitor) {
	it := m.Descriptors()
	for desc := it.Next(); desc != nil; desc = it.Next() {
		if !visitor(desc) {
			return
		}
	}
}

// Descriptors returns a restartable iterator over the descriptors in the
// filled buffer. Iterating twice over the same query yields the same
// sequence.
func (m *MemoryMapHolder) Descriptors() MemoryMapIterator {
	return MemoryMapIterator{m: m}
}

// TotalPages sums the 4 KiB page counts of all regions with the supplied
// type.
func (m *MemoryMapHolder) TotalPages(t MemoryType) uint64 {
	var pages uint64
	m.VisitDescriptors(func(desc *MemoryDescriptor) bool {
		if desc.Type == t {
			pages += desc.PageCount
		}
		return true
	})
	return pages
}

// MemoryMapIterator yields read-only descriptor views from a filled memory
// map holder.
type MemoryMapIterator struct {
	m      *MemoryMapHolder
	offset uintptr
}

// Next returns the next descriptor, or nil once the used portion of the
// buffer is exhausted. Only descriptors that fit entirely inside the used
// portion are yielded.
func (it *MemoryMapIterator) Next() *MemoryDescriptor {
	stride := it.m.DescriptorSize
	if stride == 0 {
		return nil
	}

	used := it.m.MapSize
	if used > uintptr(len(it.m.buffer)) {
		used = uintptr(len(it.m.buffer))
	}

	if it.offset+stride > used {
		return nil
	}

	desc := (*MemoryDescriptor)(unsafe.Pointer(&it.m.buffer[it.offset]))
	it.offset += stride
	return desc
}
