package mem

// Size represents a memory block size in bytes.
type Size uint64

// Common memory block sizes.
const (
	Byte Size = 1
	Kb        = 1024 * Byte
	Mb        = 1024 * Kb
	Gb        = 1024 * Mb
)

// FromPages converts a page count into a Size. Firmware reports memory
// region extents in 4 KiB pages.
func FromPages(pages uint64) Size {
	return Size(pages) << PageShift
}
