// Package uefi provides the firmware binding layer used before OS hand-off.
// It mirrors the fixed record layouts of the UEFI calling ABI and exposes the
// two boot services this project needs: protocol location and the physical
// memory map query.
//
// Every record that crosses the firmware boundary pins its load-bearing field
// offsets with compile-time assertions; an offset mismatch is undiagnosable
// at runtime once an image ships.
package uefi

import "gopherboot/kernel"

// Handle is an opaque reference to a firmware-managed object. The image
// handle passed to the entry point is never dereferenced, only forwarded.
type Handle uintptr

// Status is the result code returned by every boot service call. Error codes
// have the high bit set.
type Status uintptr

const statusErrBit = ^Status(0)>>1 + 1

// The status codes this project can encounter.
const (
	StatusSuccess          Status = 0
	StatusInvalidParameter        = statusErrBit | 2
	StatusUnsupported             = statusErrBit | 3
	StatusBufferTooSmall          = statusErrBit | 5
	StatusNotFound                = statusErrBit | 14
)

// OK reports whether the status denotes success. Warning codes (high bit
// clear, value non-zero) are treated as failures; this layer never issues a
// call for which a warning would be acceptable.
func (s Status) OK() bool {
	return s == StatusSuccess
}

// String implements fmt.Stringer for Status.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusInvalidParameter:
		return "invalid parameter"
	case StatusUnsupported:
		return "unsupported"
	case StatusBufferTooSmall:
		return "buffer too small"
	case StatusNotFound:
		return "not found"
	default:
		return "unknown status"
	}
}

// GUID is the 128-bit identifier keying a requestable firmware protocol.
type GUID struct {
	Data0 uint32
	Data1 uint16
	Data2 uint16
	Data3 [8]uint8
}

// GraphicsOutputProtocolGUID identifies the graphics output protocol
// ({9042A9DE-23DC-4A38-96FB-7ADED080516A}).
var GraphicsOutputProtocolGUID = GUID{
	0x9042a9de, 0x23dc, 0x4a38,
	[8]uint8{0x96, 0xfb, 0x7a, 0xde, 0xd0, 0x80, 0x51, 0x6a},
}

// Errors returned by the binding layer. Firmware calls are deterministic for
// a given platform state, so nothing is ever retried; a failure here is final
// for the caller to act on.
var (
	// ErrProtocolNotFound is returned when the requested protocol is not
	// installed on the platform.
	ErrProtocolNotFound = &kernel.Error{Module: "uefi", Message: "protocol not found"}

	// ErrFirmwareCall is returned when a boot service reports any other
	// non-success status. The raw status value is reported through kfmt
	// at the point of failure.
	ErrFirmwareCall = &kernel.Error{Module: "uefi", Message: "firmware call failed"}
)
