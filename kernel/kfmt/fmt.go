package kfmt

import "io"

// numBufSize defines the scratch buffer size for formatting numbers. 64-bit
// values need at most 22 digits in base 8.
const numBufSize = 22

var (
	errMissingArg   = []byte("%!(MISSING)")
	errWrongArgType = []byte("%!(WRONGTYPE)")
	errNoVerb       = []byte("%!(NOVERB)")
	errExtraArg     = []byte("%!(EXTRA)")
	trueValue       = []byte("true")
	falseValue      = []byte("false")

	// singleByte is a shared one-byte buffer used to emit individual
	// characters without allocating.
	singleByte = []byte{0}

	// earlyBuffer captures Printf output generated before a console
	// becomes available.
	earlyBuffer ringBuffer

	// outputSink is the io.Writer that receives Printf output. While it is
	// nil, output accumulates in earlyBuffer.
	outputSink io.Writer
)

// SetOutputSink redirects future Printf output to w and drains any output
// that accumulated before a sink was available.
func SetOutputSink(w io.Writer) {
	outputSink = w
	if w != nil {
		io.Copy(w, &earlyBuffer)
	}
}

// GetOutputSink returns the io.Writer that currently receives Printf output.
// If no sink has been set, the early buffer is returned instead.
func GetOutputSink() io.Writer {
	if outputSink == nil {
		return &earlyBuffer
	}
	return outputSink
}

// Printf writes a formatted string to the active output sink. It is safe to
// call at any point of the boot flow and never allocates.
//
// The supported subset of formatting verbs is:
//
// Strings:
//	%s the uninterpreted bytes of a string or byte slice
//
// Integers (all built-in signed and unsigned types):
//	%o base 8
//	%d base 10
//	%x base 16, lower-case
//
// Booleans:
//	%t "true" or "false"
//
// An optional decimal width may precede the verb. Strings and base-10 values
// shorter than the width are left-padded with spaces; base-8 and base-16
// values are left-padded with zeroes.
func Printf(format string, args ...interface{}) {
	Fprintf(GetOutputSink(), format, args...)
}

// Fprintf behaves like Printf but writes the formatted output to w.
func Fprintf(w io.Writer, format string, args ...interface{}) {
	var (
		nextArg int
		i       int
	)

	for i < len(format) {
		ch := format[i]
		if ch != '%' {
			writeByte(w, ch)
			i++
			continue
		}

		// Scan the optional width and the verb.
		width := 0
		i++
		for ; i < len(format); i++ {
			ch = format[i]
			if ch >= '0' && ch <= '9' {
				width = width*10 + int(ch-'0')
				continue
			}
			break
		}

		if i == len(format) {
			doWrite(w, errNoVerb)
			break
		}

		if ch == '%' {
			writeByte(w, '%')
			i++
			continue
		}

		if ch != 's' && ch != 'd' && ch != 'x' && ch != 'o' && ch != 't' {
			doWrite(w, errNoVerb)
			i++
			continue
		}

		if nextArg >= len(args) {
			doWrite(w, errMissingArg)
			i++
			continue
		}

		switch ch {
		case 's':
			fmtString(w, args[nextArg], width)
		case 'd':
			fmtInt(w, args[nextArg], 10, width)
		case 'x':
			fmtInt(w, args[nextArg], 16, width)
		case 'o':
			fmtInt(w, args[nextArg], 8, width)
		case 't':
			fmtBool(w, args[nextArg])
		}
		nextArg++
		i++
	}

	for ; nextArg < len(args); nextArg++ {
		doWrite(w, errExtraArg)
	}
}

// fmtString writes a string or []byte value, left-padding with spaces up to
// width.
func fmtString(w io.Writer, v interface{}, width int) {
	switch val := v.(type) {
	case string:
		pad(w, ' ', width-len(val))
		// Converting the string to a byte slice would allocate; emit
		// it one byte at a time instead.
		for i := 0; i < len(val); i++ {
			writeByte(w, val[i])
		}
	case []byte:
		pad(w, ' ', width-len(val))
		doWrite(w, val)
	default:
		doWrite(w, errWrongArgType)
	}
}

// fmtBool writes "true" or "false".
func fmtBool(w io.Writer, v interface{}) {
	val, ok := v.(bool)
	if !ok {
		doWrite(w, errWrongArgType)
		return
	}
	if val {
		doWrite(w, trueValue)
		return
	}
	doWrite(w, falseValue)
}

// fmtInt writes an integer value in the requested base. Base-10 values are
// space-padded, base-8 and base-16 values are zero-padded.
func fmtInt(w io.Writer, v interface{}, base, width int) {
	var (
		uval     uint64
		sval     int64
		negative bool
		buf      [numBufSize]byte
	)

	switch val := v.(type) {
	case uint8:
		uval = uint64(val)
	case uint16:
		uval = uint64(val)
	case uint32:
		uval = uint64(val)
	case uint64:
		uval = val
	case uint:
		uval = uint64(val)
	case uintptr:
		uval = uint64(val)
	case int8:
		sval = int64(val)
	case int16:
		sval = int64(val)
	case int32:
		sval = int64(val)
	case int64:
		sval = val
	case int:
		sval = int64(val)
	default:
		doWrite(w, errWrongArgType)
		return
	}

	if sval < 0 {
		negative = true
		uval = uint64(-sval)
	} else if sval > 0 {
		uval = uint64(sval)
	}

	digits := 0
	for {
		rem := uval % uint64(base)
		if rem < 10 {
			buf[digits] = byte('0' + rem)
		} else {
			buf[digits] = byte('a' + rem - 10)
		}
		digits++
		uval /= uint64(base)
		if uval == 0 {
			break
		}
	}

	padCh := byte(' ')
	if base != 10 {
		padCh = '0'
	}
	if negative {
		if padCh == ' ' {
			pad(w, padCh, width-digits-1)
			writeByte(w, '-')
		} else {
			writeByte(w, '-')
			pad(w, padCh, width-digits-1)
		}
	} else {
		pad(w, padCh, width-digits)
	}

	for digits > 0 {
		digits--
		writeByte(w, buf[digits])
	}
}

// pad emits count copies of ch; count <= 0 emits nothing.
func pad(w io.Writer, ch byte, count int) {
	for i := 0; i < count; i++ {
		writeByte(w, ch)
	}
}

// writeByte emits a single byte through the shared one-byte buffer.
func writeByte(w io.Writer, ch byte) {
	singleByte[0] = ch
	doWrite(w, singleByte)
}

// doWrite writes p to w, falling back to the early buffer when no writer is
// available.
func doWrite(w io.Writer, p []byte) {
	if w == nil {
		w = &earlyBuffer
	}
	w.Write(p)
}
