package kfmt

import "io"

// PrefixWriter wraps an io.Writer and injects a prefix at the start of each
// output line. It is used by the hardware detection code to tag each driver's
// init output with the driver name.
type PrefixWriter struct {
	// Sink receives all writes.
	Sink io.Writer

	// Prefix is injected at the beginning of each line.
	Prefix []byte

	// midLine tracks whether the previous write ended without a newline,
	// in which case the next write continues the same line unprefixed.
	midLine bool
}

// Write writes p to the sink, inserting the prefix after every newline. The
// returned count excludes the injected prefixes.
func (w *PrefixWriter) Write(p []byte) (int, error) {
	var written, start int

	if len(p) == 0 {
		return 0, nil
	}

	if !w.midLine {
		w.Sink.Write(w.Prefix)
		w.midLine = true
	}

	for cur := 0; cur < len(p); cur++ {
		if p[cur] != '\n' {
			continue
		}

		n, err := w.Sink.Write(p[start : cur+1])
		written += n
		if err != nil {
			return written, err
		}

		if cur+1 < len(p) {
			w.Sink.Write(w.Prefix)
		} else {
			w.midLine = false
		}
		start = cur + 1
	}

	if start < len(p) {
		n, err := w.Sink.Write(p[start:])
		written += n
		if err != nil {
			return written, err
		}
	}

	return written, nil
}
