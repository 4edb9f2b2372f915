package kfmt

import (
	"bytes"
	"testing"
)

func TestPrefixWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &PrefixWriter{Sink: &buf, Prefix: []byte("[dev] ")}

	exp := "[dev] line one\n[dev] line two\n"
	n, err := w.Write([]byte("line one\nline two\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != exp {
		t.Fatalf("expected %q; got %q", exp, got)
	}

	// The returned count must not include the injected prefixes or io.Copy
	// style callers would bail out with ErrShortWrite.
	if exp := len("line one\nline two\n"); n != exp {
		t.Fatalf("expected a write count of %d; got %d", exp, n)
	}
}

func TestPrefixWriterPartialLines(t *testing.T) {
	var buf bytes.Buffer
	w := &PrefixWriter{Sink: &buf, Prefix: []byte("> ")}

	// Successive writes without a newline continue the same prefixed line.
	w.Write([]byte("loading"))
	w.Write([]byte("..."))
	w.Write([]byte(" done\n"))
	w.Write([]byte("next\n"))

	if exp, got := "> loading... done\n> next\n", buf.String(); got != exp {
		t.Fatalf("expected %q; got %q", exp, got)
	}
}

func TestPrefixWriterEmptyWrite(t *testing.T) {
	var buf bytes.Buffer
	w := &PrefixWriter{Sink: &buf, Prefix: []byte("> ")}

	n, err := w.Write(nil)
	if n != 0 || err != nil {
		t.Fatalf("expected (0, nil) for an empty write; got (%d, %v)", n, err)
	}
	if buf.Len() != 0 {
		t.Fatal("expected an empty write to emit nothing, not a bare prefix")
	}
}
