// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
)

// Start runs a JSONL encoder goroutine for values of type T. Values sent on
// the returned channel are converted by toWire and written one per line; the
// error channel yields exactly one value after the input channel is closed
// (or on the first encode failure). Errors matched by isBroken are dropped.
func Start[T, W any](out io.Writer, bufSize int, toWire func(T) W, isBroken func(error) bool) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bufio.NewWriterSize(out, 64<<10)
		enc := json.NewEncoder(bw)
		var err error
		for v := range in {
			if err != nil {
				continue // drain so senders never block
			}
			err = enc.Encode(toWire(v))
		}
		if err == nil {
			err = bw.Flush()
		}
		if isBroken != nil && isBroken(err) {
			err = nil
		}
		done <- err
	}()

	return in, done
}
