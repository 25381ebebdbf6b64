// core/fasta/open.go
package fasta

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

var gzipMagic = []byte{0x1f, 0x8b}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (rc *readCloser) Close() error {
	var err error
	for _, c := range rc.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader for path ("-" is stdin), decompressing gzip input.
// Gzip is recognised by its magic bytes or a .gz suffix; detection peeks
// rather than seeks, so pipes work too. FASTQ and VCF readers share this.
func Open(path string) (io.ReadCloser, error) {
	var src io.ReadCloser = io.NopCloser(os.Stdin)
	if path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		src = fh
	}
	br := bufio.NewReaderSize(src, 64<<10)
	sig, _ := br.Peek(len(gzipMagic))
	if !strings.HasSuffix(path, ".gz") && string(sig) != string(gzipMagic) {
		return &readCloser{Reader: br, closers: []io.Closer{src}}, nil
	}
	gr, err := gzip.NewReader(br)
	if err != nil {
		_ = src.Close()
		return nil, err
	}
	return &readCloser{Reader: gr, closers: []io.Closer{gr, src}}, nil
}
