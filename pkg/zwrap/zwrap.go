// Package zwrap takes a reader and optionally wraps it so reads go
// through a gzip decompressor. Upon calling Close, the decompressor
// is closed, followed by the underlying source.
// We decide by looking at the first two bytes, not by seeking back,
// so it works on pipes and http request bodies.
package zwrap

import (
	"bufio"
	"compress/gzip"
	"errors"
	"io"
)

var gzipMagic = [2]byte{0x1f, 0x8b}

type FpGzip struct { // This is what we return.
	src  io.ReadCloser
	rdr  io.Reader    // where reads come from
	zrdr *gzip.Reader // nil if not compressed
}

// IsGzip says if b starts like a gzip stream.
func IsGzip(b []byte) bool {
	return len(b) >= 2 && b[0] == gzipMagic[0] && b[1] == gzipMagic[1]
}

// Close closes the decompressor, then the underlying source.
func (fc *FpGzip) Close() error {
	if fc.zrdr == nil {
		return fc.src.Close()
	}
	return errors.Join(fc.zrdr.Close(), fc.src.Close())
}

func (fc *FpGzip) Read(p []byte) (int, error) { return fc.rdr.Read(p) }

// Compressed is true if reads are being decompressed.
func (fc *FpGzip) Compressed() bool { return fc.zrdr != nil }

// Wrap says src is compressed. If it is not, the error from gzip is
// returned.
func Wrap(src io.ReadCloser) (*FpGzip, error) {
	zrdr, err := gzip.NewReader(src)
	if err != nil {
		return nil, err
	}
	return &FpGzip{src: src, rdr: zrdr, zrdr: zrdr}, nil
}

// WrapMaybe peeks at the start of src and only decompresses if it
// finds the gzip magic number. An empty source is fine and is not
// compressed.
func WrapMaybe(src io.ReadCloser) (*FpGzip, error) {
	br := bufio.NewReader(src)
	head, err := br.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		return nil, err
	}
	if !IsGzip(head) {
		return &FpGzip{src: src, rdr: br}, nil
	}
	zrdr, err := gzip.NewReader(br)
	if err != nil {
		return nil, err
	}
	return &FpGzip{src: src, rdr: zrdr, zrdr: zrdr}, nil
}
