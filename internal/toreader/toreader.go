package toreader

import "io"

// Reader provides a sequential io.Reader on top of an io.ReaderAt, starting
// at the given absolute offset. All multi-byte values read through it are
// little-endian via binary.Read.
type Reader struct {
	r      io.ReaderAt
	offset int64
}

func NewReader(r io.ReaderAt, start int64) *Reader {
	return &Reader{
		r:      r,
		offset: start,
	}
}

func (r *Reader) Read(b []byte) (int, error) {
	n, err := r.r.ReadAt(b, r.offset)
	r.offset += int64(n)
	return n, err
}
