package metareader

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/CalebQ42/squashmeta/internal/decompress"
)

// Size is the logical size of a single metadata block. Stored blocks never
// decompress to more than this.
const Size = 8192

// High bit of a stored block's length header flags the payload as
// uncompressed.
const uncompressedFlag = 0x8000

var (
	ErrBlockRead  = errors.New("failed to read metadata block")
	ErrSeekTooFar = errors.New("seek beyond buffered metadata")
)

// Reader presents a compressed metadata table as one contiguous byte
// stream. Stored blocks are pulled and decompressed lazily as Peek demands
// more data.
type Reader struct {
	r      io.Reader
	d      decompress.Decompressor
	buf    []byte
	start  int
	filled int
}

func NewReader(r io.Reader, d decompress.Decompressor) *Reader {
	return &Reader{
		r:   r,
		d:   d,
		buf: make([]byte, 2*Size),
	}
}

// pull reads one stored block from the underlying reader and appends its
// (decompressed) payload to the buffered data.
func (r *Reader) pull() error {
	var size uint16
	err := binary.Read(r.r, binary.LittleEndian, &size)
	if err != nil {
		return errors.Join(ErrBlockRead, err)
	}
	// Once the write position passes one logical block from the buffer
	// origin, compact the still-valid bytes back to the front. The valid
	// region is smaller than the shift distance, but copy is overlap-safe
	// regardless.
	if r.start+r.filled > Size {
		copy(r.buf, r.buf[r.start:r.start+r.filled])
		r.start = 0
	}
	if need := r.start + r.filled + Size; need > len(r.buf) {
		grown := make([]byte, max(2*len(r.buf), need))
		copy(grown, r.buf[:r.start+r.filled])
		r.buf = grown
	}
	realSize := size &^ uncompressedFlag
	write := r.buf[r.start+r.filled:]
	if size != realSize {
		// stored uncompressed
		if realSize > Size {
			return errors.Join(ErrBlockRead, errors.New("stored block larger than the logical block size"))
		}
		if _, err = io.ReadFull(r.r, write[:realSize]); err != nil {
			return errors.Join(ErrBlockRead, err)
		}
		r.filled += int(realSize)
		return nil
	}
	src := make([]byte, realSize)
	if _, err = io.ReadFull(r.r, src); err != nil {
		return errors.Join(ErrBlockRead, err)
	}
	out, err := r.d.Decompress(src, Size)
	if err != nil {
		return errors.Join(ErrBlockRead, err)
	}
	r.filled += copy(write, out)
	return nil
}

// Peek makes at least length bytes available at the current position and
// returns the buffered window starting there, without advancing. The
// returned slice aliases the reader's buffer and is only valid until the
// next Peek or Seek. Calling Peek again with a larger length extends the
// same window.
func (r *Reader) Peek(length int) ([]byte, error) {
	for r.filled < length {
		if err := r.pull(); err != nil {
			return nil, err
		}
	}
	return r.buf[r.start : r.start+r.filled], nil
}

// Seek advances the current position by length bytes. Only data already
// made available by Peek may be skipped.
func (r *Reader) Seek(length int) error {
	if length > r.filled {
		return ErrSeekTooFar
	}
	r.start += length
	r.filled -= length
	return nil
}
