package decompress

import (
	"errors"
	"io"
)

// ErrDecompressedTooLarge is returned when a backend produces more output
// than the caller's stated bound. Metadata blocks decompress to at most the
// logical block size, so hitting this means the archive is corrupt.
var ErrDecompressedTooLarge = errors.New("decompressed data exceeds size limit")

type Decompressor interface {
	// Decompress inflates data, producing at most maxSize bytes. Output
	// beyond maxSize fails with ErrDecompressedTooLarge.
	Decompress(data []byte, maxSize int) ([]byte, error)
}

// readLimited drains r into a fresh slice, erroring out as soon as the
// output passes maxSize instead of reading the stream to completion.
func readLimited(r io.Reader, maxSize int) ([]byte, error) {
	buf := make([]byte, maxSize+1)
	n, err := io.ReadFull(r, buf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return buf[:n], nil
	}
	if err != nil {
		return nil, err
	}
	return nil, ErrDecompressedTooLarge
}
