//go:build !no_gpl

package decompress

import (
	"bytes"

	"github.com/rasky/go-lzo"
)

type Lzo struct{}

func NewLzo() (Lzo, error) {
	return Lzo{}, nil
}

func (l Lzo) Decompress(data []byte, maxSize int) ([]byte, error) {
	out, err := lzo.Decompress1X(bytes.NewReader(data), len(data), 0)
	if err != nil {
		return nil, err
	}
	if len(out) > maxSize {
		return nil, ErrDecompressedTooLarge
	}
	return out, nil
}
