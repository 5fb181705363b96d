package decompress

import (
	"github.com/klauspost/compress/zstd"
)

type Zstd struct {
	dec *zstd.Decoder
}

func (z *Zstd) Decompress(data []byte, maxSize int) ([]byte, error) {
	if z.dec == nil {
		z.dec, _ = zstd.NewReader(nil)
	}
	out, err := z.dec.DecodeAll(data, make([]byte, 0, maxSize))
	if err != nil {
		return nil, err
	}
	if len(out) > maxSize {
		return nil, ErrDecompressedTooLarge
	}
	return out, nil
}
