package decompress

import (
	"bytes"

	"github.com/ulikunitz/xz/lzma"
)

type Lzma struct{}

func (l Lzma) Decompress(data []byte, maxSize int) ([]byte, error) {
	rdr, err := lzma.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return readLimited(rdr, maxSize)
}
