package squashfslow

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/CalebQ42/squashmeta/internal/decompress"
	"github.com/CalebQ42/squashmeta/internal/toreader"
)

// The types of compression supported by squashfs
const (
	ZlibCompression = uint16(iota + 1)
	LZMACompression
	LZOCompression
	XZCompression
	LZ4Compression
	ZSTDCompression
)

var (
	ErrorMagic       = errors.New("magic incorrect. probably not reading squashfs archive or archive is corrupted")
	ErrorLog         = errors.New("block log is incorrect. possible corrupted archive")
	ErrorVersion     = errors.New("squashfs version of archive is not 4.0. may be corrupted")
	ErrorCompression = errors.New("invalid compression type. possible corrupted archive")
)

type Reader struct {
	r          io.ReaderAt
	d          decompress.Decompressor
	Superblock Superblock
}

func NewReader(r io.ReaderAt) (*Reader, error) {
	rdr := &Reader{r: r}
	err := binary.Read(toreader.NewReader(r, 0), binary.LittleEndian, &rdr.Superblock)
	if err != nil {
		return nil, errors.Join(errors.New("failed to read superblock"), err)
	}
	if !rdr.Superblock.ValidMagic() {
		return nil, ErrorMagic
	}
	if !rdr.Superblock.ValidBlockLog() {
		return nil, ErrorLog
	}
	if !rdr.Superblock.ValidVersion() {
		return nil, ErrorVersion
	}
	switch rdr.Superblock.CompType {
	case ZlibCompression:
		rdr.d = decompress.NewZlib()
	case LZMACompression:
		rdr.d = decompress.Lzma{}
	case LZOCompression:
		rdr.d, err = decompress.NewLzo()
		if err != nil {
			return nil, err
		}
	case XZCompression:
		rdr.d = decompress.NewXz()
	case LZ4Compression:
		rdr.d = decompress.NewLz4()
	case ZSTDCompression:
		rdr.d = &decompress.Zstd{}
	default:
		return nil, ErrorCompression
	}
	return rdr, nil
}
