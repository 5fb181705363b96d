package squashfslow

import (
	"encoding/binary"
	"errors"
	"strconv"

	"github.com/CalebQ42/squashmeta/internal/metareader"
	"github.com/CalebQ42/squashmeta/internal/toreader"
	"github.com/CalebQ42/squashmeta/low/inode"
)

var (
	ErrInvalidInodeType = errors.New("invalid inode type")
	ErrInodesExhausted  = errors.New("trying to read past the last inode")
)

// InodeReader walks the inode table start to finish, decoding one record
// per Read call. Records are variable length, so each one's size has to be
// discovered from its own fields before the stream can advance past it.
type InodeReader struct {
	meta      *metareader.Reader
	inodeNum  uint32
	numInodes uint32
	blockSize uint32
	blockLog  uint16
}

// InodeReader returns a reader positioned at the first inode of the table.
func (r *Reader) InodeReader() *InodeReader {
	return &InodeReader{
		meta:      metareader.NewReader(toreader.NewReader(r.r, int64(r.Superblock.InodeTableStart)), r.d),
		numInodes: r.Superblock.InodeCount,
		blockSize: r.Superblock.BlockSize,
		blockLog:  r.Superblock.BlockLog,
	}
}

// Read decodes the next inode and advances past it. Once InodeCount inodes
// have been produced further calls fail with ErrInodesExhausted. A zero or
// out-of-range type tag fails with ErrInvalidInodeType without advancing
// the stream.
func (r *InodeReader) Read() (*inode.Inode, error) {
	if r.inodeNum >= r.numInodes {
		return nil, ErrInodesExhausted
	}
	dat, err := r.meta.Peek(inode.HeaderSize)
	if err != nil {
		return nil, err
	}
	typ := binary.LittleEndian.Uint16(dat)
	size := inode.BaseSize(typ)
	if size == 0 {
		return nil, errors.Join(ErrInvalidInodeType, errors.New("type tag "+strconv.Itoa(int(typ))))
	}
	if dat, err = r.meta.Peek(size); err != nil {
		return nil, err
	}
	// The fixed portion is in view; now account for the type-dependent
	// trailing data.
	switch typ {
	case inode.Fil:
		size = inode.RegInodeSize(dat, r.blockSize, r.blockLog)
	case inode.EFil:
		size = inode.ERegInodeSize(dat, r.blockSize, r.blockLog)
	case inode.Sym, inode.ESym:
		size = inode.SymInodeSize(dat)
	case inode.EDir:
		// Each directory index entry is at least DirIndexSize long, so all
		// the fixed sub-headers can be claimed up front. Each entry's name
		// length only becomes readable once the previous entry's full
		// length is known, hence the growing re-peek.
		count := int(inode.EDirIndexCount(dat))
		size += count * inode.DirIndexSize
		if dat, err = r.meta.Peek(size); err != nil {
			return nil, err
		}
		offset := inode.EDirSize
		for i := 0; i < count; i++ {
			entSize := inode.DirIndexEntrySize(dat[offset:])
			size += entSize - inode.DirIndexSize
			offset += entSize
			if dat, err = r.meta.Peek(size); err != nil {
				return nil, err
			}
		}
	}
	if dat, err = r.meta.Peek(size); err != nil {
		return nil, err
	}
	in, err := inode.Decode(dat[:size], r.blockSize, r.blockLog)
	if err != nil {
		return nil, err
	}
	if err = r.meta.Seek(size); err != nil {
		return nil, err
	}
	r.inodeNum++
	return in, nil
}
