package inode

import (
	"encoding/binary"
	"errors"
	"io/fs"
	"strconv"
)

// The inode type tags, in on-disk numeric order. The E-prefixed tags are the
// extended variants.
const (
	Dir = uint16(iota + 1)
	Fil
	Sym
	Block
	Char
	Fifo
	Sock
	EDir
	EFil
	ESym
	EBlock
	EChar
	EFifo
	ESock
)

// InvalidFrag as a fragment index means the file doesn't use a fragment and
// its last block is stored in full.
const InvalidFrag = 0xFFFFFFFF

// Fixed structural sizes per type tag, common header included. The extended
// symlink carries no fixed fields beyond the plain one.
const (
	HeaderSize = 16
	DirSize    = HeaderSize + 16
	FilSize    = HeaderSize + 16
	SymSize    = HeaderSize + 8
	DevSize    = HeaderSize + 8
	IPCSize    = HeaderSize + 4
	EDirSize   = HeaderSize + 24
	EFilSize   = HeaderSize + 40
	EDevSize   = HeaderSize + 12
	EIPCSize   = HeaderSize + 8

	// DirIndexSize is the fixed portion of a directory index entry; the
	// entry's name follows it.
	DirIndexSize = 12
)

// Header is common to all inode types.
type Header struct {
	Type    uint16
	Perm    uint16
	UidInd  uint16
	GidInd  uint16
	ModTime uint32
	Num     uint32
}

type Inode struct {
	Header
	Data any
}

// BaseSize returns the fixed structural size for the given type tag, or 0
// if the tag is not a valid inode type.
func BaseSize(t uint16) int {
	switch t {
	case Dir:
		return DirSize
	case Fil:
		return FilSize
	case Sym, ESym:
		return SymSize
	case Block, Char:
		return DevSize
	case Fifo, Sock:
		return IPCSize
	case EDir:
		return EDirSize
	case EFil:
		return EFilSize
	case EBlock, EChar:
		return EDevSize
	case EFifo, ESock:
		return EIPCSize
	}
	return 0
}

// Decode reads one full inode record out of dat. dat must hold the record's
// exact size as discovered via BaseSize and the variant size helpers. The
// returned inode owns all of its data; nothing aliases dat.
func Decode(dat []byte, blockSize uint32, blockLog uint16) (*Inode, error) {
	i := &Inode{Header: decodeHeader(dat)}
	switch i.Type {
	case Dir:
		i.Data = decodeDir(dat)
	case Fil:
		i.Data = decodeFil(dat, blockSize, blockLog)
	case Sym:
		i.Data = decodeSym(dat)
	case Block, Char:
		i.Data = decodeDevice(dat)
	case Fifo, Sock:
		i.Data = decodeIPC(dat)
	case EDir:
		i.Data = decodeEDir(dat)
	case EFil:
		i.Data = decodeEFil(dat, blockSize, blockLog)
	case ESym:
		i.Data = decodeESym(dat)
	case EBlock, EChar:
		i.Data = decodeEDevice(dat)
	case EFifo, ESock:
		i.Data = decodeEIPC(dat)
	default:
		return i, errors.New("invalid inode type " + strconv.Itoa(int(i.Type)))
	}
	return i, nil
}

func decodeHeader(dat []byte) (h Header) {
	h.Type = binary.LittleEndian.Uint16(dat)
	h.Perm = binary.LittleEndian.Uint16(dat[2:])
	h.UidInd = binary.LittleEndian.Uint16(dat[4:])
	h.GidInd = binary.LittleEndian.Uint16(dat[6:])
	h.ModTime = binary.LittleEndian.Uint32(dat[8:])
	h.Num = binary.LittleEndian.Uint32(dat[12:])
	return
}

func (i Inode) Mode() (out fs.FileMode) {
	out = fs.FileMode(i.Perm)
	switch i.Data.(type) {
	case Directory, EDirectory:
		out |= fs.ModeDir
	case Symlink, ESymlink:
		out |= fs.ModeSymlink
	case Device, EDevice:
		out |= fs.ModeDevice
	case IPC, EIPC:
		out |= fs.ModeNamedPipe
	}
	return
}

func (i Inode) LinkCount() uint32 {
	switch d := i.Data.(type) {
	case Directory:
		return d.LinkCount
	case EDirectory:
		return d.LinkCount
	case EFile:
		return d.LinkCount
	case Symlink:
		return d.LinkCount
	case ESymlink:
		return d.LinkCount
	case Device:
		return d.LinkCount
	case EDevice:
		return d.LinkCount
	case IPC:
		return d.LinkCount
	case EIPC:
		return d.LinkCount
	default:
		return 0
	}
}

func (i Inode) Size() uint64 {
	switch d := i.Data.(type) {
	case File:
		return uint64(d.Size)
	case EFile:
		return d.Size
	default:
		return 0
	}
}
