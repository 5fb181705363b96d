package inode

import "encoding/binary"

type Symlink struct {
	LinkCount  uint32
	TargetSize uint32
	Target     []byte
}

// ESymlink is laid out exactly like Symlink; only the type tag differs.
type ESymlink struct {
	LinkCount  uint32
	TargetSize uint32
	Target     []byte
}

// SymInodeSize computes a symlink record's full size from its fixed
// portion. dat must hold at least SymSize bytes of the record. Both symlink
// variants share this derivation.
func SymInodeSize(dat []byte) int {
	return SymSize + int(binary.LittleEndian.Uint32(dat[20:]))
}

func decodeSym(dat []byte) Symlink {
	s := Symlink{
		LinkCount:  binary.LittleEndian.Uint32(dat[16:]),
		TargetSize: binary.LittleEndian.Uint32(dat[20:]),
	}
	s.Target = make([]byte, s.TargetSize)
	copy(s.Target, dat[SymSize:])
	return s
}

func decodeESym(dat []byte) ESymlink {
	s := decodeSym(dat)
	return ESymlink(s)
}
