package inode

import "encoding/binary"

type Directory struct {
	BlockStart uint32
	LinkCount  uint32
	Size       uint16
	Offset     uint16
	ParentNum  uint32
}

type EDirectory struct {
	LinkCount  uint32
	Size       uint32
	BlockStart uint32
	ParentNum  uint32
	IndCount   uint16
	Offset     uint16
	XattrInd   uint32
	Indexes    []DirectoryIndex
}

type DirectoryIndex struct {
	Ind      uint32
	Start    uint32
	NameSize uint32
	Name     []byte
}

// EDirIndexCount reads the directory index count out of an extended
// directory record's fixed portion. dat must hold at least EDirSize bytes.
func EDirIndexCount(dat []byte) uint16 {
	return binary.LittleEndian.Uint16(dat[32:])
}

// DirIndexEntrySize gives the full size of the directory index entry
// starting at dat. The on-disk name size is stored one short of the actual
// name length.
func DirIndexEntrySize(dat []byte) int {
	return DirIndexSize + int(binary.LittleEndian.Uint32(dat[8:])) + 1
}

func decodeDir(dat []byte) Directory {
	return Directory{
		BlockStart: binary.LittleEndian.Uint32(dat[16:]),
		LinkCount:  binary.LittleEndian.Uint32(dat[20:]),
		Size:       binary.LittleEndian.Uint16(dat[24:]),
		Offset:     binary.LittleEndian.Uint16(dat[26:]),
		ParentNum:  binary.LittleEndian.Uint32(dat[28:]),
	}
}

func decodeEDir(dat []byte) EDirectory {
	d := EDirectory{
		LinkCount:  binary.LittleEndian.Uint32(dat[16:]),
		Size:       binary.LittleEndian.Uint32(dat[20:]),
		BlockStart: binary.LittleEndian.Uint32(dat[24:]),
		ParentNum:  binary.LittleEndian.Uint32(dat[28:]),
		IndCount:   binary.LittleEndian.Uint16(dat[32:]),
		Offset:     binary.LittleEndian.Uint16(dat[34:]),
		XattrInd:   binary.LittleEndian.Uint32(dat[36:]),
	}
	d.Indexes = make([]DirectoryIndex, d.IndCount)
	offset := EDirSize
	for i := range d.Indexes {
		ent := dat[offset:]
		d.Indexes[i].Ind = binary.LittleEndian.Uint32(ent)
		d.Indexes[i].Start = binary.LittleEndian.Uint32(ent[4:])
		d.Indexes[i].NameSize = binary.LittleEndian.Uint32(ent[8:])
		d.Indexes[i].Name = make([]byte, d.Indexes[i].NameSize+1)
		copy(d.Indexes[i].Name, ent[DirIndexSize:])
		offset += DirIndexSize + len(d.Indexes[i].Name)
	}
	return d
}
