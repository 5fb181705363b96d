package inode

import "encoding/binary"

type File struct {
	BlockStart uint32
	FragInd    uint32
	FragOffset uint32
	Size       uint32
	BlockSizes []uint32
}

type EFile struct {
	BlockStart uint64
	Size       uint64
	Sparse     uint64
	LinkCount  uint32
	FragInd    uint32
	FragOffset uint32
	XattrInd   uint32
	BlockSizes []uint32
}

// BlockCount gives the number of data blocks a regular file occupies. When
// no fragment is used the last partial block is stored in full, so the size
// is rounded up before the shift.
func BlockCount(fileSize, blockSize uint32, blockLog uint16, fragInd uint32) uint32 {
	blocks := fileSize
	if fragInd == InvalidFrag {
		blocks += blockSize - 1
	}
	return blocks >> blockLog
}

// BlockCount64 is BlockCount for the extended variant's 64-bit file size.
func BlockCount64(fileSize uint64, blockSize uint32, blockLog uint16, fragInd uint32) uint64 {
	blocks := fileSize
	if fragInd == InvalidFrag {
		blocks += uint64(blockSize) - 1
	}
	return blocks >> blockLog
}

// RegInodeSize computes a regular-file record's full size from its fixed
// portion. dat must hold at least FilSize bytes of the record.
func RegInodeSize(dat []byte, blockSize uint32, blockLog uint16) int {
	fragInd := binary.LittleEndian.Uint32(dat[20:])
	size := binary.LittleEndian.Uint32(dat[28:])
	return FilSize + 4*int(BlockCount(size, blockSize, blockLog, fragInd))
}

// ERegInodeSize computes an extended regular-file record's full size from
// its fixed portion. dat must hold at least EFilSize bytes of the record.
func ERegInodeSize(dat []byte, blockSize uint32, blockLog uint16) int {
	size := binary.LittleEndian.Uint64(dat[24:])
	fragInd := binary.LittleEndian.Uint32(dat[44:])
	return EFilSize + 4*int(BlockCount64(size, blockSize, blockLog, fragInd))
}

func decodeFil(dat []byte, blockSize uint32, blockLog uint16) File {
	f := File{
		BlockStart: binary.LittleEndian.Uint32(dat[16:]),
		FragInd:    binary.LittleEndian.Uint32(dat[20:]),
		FragOffset: binary.LittleEndian.Uint32(dat[24:]),
		Size:       binary.LittleEndian.Uint32(dat[28:]),
	}
	f.BlockSizes = decodeBlockSizes(dat[FilSize:], BlockCount(f.Size, blockSize, blockLog, f.FragInd))
	return f
}

func decodeEFil(dat []byte, blockSize uint32, blockLog uint16) EFile {
	f := EFile{
		BlockStart: binary.LittleEndian.Uint64(dat[16:]),
		Size:       binary.LittleEndian.Uint64(dat[24:]),
		Sparse:     binary.LittleEndian.Uint64(dat[32:]),
		LinkCount:  binary.LittleEndian.Uint32(dat[40:]),
		FragInd:    binary.LittleEndian.Uint32(dat[44:]),
		FragOffset: binary.LittleEndian.Uint32(dat[48:]),
		XattrInd:   binary.LittleEndian.Uint32(dat[52:]),
	}
	f.BlockSizes = decodeBlockSizes(dat[EFilSize:], uint32(BlockCount64(f.Size, blockSize, blockLog, f.FragInd)))
	return f
}

func decodeBlockSizes(dat []byte, count uint32) []uint32 {
	sizes := make([]uint32, count)
	for i := range sizes {
		sizes[i] = binary.LittleEndian.Uint32(dat[4*i:])
	}
	return sizes
}
