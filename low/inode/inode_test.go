package inode

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func appendU16(b []byte, v uint16) []byte { return binary.LittleEndian.AppendUint16(b, v) }
func appendU32(b []byte, v uint32) []byte { return binary.LittleEndian.AppendUint32(b, v) }
func appendU64(b []byte, v uint64) []byte { return binary.LittleEndian.AppendUint64(b, v) }

func appendHeader(b []byte, typ uint16, num uint32) []byte {
	b = appendU16(b, typ)
	b = appendU16(b, 0644)
	b = appendU16(b, 1)
	b = appendU16(b, 2)
	b = appendU32(b, 1234567890)
	return appendU32(b, num)
}

func TestBlockCount(t *testing.T) {
	const blockSize = 4096
	const blockLog = 12
	tests := []struct {
		size    uint32
		fragInd uint32
		want    uint32
	}{
		{0, InvalidFrag, 0},
		{1, InvalidFrag, 1},
		{4096, InvalidFrag, 1},
		{4097, InvalidFrag, 2},
		{3 * 4096, InvalidFrag, 3},
		// with a fragment the tail bytes live in the fragment block
		{0, 0, 0},
		{1, 0, 0},
		{4095, 5, 0},
		{4096, 5, 1},
		{4097, 5, 1},
		{3*4096 + 100, 7, 3},
	}
	for _, tt := range tests {
		got := BlockCount(tt.size, blockSize, blockLog, tt.fragInd)
		if got != tt.want {
			t.Errorf("BlockCount(%d, frag %#x) = %d, want %d", tt.size, tt.fragInd, got, tt.want)
		}
		got64 := BlockCount64(uint64(tt.size), blockSize, blockLog, tt.fragInd)
		if got64 != uint64(tt.want) {
			t.Errorf("BlockCount64(%d, frag %#x) = %d, want %d", tt.size, tt.fragInd, got64, tt.want)
		}
	}
}

func TestBlockCount64Large(t *testing.T) {
	const blockSize = 131072
	const blockLog = 17
	size := uint64(5<<30) + 1
	if got := BlockCount64(size, blockSize, blockLog, InvalidFrag); got != 5<<13+1 {
		t.Errorf("BlockCount64(%d) = %d, want %d", size, got, 5<<13+1)
	}
	if got := BlockCount64(size, blockSize, blockLog, 0); got != 5<<13 {
		t.Errorf("BlockCount64(%d, frag) = %d, want %d", size, got, 5<<13)
	}
}

func TestSymInodeSize(t *testing.T) {
	for _, length := range []uint32{0, 1, 4095, 65535} {
		dat := appendHeader(nil, Sym, 1)
		dat = appendU32(dat, 1)      // link count
		dat = appendU32(dat, length) // target size
		if got := SymInodeSize(dat); got != SymSize+int(length) {
			t.Errorf("SymInodeSize(len %d) = %d, want %d", length, got, SymSize+int(length))
		}
	}
}

func TestBaseSize(t *testing.T) {
	sizes := map[uint16]int{
		Dir: 32, Fil: 32, Sym: 24, Block: 24, Char: 24, Fifo: 20, Sock: 20,
		EDir: 40, EFil: 56, ESym: 24, EBlock: 28, EChar: 28, EFifo: 24, ESock: 24,
	}
	for typ, want := range sizes {
		if got := BaseSize(typ); got != want {
			t.Errorf("BaseSize(%d) = %d, want %d", typ, got, want)
		}
	}
	for _, typ := range []uint16{0, ESock + 1, 500} {
		if got := BaseSize(typ); got != 0 {
			t.Errorf("BaseSize(%d) = %d, want 0", typ, got)
		}
	}
}

func TestDecodeDir(t *testing.T) {
	dat := appendHeader(nil, Dir, 7)
	dat = appendU32(dat, 100) // block start
	dat = appendU32(dat, 3)   // link count
	dat = appendU16(dat, 45)  // size
	dat = appendU16(dat, 12)  // offset
	dat = appendU32(dat, 1)   // parent
	in, err := Decode(dat, 4096, 12)
	if err != nil {
		t.Fatal(err)
	}
	if in.Num != 7 || in.Perm != 0644 || in.UidInd != 1 || in.GidInd != 2 {
		t.Fatal("header decoded incorrectly:", in.Header)
	}
	d, ok := in.Data.(Directory)
	if !ok {
		t.Fatalf("wrong variant %T", in.Data)
	}
	if d.BlockStart != 100 || d.LinkCount != 3 || d.Size != 45 || d.Offset != 12 || d.ParentNum != 1 {
		t.Fatal("directory decoded incorrectly:", d)
	}
	if !in.Mode().IsDir() {
		t.Fatal("directory mode not a dir:", in.Mode())
	}
}

func TestDecodeFile(t *testing.T) {
	blockSizes := []uint32{4096, 4096, 100}
	dat := appendHeader(nil, Fil, 8)
	dat = appendU32(dat, 96)                 // block start
	dat = appendU32(dat, InvalidFrag)        // no fragment
	dat = appendU32(dat, 0)                  // frag offset
	dat = appendU32(dat, 2*4096+100)         // size
	for _, s := range blockSizes {
		dat = appendU32(dat, s)
	}
	if got := RegInodeSize(dat, 4096, 12); got != len(dat) {
		t.Fatalf("RegInodeSize = %d, want %d", got, len(dat))
	}
	in, err := Decode(dat, 4096, 12)
	if err != nil {
		t.Fatal(err)
	}
	f, ok := in.Data.(File)
	if !ok {
		t.Fatalf("wrong variant %T", in.Data)
	}
	if f.BlockStart != 96 || f.FragInd != InvalidFrag || f.Size != 2*4096+100 {
		t.Fatal("file decoded incorrectly:", f)
	}
	if len(f.BlockSizes) != 3 || f.BlockSizes[2] != 100 {
		t.Fatal("block sizes decoded incorrectly:", f.BlockSizes)
	}
	if in.Size() != 2*4096+100 {
		t.Fatal("wrong Size():", in.Size())
	}
}

func TestDecodeEFile(t *testing.T) {
	dat := appendHeader(nil, EFil, 9)
	dat = appendU64(dat, 96)       // block start
	dat = appendU64(dat, 4096+10)  // size
	dat = appendU64(dat, 0)        // sparse
	dat = appendU32(dat, 1)        // link count
	dat = appendU32(dat, 4)        // frag index
	dat = appendU32(dat, 10)       // frag offset
	dat = appendU32(dat, 0)        // xattr
	dat = appendU32(dat, 4096)     // the one full block
	if got := ERegInodeSize(dat, 4096, 12); got != len(dat) {
		t.Fatalf("ERegInodeSize = %d, want %d", got, len(dat))
	}
	in, err := Decode(dat, 4096, 12)
	if err != nil {
		t.Fatal(err)
	}
	f, ok := in.Data.(EFile)
	if !ok {
		t.Fatalf("wrong variant %T", in.Data)
	}
	if f.Size != 4096+10 || f.FragInd != 4 || f.FragOffset != 10 || f.LinkCount != 1 {
		t.Fatal("efile decoded incorrectly:", f)
	}
	if len(f.BlockSizes) != 1 || f.BlockSizes[0] != 4096 {
		t.Fatal("block sizes decoded incorrectly:", f.BlockSizes)
	}
}

func TestDecodeSymlinks(t *testing.T) {
	target := []byte("../some/target")
	for _, typ := range []uint16{Sym, ESym} {
		dat := appendHeader(nil, typ, 10)
		dat = appendU32(dat, 1)
		dat = appendU32(dat, uint32(len(target)))
		dat = append(dat, target...)
		if got := SymInodeSize(dat); got != len(dat) {
			t.Fatalf("SymInodeSize = %d, want %d", got, len(dat))
		}
		in, err := Decode(dat, 4096, 12)
		if err != nil {
			t.Fatal(err)
		}
		var got []byte
		switch d := in.Data.(type) {
		case Symlink:
			got = d.Target
		case ESymlink:
			got = d.Target
		default:
			t.Fatalf("wrong variant %T", in.Data)
		}
		if !bytes.Equal(got, target) {
			t.Fatalf("type %d: target %q, want %q", typ, got, target)
		}
		if in.Mode()&^0777 == 0 {
			t.Fatal("symlink mode missing mode bit")
		}
	}
}

func TestDecodeDeviceIPC(t *testing.T) {
	dat := appendHeader(nil, Block, 11)
	dat = appendU32(dat, 1)
	dat = appendU32(dat, 0x0801)
	in, err := Decode(dat, 4096, 12)
	if err != nil {
		t.Fatal(err)
	}
	if d, ok := in.Data.(Device); !ok || d.Dev != 0x0801 {
		t.Fatalf("device decoded incorrectly: %+v", in.Data)
	}

	dat = appendHeader(nil, EChar, 12)
	dat = appendU32(dat, 2)
	dat = appendU32(dat, 0x0502)
	dat = appendU32(dat, 9) // xattr
	in, err = Decode(dat, 4096, 12)
	if err != nil {
		t.Fatal(err)
	}
	if d, ok := in.Data.(EDevice); !ok || d.Dev != 0x0502 || d.XattrInd != 9 {
		t.Fatalf("edevice decoded incorrectly: %+v", in.Data)
	}

	dat = appendHeader(nil, Fifo, 13)
	dat = appendU32(dat, 4)
	in, err = Decode(dat, 4096, 12)
	if err != nil {
		t.Fatal(err)
	}
	if d, ok := in.Data.(IPC); !ok || d.LinkCount != 4 {
		t.Fatalf("ipc decoded incorrectly: %+v", in.Data)
	}
	if in.LinkCount() != 4 {
		t.Fatal("wrong LinkCount():", in.LinkCount())
	}
}

func appendDirIndex(b []byte, nameSize uint32) []byte {
	b = appendU32(b, 10)
	b = appendU32(b, 20)
	b = appendU32(b, nameSize)
	name := make([]byte, nameSize+1)
	for i := range name {
		name[i] = byte('a' + i%26)
	}
	return append(b, name...)
}

func TestDecodeEDir(t *testing.T) {
	// name sizes 0, 1 and 200; stored value is one short of the real length
	nameSizes := []uint32{0, 1, 200}
	dat := appendHeader(nil, EDir, 14)
	dat = appendU32(dat, 5)                    // link count
	dat = appendU32(dat, 300)                  // size
	dat = appendU32(dat, 80)                   // block start
	dat = appendU32(dat, 1)                    // parent
	dat = appendU16(dat, uint16(len(nameSizes)))
	dat = appendU16(dat, 0)                    // offset
	dat = appendU32(dat, 0)                    // xattr
	for _, n := range nameSizes {
		dat = appendDirIndex(dat, n)
	}
	wantLen := EDirSize
	for _, n := range nameSizes {
		wantLen += DirIndexSize + int(n) + 1
	}
	if len(dat) != wantLen {
		t.Fatalf("encoded edir is %d bytes, want %d", len(dat), wantLen)
	}
	if got := EDirIndexCount(dat); got != 3 {
		t.Fatal("wrong index count:", got)
	}
	in, err := Decode(dat, 4096, 12)
	if err != nil {
		t.Fatal(err)
	}
	d, ok := in.Data.(EDirectory)
	if !ok {
		t.Fatalf("wrong variant %T", in.Data)
	}
	if len(d.Indexes) != 3 {
		t.Fatal("wrong number of indexes:", len(d.Indexes))
	}
	for i, n := range nameSizes {
		if d.Indexes[i].NameSize != n {
			t.Errorf("index %d: name size %d, want %d", i, d.Indexes[i].NameSize, n)
		}
		if len(d.Indexes[i].Name) != int(n)+1 {
			t.Errorf("index %d: name length %d, want %d", i, len(d.Indexes[i].Name), n+1)
		}
		if d.Indexes[i].Ind != 10 || d.Indexes[i].Start != 20 {
			t.Errorf("index %d decoded incorrectly: %+v", i, d.Indexes[i])
		}
	}
}

func TestDirIndexEntrySize(t *testing.T) {
	for _, n := range []uint32{0, 1, 200} {
		ent := appendDirIndex(nil, n)
		if got := DirIndexEntrySize(ent); got != len(ent) {
			t.Errorf("DirIndexEntrySize(name size %d) = %d, want %d", n, got, len(ent))
		}
	}
}

func TestDecodeInvalidType(t *testing.T) {
	for _, typ := range []uint16{0, ESock + 1} {
		dat := appendHeader(nil, typ, 1)
		if _, err := Decode(dat, 4096, 12); err == nil {
			t.Errorf("type %d: expected an error", typ)
		}
	}
}
