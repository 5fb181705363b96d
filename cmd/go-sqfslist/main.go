package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	squashfslow "github.com/CalebQ42/squashmeta/low"
	"github.com/CalebQ42/squashmeta/low/inode"
)

func typeName(t uint16) string {
	switch t {
	case inode.Dir, inode.EDir:
		return "dir"
	case inode.Fil, inode.EFil:
		return "file"
	case inode.Sym, inode.ESym:
		return "symlink"
	case inode.Block, inode.EBlock:
		return "blockdev"
	case inode.Char, inode.EChar:
		return "chardev"
	case inode.Fifo, inode.EFifo:
		return "fifo"
	case inode.Sock, inode.ESock:
		return "socket"
	}
	return "unknown"
}

func printInode(i *inode.Inode) {
	extra := ""
	switch d := i.Data.(type) {
	case inode.Symlink:
		extra = " -> " + string(d.Target)
	case inode.ESymlink:
		extra = " -> " + string(d.Target)
	case inode.File:
		extra = fmt.Sprintf(" (%d blocks)", len(d.BlockSizes))
	case inode.EFile:
		extra = fmt.Sprintf(" (%d blocks)", len(d.BlockSizes))
	case inode.EDirectory:
		extra = fmt.Sprintf(" (%d indexes)", len(d.Indexes))
	}
	fmt.Printf("%6d %-8s %s %4d/%-4d %10d %s%s\n",
		i.Num, typeName(i.Type),
		strings.ToLower(i.Mode().String()),
		i.UidInd, i.GidInd, i.Size(),
		time.Unix(int64(i.ModTime), 0).UTC().Format("2006-01-02 15:04"),
		extra)
}

func main() {
	verbose := flag.Bool("v", false, "Print superblock info before listing")
	flag.Parse()
	if len(flag.Args()) < 1 {
		fmt.Println("Please provide a squashfs archive")
		os.Exit(0)
	}
	f, err := os.Open(flag.Arg(0))
	if err != nil {
		panic(err)
	}
	defer f.Close()
	r, err := squashfslow.NewReader(f)
	if err != nil {
		panic(err)
	}
	if *verbose {
		s := r.Superblock
		fmt.Printf("inodes: %d, block size: %d (log %d), compression type: %d\n",
			s.InodeCount, s.BlockSize, s.BlockLog, s.CompType)
		fmt.Printf("flags: %+v\n", s.GetFlags())
	}
	ir := r.InodeReader()
	for {
		in, err := ir.Read()
		if errors.Is(err, squashfslow.ErrInodesExhausted) {
			break
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to read inode table:", err)
			os.Exit(1)
		}
		printInode(in)
	}
}
