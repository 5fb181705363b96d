package inode

import "encoding/binary"

type Device struct {
	LinkCount uint32
	Dev       uint32
}

type EDevice struct {
	Device
	XattrInd uint32
}

type IPC struct {
	LinkCount uint32
}

type EIPC struct {
	IPC
	XattrInd uint32
}

func decodeDevice(dat []byte) Device {
	return Device{
		LinkCount: binary.LittleEndian.Uint32(dat[16:]),
		Dev:       binary.LittleEndian.Uint32(dat[20:]),
	}
}

func decodeEDevice(dat []byte) EDevice {
	return EDevice{
		Device:   decodeDevice(dat),
		XattrInd: binary.LittleEndian.Uint32(dat[24:]),
	}
}

func decodeIPC(dat []byte) IPC {
	return IPC{
		LinkCount: binary.LittleEndian.Uint32(dat[16:]),
	}
}

func decodeEIPC(dat []byte) EIPC {
	return EIPC{
		IPC:      decodeIPC(dat),
		XattrInd: binary.LittleEndian.Uint32(dat[20:]),
	}
}
