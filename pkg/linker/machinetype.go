package linker

import (
	"debug/elf"
	"stubld/pkg/utils"
)

type MachineType = uint8

const (
	MachineTypeNone    MachineType = iota
	MachineTypeX86_64  MachineType = iota
	MachineTypeAArch64 MachineType = iota
)

func GetMachineTypeFromContents(contents []byte) MachineType {
	ft := GetFileType(contents)

	switch ft {
	case FileTypeObject:
		if elf.Class(contents[4]) != elf.ELFCLASS64 {
			return MachineTypeNone
		}

		machine := elf.Machine(utils.Read[uint16](contents[18:]))
		switch machine {
		case elf.EM_X86_64:
			return MachineTypeX86_64
		case elf.EM_AARCH64:
			return MachineTypeAArch64
		}
	}

	return MachineTypeNone
}

// GetMachineTypeFromFormat maps an OUTPUT_FORMAT string to a machine
// type. Only the two BFD names stub scripts actually carry are known.
func GetMachineTypeFromFormat(format string) (MachineType, bool) {
	switch format {
	case "elf64-x86-64":
		return MachineTypeX86_64, true
	case "elf64-littleaarch64":
		return MachineTypeAArch64, true
	}
	return MachineTypeNone, false
}

type MachineTypeStringer struct {
	MachineType
}

func (m MachineTypeStringer) String() string {
	switch m.MachineType {
	case MachineTypeX86_64:
		return "x86-64"
	case MachineTypeAArch64:
		return "aarch64"
	}

	utils.Assert(m.MachineType == MachineTypeNone)
	return ""
}
