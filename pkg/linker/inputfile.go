package linker

import (
	"bytes"
	"debug/elf"
	"fmt"
	"unsafe"

	"stubld/pkg/utils"
)

const ELFHeaderSize = unsafe.Sizeof(elf.Header64{})
const SectionHeaderSize = unsafe.Sizeof(elf.Section64{})
const SymbolSize = unsafe.Sizeof(elf.Sym64{})

type InputFile struct {
	File        *File
	Sections    []elf.Section64
	FirstGlobal int64
	SymTable    []elf.Sym64
	SymStrTable []byte
	StrTable    []byte
}

func NewInputFile(file *File) InputFile {
	f := InputFile{File: file}

	if len(file.Contents) < int(ELFHeaderSize) {
		utils.Fatal(fmt.Sprintf("%s: ELF file too small", file.Name))
	}
	if !CheckMagic(file.Contents) {
		utils.Fatal(fmt.Sprintf("%s: not an ELF file", file.Name))
	}

	ehdr := utils.Read[elf.Header64](file.Contents)
	contents := file.Contents[ehdr.Shoff:]

	shdr := utils.Read[elf.Section64](contents)
	num := uint64(ehdr.Shnum)
	if num == 0 {
		// More sections than fit in e_shnum: the real count lives in
		// the size field of section 0.
		num = shdr.Size
	}

	f.Sections = []elf.Section64{shdr}
	for num > 1 {
		contents = contents[SectionHeaderSize:]
		f.Sections = append(f.Sections, utils.Read[elf.Section64](contents))
		num--
	}

	shstrndx := uint64(ehdr.Shstrndx)
	if shstrndx == uint64(elf.SHN_XINDEX) {
		shstrndx = uint64(shdr.Link)
	}
	f.StrTable = f.GetBytesFromIndex(shstrndx)

	return f
}

func (f *InputFile) GetBytesFromShdr(shdr *elf.Section64) []byte {
	start := shdr.Off
	end := shdr.Off + shdr.Size
	if uint64(len(f.File.Contents)) < end {
		utils.Fatal(fmt.Sprintf("%s: section out of range: %d", f.File.Name, shdr.Off))
	}
	return f.File.Contents[start:end]
}

func (f *InputFile) GetBytesFromIndex(idx uint64) []byte {
	return f.GetBytesFromShdr(&f.Sections[idx])
}

func (f *InputFile) FindSection(type_ uint32) *elf.Section64 {
	for i := 0; i < len(f.Sections); i++ {
		shdr := &f.Sections[i]
		if shdr.Type == type_ {
			return shdr
		}
	}
	return nil
}

func (f *InputFile) FillUpSymbols(shdr *elf.Section64) {
	contents := f.GetBytesFromShdr(shdr)
	num := len(contents) / int(SymbolSize)

	f.SymTable = make([]elf.Sym64, 0, num)
	for num > 0 {
		f.SymTable = append(f.SymTable, utils.Read[elf.Sym64](contents))
		contents = contents[SymbolSize:]
		num--
	}
}

func GetNameFromTable(strTable []byte, offset uint32) string {
	length := uint32(bytes.Index(strTable[offset:], []byte{0}))
	return string(strTable[offset : offset+length])
}
