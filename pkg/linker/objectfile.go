package linker

import "debug/elf"

type ObjectFile struct {
	InputFile

	SymtabSection *elf.Section64

	// Archive members start dead and are only revived when something
	// references them; command-line objects are always alive.
	Alive bool
}

func NewObjectFile(file *File, alive bool) *ObjectFile {
	return &ObjectFile{
		InputFile: NewInputFile(file),
		Alive:     alive,
	}
}

func (o *ObjectFile) Parse() {
	o.SymtabSection = o.FindSection(uint32(elf.SHT_SYMTAB))
	if o.SymtabSection != nil {
		o.FirstGlobal = int64(o.SymtabSection.Info)
		o.FillUpSymbols(o.SymtabSection)
		o.SymStrTable = o.GetBytesFromIndex(uint64(o.SymtabSection.Link))
	}
}
