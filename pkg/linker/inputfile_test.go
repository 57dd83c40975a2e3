package linker

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"testing"
)

// buildTestObject serializes a minimal x86-64 relocatable object: a
// null section, a symtab with one global symbol, and its strtab.
func buildTestObject(t *testing.T) []byte {
	t.Helper()

	const (
		shoff      = 64
		symtabOff  = shoff + 3*64
		strtabOff  = symtabOff + 2*24
		strtabData = "\x00main\x00"
	)

	ehdr := elf.Header64{
		Type:      uint16(elf.ET_REL),
		Machine:   uint16(elf.EM_X86_64),
		Version:   1,
		Shoff:     shoff,
		Ehsize:    64,
		Shentsize: 64,
		Shnum:     3,
		Shstrndx:  2,
	}
	ident := [16]byte{0x7f, 'E', 'L', 'F', byte(elf.ELFCLASS64), byte(elf.ELFDATA2LSB), 1}
	ehdr.Ident = ident

	shdrs := []elf.Section64{
		{},
		{
			Type:    uint32(elf.SHT_SYMTAB),
			Off:     symtabOff,
			Size:    2 * 24,
			Link:    2,
			Info:    1, // first global
			Entsize: 24,
		},
		{
			Type: uint32(elf.SHT_STRTAB),
			Off:  strtabOff,
			Size: uint64(len(strtabData)),
		},
	}

	syms := []elf.Sym64{
		{},
		{Name: 1, Info: byte(elf.STB_GLOBAL)<<4 | byte(elf.STT_FUNC)},
	}

	var buf bytes.Buffer
	for _, v := range []any{ehdr, shdrs, syms} {
		if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
			t.Fatal(err)
		}
	}
	buf.WriteString(strtabData)

	return buf.Bytes()
}

func TestObjectFileParse(t *testing.T) {
	contents := buildTestObject(t)

	obj := NewObjectFile(&File{Name: "test.o", Contents: contents}, true)
	obj.Parse()

	if len(obj.Sections) != 3 {
		t.Fatalf("section count: got %d, want 3", len(obj.Sections))
	}
	if obj.FirstGlobal != 1 {
		t.Errorf("first global: got %d, want 1", obj.FirstGlobal)
	}
	if len(obj.SymTable) != 2 {
		t.Fatalf("symbol count: got %d, want 2", len(obj.SymTable))
	}
	if name := GetNameFromTable(obj.SymStrTable, obj.SymTable[1].Name); name != "main" {
		t.Errorf("symbol name: got %q, want main", name)
	}
}

func TestGetMachineTypeFromContents(t *testing.T) {
	contents := buildTestObject(t)

	if mt := GetMachineTypeFromContents(contents); mt != MachineTypeX86_64 {
		t.Errorf("machine type: got %d, want x86-64", mt)
	}
	if mt := GetMachineTypeFromContents([]byte("not an object")); mt != MachineTypeNone {
		t.Errorf("machine type for text: got %d, want none", mt)
	}
}
