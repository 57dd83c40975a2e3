package linker

import (
	"strconv"
	"strings"
	"unsafe"

	"stubld/pkg/utils"
)

type ArHdr struct {
	Name [16]byte
	Date [12]byte
	Uid  [6]byte
	Gid  [6]byte
	Mode [8]byte
	Size [10]byte
	Fmag [2]byte
}

const ArHdrSize = unsafe.Sizeof(ArHdr{})

func (a *ArHdr) hasPrefix(s string) bool {
	return strings.HasPrefix(string(a.Name[:]), s)
}

func (a *ArHdr) IsStrtab() bool {
	return a.hasPrefix("// ")
}

func (a *ArHdr) IsSymtab() bool {
	return a.hasPrefix("/ ") || a.hasPrefix("/SYM64/ ")
}

func (a *ArHdr) GetSize() int {
	size, err := strconv.Atoi(strings.TrimSpace(string(a.Size[:])))
	utils.MustNo(err)
	return size
}

func (a *ArHdr) ReadName(strTab []byte) string {
	// Long name: "/123" is an offset into the name string table, where
	// the entry runs up to "/\n".
	if a.hasPrefix("/") {
		start, err := strconv.Atoi(strings.TrimSpace(string(a.Name[1:])))
		utils.MustNo(err)
		end := start + strings.Index(string(strTab[start:]), "/\n")
		return string(strTab[start:end])
	}

	// Short name: "name/".
	end := strings.Index(string(a.Name[:]), "/")
	utils.Assert(end != -1)
	return string(a.Name[:end])
}

func ReadArchiveMembers(file *File) []*File {
	utils.Assert(GetFileType(file.Contents) == FileTypeArchive)

	// skip 8 bytes "!<arch>\n"
	pos := 8

	var strTab []byte
	var files []*File
	// Members are 2-byte aligned; odd-sized ones are padded with "\n".
	for len(file.Contents)-pos > 1 {
		if pos%2 == 1 {
			pos++
		}

		hdr := utils.Read[ArHdr](file.Contents[pos:])
		dataStart := pos + int(ArHdrSize)
		pos = dataStart + hdr.GetSize()
		dataEnd := pos
		contents := file.Contents[dataStart:dataEnd]

		if hdr.IsSymtab() {
			continue
		} else if hdr.IsStrtab() {
			strTab = contents
			continue
		}

		files = append(files, &File{
			Name:     hdr.ReadName(strTab),
			Contents: contents,
			Parent:   file,
		})
	}

	return files
}
