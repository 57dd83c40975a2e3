package linker

import "bytes"

type FileType = uint8

const (
	FileTypeUnknown FileType = iota
	FileTypeEmpty   FileType = iota
	FileTypeObject  FileType = iota
	FileTypeArchive FileType = iota
	FileTypeText    FileType = iota
)

func CheckMagic(contents []byte) bool {
	return bytes.HasPrefix(contents, []byte("\x7fELF"))
}

// GetFileType decides how ReadFile treats an input. A file that is
// neither ELF nor an archive but starts with printable text is a
// linker-script candidate: that is what the stub files under /usr/lib
// look like.
func GetFileType(contents []byte) FileType {
	if len(contents) == 0 {
		return FileTypeEmpty
	}
	if CheckMagic(contents) {
		return FileTypeObject
	}
	if bytes.HasPrefix(contents, []byte("!<arch>\n")) {
		return FileTypeArchive
	}
	if isTextFile(contents) {
		return FileTypeText
	}
	return FileTypeUnknown
}

func isTextFile(contents []byte) bool {
	if len(contents) < 4 {
		return false
	}
	for _, c := range contents[:4] {
		if !isPrintable(c) {
			return false
		}
	}
	return true
}

func isPrintable(c byte) bool {
	return c == '\t' || c == '\n' || c == '\r' || (c >= 0x20 && c < 0x7f)
}
