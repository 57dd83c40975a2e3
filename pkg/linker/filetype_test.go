package linker

import "testing"

func TestGetFileType(t *testing.T) {
	tests := []struct {
		name     string
		contents []byte
		want     FileType
	}{
		{"empty", []byte{}, FileTypeEmpty},
		{"elf", []byte("\x7fELF\x02\x01\x01"), FileTypeObject},
		{"archive", []byte("!<arch>\ndata"), FileTypeArchive},
		{"script", []byte("/* GNU ld script */\n"), FileTypeText},
		{"directive", []byte("OUTPUT_FORMAT(elf64-x86-64)\n"), FileTypeText},
		{"binary", []byte{0x00, 0x01, 0x02, 0x03, 0x04}, FileTypeUnknown},
		{"short text", []byte("ab"), FileTypeUnknown},
	}

	for _, tt := range tests {
		if got := GetFileType(tt.contents); got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, got, tt.want)
		}
	}
}
