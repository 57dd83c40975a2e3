package linker

import (
	"fmt"
	"os"
	"path/filepath"

	"stubld/pkg/utils"
)

type File struct {
	Name     string
	Contents []byte
	Parent   *File
}

func MustNewFile(name string) *File {
	contents, err := os.ReadFile(name)
	utils.MustNo(err)

	return &File{
		Name:     name,
		Contents: contents,
	}
}

// OpenLibrary returns nil when the file does not exist, so callers can
// probe a search path.
func OpenLibrary(name string) *File {
	contents, err := os.ReadFile(name)
	if err != nil {
		return nil
	}

	return &File{
		Name:     name,
		Contents: contents,
	}
}

func FindLibrary(ctx *Context, name string) *File {
	for _, dir := range ctx.Args.LibraryPaths {
		stem := filepath.Join(dir, "lib"+name)
		if f := OpenLibrary(stem + ".so"); f != nil {
			return f
		}
		if f := OpenLibrary(stem + ".a"); f != nil {
			return f
		}
	}

	utils.Fatal(fmt.Sprintf("library not found: %s", name))
	return nil
}
