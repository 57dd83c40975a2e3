package linker

import (
	"fmt"
	"path/filepath"
	"strings"

	"stubld/pkg/utils"
)

func ReadInputFiles(ctx *Context, remaining []string) error {
	for _, arg := range remaining {
		var ok bool
		var err error

		if arg, ok = utils.RemovePrefix(arg, "-l"); ok {
			err = ReadFile(ctx, FindLibrary(ctx, arg))
		} else {
			err = ReadFile(ctx, MustNewFile(arg))
		}

		if err != nil {
			return err
		}
	}
	return nil
}

func ReadFile(ctx *Context, file *File) error {
	if ctx.Visited[file.Name] {
		return nil
	}
	ctx.Visited[file.Name] = true

	switch GetFileType(file.Contents) {
	case FileTypeObject:
		ctx.Objs = append(ctx.Objs, CreateObjectFile(ctx, file, false))
	case FileTypeArchive:
		for _, child := range ReadArchiveMembers(file) {
			if GetFileType(child.Contents) == FileTypeObject {
				ctx.Objs = append(ctx.Objs, CreateObjectFile(ctx, child, true))
			}
		}
	case FileTypeText:
		return ReadLinkerScript(ctx, file)
	case FileTypeEmpty:
	default:
		utils.Fatal(fmt.Sprintf("unknown file type: %s", file.Name))
	}
	return nil
}

func CreateObjectFile(ctx *Context, file *File, inLib bool) *ObjectFile {
	mt := GetMachineTypeFromContents(file.Contents)
	if mt == MachineTypeNone {
		utils.Fatal(fmt.Sprintf("%s: unknown machine type", file.Name))
	}
	if ctx.Args.Emulation == MachineTypeNone {
		ctx.Args.Emulation = mt
	}
	if mt != ctx.Args.Emulation {
		utils.Fatal(fmt.Sprintf("%s: incompatible machine type", file.Name))
	}

	obj := NewObjectFile(file, !inLib)
	obj.Parse()

	return obj
}

// ReadLinkerScript resolves a stub script: parse it, let an
// OUTPUT_FORMAT seed an unset emulation, then read every file the
// script names. A missing as-needed entry is skipped; a missing needed
// entry ends the link.
func ReadLinkerScript(ctx *Context, file *File) error {
	script, err := ParseLinkerScript(ctx, file)
	if err != nil {
		return err
	}
	ctx.Scripts = append(ctx.Scripts, script)

	if script.MachineType != MachineTypeNone && ctx.Args.Emulation == MachineTypeNone {
		ctx.Args.Emulation = script.MachineType
	}

	for _, entry := range script.Entries {
		name := string(entry.Name)

		f := findScriptFile(ctx, script, name)
		if f == nil {
			if !entry.Needed {
				continue
			}
			utils.Fatal(fmt.Sprintf("%s: cannot find %s", script.Path, name))
		}
		f.Parent = file

		if err := ReadFile(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

// Script entries with a path separator are opened as given; bare
// sonames are looked up next to the script itself and then along the
// library search path.
func findScriptFile(ctx *Context, script *LdScript, name string) *File {
	if strings.Contains(name, "/") {
		return OpenLibrary(name)
	}

	if f := OpenLibrary(filepath.Join(filepath.Dir(script.Path), name)); f != nil {
		return f
	}
	for _, dir := range ctx.Args.LibraryPaths {
		if f := OpenLibrary(filepath.Join(dir, name)); f != nil {
			return f
		}
	}
	return nil
}
